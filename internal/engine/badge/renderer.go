package badge

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"hapbadge/internal/engine/setup"
)

var (
	ErrInvalidPayload = errors.New("invalid setup payload")
	ErrCodeOutOfRange = errors.New("setup code exceeds the limits of a valid setup code")
)

// QR area geometry, fixed by the badge artwork.
const (
	qrAreaX     = 10.0
	qrAreaY     = 74.0
	qrAreaWidth = 165.0
	qrBorder    = 1
)

// Renderer draws SVG pairing badges: a card with the house logo, the
// setup code split over two lines, and a QR code for the full payload.
type Renderer struct {
	provider MatrixProvider
}

func NewRenderer(provider MatrixProvider) *Renderer {
	return &Renderer{provider: provider}
}

// Render writes the badge for payload to w. Either the complete badge is
// written or nothing at all: the payload shape, the code range and the QR
// encoding are all checked before the first byte goes out.
func (r *Renderer) Render(w io.Writer, payload string) error {
	if !setup.ValidPayload(payload) {
		return ErrInvalidPayload
	}

	code := setup.SetupCode(payload)
	if code > setup.MaxDisplayCode {
		return ErrCodeOutOfRange
	}

	// The QR code carries the full payload URI, not just the code.
	matrix, err := r.provider.Encode(payload)
	if err != nil {
		return err
	}

	io.WriteString(w, xmlDeclaration)
	io.WriteString(w, svgOpen)
	io.WriteString(w, svgStyle)
	io.WriteString(w, cardRect)
	io.WriteString(w, logoOuter)
	io.WriteString(w, logoWalls)
	io.WriteString(w, logoDoor)

	first, second := splitCode(code)
	fmt.Fprintf(w, codeTextFormat, first, second)

	io.WriteString(w, qrBackdrop)
	writeQRPath(w, matrix, qrAreaX, qrAreaY, qrAreaWidth)
	io.WriteString(w, svgClose)

	return nil
}

// splitCode formats code without zero padding and cuts it at offset 4.
// A code shorter than 5 digits leaves the second line empty.
func splitCode(code uint64) (first, second string) {
	s := strconv.FormatUint(code, 10)

	if len(s) <= 4 {
		return s, ""
	}
	if len(s) <= 8 {
		return s[:4], s[4:]
	}

	return s[:4], s[4:8]
}

// writeQRPath emits one closed unit-square subpath per dark module in
// row-major order, scaled so the matrix plus a one-module quiet zone
// fills width.
func writeQRPath(w io.Writer, m Matrix, x, y, width float64) {
	io.WriteString(w, `<path d="`)

	size := m.Size()
	scale := width / float64(size+2*qrBorder)

	offsetX := x + qrBorder*scale
	offsetY := y + qrBorder*scale

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if m.Module(col, row) {
				fmt.Fprintf(
					w,
					"M%.3f,%.3fh%.3fv%.3fh-%.3fz",
					offsetX+scale*float64(col),
					offsetY+scale*float64(row),
					scale,
					scale,
					scale)
			}
		}
	}

	io.WriteString(w, `"/>`)
}
