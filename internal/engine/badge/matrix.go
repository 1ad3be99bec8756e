package badge

import qrcode "github.com/skip2/go-qrcode"

// Matrix is a square grid of QR modules. Module reports whether the cell
// at column x, row y is dark.
type Matrix interface {
	Size() int
	Module(x, y int) bool
}

// MatrixProvider produces a fresh Matrix for a payload string.
type MatrixProvider interface {
	Encode(payload string) (Matrix, error)
}

// QRProvider encodes payloads with skip2/go-qrcode at recovery level Q,
// the level setup labels are printed with. The renderer draws its own
// quiet zone, so the library border is disabled.
type QRProvider struct{}

func (QRProvider) Encode(payload string) (Matrix, error) {
	code, err := qrcode.New(payload, qrcode.High)
	if err != nil {
		return nil, err
	}
	code.DisableBorder = true

	return bitmapMatrix(code.Bitmap()), nil
}

type bitmapMatrix [][]bool

func (m bitmapMatrix) Size() int { return len(m) }

func (m bitmapMatrix) Module(x, y int) bool { return m[y][x] }
