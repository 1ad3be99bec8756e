package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"hapbadge/internal/engine/badge"
	"hapbadge/internal/pkg/errors"
	"hapbadge/internal/platform/display"
)

type BadgeHandler struct {
	display  *display.Display
	renderer *badge.Renderer
	metrics  *Metrics
}

func NewBadgeHandler(d *display.Display, r *badge.Renderer, m *Metrics) *BadgeHandler {
	return &BadgeHandler{display: d, renderer: r, metrics: m}
}

// Serve answers with the SVG pairing badge for the current setup payload,
// or a plain-text notice when no payload is set.
func (h *BadgeHandler) Serve(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.display.Payload()
	if !ok {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintf(w, "%s\r\n", "No setup payload is set. Already paired?")
		return
	}

	// Render into a buffer first so a failed render never leaks a
	// truncated SVG onto the wire.
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, payload); err != nil {
		h.metrics.BadgeFailures.Add(1)
		log.Error().Err(err).Msg("badge render failed")

		switch err {
		case badge.ErrInvalidPayload, badge.ErrCodeOutOfRange:
			errors.WriteError(w, http.StatusUnprocessableEntity, errors.ErrCodeUnprocessable, err.Error(), nil)
		default:
			errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "badge rendering failed", nil)
		}
		return
	}

	h.metrics.BadgeRenders.Add(1)
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(buf.Bytes())
}
