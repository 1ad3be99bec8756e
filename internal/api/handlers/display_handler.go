package handlers

import (
	"encoding/json"
	"net/http"

	"hapbadge/internal/engine/setup"
	"hapbadge/internal/pkg/errors"
	"hapbadge/internal/platform/display"
)

type DisplayHandler struct {
	display *display.Display
}

func NewDisplayHandler(d *display.Display) *DisplayHandler {
	return &DisplayHandler{display: d}
}

type updateSetupRequest struct {
	Payload string `json:"payload"`
	Code    string `json:"code,omitempty"`
}

// Update publishes a new setup payload (and optionally the display code),
// the runtime-event path of the pairing stack exposed over HTTP.
func (h *DisplayHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateSetupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, "Invalid JSON body", nil)
		return
	}

	if !setup.ValidPayload(req.Payload) {
		errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput,
			"Payload must be a 20 character X-HM:// URI", nil)
		return
	}

	h.display.SetPayload(req.Payload)
	if req.Code != "" {
		h.display.SetCode(req.Code)
	}

	w.WriteHeader(http.StatusNoContent)
}

// Clear invalidates the setup payload, e.g. after pairing completes.
func (h *DisplayHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.display.Clear()
	w.WriteHeader(http.StatusNoContent)
}
