package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"hapbadge/internal/platform/display"
)

type HealthHandler struct {
	display *display.Display
}

func NewHealthHandler(d *display.Display) *HealthHandler {
	return &HealthHandler{display: d}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]string)

	if _, ok := h.display.Payload(); ok {
		checks["setup_payload"] = "set"
	} else {
		checks["setup_payload"] = "unset"
	}

	response := struct {
		Status    string            `json:"status"`
		Timestamp int64             `json:"timestamp"`
		Checks    map[string]string `json:"checks"`
	}{
		Status:    "healthy",
		Timestamp: time.Now().Unix(),
		Checks:    checks,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}
