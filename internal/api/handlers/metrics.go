package handlers

import (
	"fmt"
	"net/http"
)

type MetricsHandler struct {
	metrics *Metrics
}

func NewMetricsHandler(m *Metrics) *MetricsHandler {
	return &MetricsHandler{metrics: m}
}

func (h *MetricsHandler) Export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintf(w, "# HELP hapbadge_up Is the server up\n")
	fmt.Fprintf(w, "# TYPE hapbadge_up gauge\n")
	fmt.Fprintf(w, "hapbadge_up 1\n")
	fmt.Fprintf(w, "# HELP hapbadge_badge_renders_total Badges rendered\n")
	fmt.Fprintf(w, "# TYPE hapbadge_badge_renders_total counter\n")
	fmt.Fprintf(w, "hapbadge_badge_renders_total %d\n", h.metrics.BadgeRenders.Load())
	fmt.Fprintf(w, "# HELP hapbadge_badge_failures_total Badge renders that failed\n")
	fmt.Fprintf(w, "# TYPE hapbadge_badge_failures_total counter\n")
	fmt.Fprintf(w, "hapbadge_badge_failures_total %d\n", h.metrics.BadgeFailures.Load())
}
