package handlers

import "sync/atomic"

// Metrics collects request-level counters shared between handlers.
type Metrics struct {
	BadgeRenders  atomic.Uint64
	BadgeFailures atomic.Uint64
}

func NewMetrics() *Metrics {
	return &Metrics{}
}
