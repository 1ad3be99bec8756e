package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hapbadge/internal/engine/badge"
	"hapbadge/internal/platform/display"
)

type fixedMatrix [][]bool

func (m fixedMatrix) Size() int { return len(m) }

func (m fixedMatrix) Module(x, y int) bool { return m[y][x] }

type fixedProvider struct{ matrix badge.Matrix }

func (p fixedProvider) Encode(string) (badge.Matrix, error) { return p.matrix, nil }

func newTestBadgeHandler(d *display.Display) (*BadgeHandler, *Metrics) {
	matrix := fixedMatrix{
		{true, false},
		{false, true},
	}
	metrics := NewMetrics()
	renderer := badge.NewRenderer(fixedProvider{matrix: matrix})
	return NewBadgeHandler(d, renderer, metrics), metrics
}

func TestBadgeHandlerServe(t *testing.T) {
	t.Run("Payload Set", func(t *testing.T) {
		d := display.New()
		d.SetPayload("X-HM://000000001ABCD")
		handler, metrics := newTestBadgeHandler(d)

		req, _ := http.NewRequest("GET", "/homekit/pairing", nil)
		rr := httptest.NewRecorder()
		handler.Serve(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
		}
		if ct := rr.Header().Get("Content-Type"); ct != "image/svg+xml" {
			t.Errorf("Content-Type = %q, want image/svg+xml", ct)
		}
		if !strings.HasPrefix(rr.Body.String(), `<?xml version="1.0" encoding="utf-8"?>`) {
			t.Error("body does not start with the XML declaration")
		}
		if got := metrics.BadgeRenders.Load(); got != 1 {
			t.Errorf("BadgeRenders = %d, want 1", got)
		}
	})

	t.Run("Payload Unset", func(t *testing.T) {
		d := display.New()
		handler, _ := newTestBadgeHandler(d)

		req, _ := http.NewRequest("GET", "/homekit/pairing", nil)
		rr := httptest.NewRecorder()
		handler.Serve(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
		}
		if got := rr.Body.String(); got != "No setup payload is set. Already paired?\r\n" {
			t.Errorf("body = %q, want the fallback notice", got)
		}
	})

	t.Run("Out Of Range Code", func(t *testing.T) {
		d := display.New()
		// Token 00027WR27 decodes past the 8-digit display range.
		d.SetPayload("X-HM://00027WR270000")
		handler, metrics := newTestBadgeHandler(d)

		req, _ := http.NewRequest("GET", "/homekit/pairing", nil)
		rr := httptest.NewRecorder()
		handler.Serve(rr, req)

		if rr.Code != http.StatusUnprocessableEntity {
			t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusUnprocessableEntity)
		}
		if strings.Contains(rr.Body.String(), "<svg") {
			t.Error("body contains SVG despite the render failing")
		}
		if got := metrics.BadgeFailures.Load(); got != 1 {
			t.Errorf("BadgeFailures = %d, want 1", got)
		}
	})
}

func TestBadgeHandlerMatchesRenderer(t *testing.T) {
	const payload = "X-HM://0032SP5MT1NWX"

	d := display.New()
	d.SetPayload(payload)
	handler, _ := newTestBadgeHandler(d)

	req, _ := http.NewRequest("GET", "/homekit/pairing", nil)
	rr := httptest.NewRecorder()
	handler.Serve(rr, req)

	matrix := fixedMatrix{
		{true, false},
		{false, true},
	}
	var want bytes.Buffer
	if err := badge.NewRenderer(fixedProvider{matrix: matrix}).Render(&want, payload); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !bytes.Equal(rr.Body.Bytes(), want.Bytes()) {
		t.Error("handler body differs from direct renderer output")
	}
}
