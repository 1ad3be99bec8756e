package display

import (
	"sync"
	"testing"
)

func TestDisplayLifecycle(t *testing.T) {
	d := New()

	if _, ok := d.Payload(); ok {
		t.Error("new display reports a payload as set")
	}
	if _, ok := d.Code(); ok {
		t.Error("new display reports a code as set")
	}

	d.SetPayload("X-HM://000000001ABCD")
	d.SetCode("000-00-001")

	payload, ok := d.Payload()
	if !ok || payload != "X-HM://000000001ABCD" {
		t.Errorf("Payload() = (%q, %v), want payload set", payload, ok)
	}
	code, ok := d.Code()
	if !ok || code != "000-00-001" {
		t.Errorf("Code() = (%q, %v), want code set", code, ok)
	}

	d.Clear()

	if payload, ok := d.Payload(); ok || payload != "" {
		t.Errorf("Payload() after Clear = (%q, %v), want unset", payload, ok)
	}
	if code, ok := d.Code(); ok || code != "" {
		t.Errorf("Code() after Clear = (%q, %v), want unset", code, ok)
	}
}

func TestDisplayConcurrentAccess(t *testing.T) {
	d := New()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			d.SetPayload("X-HM://000000001ABCD")
			d.Clear()
		}()
		go func() {
			defer wg.Done()
			d.Payload()
			d.Code()
		}()
	}
	wg.Wait()
}
