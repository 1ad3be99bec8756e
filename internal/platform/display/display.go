package display

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Display holds the transient setup state published by the pairing
// runtime: the payload URI the badge is rendered from and the code shown
// on physical displays. Nothing here is persisted; an unset payload means
// the accessory is already paired.
type Display struct {
	mu         sync.RWMutex
	payload    string
	payloadSet bool
	code       string
	codeSet    bool
}

func New() *Display {
	return &Display{}
}

// SetPayload publishes a new setup payload for badge rendering.
func (d *Display) SetPayload(payload string) {
	d.mu.Lock()
	d.payload = payload
	d.payloadSet = true
	d.mu.Unlock()

	log.Info().Str("payload", payload).Msg("setup payload for QR code display updated")
}

// SetCode publishes the setup code string shown on displays.
func (d *Display) SetCode(code string) {
	d.mu.Lock()
	d.code = code
	d.codeSet = true
	d.mu.Unlock()

	log.Info().Str("code", code).Msg("setup code for display updated")
}

// Clear invalidates both the payload and the code, typically after a
// successful pairing.
func (d *Display) Clear() {
	d.mu.Lock()
	d.payload = ""
	d.payloadSet = false
	d.code = ""
	d.codeSet = false
	d.mu.Unlock()

	log.Info().Msg("setup payload for display invalidated")
}

// Payload returns the current setup payload and whether one is set.
func (d *Display) Payload() (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.payload, d.payloadSet
}

// Code returns the current setup code string and whether one is set.
func (d *Display) Code() (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.code, d.codeSet
}
