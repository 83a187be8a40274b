//go:build rp2040

package main

import (
	"sync"
	"time"

	"machine"

	"tinygo.org/x/drivers/ds3231"

	"wakebox/core"
)

// ds3231RTC adapts a DS3231 clock chip on I2C0 to the core RTC interface.
//
// The chip's own alarm registers only match down to day-of-month, so the
// match register lives here in memory and the main loop calls Poll to
// compare it against the chip time once per pass. One-second resolution is
// plenty for an alarm clock.
type ds3231RTC struct {
	dev ds3231.Device

	mu       sync.Mutex
	match    time.Time
	matchSet bool
	enabled  bool
	onMatch  func()
}

// newDS3231 configures I2C0 on GP20/GP21 and wires up the clock chip.
func newDS3231() (*ds3231RTC, error) {
	err := machine.I2C0.Configure(machine.I2CConfig{
		SDA: machine.GP20,
		SCL: machine.GP21,
	})
	if err != nil {
		return nil, err
	}

	dev := ds3231.New(machine.I2C0)
	_ = dev.Configure()

	return &ds3231RTC{dev: dev, enabled: true}, nil
}

var _ core.RTCDriver = (*ds3231RTC)(nil)

// Now reads the current time from the chip.
func (r *ds3231RTC) Now() (time.Time, error) {
	return r.dev.ReadTime()
}

// SetTime writes the wall time to the chip.
func (r *ds3231RTC) SetTime(t time.Time) error {
	return r.dev.SetTime(t)
}

// SetMatch arms the in-memory match register.
func (r *ds3231RTC) SetMatch(t time.Time) error {
	r.mu.Lock()
	r.match = t
	r.matchSet = true
	r.mu.Unlock()
	return nil
}

// ClearMatch disarms the match register.
func (r *ds3231RTC) ClearMatch() error {
	r.mu.Lock()
	r.matchSet = false
	r.mu.Unlock()
	return nil
}

// OnMatch installs the callback fired when the chip time reaches the match.
func (r *ds3231RTC) OnMatch(cb func()) {
	r.mu.Lock()
	r.onMatch = cb
	r.mu.Unlock()
}

// Enable allows match events to fire.
func (r *ds3231RTC) Enable() error {
	r.mu.Lock()
	r.enabled = true
	r.mu.Unlock()
	return nil
}

// Disable suppresses match events without clearing the match register.
func (r *ds3231RTC) Disable() error {
	r.mu.Lock()
	r.enabled = false
	r.mu.Unlock()
	return nil
}

// Poll compares the chip time against the match register and fires the
// callback when it has been reached. The match is cleared before the
// callback runs so the callback can safely re-arm it.
func (r *ds3231RTC) Poll() {
	r.mu.Lock()
	armed := r.enabled && r.matchSet
	match := r.match
	cb := r.onMatch
	r.mu.Unlock()
	if !armed || cb == nil {
		return
	}

	now, err := r.dev.ReadTime()
	if err != nil {
		return
	}
	if now.Before(match) {
		return
	}

	r.mu.Lock()
	// Re-check under the lock; a foreground command may have moved the match
	// while we were reading the chip.
	if !r.enabled || !r.matchSet || r.match != match {
		r.mu.Unlock()
		return
	}
	r.matchSet = false
	r.mu.Unlock()

	cb()
}
