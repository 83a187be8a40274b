// Package sim provides in-memory stand-ins for the device hardware: a
// simulated real-time clock and a recording pin board. The host runner uses
// them to drive the full control core without a board attached; tests use
// them for deterministic scheduling checks.
package sim

import (
	"sync"
	"time"

	"wakebox/core"
)

// RTC simulates the hardware alarm-clock capability on top of the host
// clock. The device time is the host time plus a settable offset, so
// setting the clock never disturbs timer arithmetic. The match callback
// fires from a timer goroutine, which stands in for the interrupt context
// of a real RTC peripheral.
type RTC struct {
	// NowFunc supplies host time; tests swap it for a fixed clock.
	NowFunc func() time.Time

	mu      sync.Mutex
	offset  time.Duration
	match   time.Time
	enabled bool
	onMatch func()
	timer   *time.Timer
}

// NewRTC creates an enabled simulated clock tracking host time.
func NewRTC() *RTC {
	return &RTC{
		NowFunc: time.Now,
		enabled: true,
	}
}

var _ core.RTCDriver = (*RTC)(nil)

// Now returns the simulated device time. The device keeps UTC like a real
// RTC chip, regardless of the host zone behind NowFunc.
func (r *RTC) Now() (time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.now().UTC(), nil
}

func (r *RTC) now() time.Time {
	return r.NowFunc().Add(r.offset)
}

// SetTime moves the device clock to t by adjusting the offset and re-arms
// the match timer against the new timeline.
func (r *RTC) SetTime(t time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.offset = t.Sub(r.NowFunc())
	r.rearmLocked()
	return nil
}

// SetMatch arms the match register to fire at t.
func (r *RTC) SetMatch(t time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.match = t
	r.rearmLocked()
	return nil
}

// ClearMatch disarms the match register.
func (r *RTC) ClearMatch() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.match = time.Time{}
	r.stopLocked()
	return nil
}

// OnMatch registers the match callback.
func (r *RTC) OnMatch(fire func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onMatch = fire
}

// Enable resumes match evaluation.
func (r *RTC) Enable() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enabled = true
	r.rearmLocked()
	return nil
}

// Disable suspends match evaluation; the pending match time is kept.
func (r *RTC) Disable() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enabled = false
	r.stopLocked()
	return nil
}

func (r *RTC) rearmLocked() {
	r.stopLocked()
	if !r.enabled || r.match.IsZero() {
		return
	}
	d := r.match.Sub(r.now())
	if d < 0 {
		d = 0
	}
	r.timer = time.AfterFunc(d, r.fire)
}

func (r *RTC) stopLocked() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

// fire re-checks the match against device time to absorb timer drift, then
// invokes the callback outside the lock.
func (r *RTC) fire() {
	r.mu.Lock()
	if !r.enabled || r.match.IsZero() {
		r.mu.Unlock()
		return
	}
	if remaining := r.match.Sub(r.now()); remaining > 0 {
		r.timer = time.AfterFunc(remaining, r.fire)
		r.mu.Unlock()
		return
	}
	cb := r.onMatch
	r.mu.Unlock()
	if cb != nil {
		cb()
	}
}
