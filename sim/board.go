package sim

import (
	"sync"

	"wakebox/core"
)

// Board is a recording pin driver. It tracks line levels and rising edges
// so tests can count speaker pulses and light states, and the host runner
// can render indicator changes.
type Board struct {
	// OnChange, if set, is called after every line write with the pin and
	// its new level.
	OnChange func(pin core.Pin, high bool)

	mu     sync.Mutex
	levels map[core.Pin]bool
	rises  map[core.Pin]int
}

// NewBoard creates an empty recording board.
func NewBoard() *Board {
	return &Board{
		levels: make(map[core.Pin]bool),
		rises:  make(map[core.Pin]int),
	}
}

var _ core.PinDriver = (*Board)(nil)

// ConfigureOutput registers the line; reconfiguring is harmless.
func (b *Board) ConfigureOutput(pin core.Pin) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.levels[pin]; !ok {
		b.levels[pin] = false
	}
	return nil
}

// SetPin records the new line level.
func (b *Board) SetPin(pin core.Pin, high bool) error {
	b.mu.Lock()
	if high && !b.levels[pin] {
		b.rises[pin]++
	}
	b.levels[pin] = high
	cb := b.OnChange
	b.mu.Unlock()

	if cb != nil {
		cb(pin, high)
	}
	return nil
}

// GetPin returns the recorded line level.
func (b *Board) GetPin(pin core.Pin) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.levels[pin], nil
}

// Rises returns the number of low-to-high transitions seen on the line.
func (b *Board) Rises(pin core.Pin) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rises[pin]
}

// Levels returns a copy of the current line levels.
func (b *Board) Levels() map[core.Pin]bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(map[core.Pin]bool, len(b.levels))
	for pin, high := range b.levels {
		out[pin] = high
	}
	return out
}
