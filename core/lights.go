package core

// TotalLightStates is the fixed length of every light effect.
const TotalLightStates = 20

// lightHoldTicks is how long each light state is held before the cursor
// advances.
const lightHoldTicks = 200000

const lightMaskAll = 1<<NumLights - 1

// lightFunc computes the indicator mask shown at step i; bit n lights line n.
type lightFunc func(i uint32) uint8

// Light effect tables, indexed by effect id minus one.
var lightEffects = [MaxLightEffectID]lightFunc{
	// Effect 1: all lines toggle on and off together.
	func(i uint32) uint8 {
		if i%2 == 0 {
			return lightMaskAll
		}
		return 0
	},
	// Effect 2: a single lit line walks through the full set.
	func(i uint32) uint8 {
		return 1 << (i % NumLights)
	},
	// Effect 3: a single lit line from the rotated subset, period four.
	func(i uint32) uint8 {
		return 1 << ((i%4 + 2) % NumLights)
	},
}

// LightSequencer plays the light half of an alarm episode, one state per
// call. The cursor goes inactive after TotalLightStates steps.
type LightSequencer struct {
	pins  PinDriver
	board Board
	wait  func(ticks uint32)

	effect uint8
	index  uint32
	active bool
}

// NewLightSequencer creates a light sequencer driving the board's indicator
// lines.
func NewLightSequencer(pins PinDriver, board Board) *LightSequencer {
	return &LightSequencer{pins: pins, board: board, wait: WaitTicks}
}

// Start resets the cursor to the first state and selects the effect to show.
func (s *LightSequencer) Start(effectID uint8) {
	if effectID < MinLightEffectID || effectID > MaxLightEffectID {
		s.active = false
		return
	}
	s.effect = effectID
	s.index = 0
	s.active = true
}

// Active reports whether the effect still has states to show.
func (s *LightSequencer) Active() bool {
	return s.active
}

// Step applies the current light state, holds it, and advances the cursor.
func (s *LightSequencer) Step() {
	if !s.active {
		return
	}
	s.apply(lightEffects[s.effect-1](s.index))
	s.wait(lightHoldTicks)
	s.index++
	if s.index >= TotalLightStates {
		s.active = false
	}
}

// AllOff clears every indicator line. Called at the end of an episode.
func (s *LightSequencer) AllOff() {
	s.apply(0)
}

func (s *LightSequencer) apply(mask uint8) {
	for n, pin := range s.board.Lights {
		_ = s.pins.SetPin(pin, mask&(1<<n) != 0)
	}
}
