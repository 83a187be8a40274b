package core

// TotalNotes is the fixed length of every melody.
const TotalNotes = 10

// note is one speaker action: drive the line high for Duration ticks, then
// low, then stay quiet for Gap ticks.
type note struct {
	Duration uint32
	Gap      uint32
}

// melodyFunc computes the notes emitted at step i of a melody.
type melodyFunc func(i uint32) []note

// Melody step tables, indexed by melody id minus one. Durations are timer
// ticks; the ratios between note lengths are the contract.
var melodies = [MaxMelodyID]melodyFunc{
	// Melody 1: a single rising tone per step.
	func(i uint32) []note {
		return []note{{50000 + 5000*i, 50000}}
	},
	// Melody 2: three identical tones per step with short gaps.
	func(i uint32) []note {
		d := 100000 + 10000*i
		return []note{{d, 10000}, {d, 10000}, {d, 0}}
	},
	// Melody 3: four tones per step alternating short and long durations.
	func(i uint32) []note {
		lo := 10000 + 5000*i
		hi := 100000 + 5000*i
		return []note{{lo, 2000}, {hi, 10000}, {lo, 5000}, {hi, 1000}}
	},
}

// ToneSequencer plays the tone half of an alarm episode, one step per call.
// A cursor tracks progress through the melody; once it reaches TotalNotes
// the sequencer goes inactive and further Step calls are no-ops.
type ToneSequencer struct {
	pins  PinDriver
	board Board
	wait  func(ticks uint32)

	melody uint8
	index  uint32
	active bool
}

// NewToneSequencer creates a tone sequencer driving the board's speaker line.
func NewToneSequencer(pins PinDriver, board Board) *ToneSequencer {
	return &ToneSequencer{pins: pins, board: board, wait: WaitTicks}
}

// Start resets the cursor to the first step and selects the melody to play.
func (s *ToneSequencer) Start(melodyID uint8) {
	if melodyID < MinMelodyID || melodyID > MaxMelodyID {
		s.active = false
		return
	}
	s.melody = melodyID
	s.index = 0
	s.active = true
}

// Active reports whether the melody still has steps to play.
func (s *ToneSequencer) Active() bool {
	return s.active
}

// Step emits the notes of the current melody step and advances the cursor.
func (s *ToneSequencer) Step() {
	if !s.active {
		return
	}
	for _, n := range melodies[s.melody-1](s.index) {
		s.beep(n.Duration)
		if n.Gap > 0 {
			s.wait(n.Gap)
		}
	}
	s.index++
	if s.index >= TotalNotes {
		s.active = false
	}
}

// beep drives the speaker line high for the given number of ticks, then low.
// Drivers that can time pulses in hardware get handed the whole pulse.
func (s *ToneSequencer) beep(ticks uint32) {
	if p, ok := s.pins.(TonePulser); ok {
		if err := p.Pulse(s.board.Speaker, ticks); err == nil {
			// The pulse runs in hardware; hold the step pacing here.
			s.wait(ticks)
			return
		}
	}
	_ = s.pins.SetPin(s.board.Speaker, true)
	s.wait(ticks)
	_ = s.pins.SetPin(s.board.Speaker, false)
}
