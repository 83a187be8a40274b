package core

import "testing"

// lightMask reads the indicator lines back from the fake driver as a bit
// pattern.
func lightMask(p *fakePins) uint8 {
	var mask uint8
	for n, pin := range testBoard.Lights {
		if p.levels[pin] {
			mask |= 1 << n
		}
	}
	return mask
}

func TestLightEffectPatterns(t *testing.T) {
	tests := []struct {
		name   string
		effect uint8
		// masks for the first eight states; the patterns repeat after that
		masks []uint8
	}{
		{"all blink", 1, []uint8{0xF, 0, 0xF, 0, 0xF, 0, 0xF, 0}},
		{"walking light", 2, []uint8{1, 2, 4, 8, 1, 2, 4, 8}},
		{"rotated walk", 3, []uint8{4, 8, 1, 2, 4, 8, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pins := newFakePins()
			s := NewLightSequencer(pins, testBoard)
			s.wait = func(uint32) {}

			s.Start(tt.effect)
			for i, want := range tt.masks {
				s.Step()
				if got := lightMask(pins); got != want {
					t.Errorf("state %d mask = %04b, want %04b", i, got, want)
				}
			}
		})
	}
}

func TestLightEffectRunsFixedLength(t *testing.T) {
	pins := newFakePins()
	s := NewLightSequencer(pins, testBoard)
	var waits []uint32
	s.wait = recordingWait(&waits)

	s.Start(2)
	for i := 0; i < TotalLightStates; i++ {
		if !s.Active() {
			t.Fatalf("sequencer inactive after %d states", i)
		}
		s.Step()
	}
	if s.Active() {
		t.Error("sequencer still active after full effect")
	}
	if len(waits) != TotalLightStates {
		t.Fatalf("hold count = %d, want %d", len(waits), TotalLightStates)
	}
	for i, w := range waits {
		if w != lightHoldTicks {
			t.Errorf("hold %d = %d ticks, want %d", i, w, lightHoldTicks)
		}
	}
}

func TestStartRejectsBadEffect(t *testing.T) {
	pins := newFakePins()
	s := NewLightSequencer(pins, testBoard)
	s.wait = func(uint32) {}

	for _, id := range []uint8{0, 4} {
		s.Start(id)
		if s.Active() {
			t.Errorf("Start(%d) activated the sequencer", id)
		}
	}
}

func TestAllOffClearsEveryLine(t *testing.T) {
	pins := newFakePins()
	s := NewLightSequencer(pins, testBoard)
	s.wait = func(uint32) {}

	s.Start(1)
	s.Step() // all lines on
	if got := lightMask(pins); got != 0xF {
		t.Fatalf("mask after first state = %04b, want 1111", got)
	}
	s.AllOff()
	if got := lightMask(pins); got != 0 {
		t.Errorf("mask after AllOff = %04b, want 0", got)
	}
}
