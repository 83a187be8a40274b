//go:build rp2040

package main

// PIO speaker backend. The state machine times speaker pulses in hardware
// so melody note lengths do not jitter with foreground load.

import (
	"machine"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"

	"wakebox/core"
)

// PIO program for speaker pulse generation
// Command word format:
//
//	Bits 0-31: pulse width in PIO cycles
//
// Program flow:
//  1. Pull 32-bit pulse width from FIFO
//  2. Extract width into X register
//  3. Drive the speaker line high
//  4. Count X down, one cycle per iteration
//  5. Drive the speaker line low
//
// buildSpeakerProgram creates the pulse PIO program using AssemblerV0
func buildSpeakerProgram() []uint16 {
	asm := rp2pio.AssemblerV0{SidesetBits: 0}
	return []uint16{
		// .wrap_target
		asm.Pull(false, true).Encode(),          // 0: pull block
		asm.Out(rp2pio.OutDestX, 32).Encode(),   // 1: out x, 32 (pulse width)
		asm.Set(rp2pio.SetDestPins, 1).Encode(), // 2: set pins, 1 (speaker high)
		// hold_loop:
		asm.Jmp(3, rp2pio.JmpXNZeroDec).Encode(), // 3: jmp x--, 3
		asm.Set(rp2pio.SetDestPins, 0).Encode(),  // 4: set pins, 0 (speaker low)
		// .wrap
	}
}

const speakerPIOOrigin = 0 // Load at offset 0 for correct jump addresses

// Clock divider: 125MHz / (10 + 107/256) ~= 12MHz, so one hold_loop
// iteration is one tick of core.TickFreq.
const (
	speakerClkDivInt  = 10
	speakerClkDivFrac = 107
)

// PIOSpeaker drives the speaker line from a PIO state machine.
type PIOSpeaker struct {
	pio *rp2pio.PIO
	sm  rp2pio.StateMachine
	pin machine.Pin
	ok  bool
}

// NewPIOSpeaker creates a speaker backend on the given PIO block and state
// machine number.
func NewPIOSpeaker(pioNum, smNum uint8) *PIOSpeaker {
	pioHW := rp2pio.PIO0
	if pioNum != 0 {
		pioHW = rp2pio.PIO1
	}
	return &PIOSpeaker{
		pio: pioHW,
		sm:  pioHW.StateMachine(smNum),
	}
}

// Init claims the state machine, loads the pulse program and hands the
// speaker pin over to PIO control.
func (s *PIOSpeaker) Init(pin core.Pin) error {
	s.pin = machine.Pin(pin)

	s.sm.TryClaim()

	program := buildSpeakerProgram()
	offset, err := s.pio.AddProgram(program, speakerPIOOrigin)
	if err != nil {
		return err
	}

	s.pin.Configure(machine.PinConfig{Mode: s.pio.PinMode()})

	cfg := rp2pio.DefaultStateMachineConfig()
	cfg.SetSetPins(s.pin, 1)
	// Shift right, autopull disabled (the program pulls explicitly), 32-bit threshold
	cfg.SetOutShift(true, false, 32)
	cfg.SetWrap(offset+uint8(len(program))-1, offset)
	cfg.SetClkDivIntFrac(speakerClkDivInt, speakerClkDivFrac)

	s.sm.Init(offset, cfg)

	// Pin direction must be set after Init
	s.sm.SetPindirsConsecutive(s.pin, 1, true)
	s.sm.SetPinsConsecutive(s.pin, 1, false)

	s.sm.SetEnabled(true)
	s.ok = true
	return nil
}

// Pulse queues one speaker pulse of the given width in timer ticks.
func (s *PIOSpeaker) Pulse(ticks uint32) error {
	if !s.ok {
		return core.Errorf(core.ErrInternal, "PIO speaker not initialized")
	}
	for s.sm.IsTxFIFOFull() {
		// Busy wait - at most one queued pulse ahead
	}
	s.sm.TxPut(ticks)
	return nil
}

// Stop halts the state machine and clears any queued pulses.
func (s *PIOSpeaker) Stop() {
	if !s.ok {
		return
	}
	s.sm.SetEnabled(false)
	s.sm.ClearFIFOs()
	s.sm.Restart()
	s.sm.SetEnabled(true)
}
