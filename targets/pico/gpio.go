//go:build rp2040

package main

import (
	"machine"

	"wakebox/core"
)

// picoPinDriver implements the core pin interface on RP2040 GPIO.
// When a PIO speaker is attached, pulses on the speaker line are handed to
// the PIO state machine instead of being bit-banged.
type picoPinDriver struct {
	// Track configured pins to prevent conflicts
	configuredPins map[core.Pin]machine.Pin

	speaker    *PIOSpeaker
	speakerPin core.Pin
}

func newPicoPinDriver() *picoPinDriver {
	return &picoPinDriver{
		configuredPins: make(map[core.Pin]machine.Pin),
	}
}

// AttachSpeaker routes pulse requests for the given line to the PIO speaker.
func (d *picoPinDriver) AttachSpeaker(pin core.Pin, spk *PIOSpeaker) {
	d.speaker = spk
	d.speakerPin = pin
}

// ConfigureOutput configures a pin as a digital output
func (d *picoPinDriver) ConfigureOutput(pin core.Pin) error {
	if _, exists := d.configuredPins[pin]; exists {
		// Already configured, this is OK
		return nil
	}

	machinePin := machine.Pin(pin)
	machinePin.Configure(machine.PinConfig{Mode: machine.PinOutput})

	d.configuredPins[pin] = machinePin
	return nil
}

// SetPin sets the pin to high (true) or low (false)
func (d *picoPinDriver) SetPin(pin core.Pin, value bool) error {
	machinePin, exists := d.configuredPins[pin]
	if !exists {
		// Pin isn't configured - configure it first
		if err := d.ConfigureOutput(pin); err != nil {
			return err
		}
		machinePin = d.configuredPins[pin]
	}

	machinePin.Set(value)
	return nil
}

// GetPin reads the current pin state
func (d *picoPinDriver) GetPin(pin core.Pin) (bool, error) {
	machinePin, exists := d.configuredPins[pin]
	if !exists {
		return false, nil
	}
	return machinePin.Get(), nil
}

// Pulse drives the speaker line high for the given number of timer ticks
// using the PIO state machine. Lines without PIO backing report an error so
// the caller falls back to bit-banging.
func (d *picoPinDriver) Pulse(pin core.Pin, ticks uint32) error {
	if d.speaker == nil || pin != d.speakerPin {
		return core.Errorf(core.ErrInvalid, "no hardware pulse backend for pin %d", pin)
	}
	return d.speaker.Pulse(ticks)
}
