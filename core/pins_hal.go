package core

// Pin identifies a discrete output line.
type Pin uint32

// PinDriver is the abstract output-line interface used by the sequencers.
// Platform-specific implementations handle actual hardware control.
type PinDriver interface {
	// ConfigureOutput configures a line as a digital output.
	ConfigureOutput(pin Pin) error

	// SetPin drives the line high (true) or low (false).
	SetPin(pin Pin, high bool) error

	// GetPin reads the current line state.
	GetPin(pin Pin) (bool, error)
}

// TonePulser is an optional PinDriver extension for hardware that can time
// speaker pulses itself (e.g. PIO). When available, the tone sequencer hands
// the whole pulse to the driver instead of bit-banging the line.
type TonePulser interface {
	// Pulse drives the line high for the given number of timer ticks, then
	// low. May return before the pulse completes.
	Pulse(pin Pin, ticks uint32) error
}

// Global singleton used by core code.
var pinDriver PinDriver

// SetPinDriver is called by target-specific code to register its driver.
func SetPinDriver(d PinDriver) {
	pinDriver = d
}

// MustPins returns the configured driver or panics if missing.
func MustPins() PinDriver {
	if pinDriver == nil {
		panic("pin driver not configured")
	}
	return pinDriver
}

// NumLights is the number of indicator lines on the board, addressable
// individually or as a bit pattern.
const NumLights = 4

// Board names the output lines of the device.
type Board struct {
	Speaker Pin
	Lights  [NumLights]Pin
}

// ConfigureOutputs configures every board line as an output.
func (b Board) ConfigureOutputs(pins PinDriver) error {
	if err := pins.ConfigureOutput(b.Speaker); err != nil {
		return err
	}
	for _, pin := range b.Lights {
		if err := pins.ConfigureOutput(pin); err != nil {
			return err
		}
	}
	return nil
}
