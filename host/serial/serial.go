// Package serial provides the byte channel between the host runner and the
// alarm console: a native serial device, or local stdio when running the
// device loop without hardware.
package serial

import "io"

// Port is the byte channel the console runs over.
type Port interface {
	io.ReadWriteCloser
}

// Config holds serial device settings.
type Config struct {
	// Device path (e.g. "/dev/ttyACM0").
	Device string

	// Baud rate (ignored for USB CDC).
	Baud int

	// ReadTimeout in milliseconds; 0 blocks.
	ReadTimeout int
}

// DefaultConfig returns the settings used for the alarm console.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 100,
	}
}
