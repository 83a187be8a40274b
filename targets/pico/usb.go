//go:build rp2040

package main

import (
	"machine"
	"time"
)

// InitUSB initializes USB serial communication
// TinyGo automatically sets up USB CDC-ACM on RP2040
func InitUSB() {
	// Configure machine.Serial (which is USB CDC on RP2040)
	err := machine.Serial.Configure(machine.UARTConfig{})
	if err != nil {
		return
	}
}

// usbPort adapts the USB CDC console to the io.ReadWriter the console
// package expects.
type usbPort struct{}

// Read fills b from the USB receive buffer. It blocks until at least one
// byte arrives so the console reader goroutine does not spin.
func (usbPort) Read(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	for machine.Serial.Buffered() == 0 {
		time.Sleep(100 * time.Microsecond)
	}
	n := 0
	for n < len(b) && machine.Serial.Buffered() > 0 {
		c, err := machine.Serial.ReadByte()
		if err != nil {
			if n > 0 {
				return n, nil
			}
			return 0, err
		}
		b[n] = c
		n++
	}
	return n, nil
}

// Write sends b over USB CDC.
func (usbPort) Write(b []byte) (int, error) {
	return machine.Serial.Write(b)
}
