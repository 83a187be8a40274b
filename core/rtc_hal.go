package core

import "time"

// RTCDriver is the abstract alarm-clock capability that core code uses.
// Platform-specific implementations handle the actual RTC peripheral.
//
// Enable and Disable bracket any time or match register write, mirroring
// RTC peripherals that require the counter to be halted during updates.
// The match callback may run in its own execution context; it is the only
// path that fires alarms.
type RTCDriver interface {
	// Now returns the current wall-clock time.
	Now() (time.Time, error)

	// SetTime writes the current time register.
	SetTime(t time.Time) error

	// SetMatch arms the match register to fire at t.
	SetMatch(t time.Time) error

	// ClearMatch disarms the match register.
	ClearMatch() error

	// OnMatch registers the callback invoked when the current time reaches
	// the armed match time.
	OnMatch(fire func())

	// Enable resumes the clock after a register write.
	Enable() error

	// Disable halts the clock for a register write.
	Disable() error
}

// Global singleton used by core code.
var rtcDriver RTCDriver

// SetRTCDriver is called by target-specific code to register its driver.
func SetRTCDriver(d RTCDriver) {
	rtcDriver = d
}

// MustRTC returns the configured driver or panics if missing.
func MustRTC() RTCDriver {
	if rtcDriver == nil {
		panic("RTC driver not configured")
	}
	return rtcDriver
}
