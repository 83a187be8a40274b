package core

import "time"

// Valid melody and light effect identifier ranges.
const (
	MinMelodyID      = 1
	MaxMelodyID      = 3
	MinLightEffectID = 1
	MaxLightEffectID = 3
)

// Config is the alarm configuration. It is owned by the Scheduler and
// mutated only through its methods; everything lives in memory for the
// device's uptime.
type Config struct {
	// AlarmTime is the first match time of an alarm cycle. Zero means no
	// alarm has been set yet.
	AlarmTime time.Time

	Enabled bool

	// RepeatCount is the number of additional wake attempts after the
	// first firing.
	RepeatCount uint32

	// IntervalSeconds spaces the wake attempts.
	IntervalSeconds uint32

	MelodyID      uint8
	LightEffectID uint8
}

// DefaultConfig mirrors the device's power-on settings.
func DefaultConfig() Config {
	return Config{
		RepeatCount:     5,
		IntervalSeconds: 5,
		MelodyID:        1,
		LightEffectID:   1,
	}
}

// Interval returns the repeat interval as a duration.
func (c Config) Interval() time.Duration {
	return time.Duration(c.IntervalSeconds) * time.Second
}

// Validate checks the configuration invariants: melody and light effect ids
// stay in their enumerated range, and the repeat interval is positive
// whenever repeats are configured.
func (c Config) Validate() error {
	switch {
	case c.MelodyID < MinMelodyID || c.MelodyID > MaxMelodyID:
		return Errorf(ErrRange, "melody id %d not in %d..%d", c.MelodyID, MinMelodyID, MaxMelodyID)
	case c.LightEffectID < MinLightEffectID || c.LightEffectID > MaxLightEffectID:
		return Errorf(ErrRange, "light effect id %d not in %d..%d", c.LightEffectID, MinLightEffectID, MaxLightEffectID)
	case c.RepeatCount > 0 && c.IntervalSeconds == 0:
		return Errorf(ErrRange, "repeat interval must be greater than zero")
	}
	return nil
}
