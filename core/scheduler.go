package core

import (
	"fmt"
	"sync"
	"time"
)

// Progress tracks the in-flight repeat run. It is reset whenever the alarm
// is disabled, completes a run, or a new alarm time is set.
type Progress struct {
	// Attempts counts the wake attempts already fired in this run.
	Attempts uint32

	// NextMatch is the match time armed for the next attempt.
	NextMatch time.Time
}

// Scheduler owns the alarm configuration and drives playback on RTC match
// events.
//
// OnTimeMatch runs in the RTC match context while every other method runs
// on the foreground command path, so all shared state sits behind mu.
// Playback itself runs outside the lock: disabling the alarm mid-episode
// does not interrupt the running episode, it only stops the next evaluation
// from re-arming.
type Scheduler struct {
	mu       sync.Mutex
	cfg      Config
	progress Progress

	tone   *ToneSequencer
	light  *LightSequencer
	notify func(string)
}

// NewScheduler creates a scheduler with the power-on configuration.
// notify receives human-readable status lines for the serial console.
func NewScheduler(tone *ToneSequencer, light *LightSequencer, notify func(string)) *Scheduler {
	if notify == nil {
		notify = func(string) {}
	}
	return &Scheduler{
		cfg:    DefaultConfig(),
		tone:   tone,
		light:  light,
		notify: notify,
	}
}

// OnTimeMatch handles an RTC time-match event.
//
// A run with repeat count n fires n+1 playback episodes: the firing at the
// alarm time plus one per configured repeat, spaced by the repeat interval.
// Each non-final firing re-arms the match register for the next attempt;
// the final firing plays without re-arming and resets the run. Playback for
// an episode runs to completion before the handler returns.
func (s *Scheduler) OnTimeMatch() {
	rtc := MustRTC()

	s.mu.Lock()
	cfg := s.cfg

	if !cfg.Enabled {
		s.progress = Progress{}
		s.mu.Unlock()
		_ = rtc.ClearMatch()
		DebugPrintln("match while disabled, cleared")
		return
	}

	if s.progress.Attempts < cfg.RepeatCount {
		attempt := s.progress.Attempts + 1
		next := cfg.AlarmTime.Add(time.Duration(attempt) * cfg.Interval())
		s.progress = Progress{Attempts: attempt, NextMatch: next}
		s.mu.Unlock()

		// Report before re-arming so the user sees the attempt even if the
		// register write fails.
		s.notify(fmt.Sprintf("Wake attempt %d, next alarm: %s", attempt, FormatTime(next)))
		_ = rtc.Disable()
		_ = rtc.SetMatch(next)
		_ = rtc.Enable()
	} else {
		s.progress = Progress{}
		s.mu.Unlock()

		s.notify("Alarm finished.")
		_ = rtc.ClearMatch()
	}

	s.playEpisode(cfg)
}

// playEpisode runs one full melody and light cycle to completion, then
// forces the indicator lines off.
func (s *Scheduler) playEpisode(cfg Config) {
	s.tone.Start(cfg.MelodyID)
	s.light.Start(cfg.LightEffectID)
	for s.tone.Active() && s.light.Active() {
		s.tone.Step()
		s.light.Step()
	}
	s.light.AllOff()
}

// Configure validates and atomically replaces the whole configuration,
// resetting any repeat run in progress.
func (s *Scheduler) Configure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	s.cfg = cfg
	s.progress = Progress{}
	s.mu.Unlock()
	return nil
}

// SetEnabled toggles the alarm. Disabling cancels any in-progress repeat
// run at its next match evaluation.
func (s *Scheduler) SetEnabled(on bool) {
	s.mu.Lock()
	s.cfg.Enabled = on
	s.mu.Unlock()
}

// SetAlarmTime stores a new alarm time, resets repeat progress, and arms
// the hardware match register.
func (s *Scheduler) SetAlarmTime(t time.Time) error {
	s.mu.Lock()
	s.cfg.AlarmTime = t
	s.progress = Progress{}
	s.mu.Unlock()

	rtc := MustRTC()
	if err := rtc.Disable(); err != nil {
		return err
	}
	if err := rtc.SetMatch(t); err != nil {
		return err
	}
	return rtc.Enable()
}

// SetMelody selects the melody played during alarm episodes.
func (s *Scheduler) SetMelody(id uint8) error {
	if id < MinMelodyID || id > MaxMelodyID {
		return Errorf(ErrRange, "melody id %d not in %d..%d", id, MinMelodyID, MaxMelodyID)
	}
	s.mu.Lock()
	s.cfg.MelodyID = id
	s.mu.Unlock()
	return nil
}

// SetLightEffect selects the light effect shown during alarm episodes.
func (s *Scheduler) SetLightEffect(id uint8) error {
	if id < MinLightEffectID || id > MaxLightEffectID {
		return Errorf(ErrRange, "light effect id %d not in %d..%d", id, MinLightEffectID, MaxLightEffectID)
	}
	s.mu.Lock()
	s.cfg.LightEffectID = id
	s.mu.Unlock()
	return nil
}

// SetRepeat updates the repeat policy. Both values are validated before
// either is applied.
func (s *Scheduler) SetRepeat(count, intervalSeconds uint32) error {
	if intervalSeconds == 0 {
		return Errorf(ErrRange, "repeat interval must be greater than zero")
	}
	s.mu.Lock()
	s.cfg.RepeatCount = count
	s.cfg.IntervalSeconds = intervalSeconds
	s.mu.Unlock()
	return nil
}

// Snapshot returns a copy of the configuration and repeat progress for
// status display.
func (s *Scheduler) Snapshot() (Config, Progress) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg, s.progress
}
