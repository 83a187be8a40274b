package core

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

// scriptTerm is a Terminal fed from a canned list of prompt answers, with
// all output captured for inspection.
type scriptTerm struct {
	t     *testing.T
	lines []string
	out   strings.Builder
}

func (s *scriptTerm) Print(str string) { s.out.WriteString(str) }

func (s *scriptTerm) Printf(format string, args ...any) {
	fmt.Fprintf(&s.out, format, args...)
}

func (s *scriptTerm) ReadLine() string {
	if len(s.lines) == 0 {
		s.t.Fatal("menu asked for input but the script is empty")
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line
}

func newTestMenu(t *testing.T, rtc *fakeRTC, answers ...string) (*Menu, *scriptTerm, *Scheduler) {
	t.Helper()
	pins := newFakePins()
	sched, _ := newTestScheduler(t, rtc, pins)
	term := &scriptTerm{t: t, lines: answers}
	return NewMenu(term, sched), term, sched
}

func TestMenuSetAlarmThenStatus(t *testing.T) {
	rtc := &fakeRTC{now: time.Date(2026, 9, 1, 6, 0, 0, 0, time.UTC)}
	menu, term, sched := newTestMenu(t, rtc, "2026-09-01 06:30:00")

	menu.HandleLine("2")

	if !strings.Contains(term.out.String(), "Alarm has been set.") {
		t.Fatalf("output missing confirmation: %q", term.out.String())
	}
	cfg, _ := sched.Snapshot()
	want := time.Date(2026, 9, 1, 6, 30, 0, 0, time.UTC)
	if !cfg.AlarmTime.Equal(want) {
		t.Errorf("alarm time = %v, want %v", cfg.AlarmTime, want)
	}
	if len(rtc.matches) != 1 || !rtc.matches[0].Equal(want) {
		t.Errorf("match writes = %v, want [%v]", rtc.matches, want)
	}

	term.out.Reset()
	menu.HandleLine("7")
	status := term.out.String()
	if !strings.Contains(status, "Alarm time: 2026-09-01 06:30:00") {
		t.Errorf("status missing alarm time: %q", status)
	}
	if !strings.Contains(status, "Current time: 2026-09-01 06:00:00") {
		t.Errorf("status missing current time: %q", status)
	}
}

func TestMenuSetClock(t *testing.T) {
	rtc := &fakeRTC{}
	menu, term, _ := newTestMenu(t, rtc, "2026-09-01 12:00:00")

	menu.HandleLine("1")

	if !strings.Contains(term.out.String(), "Clock has been set.") {
		t.Fatalf("output missing confirmation: %q", term.out.String())
	}
	want := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	if len(rtc.setTimes) != 1 || !rtc.setTimes[0].Equal(want) {
		t.Errorf("time writes = %v, want [%v]", rtc.setTimes, want)
	}
	if !rtc.enabled {
		t.Error("RTC left disabled after setting the clock")
	}
}

func TestMenuBadDateLeavesClockAlone(t *testing.T) {
	rtc := &fakeRTC{}
	menu, term, _ := newTestMenu(t, rtc, "notadate")

	menu.HandleLine("1")

	if !strings.Contains(term.out.String(), "Clock was not set.") {
		t.Errorf("output missing failure notice: %q", term.out.String())
	}
	if len(rtc.setTimes) != 0 {
		t.Errorf("bad input still wrote the clock: %v", rtc.setTimes)
	}
}

func TestMenuToggleAlarm(t *testing.T) {
	rtc := &fakeRTC{}
	menu, _, sched := newTestMenu(t, rtc, "1", "0", "5")

	menu.HandleLine("3")
	if cfg, _ := sched.Snapshot(); !cfg.Enabled {
		t.Error("alarm not enabled after choosing 1")
	}

	menu.HandleLine("3")
	if cfg, _ := sched.Snapshot(); cfg.Enabled {
		t.Error("alarm not disabled after choosing 0")
	}

	// A value other than 0/1 changes nothing.
	menu.HandleLine("3")
	if cfg, _ := sched.Snapshot(); cfg.Enabled {
		t.Error("out-of-range toggle changed the alarm state")
	}
}

func TestMenuChooseMelody(t *testing.T) {
	rtc := &fakeRTC{}
	menu, term, sched := newTestMenu(t, rtc, "3", "9")

	menu.HandleLine("4")
	if cfg, _ := sched.Snapshot(); cfg.MelodyID != 3 {
		t.Errorf("melody = %d, want 3", cfg.MelodyID)
	}

	term.out.Reset()
	menu.HandleLine("4")
	if !strings.Contains(term.out.String(), "Invalid choice") {
		t.Errorf("output missing rejection: %q", term.out.String())
	}
	if cfg, _ := sched.Snapshot(); cfg.MelodyID != 3 {
		t.Errorf("rejected choice changed melody to %d", cfg.MelodyID)
	}
}

func TestMenuRepeatAbortsWholeOperation(t *testing.T) {
	rtc := &fakeRTC{}
	// Valid count followed by an invalid interval: neither value sticks.
	menu, term, sched := newTestMenu(t, rtc, "9", "0")

	before, _ := sched.Snapshot()
	menu.HandleLine("6")

	if !strings.Contains(term.out.String(), "Invalid interval") {
		t.Errorf("output missing rejection: %q", term.out.String())
	}
	after, _ := sched.Snapshot()
	if after.RepeatCount != before.RepeatCount || after.IntervalSeconds != before.IntervalSeconds {
		t.Errorf("aborted operation changed repeat config to %d/%d",
			after.RepeatCount, after.IntervalSeconds)
	}
}

func TestMenuRepeatApplied(t *testing.T) {
	rtc := &fakeRTC{}
	menu, _, sched := newTestMenu(t, rtc, "2", "300")

	menu.HandleLine("6")

	cfg, _ := sched.Snapshot()
	if cfg.RepeatCount != 2 || cfg.IntervalSeconds != 300 {
		t.Errorf("repeat config = %d/%d, want 2/300", cfg.RepeatCount, cfg.IntervalSeconds)
	}
}

func TestMenuUnknownSelectionRedisplays(t *testing.T) {
	rtc := &fakeRTC{}
	for _, line := range []string{"", "abc", "8", "0", "  "} {
		menu, term, sched := newTestMenu(t, rtc)
		before, _ := sched.Snapshot()

		menu.HandleLine(line)

		if !strings.Contains(term.out.String(), "Digital Alarm Clock") {
			t.Errorf("HandleLine(%q) did not redisplay the menu", line)
		}
		after, _ := sched.Snapshot()
		if after != before {
			t.Errorf("HandleLine(%q) changed state", line)
		}
	}
}
