package core

import (
	"strconv"
	"strings"
	"time"

	"wakebox/console"
)

// Terminal is the line-oriented user channel the menu talks to. The console
// package provides the serial implementation; tests script their own.
type Terminal interface {
	Print(s string)
	Printf(format string, args ...any)

	// ReadLine blocks until the user completes a line. Prompt exchanges are
	// user-paced, so blocking the foreground loop here is intended.
	ReadLine() string
}

// Menu interprets completed command lines as menu selections and drives the
// scheduler and clock accordingly. Unrecognized or non-numeric input falls
// through to redisplaying the menu with no state change.
type Menu struct {
	term  Terminal
	sched *Scheduler
}

// NewMenu creates the command dispatcher for the given terminal and
// scheduler.
func NewMenu(term Terminal, sched *Scheduler) *Menu {
	return &Menu{term: term, sched: sched}
}

// HandleLine runs one menu selection to completion and redisplays the menu.
// Every failure is local: the operation aborts and the menu comes back.
func (m *Menu) HandleLine(line string) {
	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		choice = 0
	}
	switch choice {
	case 1:
		m.setClock()
	case 2:
		m.setAlarm()
	case 3:
		m.toggleAlarm()
	case 4:
		m.chooseMelody()
	case 5:
		m.chooseLightEffect()
	case 6:
		m.setRepeat()
	case 7:
		m.showStatus()
	}
	m.Show()
}

// Show prints the main menu.
func (m *Menu) Show() {
	m.term.Print(console.Banner("\nDigital Alarm Clock") + "\n")
	m.term.Print(console.Red("1. Set Clock") + " - set the current time.\n")
	m.term.Print(console.Green("2. Set Alarm") + " - set the time the alarm should ring.\n")
	m.term.Print(console.Yellow("3. Enable/Disable Alarm") + " - turn the alarm on or off.\n")
	m.term.Print(console.Blue("4. Choose Melody") + " - pick the alarm melody.\n")
	m.term.Print(console.Magenta("5. Choose Light Effect") + " - pick the alarm light effect.\n")
	m.term.Print(console.Cyan("6. Set Alarm Repeat") + " - configure repeats and interval.\n")
	m.term.Print(console.White("7. Show Alarm Status") + " - display the current settings.\n")
	m.term.Print(console.Bold("Enter selection: "))
}

// promptDateTime asks for a full date/time entry and validates it.
func (m *Menu) promptDateTime() (time.Time, bool) {
	m.term.Print(console.White("\nEnter date and time (YYYY-MM-DD HH:MM:SS): "))
	t, err := ParseDateTime(m.term.ReadLine())
	if err != nil {
		m.term.Print(console.Red("\n" + ErrorDescription(err) + "\n"))
		return time.Time{}, false
	}
	return t, true
}

func (m *Menu) setClock() {
	t, ok := m.promptDateTime()
	if !ok {
		m.term.Print(console.Red("\nClock was not set.\n"))
		return
	}
	rtc := MustRTC()
	err := rtc.Disable()
	if err == nil {
		err = rtc.SetTime(t)
		if e := rtc.Enable(); err == nil {
			err = e
		}
	}
	if err != nil {
		m.term.Print(console.Red("\nClock was not set.\n"))
		return
	}
	m.term.Print(console.Green("\nClock has been set.\n"))
}

func (m *Menu) setAlarm() {
	t, ok := m.promptDateTime()
	if !ok {
		m.term.Print(console.Red("\nAlarm was not set.\n"))
		return
	}
	if err := m.sched.SetAlarmTime(t); err != nil {
		m.term.Print(console.Red("\nAlarm was not set.\n"))
		return
	}
	m.term.Print(console.Green("\nAlarm has been set.\n"))
}

func (m *Menu) toggleAlarm() {
	m.term.Print(console.Green("\n1 - enable\n"))
	m.term.Print(console.Red("0 - disable\n"))
	v, err := strconv.Atoi(strings.TrimSpace(m.term.ReadLine()))
	if err != nil {
		m.term.Print(console.Red("\nInvalid entry for enabling/disabling the alarm.\n"))
		return
	}
	switch v {
	case 1:
		m.sched.SetEnabled(true)
		m.term.Print(console.Green("Alarm enabled.\n"))
	case 0:
		m.sched.SetEnabled(false)
		m.term.Print(console.Green("Alarm disabled.\n"))
	default:
		m.term.Print(console.Red("\nInvalid choice, enter 1 to enable or 0 to disable.\n"))
	}
}

func (m *Menu) chooseMelody() {
	m.term.Print(console.White("Choose a melody (1-3): "))
	id, err := strconv.Atoi(strings.TrimSpace(m.term.ReadLine()))
	if err != nil || m.sched.SetMelody(uint8(id)) != nil {
		m.term.Print(console.Red("\nInvalid choice, enter a number between 1 and 3.\n"))
		return
	}
	m.term.Print(console.Green("\nMelody selected.\n"))
}

func (m *Menu) chooseLightEffect() {
	m.term.Print(console.White("Choose a light effect (1-3): "))
	id, err := strconv.Atoi(strings.TrimSpace(m.term.ReadLine()))
	if err != nil || m.sched.SetLightEffect(uint8(id)) != nil {
		m.term.Print(console.Red("\nInvalid choice, enter a number between 1 and 3.\n"))
		return
	}
	m.term.Print(console.Green("\nLight effect selected.\n"))
}

// setRepeat reads the repeat count and interval; either invalid value
// aborts the whole operation without applying partial changes.
func (m *Menu) setRepeat() {
	m.term.Print(console.White("\nEnter the number of alarm repeats (0 for none): "))
	count, err := strconv.Atoi(strings.TrimSpace(m.term.ReadLine()))
	if err != nil || count < 0 {
		m.term.Print(console.Red("\nInvalid repeat count, must be a non-negative number.\n"))
		return
	}

	m.term.Print(console.White("\nEnter the interval between repeats in seconds: "))
	interval, err := strconv.Atoi(strings.TrimSpace(m.term.ReadLine()))
	if err != nil || interval <= 0 {
		m.term.Print(console.Red("\nInvalid interval, must be greater than zero.\n"))
		return
	}

	if err := m.sched.SetRepeat(uint32(count), uint32(interval)); err != nil {
		m.term.Print(console.Red("\n" + ErrorDescription(err) + "\n"))
		return
	}
	m.term.Print(console.Green("\nAlarm repeat settings updated.\n"))
}

func (m *Menu) showStatus() {
	cfg, _ := m.sched.Snapshot()
	now, err := MustRTC().Now()
	if err != nil {
		m.term.Print(console.Red("\nFailed to read the clock.\n"))
		return
	}

	enabled := console.Red("disabled")
	if cfg.Enabled {
		enabled = console.Green("enabled")
	}

	m.term.Print(console.Banner("\nAlarm Status") + "\n")
	m.term.Printf(console.Green(" Alarm is %s")+"\n", enabled)
	m.term.Print(console.Cyan(" Alarm time: "+FormatTime(cfg.AlarmTime)) + "\n")
	m.term.Print(console.Yellow(" Current time: "+FormatTime(now)) + "\n")
	m.term.Printf(console.Magenta(" Selected melody: %d")+"\n", cfg.MelodyID)
	m.term.Printf(console.Magenta(" Selected light effect: %d")+"\n", cfg.LightEffectID)
	m.term.Printf(console.Yellow(" Alarm repeat count: %d")+"\n", cfg.RepeatCount)
	m.term.Printf(console.Yellow(" Repeat interval (seconds): %d")+"\n", cfg.IntervalSeconds)
}
