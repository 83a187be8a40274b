//go:build rp2040

package main

import (
	"time"

	"wakebox/console"
	"wakebox/core"
)

// Board wiring for the Pico build: speaker on GP15, the four indicator
// lights on GP10..GP13.
var boardLayout = core.Board{
	Speaker: 15,
	Lights:  [core.NumLights]core.Pin{10, 11, 12, 13},
}

func main() {
	// USB CDC comes up first so early failures are visible on the console.
	InitUSB()

	con := console.New(usbPort{})

	pins := newPicoPinDriver()
	core.SetPinDriver(pins)
	if err := boardLayout.ConfigureOutputs(pins); err != nil {
		fatal(con, "pin setup failed: "+err.Error())
	}

	// Hand the speaker line to PIO so pulse widths are hardware-timed.
	// If the PIO program cannot be loaded the sequencer bit-bangs instead.
	spk := NewPIOSpeaker(0, 0)
	if err := spk.Init(boardLayout.Speaker); err == nil {
		pins.AttachSpeaker(boardLayout.Speaker, spk)
	}

	rtc, err := newDS3231()
	if err != nil {
		fatal(con, "clock setup failed: "+err.Error())
	}
	core.SetRTCDriver(rtc)

	tone := core.NewToneSequencer(core.MustPins(), boardLayout)
	light := core.NewLightSequencer(core.MustPins(), boardLayout)
	sched := core.NewScheduler(tone, light, func(line string) {
		con.Print("\n" + line + "\n")
	})
	menu := core.NewMenu(con, sched)

	rtc.OnMatch(func() {
		sched.OnTimeMatch()
		menu.Show()
	})

	con.Print(console.Green("Initialization complete.\n"))
	menu.Show()

	for {
		if line, ok := con.PollLine(); ok {
			menu.HandleLine(line)
		}
		rtc.Poll()
		time.Sleep(time.Millisecond)
	}
}

// fatal reports an unrecoverable setup failure on the console and parks.
func fatal(con *console.Console, msg string) {
	for {
		con.Print(console.Red(msg) + "\n")
		time.Sleep(5 * time.Second)
	}
}
