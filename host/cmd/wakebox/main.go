package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"wakebox/console"
	"wakebox/core"
	"wakebox/host/serial"
	"wakebox/sim"
)

var (
	device  = flag.String("device", "", "Serial device path (empty = run on stdin/stdout)")
	baud    = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	verbose = flag.Bool("verbose", false, "Enable verbose output")
)

// Board wiring used by the simulated device. Pin 0 is the speaker; the
// four indicator lines follow.
var boardLayout = core.Board{
	Speaker: 0,
	Lights:  [core.NumLights]core.Pin{1, 2, 3, 4},
}

func main() {
	flag.Parse()
	initLogger(*verbose)

	port, err := openPort()
	if err != nil {
		slog.Error("failed to open serial port", "device", *device, "err", err)
		os.Exit(1)
	}
	defer port.Close()

	con := console.New(port)

	board := sim.NewBoard()
	if *verbose {
		board.OnChange = func(pin core.Pin, high bool) {
			slog.Debug("pin change", "pin", pin, "high", high)
		}
	}
	core.SetPinDriver(board)
	if err := boardLayout.ConfigureOutputs(board); err != nil {
		slog.Error("failed to configure outputs", "err", err)
		os.Exit(1)
	}

	rtc := sim.NewRTC()
	core.SetRTCDriver(rtc)

	core.SetDebugWriter(func(msg string) { slog.Debug(msg) })
	core.SetDebugEnabled(*verbose)

	tone := core.NewToneSequencer(core.MustPins(), boardLayout)
	light := core.NewLightSequencer(core.MustPins(), boardLayout)
	sched := core.NewScheduler(tone, light, func(line string) {
		con.Print("\n" + line + "\n")
	})
	menu := core.NewMenu(con, sched)

	// The match callback is the device's interrupt context: it drives the
	// whole episode to completion and then redisplays the menu, exactly as
	// the foreground loop would see it.
	rtc.OnMatch(func() {
		sched.OnTimeMatch()
		menu.Show()
	})

	slog.Info("wakebox starting", "device", deviceName())
	con.Print(console.Green("Initialization complete.\n"))
	menu.Show()

	for {
		if line, ok := con.PollLine(); ok {
			menu.HandleLine(line)
		}
		time.Sleep(time.Millisecond)
	}
}

func openPort() (serial.Port, error) {
	if *device == "" {
		return serial.Stdio(), nil
	}
	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud
	return serial.Open(cfg)
}

func deviceName() string {
	if *device == "" {
		return "stdio"
	}
	return fmt.Sprintf("%s@%d", *device, *baud)
}

// initLogger configures the shared slog logger and calls slog.SetDefault so
// the stdlib log package also routes through the same handler.
func initLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(h))
}
