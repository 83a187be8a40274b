package core

import "time"

// TickFreq is the nominal timer frequency used to convert tone and light
// durations from timer ticks to wall time.
const TickFreq = 12000000 // 12MHz

// waitFn pauses the calling context for the given duration. Swappable so
// targets can substitute a hardware timer wait.
var waitFn = time.Sleep

// SetWaitFunc replaces the wait implementation.
func SetWaitFunc(f func(time.Duration)) {
	if f == nil {
		f = time.Sleep
	}
	waitFn = f
}

// TicksToDuration converts timer ticks to wall time.
func TicksToDuration(ticks uint32) time.Duration {
	return time.Duration(ticks) * time.Second / TickFreq
}

// WaitTicks blocks for the given number of timer ticks.
func WaitTicks(ticks uint32) {
	waitFn(TicksToDuration(ticks))
}
