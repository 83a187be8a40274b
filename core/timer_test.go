package core

import (
	"testing"
	"time"
)

func TestTicksToDuration(t *testing.T) {
	if got := TicksToDuration(TickFreq); got != time.Second {
		t.Errorf("TicksToDuration(TickFreq) = %v, want 1s", got)
	}
	if got := TicksToDuration(0); got != 0 {
		t.Errorf("TicksToDuration(0) = %v, want 0", got)
	}
	// 50000 ticks at 12MHz is just over 4ms.
	got := TicksToDuration(50000)
	if got < 4*time.Millisecond || got > 5*time.Millisecond {
		t.Errorf("TicksToDuration(50000) = %v, want ~4.17ms", got)
	}
}

func TestSetWaitFunc(t *testing.T) {
	var waited time.Duration
	SetWaitFunc(func(d time.Duration) { waited = d })
	defer SetWaitFunc(nil)

	WaitTicks(TickFreq / 2)
	if waited != 500*time.Millisecond {
		t.Errorf("WaitTicks waited %v, want 500ms", waited)
	}
}
