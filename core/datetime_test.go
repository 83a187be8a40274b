package core

import (
	"testing"
	"time"
)

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		in       string
		want     time.Time
		wantCode errorCode
	}{
		{in: "2026-09-01 06:30:00", want: time.Date(2026, 9, 1, 6, 30, 0, 0, time.UTC)},
		{in: "2024-02-29 23:59:59", want: time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC)},
		// Day-of-month is range-checked against 1..31 only, so an impossible
		// calendar date still parses.
		{in: "2025-02-31 00:00:00", want: time.Date(2025, 2, 31, 0, 0, 0, 0, time.UTC)},
		{in: "notadate", wantCode: ErrFormat},
		{in: "", wantCode: ErrFormat},
		{in: "2026-09-01", wantCode: ErrFormat},
		{in: "2026-13-01 10:00:00", wantCode: ErrRange},
		{in: "2026-00-01 10:00:00", wantCode: ErrRange},
		{in: "2026-09-00 10:00:00", wantCode: ErrRange},
		{in: "2026-09-32 10:00:00", wantCode: ErrRange},
		{in: "2026-09-01 24:00:00", wantCode: ErrRange},
		{in: "2026-09-01 10:60:00", wantCode: ErrRange},
		{in: "2026-09-01 10:00:60", wantCode: ErrRange},
		{in: "1900-01-01 00:00:00", wantCode: ErrRange},
	}

	for _, tt := range tests {
		got, err := ParseDateTime(tt.in)
		if tt.wantCode != "" {
			if ErrorCode(err) != tt.wantCode {
				t.Errorf("ParseDateTime(%q) error = %v, want %s error", tt.in, err, tt.wantCode)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDateTime(%q) failed: %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseDateTime(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatTime(t *testing.T) {
	if got := FormatTime(time.Time{}); got != "(not set)" {
		t.Errorf("FormatTime(zero) = %q, want (not set)", got)
	}
	ts := time.Date(2026, 9, 1, 6, 30, 5, 0, time.UTC)
	if got := FormatTime(ts); got != "2026-09-01 06:30:05" {
		t.Errorf("FormatTime = %q", got)
	}
}
