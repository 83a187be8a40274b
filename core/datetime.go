package core

import (
	"fmt"
	"time"
)

// TimeLayout is the textual clock format used on the serial console.
const TimeLayout = "2006-01-02 15:04:05"

// ParseDateTime parses and validates a "YYYY-MM-DD HH:MM:SS" entry.
//
// A line that doesn't scan as six integer fields is a format error; a field
// outside its calendar range is a range error. Day-of-month is checked
// against 1..31 only, so leap days pass without a calendar table.
func ParseDateTime(s string) (time.Time, error) {
	var year, month, day, hour, min, sec int
	n, err := fmt.Sscanf(s, "%d-%d-%d %d:%d:%d", &year, &month, &day, &hour, &min, &sec)
	if err != nil || n != 6 {
		return time.Time{}, Errorf(ErrFormat, "expected date and time as YYYY-MM-DD HH:MM:SS")
	}
	switch {
	case year <= 1900:
		return time.Time{}, Errorf(ErrRange, "year %d out of range", year)
	case month < 1 || month > 12:
		return time.Time{}, Errorf(ErrRange, "month %d out of range", month)
	case day < 1 || day > 31:
		return time.Time{}, Errorf(ErrRange, "day %d out of range", day)
	case hour < 0 || hour > 23:
		return time.Time{}, Errorf(ErrRange, "hour %d out of range", hour)
	case min < 0 || min > 59:
		return time.Time{}, Errorf(ErrRange, "minute %d out of range", min)
	case sec < 0 || sec > 59:
		return time.Time{}, Errorf(ErrRange, "second %d out of range", sec)
	}
	return time.Date(year, time.Month(month), day, hour, min, sec, 0, time.UTC), nil
}

// FormatTime renders t for the serial console; the zero time reads as unset.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return "(not set)"
	}
	return t.Format(TimeLayout)
}
