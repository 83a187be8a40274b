package core

import (
	"errors"
	"testing"
)

func TestErrorCodeAndDescription(t *testing.T) {
	err := Errorf(ErrRange, "month %d out of range", 13)

	if got := ErrorCode(err); got != ErrRange {
		t.Errorf("ErrorCode = %v, want %v", got, ErrRange)
	}
	if got := ErrorDescription(err); got != "month 13 out of range" {
		t.Errorf("ErrorDescription = %q", got)
	}
	if got := err.Error(); got != "wakebox: range: month 13 out of range" {
		t.Errorf("Error = %q", got)
	}
}

func TestForeignErrorMapsToInternal(t *testing.T) {
	err := errors.New("i2c bus stuck")

	if got := ErrorCode(err); got != ErrInternal {
		t.Errorf("ErrorCode = %v, want %v", got, ErrInternal)
	}
	if got := ErrorDescription(err); got != "internal error" {
		t.Errorf("ErrorDescription = %q", got)
	}
}

func TestNilError(t *testing.T) {
	if got := ErrorCode(nil); got != "" {
		t.Errorf("ErrorCode(nil) = %v, want empty", got)
	}
	if got := ErrorDescription(nil); got != "" {
		t.Errorf("ErrorDescription(nil) = %q, want empty", got)
	}
}
