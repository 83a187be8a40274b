package core

import (
	"errors"
	"fmt"
)

type errorCode string

const (
	// ErrFormat marks input that doesn't scan as the expected fields.
	ErrFormat errorCode = "format"

	// ErrRange marks numeric input outside its valid domain.
	ErrRange errorCode = "range"

	// ErrInvalid marks an operation rejected by configuration invariants.
	ErrInvalid errorCode = "invalid"

	ErrInternal errorCode = "internal"
)

// Error is an application error. Every validation failure is local and
// non-fatal: it aborts the current operation and control returns to the menu.
type Error struct {
	// Code is a machine-readable error code.
	Code errorCode

	// Description is a human-readable description of the error.
	Description string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return "wakebox: " + string(e.Code) + ": " + e.Description
}

func Errorf(code errorCode, format string, args ...any) error {
	return &Error{code, fmt.Sprintf(format, args...)}
}

// ErrorCode returns the error code associated with err, or ErrInternal if err
// isn't an application error.
func ErrorCode(err error) errorCode {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) && e.Code != "" {
		return e.Code
	}
	return ErrInternal
}

// ErrorDescription returns a human-readable description of the error, or
// "internal error" if err isn't an application error.
func ErrorDescription(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) && e.Description != "" {
		return e.Description
	}
	return "internal error"
}
