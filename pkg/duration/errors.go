package duration

import (
	"errors"
	"fmt"
)

// Parse errors.
var (
	// ErrInvalidDuration is returned when no grammar rule matches the input.
	ErrInvalidDuration = errors.New("invalid duration format")

	// ErrParse is returned when a value of an unsupported shape is handed to
	// a converter.
	ErrParse = errors.New("parse error")

	// ErrNumberOutOfRange is returned when a magnitude cannot be represented
	// as a time.Duration.
	ErrNumberOutOfRange = errors.New("number out of range")
)

// Error carries the offending input alongside one of the sentinel errors.
type Error struct {
	Err   error
	Input string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Input)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func invalid(input string) error {
	return &Error{Err: ErrInvalidDuration, Input: input}
}

func outOfRange(input string) error {
	return &Error{Err: ErrNumberOutOfRange, Input: input}
}
