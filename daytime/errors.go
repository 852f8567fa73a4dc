package daytime

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidFormat reports text that is not of the form H:M:S,
	// with one or two decimal digits per field.
	ErrInvalidFormat = errors.New("invalid time format, want hh:mm:ss")

	// ErrInvalidArgument reports a field outside its range:
	// hours in [0,23], minutes and seconds in [0,59].
	ErrInvalidArgument = errors.New("invalid time value")
)

// An Error describes a failure to construct a Time or Period.
// Its Kind is either ErrInvalidFormat or ErrInvalidArgument,
// so callers may classify it with errors.Is.
type Error struct {
	Op     string // constructor that failed, e.g. "parse"
	Input  string // offending text or fields
	Kind   error
	Detail string // optional
}

func (e *Error) Error() string {
	msg := "daytime: " + e.Op + " " + strconv.Quote(e.Input) + ": " + e.Kind.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Kind }
