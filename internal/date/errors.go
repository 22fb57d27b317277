package date

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why an expression could not be resolved.
type ErrorKind int

const (
	UnrecognizedFormat ErrorKind = iota + 1
	InvalidCalendarDate
	InvalidMonthName
	InvalidWeekdayName
	InvalidTimeUnit
	NoValidDateInRange
)

var (
	ErrUnrecognizedFormat  = errors.New("unrecognized date format")
	ErrInvalidCalendarDate = errors.New("invalid calendar date")
	ErrInvalidMonthName    = errors.New("invalid month name")
	ErrInvalidWeekdayName  = errors.New("invalid weekday name")
	ErrInvalidTimeUnit     = errors.New("invalid time unit")
	ErrNoValidDateInRange  = errors.New("no valid date within range")
)

var kindSentinels = map[ErrorKind]error{
	UnrecognizedFormat:  ErrUnrecognizedFormat,
	InvalidCalendarDate: ErrInvalidCalendarDate,
	InvalidMonthName:    ErrInvalidMonthName,
	InvalidWeekdayName:  ErrInvalidWeekdayName,
	InvalidTimeUnit:     ErrInvalidTimeUnit,
	NoValidDateInRange:  ErrNoValidDateInRange,
}

func (k ErrorKind) String() string {
	switch k {
	case UnrecognizedFormat:
		return "UnrecognizedFormat"
	case InvalidCalendarDate:
		return "InvalidCalendarDate"
	case InvalidMonthName:
		return "InvalidMonthName"
	case InvalidWeekdayName:
		return "InvalidWeekdayName"
	case InvalidTimeUnit:
		return "InvalidTimeUnit"
	case NoValidDateInRange:
		return "NoValidDateInRange"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError reports a failed resolution. Pattern is empty when no shape
// matched the input.
type ParseError struct {
	Kind    ErrorKind
	Input   string
	Pattern Pattern
	Err     error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("parse %q: %v", e.Input, kindSentinels[e.Kind])
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *ParseError) Is(target error) bool {
	return kindSentinels[e.Kind] == target
}

// KindOf returns the ErrorKind carried by err, or 0 if err is not a
// resolution failure.
func KindOf(err error) ErrorKind {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	for k, s := range kindSentinels {
		if errors.Is(err, s) {
			return k
		}
	}
	return 0
}

func newParseError(input string, p Pattern, err error) *ParseError {
	kind := KindOf(err)
	if kind == 0 {
		kind = UnrecognizedFormat
		err = fmt.Errorf("%w: %v", ErrUnrecognizedFormat, err)
	}
	return &ParseError{Kind: kind, Input: input, Pattern: p, Err: err}
}
