// Package calc holds the shared time, distance and derived-metric
// calculations used by every entry form and screen. All functions are pure:
// they either return a valid value in canonical units (seconds, meters) or a
// *ParseError, never a placeholder zero.
package calc

import (
	"errors"
	"fmt"
)

// ErrorKind describes why an input was rejected.
type ErrorKind int

const (
	KindMalformed ErrorKind = iota
	KindOutOfRange
	KindMissingValue
	KindExceedsMaximum
)

// ParseError is the single error type returned by all parsing and
// resolution functions. Reason is suitable for inline display next to the
// offending form field.
type ParseError struct {
	Kind   ErrorKind
	Reason string
}

func (e *ParseError) Error() string {
	return e.Reason
}

func malformed(format string, args ...any) *ParseError {
	return &ParseError{Kind: KindMalformed, Reason: fmt.Sprintf(format, args...)}
}

func outOfRange(format string, args ...any) *ParseError {
	return &ParseError{Kind: KindOutOfRange, Reason: fmt.Sprintf(format, args...)}
}

func missingValue(format string, args ...any) *ParseError {
	return &ParseError{Kind: KindMissingValue, Reason: fmt.Sprintf(format, args...)}
}

func exceedsMaximum(format string, args ...any) *ParseError {
	return &ParseError{Kind: KindExceedsMaximum, Reason: fmt.Sprintf(format, args...)}
}

// AsParseError unwraps err into a *ParseError when possible.
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
