// File: datetime.go
// Title: DateTime Value and Errors
// Description: DateTime is the result of parsing: a time value that is
//              either valid or carries the error that made it invalid.
//              ParseError and FormatError unwrap to the structured error
//              type of foundation/core/error.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.2.0: Initial implementation

package timex

import (
	"fmt"
	"time"

	herror "github.com/msto63/hearty/foundation/core/error"
)

// DateTime is a parsed point in time. Invalid input does not panic or
// return an error from the parser; it produces a DateTime whose Valid
// method reports false and whose Err method explains why. The zero value
// is invalid.
type DateTime struct {
	t     time.Time
	valid bool
	err   error
}

// FromTime wraps t as a valid DateTime
func FromTime(t time.Time) DateTime {
	return DateTime{t: t, valid: true}
}

func invalidDateTime(err error) DateTime {
	return DateTime{err: err}
}

// Valid reports whether the DateTime holds a usable instant
func (d DateTime) Valid() bool {
	return d.valid
}

// Time returns the instant. It is the zero time when d is invalid.
func (d DateTime) Time() time.Time {
	return d.t
}

// Err returns nil for a valid DateTime and the parse error otherwise
func (d DateTime) Err() error {
	if d.valid {
		return nil
	}
	if d.err == nil {
		return newParseError("", "zero DateTime")
	}
	return d.err
}

// String returns the instant in RFC 3339 with milliseconds, or
// "invalid date"
func (d DateTime) String() string {
	if !d.valid {
		return "invalid date"
	}
	return d.t.Format("2006-01-02T15:04:05.000Z07:00")
}

// ParseError reports input that no parsing path could resolve
type ParseError struct {
	Input  string
	Reason string
	err    *herror.Error
}

func newParseError(input, reason string) *ParseError {
	return &ParseError{
		Input:  input,
		Reason: reason,
		err: herror.New("invalid date").
			WithCode(herror.CodeInvalidDate).
			WithOperation("timex.StrToDate").
			WithDetail("input", input).
			WithDetail("reason", reason),
	}
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as a date: %s", e.Input, e.Reason)
}

// Unwrap returns the structured error with code INVALID_DATE
func (e *ParseError) Unwrap() error {
	return e.err
}

// FormatError is returned when an invalid instant reaches formatting
type FormatError struct {
	Pattern string
	Cause   error
	err     *herror.Error
}

func newFormatError(pattern string, cause error) *FormatError {
	var err *herror.Error
	if cause != nil {
		err = herror.Wrap(cause, "invalid date")
	} else {
		err = herror.New("invalid date")
	}

	return &FormatError{
		Pattern: pattern,
		Cause:   cause,
		err: err.WithCode(herror.CodeInvalidDate).
			WithOperation("timex.FormatDate").
			WithDetail("pattern", pattern),
	}
}

// Error implements the error interface
func (e *FormatError) Error() string {
	return "invalid date"
}

// Unwrap returns the structured error, which in turn wraps Cause
func (e *FormatError) Unwrap() error {
	return e.err
}
