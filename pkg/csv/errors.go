// Package csv provides error types and recovery modes for strict parsing.
package csv

import (
	"errors"
	"fmt"
)

// BadLineMode specifies how strict parsing handles ragged lines.
type BadLineMode int

const (
	// BadLineModeError returns an error on ragged lines (default).
	BadLineModeError BadLineMode = iota
	// BadLineModeWarn reports a warning and keeps the row leniently.
	BadLineModeWarn
	// BadLineModeSkip silently drops ragged rows.
	BadLineModeSkip
)

// String returns the string representation of BadLineMode.
func (m BadLineMode) String() string {
	switch m {
	case BadLineModeError:
		return "error"
	case BadLineModeWarn:
		return "warn"
	case BadLineModeSkip:
		return "skip"
	default:
		return fmt.Sprintf("BadLineMode(%d)", m)
	}
}

// ParseError reports a line rejected by strict parsing.
type ParseError struct {
	// Line is the 1-indexed input line, counting blank lines.
	Line int
	// Err is the underlying error.
	Err error
}

// Error returns a formatted error message with the line number.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error on line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Common parsing errors
var (
	// ErrFieldCount indicates a data line has a different number of fields than the header.
	ErrFieldCount = errors.New("wrong number of fields")
)

// fieldCountError builds the ParseError for a ragged line.
func fieldCountError(line, got, want int) *ParseError {
	return &ParseError{
		Line: line,
		Err:  fmt.Errorf("%w (got %d, expected %d)", ErrFieldCount, got, want),
	}
}

// WarningHandler is a callback function for reporting warnings.
type WarningHandler func(line int, message string)

// OptionsError represents an invalid option configuration.
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return "csv: invalid " + e.Field + ": " + e.Message
}
