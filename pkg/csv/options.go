// Package csv provides configurable options for typed parsing.
package csv

import (
	"unicode/utf8"
)

// Options configures ParseWithOptions.
// The zero value of every field except Separator reproduces Parse.
type Options struct {
	// Separator is the field delimiter.
	// It must be a valid rune and not 0, \r, \n, or the Unicode replacement character (0xFFFD).
	Separator rune

	// Strict rejects data lines whose field count differs from the header.
	// What happens to such a line is decided by OnBadLine.
	// Default: false (ragged lines are tolerated)
	Strict bool

	// OnBadLine specifies how strict parsing handles ragged lines.
	// Default: BadLineModeError
	OnBadLine BadLineMode

	// WarningCallback is invoked for ragged lines when OnBadLine is BadLineModeWarn.
	// If nil, warnings are silently ignored.
	WarningCallback WarningHandler

	// GenerateMissingKeys names blank headers "__N" (N is the 1-indexed
	// column) and keeps excess fields under "__N" instead of dropping them.
	// Default: false
	GenerateMissingKeys bool

	// SkipEmptyValues leaves fields that are empty after trimming out of the
	// row instead of storing Text("").
	// Default: false
	SkipEmptyValues bool

	// HeaderConverter, if not nil, transforms each trimmed header name.
	// See LowercaseHeader, UppercaseHeader and SnakeCaseHeader.
	HeaderConverter HeaderConverter

	// Columns, if not nil, limits rows to the selected columns.
	// Names are matched after HeaderConverter and key generation.
	Columns *ColumnSelector
}

// ColumnSelector specifies which columns to include.
type ColumnSelector struct {
	// UseCols selects columns by name.
	UseCols []string
	// UseColIndexes selects columns by index (0-based).
	UseColIndexes []int
}

// ShouldInclude checks if a column should be included.
func (c *ColumnSelector) ShouldInclude(name string, index int) bool {
	// If both are empty, include all columns
	if len(c.UseCols) == 0 && len(c.UseColIndexes) == 0 {
		return true
	}

	for _, col := range c.UseCols {
		if col == name {
			return true
		}
	}

	for _, idx := range c.UseColIndexes {
		if idx == index {
			return true
		}
	}

	return false
}

// DefaultOptions returns the configuration Parse uses for separator sep.
func DefaultOptions(sep rune) Options {
	return Options{
		Separator:           sep,
		Strict:              false,
		OnBadLine:           BadLineModeError,
		WarningCallback:     nil,
		GenerateMissingKeys: false,
		SkipEmptyValues:     false,
		HeaderConverter:     nil,
		Columns:             nil,
	}
}

// validSeparator reports whether r is a valid field separator.
func validSeparator(r rune) bool {
	return r != 0 && r != '\r' && r != '\n' && utf8.ValidRune(r) && r != utf8.RuneError
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if !validSeparator(o.Separator) {
		return &OptionsError{Field: "Separator", Message: "invalid delimiter"}
	}
	switch o.OnBadLine {
	case BadLineModeError, BadLineModeWarn, BadLineModeSkip:
	default:
		return &OptionsError{Field: "OnBadLine", Message: "unknown mode " + o.OnBadLine.String()}
	}
	return nil
}
