// Package csv parses simple delimited text into typed rows.
//
// The first non-blank line names the columns. Every later non-blank line
// becomes a Row mapping each column name to a Value: an Integer, a Float
// or, failing both, Text. Fields are split on a caller-chosen separator and
// trimmed of surrounding whitespace. Quotes have no special meaning and a
// field can never span lines.
//
// Parsing is lenient by default. Short lines leave their trailing columns
// out of the row, long lines lose their excess fields, and odd-looking
// numbers such as "12.3.4" stay Text. ParseWithOptions offers a strict mode
// and the other opt-in behaviors described on Options.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple goroutines.
// Each call creates its own tokenizer and parser with no shared mutable state.
//
// # Example usage:
//
//	rows := csv.Parse("name, height\nMads, 174\n", ',')
//	switch h := rows[0]["height"].(type) {
//	case csv.Integer:
//	    fmt.Println("height in cm:", int64(h))
//	case csv.Float, csv.Text:
//	    // handle other variants
//	}
package csv

import (
	"fmt"
	"io"

	"github.com/shapestone/shape-typedcsv/internal/parser"
)

// Parse splits input into rows of typed values using separator.
//
// Parse never fails. Empty input and input holding only a header line both
// return an empty, non-nil slice. Rows come back in input order, one per
// non-blank data line.
//
// Field bytes are kept verbatim, including invalid UTF-8. A separator that
// is U+FFFD or not a valid rune never splits, so each line is one field.
//
// Example:
//
//	rows := csv.Parse("a;b\n1;2.5\n", ';')
//	// rows[0]["a"] == csv.Integer(1)
//	// rows[0]["b"] == csv.Float(2.5)
func Parse(input string, separator rune) []Row {
	// The default options never fail.
	rows, _ := buildRows(parseRecords(input, separator), DefaultOptions(separator))
	return rows
}

// ParseWithOptions parses input like Parse with the opt-in behaviors of opts.
//
// It returns an *OptionsError for invalid options and, in strict mode with
// BadLineModeError, a *ParseError wrapping ErrFieldCount for the first
// ragged line.
//
// Example:
//
//	opts := csv.DefaultOptions('\t')
//	opts.Strict = true
//	rows, err := csv.ParseWithOptions(input, opts)
//	if errors.Is(err, csv.ErrFieldCount) {
//	    // a data line did not have one field per header
//	}
func ParseWithOptions(input string, opts Options) ([]Row, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return buildRows(parseRecords(input, opts.Separator), opts)
}

// ParseReader reads all of reader and parses it like Parse.
// Only errors from the reader are returned.
//
// Example:
//
//	file, err := os.Open("people.csv")
//	if err != nil {
//	    // handle error
//	}
//	defer file.Close()
//
//	rows, err := csv.ParseReader(file, ',')
func ParseReader(reader io.Reader, separator rune) ([]Row, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("csv: read input: %w", err)
	}
	return Parse(string(data), separator), nil
}

// ParseReaderWithOptions reads all of reader and parses it like ParseWithOptions.
func ParseReaderWithOptions(reader io.Reader, opts Options) ([]Row, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("csv: read input: %w", err)
	}
	return buildRows(parseRecords(string(data), opts.Separator), opts)
}

func parseRecords(input string, separator rune) []parser.Record {
	p := parser.NewParserWithOptions(input, parser.Options{Separator: separator})
	return p.Parse()
}

// buildRows pairs the header record with every data record.
func buildRows(records []parser.Record, opts Options) ([]Row, error) {
	rows := make([]Row, 0, len(records))
	if len(records) == 0 {
		return rows, nil
	}

	headers := headerNames(records[0].Fields, opts)

	for _, rec := range records[1:] {
		if opts.Strict && len(rec.Fields) != len(headers) {
			err := fieldCountError(rec.Line, len(rec.Fields), len(headers))
			switch opts.OnBadLine {
			case BadLineModeSkip:
				continue
			case BadLineModeWarn:
				if opts.WarningCallback != nil {
					opts.WarningCallback(rec.Line, err.Error())
				}
			default:
				return nil, err
			}
		}
		rows = append(rows, newRow(headers, rec.Fields, opts))
	}

	return rows, nil
}

// headerNames applies HeaderConverter and blank-name generation to the header fields.
func headerNames(fields []string, opts Options) []string {
	headers := make([]string, len(fields))
	for i, name := range fields {
		if opts.HeaderConverter != nil {
			name = opts.HeaderConverter(name)
		}
		if opts.GenerateMissingKeys && name == "" {
			name = generatedKey(i)
		}
		headers[i] = name
	}
	return headers
}

// newRow pairs headers with fields positionally.
func newRow(headers, fields []string, opts Options) Row {
	row := make(Row, len(headers))
	for i, field := range fields {
		var key string
		switch {
		case i < len(headers):
			key = headers[i]
		case opts.GenerateMissingKeys:
			key = generatedKey(i)
		default:
			return row
		}

		if opts.SkipEmptyValues && field == "" {
			continue
		}
		if opts.Columns != nil && !opts.Columns.ShouldInclude(key, i) {
			continue
		}
		row[key] = Infer(field)
	}
	return row
}

// generatedKey names the column at 0-based index i.
func generatedKey(i int) string {
	return fmt.Sprintf("__%d", i+1)
}
