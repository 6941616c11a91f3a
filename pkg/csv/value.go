package csv

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	// KindText marks a Text value.
	KindText Kind = iota
	// KindInteger marks an Integer value.
	KindInteger
	// KindFloat marks a Float value.
	KindFloat
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Value is a typed field value. It is always exactly one of Integer, Float
// or Text; the set is closed, so a type switch over those three is exhaustive:
//
//	switch v := row["height"].(type) {
//	case csv.Integer:
//	    fmt.Println(int64(v) + 1)
//	case csv.Float:
//	    fmt.Println(float64(v) * 2)
//	case csv.Text:
//	    fmt.Println(strings.ToUpper(string(v)))
//	}
type Value interface {
	// Kind reports which variant the value holds.
	Kind() Kind
	// String renders the value in a form Infer maps back to the same variant.
	String() string

	sealed()
}

// Integer is a whole-number field such as "42" or "-7".
type Integer int64

// Float is a decimal field such as "62.5" or "-3.0".
type Float float64

// Text is any field that is neither Integer nor Float, trimmed.
type Text string

func (Integer) Kind() Kind { return KindInteger }
func (Float) Kind() Kind   { return KindFloat }
func (Text) Kind() Kind    { return KindText }

func (v Integer) String() string { return strconv.FormatInt(int64(v), 10) }

// String keeps a decimal point on integral values so "90.0" does not
// render as "90" and re-infer as Integer.
func (v Float) String() string {
	s := strconv.FormatFloat(float64(v), 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

func (v Text) String() string { return string(v) }

func (Integer) sealed() {}
func (Float) sealed()   {}
func (Text) sealed()    {}

// Row maps column names to typed values for one data line.
// Columns missing from a short line are absent, not zero-valued.
type Row map[string]Value
