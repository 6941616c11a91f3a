package csv

import (
	"strconv"
	"strings"
)

// Infer assigns a type to a single field.
//
// The field is trimmed of surrounding whitespace, then tried in order:
//
//	Integer = [ "-" ] Digit { Digit } ;                        (must fit int64)
//	Float   = [ "-" ] ( Digit { Digit } "." { Digit } | "." Digit { Digit } ) ;
//	Text    = <anything else, including the empty string> ;
//
// Exponents, a leading "+", "inf", "NaN", hex literals and digit separators
// are not numbers here and come back as Text, as do integers too large for
// int64. Infer never fails.
func Infer(field string) Value {
	s := strings.TrimSpace(field)

	if isInteger(s) {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Integer(n)
		}
	}

	if isDecimal(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return Float(f)
		}
	}

	return Text(s)
}

// isInteger reports whether s matches -?[0-9]+.
func isInteger(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// isDecimal reports whether s is a plain decimal with exactly one point
// and at least one digit.
func isDecimal(s string) bool {
	s = strings.TrimPrefix(s, "-")

	dots, digits := 0, 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '.':
			dots++
		case isDigit(c):
			digits++
		default:
			return false
		}
	}
	return dots == 1 && digits > 0
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
