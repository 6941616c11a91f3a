package csv

import (
	"strings"
	"unicode"
)

// candidateSeparators are tried by the Sniffer in order of preference.
var candidateSeparators = []rune{',', '\t', ';', '|'}

// Sniffer detects the separator of a sample.
type Sniffer struct {
	sample    string
	separator rune
	analyzed  bool
}

// NewSniffer creates a new Sniffer over a sample of the input.
// For best results, provide at least 2-3 lines of data.
func NewSniffer(sample string) *Sniffer {
	return &Sniffer{
		sample:   sample,
		analyzed: false,
	}
}

// DetectSeparator returns the most likely separator of sample.
// It is shorthand for NewSniffer(sample).DetectSeparator().
func DetectSeparator(sample string) rune {
	return NewSniffer(sample).DetectSeparator()
}

// analyze performs detection on the sample once.
func (s *Sniffer) analyze() {
	if s.analyzed {
		return
	}
	s.separator = s.detectSeparator()
	s.analyzed = true
}

// DetectSeparator returns the detected field separator.
// Candidates are comma, tab, semicolon and pipe; comma wins when nothing scores.
func (s *Sniffer) DetectSeparator() rune {
	s.analyze()
	return s.separator
}

// detectSeparator scores each candidate by its count on the first line,
// multiplied by ten when every non-blank line has the same count.
func (s *Sniffer) detectSeparator() rune {
	lines := nonBlankLines(s.sample)
	if len(lines) == 0 {
		return ','
	}

	best := ','
	bestScore := 0
	for _, sep := range candidateSeparators {
		first := strings.Count(lines[0], string(sep))
		if first == 0 {
			continue
		}

		score := first * 10
		for _, line := range lines[1:] {
			if strings.Count(line, string(sep)) != first {
				score = first
				break
			}
		}

		// Strictly greater keeps the earlier candidate on ties
		if score > bestScore {
			best = sep
			bestScore = score
		}
	}

	return best
}

func nonBlankLines(sample string) []string {
	var lines []string
	for _, line := range strings.Split(sample, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// HeaderConverter is a function that transforms header names.
type HeaderConverter func(string) string

// LowercaseHeader converts headers to lowercase.
func LowercaseHeader(s string) string {
	return strings.ToLower(s)
}

// UppercaseHeader converts headers to uppercase.
func UppercaseHeader(s string) string {
	return strings.ToUpper(s)
}

// SnakeCaseHeader converts headers to snake_case.
func SnakeCaseHeader(s string) string {
	var result strings.Builder
	prevWasSpace := false
	for i, ch := range s {
		if ch == ' ' {
			if result.Len() > 0 && !prevWasSpace {
				result.WriteRune('_')
			}
			prevWasSpace = true
			continue
		}
		if unicode.IsUpper(ch) && i > 0 && !prevWasSpace {
			result.WriteRune('_')
		}
		result.WriteRune(unicode.ToLower(ch))
		prevWasSpace = false
	}
	return result.String()
}
