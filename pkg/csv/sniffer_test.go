package csv_test

import (
	"testing"

	"github.com/shapestone/shape-typedcsv/pkg/csv"
)

func TestSnifferDetectSeparator(t *testing.T) {
	tests := []struct {
		name     string
		sample   string
		expected rune
	}{
		{
			name:     "comma delimited",
			sample:   "a,b,c\n1,2,3\n4,5,6",
			expected: ',',
		},
		{
			name:     "tab delimited",
			sample:   "a\tb\tc\n1\t2\t3\n4\t5\t6",
			expected: '\t',
		},
		{
			name:     "semicolon delimited",
			sample:   "a;b;c\n1;2;3\n4;5;6",
			expected: ';',
		},
		{
			name:     "pipe delimited",
			sample:   "a|b|c\n1|2|3\n4|5|6",
			expected: '|',
		},
		{
			name:     "empty sample defaults to comma",
			sample:   "",
			expected: ',',
		},
		{
			name:     "single line comma",
			sample:   "a,b,c",
			expected: ',',
		},
		{
			name:     "mixed but more commas",
			sample:   "a,b,c\n1,2,3\n4;5;6",
			expected: ',',
		},
		{
			name:     "consistent semicolons beat a stray comma",
			sample:   "a;b,c;d\n1;2;3\n4;5;6",
			expected: ';',
		},
		{
			name:     "blank lines ignored",
			sample:   "\n\na|b\n\n1|2\n",
			expected: '|',
		},
		{
			name:     "tie keeps comma",
			sample:   "a,b;c\n1,2;3",
			expected: ',',
		},
		{
			name:     "no candidate defaults to comma",
			sample:   "just text\nmore text",
			expected: ',',
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sniffer := csv.NewSniffer(tt.sample)
			got := sniffer.DetectSeparator()
			if got != tt.expected {
				t.Errorf("DetectSeparator() = %q, want %q", got, tt.expected)
			}
			if got := csv.DetectSeparator(tt.sample); got != tt.expected {
				t.Errorf("csv.DetectSeparator() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestHeaderConverters(t *testing.T) {
	tests := []struct {
		name      string
		converter csv.HeaderConverter
		input     string
		expected  string
	}{
		{
			name:      "lowercase simple",
			converter: csv.LowercaseHeader,
			input:     "FirstName",
			expected:  "firstname",
		},
		{
			name:      "uppercase simple",
			converter: csv.UppercaseHeader,
			input:     "firstName",
			expected:  "FIRSTNAME",
		},
		{
			name:      "snake_case from camelCase",
			converter: csv.SnakeCaseHeader,
			input:     "firstName",
			expected:  "first_name",
		},
		{
			name:      "snake_case from PascalCase",
			converter: csv.SnakeCaseHeader,
			input:     "FirstName",
			expected:  "first_name",
		},
		{
			name:      "snake_case with spaces",
			converter: csv.SnakeCaseHeader,
			input:     "First Name",
			expected:  "first_name",
		},
		{
			name:      "snake_case already snake",
			converter: csv.SnakeCaseHeader,
			input:     "first_name",
			expected:  "first_name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.converter(tt.input)
			if got != tt.expected {
				t.Errorf("converter(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestColumnSelector(t *testing.T) {
	t.Run("empty selector includes all", func(t *testing.T) {
		selector := csv.ColumnSelector{}
		if !selector.ShouldInclude("any", 0) {
			t.Error("empty selector should include all columns")
		}
		if !selector.ShouldInclude("other", 5) {
			t.Error("empty selector should include all columns")
		}
	})

	t.Run("select by name", func(t *testing.T) {
		selector := csv.ColumnSelector{
			UseCols: []string{"name", "email"},
		}
		if !selector.ShouldInclude("name", 0) {
			t.Error("should include 'name'")
		}
		if !selector.ShouldInclude("email", 2) {
			t.Error("should include 'email'")
		}
		if selector.ShouldInclude("age", 1) {
			t.Error("should not include 'age'")
		}
	})

	t.Run("select by index", func(t *testing.T) {
		selector := csv.ColumnSelector{
			UseColIndexes: []int{0, 2},
		}
		if !selector.ShouldInclude("any", 0) {
			t.Error("should include index 0")
		}
		if !selector.ShouldInclude("other", 2) {
			t.Error("should include index 2")
		}
		if selector.ShouldInclude("middle", 1) {
			t.Error("should not include index 1")
		}
	})

	t.Run("select by name or index", func(t *testing.T) {
		selector := csv.ColumnSelector{
			UseCols:       []string{"name"},
			UseColIndexes: []int{2},
		}
		if !selector.ShouldInclude("name", 0) {
			t.Error("should include 'name' by name")
		}
		if !selector.ShouldInclude("other", 2) {
			t.Error("should include index 2")
		}
		if selector.ShouldInclude("excluded", 5) {
			t.Error("should not include column not in name or index")
		}
	})
}

func TestSnifferAnalyzeCaching(t *testing.T) {
	sample := "a,b,c\n1,2,3"
	sniffer := csv.NewSniffer(sample)

	// First call should analyze
	sep1 := sniffer.DetectSeparator()

	// Second call should return the cached result
	sep2 := sniffer.DetectSeparator()

	if sep1 != sep2 {
		t.Error("separator results should be consistent")
	}
}
