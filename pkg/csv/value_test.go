package csv_test

import (
	"testing"

	"github.com/shapestone/shape-typedcsv/pkg/csv"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind csv.Kind
		want string
	}{
		{csv.KindText, "text"},
		{csv.KindInteger, "integer"},
		{csv.KindFloat, "float"},
		{csv.Kind(42), "Kind(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("Kind.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValue_KindAndString(t *testing.T) {
	tests := []struct {
		name     string
		value    csv.Value
		wantKind csv.Kind
		wantStr  string
	}{
		{"integer", csv.Integer(-7), csv.KindInteger, "-7"},
		{"float", csv.Float(62.5), csv.KindFloat, "62.5"},
		{"integral float keeps point", csv.Float(90), csv.KindFloat, "90.0"},
		{"negative float", csv.Float(-0.25), csv.KindFloat, "-0.25"},
		{"large float", csv.Float(1e21), csv.KindFloat, "1000000000000000000000.0"},
		{"text", csv.Text("Mads"), csv.KindText, "Mads"},
		{"empty text", csv.Text(""), csv.KindText, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.Kind(); got != tt.wantKind {
				t.Errorf("Kind() = %v, want %v", got, tt.wantKind)
			}
			if got := tt.value.String(); got != tt.wantStr {
				t.Errorf("String() = %q, want %q", got, tt.wantStr)
			}
			if got := csv.Infer(tt.value.String()); got.Kind() != tt.wantKind {
				t.Errorf("Infer(String()) kind = %v, want %v", got.Kind(), tt.wantKind)
			}
		})
	}
}
