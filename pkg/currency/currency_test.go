package currency

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		symbol string
		amount float64
		want   string
	}{
		{"$", 1234.56, "$1,234.56"},
		{"$", 0, "$0.00"},
		{"$", 50, "$50.00"},
		{"$", 1234567.891, "$1,234,567.89"},
		{"$", -50.5, "$-50.50"},
		{"€", 999.999, "€1,000.00"},
	}

	for _, tt := range tests {
		if got := Format(tt.symbol, tt.amount); got != tt.want {
			t.Errorf("Format(%q, %v) = %q, want %q", tt.symbol, tt.amount, got, tt.want)
		}
	}
}
