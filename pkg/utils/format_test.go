package utils

import "testing"

func TestNormalizeSymbol(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"aapl", "AAPL"},
		{"  tsla ", "TSLA"},
		{"MSFT", "MSFT"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeSymbol(tt.in); got != tt.want {
			t.Errorf("NormalizeSymbol(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{175.25, "175.25"},
		{248.5, "248.50"},
		{100, "100.00"},
		{99.999, "100.00"},
	}
	for _, tt := range tests {
		if got := FormatPrice(tt.in); got != tt.want {
			t.Errorf("FormatPrice(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatMarketCap(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2.8e12, "$2.80T"},
		{7.8e11, "$780.00B"},
		{5e7, "$50.00M"},
		{1234, "$1234"},
		{0, "N/A"},
	}
	for _, tt := range tests {
		if got := FormatMarketCap(tt.in); got != tt.want {
			t.Errorf("FormatMarketCap(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
