package utils

import "testing"

func TestFormatINR(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "₹0"},
		{300, "₹300"},
		{999, "₹999"},
		{1000, "₹1,000"},
		{12000, "₹12,000"},
		{99999, "₹99,999"},
		{100000, "₹1,00,000"},
		{1234567, "₹12,34,567"},
		{12345678, "₹1,23,45,678"},
		{-12000, "-₹12,000"},
	}

	for _, tt := range tests {
		if got := FormatINR(tt.amount); got != tt.want {
			t.Errorf("FormatINR(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestDigitsOnly(t *testing.T) {
	tests := []struct {
		phone string
		want  string
	}{
		{"+91 98765-43210", "919876543210"},
		{"(0461) 232 4567", "04612324567"},
		{"9876543210", "9876543210"},
		{"", ""},
		{"no digits", ""},
	}

	for _, tt := range tests {
		if got := DigitsOnly(tt.phone); got != tt.want {
			t.Errorf("DigitsOnly(%q) = %q, want %q", tt.phone, got, tt.want)
		}
	}
}
