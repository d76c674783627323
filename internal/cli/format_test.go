package cli

import (
	"errors"
	"testing"

	"github.com/theirongolddev/payreal/internal/engine"
)

func TestFormatNaira(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "₦0"},
		{999.4, "₦999"},
		{248_813.5, "₦248,814"},
		{2_985_762, "₦2,985,762"},
		{-15_743.26, "-₦15,743"},
		{-0.4, "₦0"},
		{2.5, "₦2"},
		{3.5, "₦4"},
		{250_000.5, "₦250,000"},
		{-2.5, "-₦2"},
	}
	for _, tt := range tests {
		if got := FormatNaira(tt.in); got != tt.want {
			t.Errorf("FormatNaira(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if got := FormatNGN(1_234_567.89); got != "NGN 1,234,568" {
		t.Errorf("FormatNGN = %q, want %q", got, "NGN 1,234,568")
	}
}

func TestFormatCompact(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{300_000, "300K"},
		{1_600_000, "1.6M"},
		{2_500, "2.5K"},
		{42, "42"},
	}
	for _, tt := range tests {
		if got := FormatCompact(tt.in); got != tt.want {
			t.Errorf("FormatCompact(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatRateAndYears(t *testing.T) {
	if got := FormatRate(0.07); got != "7%" {
		t.Errorf("FormatRate(0.07) = %q", got)
	}
	if got := FormatRate(0.025); got != "2.5%" {
		t.Errorf("FormatRate(0.025) = %q", got)
	}
	if got := FormatYears(18); got != "1 year" {
		t.Errorf("FormatYears(18) = %q", got)
	}
	if got := FormatYears(30); got != "2 years" {
		t.Errorf("FormatYears(30) = %q", got)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"2985762", 2_985_762},
		{"₦2,985,762", 2_985_762},
		{"NGN 40,000", 40_000},
		{"250k", 250_000},
		{"1.5M", 1_500_000},
		{"3_000_000", 3_000_000},
		{"  ", 0},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		if err != nil {
			t.Errorf("ParseAmount(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"abc", "-5", "NaN", "Inf", "12x"} {
		if _, err := ParseAmount(bad); !errors.Is(err, engine.ErrInvalidAmount) {
			t.Errorf("ParseAmount(%q) err = %v, want ErrInvalidAmount", bad, err)
		}
	}
}
