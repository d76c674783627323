// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/payreal/internal/engine"
)

// FormatNaira formats a monetary value rounded half to even to whole naira.
// e.g., 248813.5 -> "₦248,814", 2.5 -> "₦2", -15743.2 -> "-₦15,743"
func FormatNaira(v float64) string {
	return formatMoney("₦", v)
}

// FormatNGN is FormatNaira with an ASCII currency code, for outputs whose
// fonts lack the naira sign.
func FormatNGN(v float64) string {
	return formatMoney("NGN ", v)
}

func formatMoney(symbol string, v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return symbol + "-"
	}
	n := decimal.NewFromFloat(v).RoundBank(0).IntPart()
	if n < 0 {
		return "-" + symbol + FormatNumber(-n)
	}
	return symbol + FormatNumber(n)
}

// FormatCompact formats an amount with human-readable suffixes.
// e.g., 300000 -> "300K", 1600000 -> "1.6M"
func FormatCompact(v float64) string {
	abs := math.Abs(v)

	switch {
	case math.IsInf(v, 1):
		return "∞"
	case abs >= 1_000_000_000:
		return trimZero(fmt.Sprintf("%.1f", v/1_000_000_000)) + "B"
	case abs >= 1_000_000:
		return trimZero(fmt.Sprintf("%.1f", v/1_000_000)) + "M"
	case abs >= 1_000:
		return trimZero(fmt.Sprintf("%.1f", v/1_000)) + "K"
	default:
		return strconv.FormatFloat(math.Round(v), 'f', -1, 64)
	}
}

func trimZero(s string) string {
	return strings.TrimSuffix(s, ".0")
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatRate formats a tax rate such as 0.07 as "7%".
func FormatRate(rate float64) string {
	return decimal.NewFromFloat(rate).Shift(2).String() + "%"
}

// FormatYears formats a month count as whole years, the way the goal
// tracker phrases it. e.g., 18 -> "1 year", 30 -> "2 years"
func FormatYears(months int) string {
	years := months / 12
	if years == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", years)
}

// ParseAmount parses a user-entered amount. It accepts thousands separators,
// underscores, a leading "₦" or "NGN", and k/m suffixes.
// e.g., "₦2,985,762" -> 2985762, "250k" -> 250000, "1.5m" -> 1500000
func ParseAmount(s string) (float64, error) {
	raw := s
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "₦")
	if len(s) >= 3 && strings.EqualFold(s[:3], "NGN") {
		s = s[3:]
	}
	s = strings.NewReplacer(",", "", "_", "", " ", "").Replace(s)
	if s == "" {
		return 0, nil
	}

	mult := 1.0
	switch s[len(s)-1] {
	case 'k', 'K':
		mult = 1_000
		s = s[:len(s)-1]
	case 'm', 'M':
		mult = 1_000_000
		s = s[:len(s)-1]
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", engine.ErrInvalidAmount, raw)
	}
	v *= mult
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not a finite number", engine.ErrInvalidAmount, raw)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: %q must not be negative", engine.ErrInvalidAmount, raw)
	}
	return v, nil
}
