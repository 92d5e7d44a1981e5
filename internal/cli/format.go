// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney formats an amount with two decimals, thousands separators
// and a trailing currency label.
// e.g., 1905 -> "1,905.00 лв"
func FormatMoney(v float64, currency string) string {
	neg := v < 0
	if neg {
		v = -v
	}
	cents := int64(math.Round(v * 100))
	s := fmt.Sprintf("%s.%02d", FormatNumber(cents/100), cents%100)
	if neg {
		s = "-" + s
	}
	if currency == "" {
		return s
	}
	return s + " " + currency
}

// FormatDistance formats a distance in whole units.
func FormatDistance(d float64) string {
	return FormatNumber(int64(math.Round(d))) + " km"
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

// FormatPrice formats a per-unit transport price.
func FormatPrice(p float64, currency string) string {
	s := strconv.FormatFloat(p, 'f', -1, 64)
	if currency == "" {
		return s + "/km"
	}
	return s + " " + currency + "/km"
}
