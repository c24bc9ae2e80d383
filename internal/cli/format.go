// Package cli provides formatting, input parsing and rendering utilities for
// terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/theirongolddev/lumina/internal/model"
)

// FormatMoney formats an amount with the currency symbol and two decimals.
// e.g., ("R$", 1234.5) -> "R$ 1,234.50", ("R$", -20) -> "-R$ 20.00"
func FormatMoney(currency string, v float64) string {
	if v < 0 {
		return "-" + FormatMoney(currency, -v)
	}
	cents := int64(math.Round(v * 100))
	s := FormatNumber(cents/100) + fmt.Sprintf(".%02d", cents%100)
	if currency == "" {
		return s
	}
	return currency + " " + s
}

// FormatSignedMoney is FormatMoney with an explicit "+" for positive values.
func FormatSignedMoney(currency string, v float64) string {
	if v > 0 {
		return "+" + FormatMoney(currency, v)
	}
	return FormatMoney(currency, v)
}

// FormatCompactMoney formats large amounts with K/M suffixes for charts.
// e.g., 1234 -> "1.2K", 2500000 -> "2.5M"
func FormatCompactMoney(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.1fK", v/1_000)
	default:
		return fmt.Sprintf("%.0f", v)
	}
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

// FormatPercent formats a value already expressed in percent.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatRate formats an annual rate, e.g. 10.5 -> "10.5% a.a.".
func FormatRate(annual float64) string {
	return strconv.FormatFloat(annual, 'f', -1, 64) + "% a.a."
}

// FormatMonth returns a long month label such as "January 2024".
func FormatMonth(m model.MonthKey) string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

// FormatMonths formats a month count as years and months.
// e.g., 27 -> "2y 3m", 12 -> "1y", 5 -> "5m"
func FormatMonths(n int) string {
	if n <= 0 {
		return "0m"
	}
	years, months := n/12, n%12
	switch {
	case years == 0:
		return fmt.Sprintf("%dm", months)
	case months == 0:
		return fmt.Sprintf("%dy", years)
	default:
		return fmt.Sprintf("%dy %dm", years, months)
	}
}

// Truncate shortens s to at most n runes, ending in "…" when cut.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
