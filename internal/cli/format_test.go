package cli

import (
	"testing"
	"time"

	"github.com/theirongolddev/lumina/internal/model"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		currency string
		in       float64
		want     string
	}{
		{"R$", 0, "R$ 0.00"},
		{"R$", 1234.5, "R$ 1,234.50"},
		{"R$", 0.005, "R$ 0.01"},
		{"R$", -20, "-R$ 20.00"},
		{"$", 1234567.891, "$ 1,234,567.89"},
		{"", 42, "42.00"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.currency, tt.in); got != tt.want {
			t.Errorf("FormatMoney(%q, %v) = %q, want %q", tt.currency, tt.in, got, tt.want)
		}
	}
}

func TestFormatSignedMoney(t *testing.T) {
	if got := FormatSignedMoney("R$", 10); got != "+R$ 10.00" {
		t.Errorf("FormatSignedMoney(10) = %q", got)
	}
	if got := FormatSignedMoney("R$", -10); got != "-R$ 10.00" {
		t.Errorf("FormatSignedMoney(-10) = %q", got)
	}
}

func TestFormatCompactMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{999, "999"},
		{1234, "1.2K"},
		{2_500_000, "2.5M"},
		{-1500, "-1.5K"},
	}
	for _, tt := range tests {
		if got := FormatCompactMoney(tt.in); got != tt.want {
			t.Errorf("FormatCompactMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatMonths(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0m"},
		{5, "5m"},
		{12, "1y"},
		{27, "2y 3m"},
	}
	for _, tt := range tests {
		if got := FormatMonths(tt.in); got != tt.want {
			t.Errorf("FormatMonths(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatMonthAndRate(t *testing.T) {
	if got := FormatMonth(model.MonthKey{Year: 2024, Month: time.March}); got != "March 2024" {
		t.Errorf("FormatMonth = %q", got)
	}
	if got := FormatRate(10.5); got != "10.5% a.a." {
		t.Errorf("FormatRate = %q", got)
	}
	if got := FormatPercent(33.333); got != "33.3%" {
		t.Errorf("FormatPercent = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("Alimentação", 5); got != "Alim…" {
		t.Errorf("Truncate = %q", got)
	}
	if got := Truncate("food", 10); got != "food" {
		t.Errorf("Truncate short = %q", got)
	}
}
