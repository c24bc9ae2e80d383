package cli

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/theirongolddev/lumina/internal/model"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"100", 100},
		{"12.5", 12.5},
		{"12,5", 12.5},
		{"R$ 1.234,56", 1234.56},
		{"1,234.56", 1234.56},
		{"1.234.567", 1234567},
		{"1,234,567", 1234567},
		{" 0.005 ", 0.01},
		{"$99.999", 100},
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
}

func TestParseAmount_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "0", "-5", "0,001", "1e400x"} {
		if _, err := ParseAmount(in); !errors.Is(err, model.ErrInvalidAmount) {
			t.Errorf("ParseAmount(%q) error = %v, want ErrInvalidAmount", in, err)
		}
	}
}

func FuzzParseAmount(f *testing.F) {
	for _, seed := range []string{"100", "R$ 1.234,56", "1,234.56", "-1", "", "0,0", "9999999999999999999999.99"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, s string) {
		v, err := ParseAmount(s)
		if err != nil {
			return
		}
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("ParseAmount(%q) = %v without error", s, v)
		}
	})
}

func TestParseRate(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"10", 10, false},
		{"10,5%", 10.5, false},
		{"0", 0, false},
		{"-20", -20, false},
		{"-100", 0, true},
		{"ten", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseRate(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, model.ErrInvalidRate) {
			t.Errorf("ParseRate(%q) error = %v, want ErrInvalidRate", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseRate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseTransactionDate(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	// 01:30 UTC on Feb 1 is still Jan 31 in BRT.
	now := time.Date(2024, time.February, 1, 1, 30, 0, 0, time.UTC)

	tests := []struct {
		in   string
		want time.Time
	}{
		{"", time.Date(2024, time.January, 31, 12, 0, 0, 0, loc)},
		{"today", time.Date(2024, time.January, 31, 12, 0, 0, 0, loc)},
		{"yesterday", time.Date(2024, time.January, 30, 12, 0, 0, 0, loc)},
		{"2023-12-25", time.Date(2023, time.December, 25, 12, 0, 0, 0, loc)},
	}
	for _, tt := range tests {
		got, err := ParseTransactionDate(tt.in, now, loc)
		if err != nil {
			t.Errorf("ParseTransactionDate(%q) error: %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseTransactionDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseTransactionDate("31/12/2023", now, loc); err == nil {
		t.Error("ParseTransactionDate accepted dd/mm/yyyy")
	}
}

func TestParseMonthArg(t *testing.T) {
	now := time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC)
	m, err := ParseMonthArg("", now)
	if err != nil || m != (model.MonthKey{Year: 2024, Month: time.May}) {
		t.Errorf("ParseMonthArg(\"\") = %v, %v", m, err)
	}
	m, err = ParseMonthArg("2023-11", now)
	if err != nil || m.String() != "2023-11" {
		t.Errorf("ParseMonthArg(2023-11) = %v, %v", m, err)
	}
}

func TestParseDeadline(t *testing.T) {
	d, err := ParseDeadline("")
	if err != nil || d != nil {
		t.Errorf("ParseDeadline(\"\") = %v, %v, want nil, nil", d, err)
	}
	d, err = ParseDeadline("2025-01-31")
	if err != nil || d == nil || d.String() != "2025-01-31" {
		t.Errorf("ParseDeadline = %v, %v", d, err)
	}
}

func TestParseKindFilter(t *testing.T) {
	tests := []struct {
		in   string
		want []model.Kind
	}{
		{"", nil},
		{"all", nil},
		{"Income", []model.Kind{model.KindIncome}},
		{"fixed", []model.Kind{model.KindFixedExpense}},
		{"variable", []model.Kind{model.KindVariableExpense}},
		{"expense", []model.Kind{model.KindFixedExpense, model.KindVariableExpense}},
	}
	for _, tt := range tests {
		got, err := ParseKindFilter(tt.in)
		if err != nil {
			t.Fatalf("ParseKindFilter(%q): %v", tt.in, err)
		}
		if len(got) != len(tt.want) {
			t.Fatalf("ParseKindFilter(%q) = %v, want %v", tt.in, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ParseKindFilter(%q)[%d] = %v, want %v", tt.in, i, got[i], tt.want[i])
			}
		}
	}

	if _, err := ParseKindFilter("bogus"); !errors.Is(err, model.ErrUnknownValue) {
		t.Errorf("ParseKindFilter(bogus) error = %v, want ErrUnknownValue", err)
	}
}
