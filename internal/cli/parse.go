package cli

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/lumina/internal/model"
)

var hundred = decimal.NewFromInt(100)

// parseDecimal parses a normalized number. Exponent notation is rejected.
func parseDecimal(s string) (decimal.Decimal, error) {
	n := normalizeNumber(s)
	if strings.ContainsAny(n, "eE") {
		return decimal.Decimal{}, fmt.Errorf("exponent notation not accepted")
	}
	return decimal.NewFromString(n)
}

// normalizeNumber strips currency symbols and grouping so that "R$ 1.234,56",
// "1,234.56" and "1234.56" all become "1234.56". When both separators appear
// the last one is the decimal point. A lone separator repeated more than once
// is grouping.
func normalizeNumber(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "_", "")

	dot := strings.LastIndex(s, ".")
	comma := strings.LastIndex(s, ",")
	switch {
	case dot >= 0 && comma >= 0:
		if comma > dot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case comma >= 0:
		if strings.Count(s, ",") > 1 {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.Replace(s, ",", ".", 1)
		}
	case dot >= 0 && strings.Count(s, ".") > 1:
		s = strings.ReplaceAll(s, ".", "")
	}
	return s
}

// ParseAmount parses a user-entered money amount, rounded to cents.
// The amount must be strictly positive.
func ParseAmount(s string) (float64, error) {
	d, err := parseDecimal(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", model.ErrInvalidAmount, s)
	}
	d = d.Round(2)
	if !d.IsPositive() {
		return 0, fmt.Errorf("%w: %q must be greater than zero", model.ErrInvalidAmount, s)
	}
	v := d.InexactFloat64()
	if math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is out of range", model.ErrInvalidAmount, s)
	}
	return v, nil
}

// ParseRate parses an annual percentage rate such as "10", "10,5" or "10.5%".
// Zero and negative rates are allowed down to, but excluding, -100.
func ParseRate(s string) (float64, error) {
	d, err := parseDecimal(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", model.ErrInvalidRate, s)
	}
	if d.LessThanOrEqual(hundred.Neg()) {
		return 0, fmt.Errorf("%w: %q must be above -100%%", model.ErrInvalidRate, s)
	}
	v := d.Round(4).InexactFloat64()
	if math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is out of range", model.ErrInvalidRate, s)
	}
	return v, nil
}

// ParseTransactionDate parses "today", "yesterday" or "YYYY-MM-DD" into noon
// of that day in loc, so that the day never shifts across time zones. An
// empty string means today.
func ParseTransactionDate(s string, now time.Time, loc *time.Location) (time.Time, error) {
	now = now.In(loc)
	var day model.Date
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		day = model.DateOf(now)
	case "yesterday":
		day = model.DateOf(now.AddDate(0, 0, -1))
	default:
		d, err := model.ParseDate(strings.TrimSpace(s))
		if err != nil {
			return time.Time{}, err
		}
		day = d
	}
	return time.Date(day.Year, day.Month, day.Day, 12, 0, 0, 0, loc), nil
}

// ParseMonthArg parses "YYYY-MM", or returns the month of now when s is empty.
func ParseMonthArg(s string, now time.Time) (model.MonthKey, error) {
	if strings.TrimSpace(s) == "" {
		return model.MonthOf(now), nil
	}
	return model.ParseMonth(strings.TrimSpace(s))
}

// ParseDeadline parses an optional goal deadline; empty means none.
func ParseDeadline(s string) (*model.Date, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := model.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// KindFilters lists the accepted list-filter names in cycling order.
var KindFilters = []string{"all", "income", "fixed", "variable"}

// ParseKindFilter maps a list filter name to the kinds it selects. "all"
// (or empty) selects every kind and returns nil.
func ParseKindFilter(s string) ([]model.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return nil, nil
	case "income":
		return []model.Kind{model.KindIncome}, nil
	case "fixed":
		return []model.Kind{model.KindFixedExpense}, nil
	case "variable":
		return []model.Kind{model.KindVariableExpense}, nil
	case "expense", "expenses":
		return []model.Kind{model.KindFixedExpense, model.KindVariableExpense}, nil
	}
	return nil, fmt.Errorf("%w: kind filter %q (want all, income, fixed, variable or expense)", model.ErrUnknownValue, s)
}
