package model

import (
	"fmt"
	"time"
)

// MonthKey identifies a calendar month.
type MonthKey struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing t, evaluated in t's location.
func MonthOf(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

// ParseMonth parses "2006-01".
func ParseMonth(s string) (MonthKey, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return MonthKey{}, fmt.Errorf("parsing month %q: %w", s, err)
	}
	return MonthOf(t), nil
}

// Index returns a monotonically increasing month number, handy for sorting
// and month arithmetic.
func (m MonthKey) Index() int {
	return m.Year*12 + int(m.Month) - 1
}

// Before reports whether m is earlier than o.
func (m MonthKey) Before(o MonthKey) bool {
	return m.Index() < o.Index()
}

// Add returns the month n months after m (n may be negative).
func (m MonthKey) Add(n int) MonthKey {
	idx := m.Index() + n
	y := idx / 12
	mo := idx % 12
	if mo < 0 {
		mo += 12
		y--
	}
	return MonthKey{Year: y, Month: time.Month(mo + 1)}
}

// Start returns the first instant of the month in loc.
func (m MonthKey) Start(loc *time.Location) time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, loc)
}

// Label returns a short label such as "Jan 24".
func (m MonthKey) Label() string {
	return m.Start(time.UTC).Format("Jan 06")
}

func (m MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}
