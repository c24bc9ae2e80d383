package model

import (
	"math"
	"strings"
	"time"
)

// Investment is a recurring monthly contribution growing at a fixed annual
// rate. StartDate is informational.
type Investment struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	MonthlyContribution float64   `json:"monthlyContribution"`
	AnnualRate          float64   `json:"annualRate"` // percent, e.g. 10 for 10%/year
	StartDate           time.Time `json:"startDate"`
}

// Validate checks the fields a stored investment must carry.
func (i Investment) Validate() error {
	switch {
	case strings.TrimSpace(i.ID) == "":
		return ErrMissingID
	case strings.TrimSpace(i.Name) == "":
		return ErrMissingName
	case !validAmount(i.MonthlyContribution):
		return ErrInvalidAmount
	case math.IsNaN(i.AnnualRate) || math.IsInf(i.AnnualRate, 0) || i.AnnualRate <= -100:
		return ErrInvalidRate
	}
	return nil
}

// Category is display metadata for a category identifier.
type Category struct {
	ID    string
	Name  string
	Icon  string
	Color string
}
