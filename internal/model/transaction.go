// Package model defines the domain types for lumina's ledger and analytics.
package model

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Validation errors shared by all record types.
var (
	ErrMissingID       = errors.New("missing id")
	ErrMissingName     = errors.New("missing name")
	ErrMissingCategory = errors.New("missing category")
	ErrMissingDate     = errors.New("missing date")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidRate     = errors.New("invalid rate")
)

// NewID returns a fresh record identifier.
func NewID() string {
	return uuid.NewString()
}

// Transaction is a single income or expense entry. Only Status changes after
// creation.
type Transaction struct {
	ID            string        `json:"id"`
	Amount        float64       `json:"amount"`
	Kind          Kind          `json:"type"`
	Category      string        `json:"category"`
	Frequency     Frequency     `json:"frequency"`
	Date          time.Time     `json:"date"`
	Note          string        `json:"note,omitempty"`
	Status        Status        `json:"status"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

// Month returns the calendar month the transaction belongs to.
func (t Transaction) Month() MonthKey {
	return MonthOf(t.Date)
}

// Validate checks the fields a stored transaction must carry.
func (t Transaction) Validate() error {
	switch {
	case strings.TrimSpace(t.ID) == "":
		return ErrMissingID
	case !validAmount(t.Amount):
		return ErrInvalidAmount
	case !t.Kind.Valid():
		return fmt.Errorf("%w: transaction kind", ErrUnknownValue)
	case !t.Status.Valid():
		return fmt.Errorf("%w: transaction status", ErrUnknownValue)
	case !t.PaymentMethod.Valid():
		return fmt.Errorf("%w: payment method", ErrUnknownValue)
	case !t.Frequency.Valid():
		return fmt.Errorf("%w: frequency", ErrUnknownValue)
	case strings.TrimSpace(t.Category) == "":
		return ErrMissingCategory
	case t.Date.IsZero():
		return ErrMissingDate
	}
	return nil
}

func validAmount(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
