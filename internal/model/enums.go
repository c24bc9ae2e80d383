package model

import (
	"errors"
	"fmt"
)

// ErrUnknownValue is returned when an enum name does not match any variant.
var ErrUnknownValue = errors.New("unknown value")

// Kind classifies a transaction as money in or money out.
type Kind uint8

// Transaction kinds. The zero value is invalid.
const (
	KindIncome Kind = iota + 1
	KindFixedExpense
	KindVariableExpense
	kindEnd
)

var kindNames = [...]string{
	KindIncome:          "income",
	KindFixedExpense:    "expense_fixed",
	KindVariableExpense: "expense_variable",
}

// A Kind added without a name fails to compile here.
var _ = [1]struct{}{}[len(kindNames)-int(kindEnd)]

// IsIncome reports whether k adds to the income side of a summary.
func (k Kind) IsIncome() bool {
	switch k {
	case KindIncome:
		return true
	case KindFixedExpense, KindVariableExpense:
		return false
	}
	panic(fmt.Sprintf("model: unknown transaction kind %d", k))
}

func (k Kind) String() string { return enumName(kindNames[:], k) }

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return k > 0 && k < kindEnd }

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) { return marshalEnum(kindNames[:], k, "transaction kind") }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// ParseKind parses a kind name such as "expense_fixed".
func ParseKind(s string) (Kind, error) { return parseEnum[Kind](kindNames[:], s, "transaction kind") }

// Status tracks whether a transaction has actually been settled.
type Status uint8

// Transaction statuses. The zero value is invalid.
const (
	StatusPaid Status = iota + 1
	StatusPending
	statusEnd
)

var statusNames = [...]string{
	StatusPaid:    "paid",
	StatusPending: "pending",
}

var _ = [1]struct{}{}[len(statusNames)-int(statusEnd)]

// IsPaid reports whether s counts toward the realized view.
func (s Status) IsPaid() bool {
	switch s {
	case StatusPaid:
		return true
	case StatusPending:
		return false
	}
	panic(fmt.Sprintf("model: unknown transaction status %d", s))
}

// Toggle flips paid and pending.
func (s Status) Toggle() Status {
	if s.IsPaid() {
		return StatusPending
	}
	return StatusPaid
}

func (s Status) String() string { return enumName(statusNames[:], s) }

// Valid reports whether s is one of the declared statuses.
func (s Status) Valid() bool { return s > 0 && s < statusEnd }

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return marshalEnum(statusNames[:], s, "transaction status")
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(b []byte) error {
	v, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseStatus parses "paid" or "pending".
func ParseStatus(s string) (Status, error) {
	return parseEnum[Status](statusNames[:], s, "transaction status")
}

// PaymentMethod is how a transaction was paid.
type PaymentMethod uint8

// Payment methods. The zero value is invalid.
const (
	MethodCreditCard PaymentMethod = iota + 1
	MethodDebitCard
	MethodPix
	MethodCash
	MethodOther
	methodEnd
)

var methodNames = [...]string{
	MethodCreditCard: "credit_card",
	MethodDebitCard:  "debit_card",
	MethodPix:        "pix",
	MethodCash:       "cash",
	MethodOther:      "other",
}

var _ = [1]struct{}{}[len(methodNames)-int(methodEnd)]

func (m PaymentMethod) String() string { return enumName(methodNames[:], m) }

// Valid reports whether m is one of the declared methods.
func (m PaymentMethod) Valid() bool { return m > 0 && m < methodEnd }

// MarshalText implements encoding.TextMarshaler.
func (m PaymentMethod) MarshalText() ([]byte, error) {
	return marshalEnum(methodNames[:], m, "payment method")
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *PaymentMethod) UnmarshalText(b []byte) error {
	v, err := ParsePaymentMethod(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// ParsePaymentMethod parses a method name such as "pix".
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	return parseEnum[PaymentMethod](methodNames[:], s, "payment method")
}

// PaymentMethods returns every method in display order.
func PaymentMethods() []PaymentMethod {
	out := make([]PaymentMethod, 0, methodEnd-1)
	for m := MethodCreditCard; m < methodEnd; m++ {
		out = append(out, m)
	}
	return out
}

// Frequency records how often a transaction recurs. It is informational only.
type Frequency uint8

// Frequencies. The zero value is invalid.
const (
	FrequencyMonthly Frequency = iota + 1
	FrequencyYearly
	FrequencyOneTime
	frequencyEnd
)

var frequencyNames = [...]string{
	FrequencyMonthly: "monthly",
	FrequencyYearly:  "yearly",
	FrequencyOneTime: "one_time",
}

var _ = [1]struct{}{}[len(frequencyNames)-int(frequencyEnd)]

func (f Frequency) String() string { return enumName(frequencyNames[:], f) }

// Valid reports whether f is one of the declared frequencies.
func (f Frequency) Valid() bool { return f > 0 && f < frequencyEnd }

// MarshalText implements encoding.TextMarshaler.
func (f Frequency) MarshalText() ([]byte, error) {
	return marshalEnum(frequencyNames[:], f, "frequency")
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Frequency) UnmarshalText(b []byte) error {
	v, err := ParseFrequency(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// ParseFrequency parses "monthly", "yearly" or "one_time".
func ParseFrequency(s string) (Frequency, error) {
	return parseEnum[Frequency](frequencyNames[:], s, "frequency")
}

func enumName[T ~uint8](names []string, v T) string {
	if int(v) <= 0 || int(v) >= len(names) {
		return fmt.Sprintf("invalid(%d)", v)
	}
	return names[v]
}

func marshalEnum[T ~uint8](names []string, v T, what string) ([]byte, error) {
	if int(v) <= 0 || int(v) >= len(names) {
		return nil, fmt.Errorf("%w: %s %d", ErrUnknownValue, what, v)
	}
	return []byte(names[v]), nil
}

func parseEnum[T ~uint8](names []string, s, what string) (T, error) {
	for i, name := range names {
		if i > 0 && name == s {
			return T(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %s %q", ErrUnknownValue, what, s)
}
