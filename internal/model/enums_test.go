package model

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestKindNamesRoundTrip(t *testing.T) {
	for k := KindIncome; k < kindEnd; k++ {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", k.String(), err)
		}
		if got != k {
			t.Errorf("ParseKind(%q) = %d, want %d", k.String(), got, k)
		}
	}
}

func TestKindIsIncome(t *testing.T) {
	if !KindIncome.IsIncome() {
		t.Error("KindIncome.IsIncome() = false")
	}
	if KindFixedExpense.IsIncome() || KindVariableExpense.IsIncome() {
		t.Error("expense kind reported as income")
	}

	defer func() {
		if recover() == nil {
			t.Error("IsIncome on the zero Kind did not panic")
		}
	}()
	Kind(0).IsIncome()
}

func TestParseUnknownValues(t *testing.T) {
	if _, err := ParseKind("expense"); !errors.Is(err, ErrUnknownValue) {
		t.Errorf("ParseKind(expense) error = %v, want ErrUnknownValue", err)
	}
	if _, err := ParseStatus(""); !errors.Is(err, ErrUnknownValue) {
		t.Errorf("ParseStatus(\"\") error = %v, want ErrUnknownValue", err)
	}
	if _, err := ParsePaymentMethod("cheque"); !errors.Is(err, ErrUnknownValue) {
		t.Errorf("ParsePaymentMethod(cheque) error = %v, want ErrUnknownValue", err)
	}
	if _, err := ParseFrequency("weekly"); !errors.Is(err, ErrUnknownValue) {
		t.Errorf("ParseFrequency(weekly) error = %v, want ErrUnknownValue", err)
	}
}

func TestStatusToggle(t *testing.T) {
	if StatusPaid.Toggle() != StatusPending || StatusPending.Toggle() != StatusPaid {
		t.Error("Toggle does not flip paid and pending")
	}
}

func TestEnumsMarshalAsNames(t *testing.T) {
	v := struct {
		Kind      Kind          `json:"type"`
		Status    Status        `json:"status"`
		Method    PaymentMethod `json:"method"`
		Frequency Frequency     `json:"frequency"`
	}{KindFixedExpense, StatusPending, MethodPix, FrequencyOneTime}

	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"type":"expense_fixed","status":"pending","method":"pix","frequency":"one_time"}`
	if string(b) != want {
		t.Errorf("Marshal = %s, want %s", b, want)
	}

	var bad struct {
		Kind Kind `json:"type"`
	}
	if err := json.Unmarshal([]byte(`{"type":"bogus"}`), &bad); err == nil {
		t.Error("Unmarshal accepted an unknown kind")
	}
	if _, err := json.Marshal(struct{ K Kind }{}); err == nil {
		t.Error("Marshal accepted the zero Kind")
	}
}

func TestPaymentMethods(t *testing.T) {
	methods := PaymentMethods()
	if len(methods) != 5 || methods[0] != MethodCreditCard || methods[4] != MethodOther {
		t.Errorf("PaymentMethods() = %v", methods)
	}
}

func TestGoalVerdictFeasible(t *testing.T) {
	tests := []struct {
		v    GoalVerdict
		want bool
	}{
		{VerdictReached, true},
		{VerdictOnTrack, true},
		{VerdictBehind, false},
		{VerdictProjected, true},
		{VerdictIndefinite, false},
	}
	for _, tt := range tests {
		if got := tt.v.Feasible(); got != tt.want {
			t.Errorf("%s.Feasible() = %v, want %v", tt.v, got, tt.want)
		}
	}
}
