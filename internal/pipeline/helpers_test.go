package pipeline

import (
	"math"
	"testing"
	"time"

	"github.com/theirongolddev/lumina/internal/model"
)

func mustTime(t testing.TB, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d.Add(12 * time.Hour)
}

func tx(t testing.TB, id string, amount float64, kind model.Kind, status model.Status, date, category string) model.Transaction {
	t.Helper()
	return model.Transaction{
		ID:            id,
		Amount:        amount,
		Kind:          kind,
		Category:      category,
		Frequency:     model.FrequencyOneTime,
		Date:          mustTime(t, date),
		Status:        status,
		PaymentMethod: model.MethodPix,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
