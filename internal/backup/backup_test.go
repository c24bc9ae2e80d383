package backup

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/lumina/internal/model"
	"github.com/theirongolddev/lumina/internal/pipeline"
)

func sampleSnapshot() *pipeline.Snapshot {
	deadline := model.NewDate(2025, time.June, 30)
	return &pipeline.Snapshot{
		Transactions: []model.Transaction{{
			ID:            "t1",
			Amount:        1000,
			Kind:          model.KindIncome,
			Category:      "salary",
			Frequency:     model.FrequencyMonthly,
			Date:          time.Date(2024, time.January, 5, 12, 0, 0, 0, time.UTC),
			Status:        model.StatusPaid,
			PaymentMethod: model.MethodPix,
		}},
		Goals: []model.Goal{{ID: "g1", Name: "Trip", TargetAmount: 5000, Deadline: &deadline}},
	}
}

func TestEncodeDecode(t *testing.T) {
	now := time.Date(2024, time.February, 3, 10, 0, 0, 0, time.UTC)
	doc := NewDocument(sampleSnapshot(), now)

	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	for _, want := range []string{`"version": "2.1"`, `"type": "income"`, `"deadline": "2025-06-30"`, `"investments": []`} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("encoded backup missing %s:\n%s", want, buf.String())
		}
	}

	back, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(back.Transactions) != 1 || back.Transactions[0].Kind != model.KindIncome {
		t.Errorf("transactions = %+v", back.Transactions)
	}
	if !back.ExportDate.Equal(now) {
		t.Errorf("ExportDate = %v, want %v", back.ExportDate, now)
	}
	if back.Goals[0].Deadline == nil || back.Goals[0].Deadline.String() != "2025-06-30" {
		t.Errorf("goal deadline = %v", back.Goals[0].Deadline)
	}
}

func TestDecode_RequiresTransactions(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"goals": []}`))
	if !errors.Is(err, ErrNoTransactions) {
		t.Errorf("Decode = %v, want ErrNoTransactions", err)
	}
}

func TestDecode_DefaultsMissingCollections(t *testing.T) {
	doc, err := Decode(strings.NewReader(`{"transactions": []}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if doc.Goals == nil || doc.Investments == nil {
		t.Errorf("missing collections not defaulted: %+v", doc)
	}
}

func TestDecode_RejectsInvalidRecords(t *testing.T) {
	tests := []struct {
		name string
		json string
		want error
	}{
		{
			"unknown kind",
			`{"transactions":[{"id":"a","amount":1,"type":"gift","category":"x","frequency":"monthly","date":"2024-01-01T12:00:00Z","status":"paid","paymentMethod":"pix"}]}`,
			model.ErrUnknownValue,
		},
		{
			"negative amount",
			`{"transactions":[{"id":"a","amount":-1,"type":"income","category":"x","frequency":"monthly","date":"2024-01-01T12:00:00Z","status":"paid","paymentMethod":"pix"}]}`,
			model.ErrInvalidAmount,
		},
		{
			"goal without name",
			`{"transactions":[],"goals":[{"id":"g","targetAmount":10}]}`,
			model.ErrMissingName,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.json))
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecode_DuplicateIDs(t *testing.T) {
	doc := NewDocument(sampleSnapshot(), time.Now())
	doc.Transactions = append(doc.Transactions, doc.Transactions[0])

	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		t.Fatal(err)
	}
	if _, err := Decode(&buf); err == nil || !strings.Contains(err.Error(), "duplicate id") {
		t.Errorf("Decode = %v, want duplicate id error", err)
	}
}

func TestFileName(t *testing.T) {
	now := time.Date(2024, time.March, 9, 23, 59, 0, 0, time.UTC)
	if got := FileName(now); got != "lumina_backup_2024-03-09.json" {
		t.Errorf("FileName = %q", got)
	}
}
