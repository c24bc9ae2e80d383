// Package backup reads and writes the portable JSON backup of a ledger.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/theirongolddev/lumina/internal/model"
	"github.com/theirongolddev/lumina/internal/pipeline"
)

// FormatVersion is written into every exported document.
const FormatVersion = "2.1"

// ErrNoTransactions is returned when a document lacks the transactions array.
var ErrNoTransactions = errors.New("backup has no transactions array")

// Document is the on-disk backup layout.
type Document struct {
	Transactions []model.Transaction `json:"transactions"`
	Goals        []model.Goal        `json:"goals"`
	Investments  []model.Investment  `json:"investments"`
	ExportDate   time.Time           `json:"exportDate"`
	Version      string              `json:"version"`
}

// NewDocument wraps snap for export, stamped with now.
func NewDocument(snap *pipeline.Snapshot, now time.Time) Document {
	doc := Document{
		Transactions: snap.Transactions,
		Goals:        snap.Goals,
		Investments:  snap.Investments,
		ExportDate:   now.UTC(),
		Version:      FormatVersion,
	}
	if doc.Transactions == nil {
		doc.Transactions = []model.Transaction{}
	}
	if doc.Goals == nil {
		doc.Goals = []model.Goal{}
	}
	if doc.Investments == nil {
		doc.Investments = []model.Investment{}
	}
	return doc
}

// Snapshot returns the records held by the document.
func (d Document) Snapshot() *pipeline.Snapshot {
	return &pipeline.Snapshot{
		Transactions: d.Transactions,
		Goals:        d.Goals,
		Investments:  d.Investments,
	}
}

// Encode writes doc as indented JSON.
func Encode(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding backup: %w", err)
	}
	return nil
}

// Decode reads a backup document. The transactions array is required;
// missing goals and investments become empty. Every record is validated.
func Decode(r io.Reader) (Document, error) {
	var raw struct {
		Transactions *[]model.Transaction `json:"transactions"`
		Goals        []model.Goal         `json:"goals"`
		Investments  []model.Investment   `json:"investments"`
		ExportDate   time.Time            `json:"exportDate"`
		Version      string               `json:"version"`
	}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Document{}, fmt.Errorf("decoding backup: %w", err)
	}
	if raw.Transactions == nil {
		return Document{}, ErrNoTransactions
	}

	doc := Document{
		Transactions: *raw.Transactions,
		Goals:        raw.Goals,
		Investments:  raw.Investments,
		ExportDate:   raw.ExportDate,
		Version:      raw.Version,
	}
	if doc.Goals == nil {
		doc.Goals = []model.Goal{}
	}
	if doc.Investments == nil {
		doc.Investments = []model.Investment{}
	}

	if err := doc.Validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Validate checks every record and rejects duplicate ids within a collection.
func (d Document) Validate() error {
	var errs []error

	seen := make(map[string]bool)
	for i, t := range d.Transactions {
		if err := t.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("transactions[%d]: %w", i, err))
		} else if seen[t.ID] {
			errs = append(errs, fmt.Errorf("transactions[%d]: duplicate id %q", i, t.ID))
		}
		seen[t.ID] = true
	}

	clear(seen)
	for i, g := range d.Goals {
		if err := g.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("goals[%d]: %w", i, err))
		} else if seen[g.ID] {
			errs = append(errs, fmt.Errorf("goals[%d]: duplicate id %q", i, g.ID))
		}
		seen[g.ID] = true
	}

	clear(seen)
	for i, inv := range d.Investments {
		if err := inv.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("investments[%d]: %w", i, err))
		} else if seen[inv.ID] {
			errs = append(errs, fmt.Errorf("investments[%d]: duplicate id %q", i, inv.ID))
		}
		seen[inv.ID] = true
	}

	return errors.Join(errs...)
}

// FileName returns the default export file name for now.
func FileName(now time.Time) string {
	return "lumina_backup_" + now.Format("2006-01-02") + ".json"
}
