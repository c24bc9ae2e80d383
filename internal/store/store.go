// Package store persists lumina's transactions, goals and investments in a
// local SQLite database.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/lumina/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrNotFound is returned when a record with the requested id does not exist.
var ErrNotFound = errors.New("record not found")

// Store is the SQLite-backed record store.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at dbPath and applies any pending
// migrations.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to db: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Counts holds the number of stored records per collection.
type Counts struct {
	Transactions int
	Goals        int
	Investments  int
}

// Count returns the number of stored records per collection.
func (s *Store) Count(ctx context.Context) (Counts, error) {
	var c Counts
	err := s.db.QueryRowContext(ctx, `SELECT
		(SELECT COUNT(*) FROM transactions),
		(SELECT COUNT(*) FROM goals),
		(SELECT COUNT(*) FROM investments)`).Scan(&c.Transactions, &c.Goals, &c.Investments)
	if err != nil {
		return Counts{}, fmt.Errorf("counting records: %w", err)
	}
	return c, nil
}

// ReplaceAll swaps every stored record for the given ones in a single
// transaction. Records are validated first; nothing is written if any
// record is invalid.
func (s *Store) ReplaceAll(ctx context.Context, txs []model.Transaction, goals []model.Goal, invs []model.Investment) error {
	for _, t := range txs {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("transaction %q: %w", t.ID, err)
		}
	}
	for _, g := range goals {
		if err := g.Validate(); err != nil {
			return fmt.Errorf("goal %q: %w", g.ID, err)
		}
	}
	for _, inv := range invs {
		if err := inv.Validate(); err != nil {
			return fmt.Errorf("investment %q: %w", inv.ID, err)
		}
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := deleteAll(ctx, tx); err != nil {
			return err
		}
		for _, t := range txs {
			if err := insertTransaction(ctx, tx, t); err != nil {
				return err
			}
		}
		for _, g := range goals {
			if err := upsertGoal(ctx, tx, g); err != nil {
				return err
			}
		}
		for _, inv := range invs {
			if err := insertInvestment(ctx, tx, inv); err != nil {
				return err
			}
		}
		return nil
	})
}

// Reset deletes every stored record.
func (s *Store) Reset(ctx context.Context) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		return deleteAll(ctx, tx)
	})
}

func deleteAll(ctx context.Context, tx *sql.Tx) error {
	for _, table := range []string{"transactions", "goals", "investments"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	return nil
}

func (s *Store) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// checkAffected maps a zero-row update or delete to ErrNotFound.
func checkAffected(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

func nowString() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
