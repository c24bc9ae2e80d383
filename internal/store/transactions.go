package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/theirongolddev/lumina/internal/model"
)

// ListTransactions returns every transaction in insertion order.
func (s *Store) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT
		id, amount, kind, category, frequency, occurred_at, note, status, payment_method
		FROM transactions ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var txs []model.Transaction
	for rows.Next() {
		var t model.Transaction
		var kind, freq, occurred, status, method string
		if err := rows.Scan(&t.ID, &t.Amount, &kind, &t.Category, &freq, &occurred, &t.Note, &status, &method); err != nil {
			return nil, err
		}
		if err := decodeTransaction(&t, kind, freq, occurred, status, method); err != nil {
			return nil, fmt.Errorf("transaction %q: %w", t.ID, err)
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

func decodeTransaction(t *model.Transaction, kind, freq, occurred, status, method string) error {
	var err error
	if t.Kind, err = model.ParseKind(kind); err != nil {
		return err
	}
	if t.Frequency, err = model.ParseFrequency(freq); err != nil {
		return err
	}
	if t.Status, err = model.ParseStatus(status); err != nil {
		return err
	}
	if t.PaymentMethod, err = model.ParsePaymentMethod(method); err != nil {
		return err
	}
	if t.Date, err = time.Parse(time.RFC3339Nano, occurred); err != nil {
		return fmt.Errorf("parsing date: %w", err)
	}
	return nil
}

// AddTransaction validates and stores a new transaction.
func (s *Store) AddTransaction(ctx context.Context, t model.Transaction) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("invalid transaction: %w", err)
	}
	return insertTransaction(ctx, s.db, t)
}

func insertTransaction(ctx context.Context, db execer, t model.Transaction) error {
	_, err := db.ExecContext(ctx, `INSERT INTO transactions
		(id, amount, kind, category, frequency, occurred_at, note, status, payment_method, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Amount, t.Kind.String(), t.Category, t.Frequency.String(),
		formatTime(t.Date), t.Note, t.Status.String(), t.PaymentMethod.String(), nowString(),
	)
	if err != nil {
		return fmt.Errorf("inserting transaction %q: %w", t.ID, err)
	}
	return nil
}

// SetTransactionStatus changes the status of the transaction with id.
func (s *Store) SetTransactionStatus(ctx context.Context, id string, status model.Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: transaction status", model.ErrUnknownValue)
	}
	res, err := s.db.ExecContext(ctx, "UPDATE transactions SET status = ? WHERE id = ?", status.String(), id)
	if err != nil {
		return fmt.Errorf("updating transaction %q: %w", id, err)
	}
	return checkAffected(res, "transaction", id)
}

// ToggleTransactionStatus flips the transaction between paid and pending
// and returns the new status.
func (s *Store) ToggleTransactionStatus(ctx context.Context, id string) (model.Status, error) {
	var next model.Status
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var cur string
		err := tx.QueryRowContext(ctx, "SELECT status FROM transactions WHERE id = ?", id).Scan(&cur)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("transaction %q: %w", id, ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("reading transaction %q: %w", id, err)
		}

		status, err := model.ParseStatus(cur)
		if err != nil {
			return err
		}
		next = status.Toggle()

		_, err = tx.ExecContext(ctx, "UPDATE transactions SET status = ? WHERE id = ?", next.String(), id)
		return err
	})
	if err != nil {
		return 0, err
	}
	return next, nil
}

// DeleteTransaction removes the transaction with id.
func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM transactions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting transaction %q: %w", id, err)
	}
	return checkAffected(res, "transaction", id)
}
