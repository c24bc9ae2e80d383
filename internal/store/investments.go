package store

import (
	"context"
	"fmt"
	"time"

	"github.com/theirongolddev/lumina/internal/model"
)

// ListInvestments returns every investment in insertion order.
func (s *Store) ListInvestments(ctx context.Context) ([]model.Investment, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT
		id, name, monthly_contribution, annual_rate, start_date
		FROM investments ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying investments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var invs []model.Investment
	for rows.Next() {
		var inv model.Investment
		var start string
		if err := rows.Scan(&inv.ID, &inv.Name, &inv.MonthlyContribution, &inv.AnnualRate, &start); err != nil {
			return nil, err
		}
		if start != "" {
			if inv.StartDate, err = time.Parse(time.RFC3339Nano, start); err != nil {
				return nil, fmt.Errorf("investment %q: parsing start date: %w", inv.ID, err)
			}
		}
		invs = append(invs, inv)
	}
	return invs, rows.Err()
}

// AddInvestment validates and stores a new investment.
func (s *Store) AddInvestment(ctx context.Context, inv model.Investment) error {
	if err := inv.Validate(); err != nil {
		return fmt.Errorf("invalid investment: %w", err)
	}
	return insertInvestment(ctx, s.db, inv)
}

func insertInvestment(ctx context.Context, db execer, inv model.Investment) error {
	start := ""
	if !inv.StartDate.IsZero() {
		start = formatTime(inv.StartDate)
	}
	_, err := db.ExecContext(ctx, `INSERT INTO investments
		(id, name, monthly_contribution, annual_rate, start_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.Name, inv.MonthlyContribution, inv.AnnualRate, start, nowString(),
	)
	if err != nil {
		return fmt.Errorf("inserting investment %q: %w", inv.ID, err)
	}
	return nil
}

// DeleteInvestment removes the investment with id.
func (s *Store) DeleteInvestment(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM investments WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting investment %q: %w", id, err)
	}
	return checkAffected(res, "investment", id)
}
