package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/theirongolddev/lumina/internal/model"
)

// ListGoals returns every goal in insertion order.
func (s *Store) ListGoals(ctx context.Context) ([]model.Goal, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT
		id, name, target_amount, current_amount, deadline, icon
		FROM goals ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying goals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var goals []model.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// GetGoal returns the goal with id.
func (s *Store) GetGoal(ctx context.Context, id string) (model.Goal, error) {
	row := s.db.QueryRowContext(ctx, `SELECT
		id, name, target_amount, current_amount, deadline, icon
		FROM goals WHERE id = ?`, id)
	g, err := scanGoal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Goal{}, fmt.Errorf("goal %q: %w", id, ErrNotFound)
	}
	return g, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGoal(sc scanner) (model.Goal, error) {
	var g model.Goal
	var deadline sql.NullString
	if err := sc.Scan(&g.ID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &deadline, &g.Icon); err != nil {
		return model.Goal{}, err
	}
	if deadline.Valid && deadline.String != "" {
		d, err := model.ParseDate(deadline.String)
		if err != nil {
			return model.Goal{}, fmt.Errorf("goal %q: %w", g.ID, err)
		}
		g.Deadline = &d
	}
	return g, nil
}

// SaveGoal inserts g or replaces the stored goal with the same id.
func (s *Store) SaveGoal(ctx context.Context, g model.Goal) error {
	if err := g.Validate(); err != nil {
		return fmt.Errorf("invalid goal: %w", err)
	}
	return upsertGoal(ctx, s.db, g)
}

func upsertGoal(ctx context.Context, db execer, g model.Goal) error {
	var deadline sql.NullString
	if g.Deadline != nil {
		deadline = sql.NullString{String: g.Deadline.String(), Valid: true}
	}

	_, err := db.ExecContext(ctx, `INSERT INTO goals
		(id, name, target_amount, current_amount, deadline, icon, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			target_amount = excluded.target_amount,
			current_amount = excluded.current_amount,
			deadline = excluded.deadline,
			icon = excluded.icon`,
		g.ID, g.Name, g.TargetAmount, g.CurrentAmount, deadline, g.Icon, nowString(),
	)
	if err != nil {
		return fmt.Errorf("saving goal %q: %w", g.ID, err)
	}
	return nil
}

// DeleteGoal removes the goal with id.
func (s *Store) DeleteGoal(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM goals WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting goal %q: %w", id, err)
	}
	return checkAffected(res, "goal", id)
}
