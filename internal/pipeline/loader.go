package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/theirongolddev/lumina/internal/model"

	"golang.org/x/sync/errgroup"
)

// Source is the read side of a record store.
type Source interface {
	ListTransactions(ctx context.Context) ([]model.Transaction, error)
	ListGoals(ctx context.Context) ([]model.Goal, error)
	ListInvestments(ctx context.Context) ([]model.Investment, error)
}

// Snapshot is every record read from a Source at one point in time.
type Snapshot struct {
	Transactions []model.Transaction
	Goals        []model.Goal
	Investments  []model.Investment
}

// Empty reports whether the snapshot holds no records at all.
func (s *Snapshot) Empty() bool {
	return len(s.Transactions) == 0 && len(s.Goals) == 0 && len(s.Investments) == 0
}

// Load reads the three record collections from src concurrently.
func Load(ctx context.Context, src Source) (*Snapshot, error) {
	start := time.Now()
	snap := &Snapshot{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		txs, err := src.ListTransactions(ctx)
		if err != nil {
			return fmt.Errorf("listing transactions: %w", err)
		}
		snap.Transactions = txs
		return nil
	})
	g.Go(func() error {
		goals, err := src.ListGoals(ctx)
		if err != nil {
			return fmt.Errorf("listing goals: %w", err)
		}
		snap.Goals = goals
		return nil
	})
	g.Go(func() error {
		invs, err := src.ListInvestments(ctx)
		if err != nil {
			return fmt.Errorf("listing investments: %w", err)
		}
		snap.Investments = invs
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Debug("snapshot loaded",
		"transactions", len(snap.Transactions),
		"goals", len(snap.Goals),
		"investments", len(snap.Investments),
		"elapsed", time.Since(start))

	return snap, nil
}

// Report bundles every analytic derived from a snapshot for one month.
type Report struct {
	Month      model.MonthKey
	Now        time.Time
	Monthly    []model.Transaction // Month's transactions, most recent first
	Summary    model.FinancialSummary
	History    model.HistoryStats
	Categories []model.CategoryStats
	Goals      []GoalReport
	Milestones []model.ProjectionPoint
	Series     []model.ProjectionPoint
}

// ReportOptions controls the projection part of a Report.
type ReportOptions struct {
	HorizonMonths  int
	StepMonths     int
	MilestoneYears []int
}

// BuildReport computes every analytic for month from snap. Goals are
// evaluated against the month's savings potential.
func BuildReport(snap *Snapshot, month model.MonthKey, now time.Time, opts ReportOptions) Report {
	if opts.HorizonMonths == 0 {
		opts.HorizonMonths = DefaultHorizonMonths
	}
	if opts.StepMonths == 0 {
		opts.StepMonths = DefaultStepMonths
	}

	monthly := FilterByMonth(snap.Transactions, month)
	summary := Summarize(monthly)

	return Report{
		Month:      month,
		Now:        now,
		Monthly:    monthly,
		Summary:    summary,
		History:    AggregateHistory(snap.Transactions),
		Categories: AggregateCategories(snap.Transactions),
		Goals:      EvaluateGoals(snap.Goals, summary.SavingsPotential, now),
		Milestones: ProjectMilestones(snap.Investments, opts.MilestoneYears...),
		Series:     ProjectSeries(snap.Investments, opts.HorizonMonths, opts.StepMonths),
	}
}
