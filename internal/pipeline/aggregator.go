// Package pipeline loads ledger snapshots and computes lumina's analytics.
//
// Everything except Load is a pure function over slices: inputs are never
// mutated and no function reads the clock.
package pipeline

import (
	"sort"

	"github.com/theirongolddev/lumina/internal/model"
)

// countable reports whether tx has a declared kind and status. The
// aggregators skip anything else, such as a zero Transaction.
func countable(tx model.Transaction) bool {
	return tx.Kind.Valid() && tx.Status.Valid()
}

// Summarize reduces transactions into projected and realized totals.
// The result does not depend on input order. Transactions with an
// undeclared kind or status are skipped.
func Summarize(txs []model.Transaction) model.FinancialSummary {
	var s model.FinancialSummary

	for _, tx := range txs {
		if !countable(tx) {
			continue
		}
		s.Transactions++
		paid := tx.Status.IsPaid()
		if !paid {
			s.Pending++
		}

		if tx.Kind.IsIncome() {
			s.Projected.Income += tx.Amount
			if paid {
				s.Realized.Income += tx.Amount
			}
		} else {
			s.Projected.Expenses += tx.Amount
			if paid {
				s.Realized.Expenses += tx.Amount
			}
		}
	}

	s.Projected.Balance = s.Projected.Income - s.Projected.Expenses
	s.Realized.Balance = s.Realized.Income - s.Realized.Expenses
	s.SavingsPotential = max(0, s.Projected.Balance)

	return s
}

// SummarizeMonth summarizes the transactions dated within month.
func SummarizeMonth(txs []model.Transaction, month model.MonthKey) model.FinancialSummary {
	return Summarize(FilterByMonth(txs, month))
}

// AggregateHistory buckets transactions by calendar month, ignoring status,
// and carries a running balance across months in chronological order.
// Months without transactions are absent, not zero-filled. Transactions
// with an undeclared kind or status are skipped.
func AggregateHistory(txs []model.Transaction) model.HistoryStats {
	monthMap := make(map[model.MonthKey]*model.MonthStats)

	for _, tx := range txs {
		if !countable(tx) {
			continue
		}
		key := tx.Month()
		ms, ok := monthMap[key]
		if !ok {
			ms = &model.MonthStats{Month: key}
			monthMap[key] = ms
		}
		ms.Transactions++
		if tx.Kind.IsIncome() {
			ms.Income += tx.Amount
		} else {
			ms.Expense += tx.Amount
		}
	}

	months := make([]model.MonthStats, 0, len(monthMap))
	for _, ms := range monthMap {
		months = append(months, *ms)
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].Month.Before(months[j].Month)
	})

	var hist model.HistoryStats
	running := 0.0
	for i := range months {
		m := &months[i]
		m.Result = m.Income - m.Expense
		running += m.Result
		m.RunningBalance = running

		hist.TotalIncome += m.Income
		hist.TotalExpense += m.Expense
	}
	hist.Months = months
	hist.TotalBalance = hist.TotalIncome - hist.TotalExpense

	return hist
}

// AggregateCategories sums expenses by category identifier, largest first.
// Income is excluded. Ties keep the order in which categories first appear.
// Identifiers are not resolved against any catalog. Transactions with an
// undeclared kind or status are skipped.
func AggregateCategories(txs []model.Transaction) []model.CategoryStats {
	var cats []model.CategoryStats
	index := make(map[string]int)
	total := 0.0

	for _, tx := range txs {
		if !countable(tx) || tx.Kind.IsIncome() {
			continue
		}
		i, ok := index[tx.Category]
		if !ok {
			i = len(cats)
			index[tx.Category] = i
			cats = append(cats, model.CategoryStats{Category: tx.Category})
		}
		cats[i].Total += tx.Amount
		cats[i].Transactions++
		total += tx.Amount
	}

	if total > 0 {
		for i := range cats {
			cats[i].SharePercent = cats[i].Total / total * 100
		}
	}
	sort.SliceStable(cats, func(i, j int) bool {
		return cats[i].Total > cats[j].Total
	})

	return cats
}

// FilterByMonth returns the transactions dated within month, most recent
// first. Transactions with equal dates keep their input order.
func FilterByMonth(txs []model.Transaction, month model.MonthKey) []model.Transaction {
	result := []model.Transaction{}
	for _, tx := range txs {
		if tx.Month() == month {
			result = append(result, tx)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result
}

// FilterByKind returns the transactions whose kind is one of kinds.
// With no kinds, txs is returned unchanged.
func FilterByKind(txs []model.Transaction, kinds ...model.Kind) []model.Transaction {
	if len(kinds) == 0 {
		return txs
	}
	result := []model.Transaction{}
	for _, tx := range txs {
		for _, k := range kinds {
			if tx.Kind == k {
				result = append(result, tx)
				break
			}
		}
	}
	return result
}

// FilterByStatus returns the transactions with the given status.
func FilterByStatus(txs []model.Transaction, status model.Status) []model.Transaction {
	result := []model.Transaction{}
	for _, tx := range txs {
		if tx.Status == status {
			result = append(result, tx)
		}
	}
	return result
}
