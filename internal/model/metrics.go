package model

import "fmt"

// Totals is one income/expenses/balance triple.
type Totals struct {
	Income   float64
	Expenses float64
	Balance  float64
}

// FinancialSummary holds the accrual and cash views of a set of transactions.
type FinancialSummary struct {
	Projected        Totals // every transaction, regardless of status
	Realized         Totals // paid transactions only
	SavingsPotential float64

	Transactions int
	Pending      int
}

// MonthStats holds the ledger figures for one calendar month.
type MonthStats struct {
	Month          MonthKey
	Income         float64
	Expense        float64
	Result         float64
	RunningBalance float64
	Transactions   int
}

// HistoryStats holds every month with activity, oldest first, plus totals.
type HistoryStats struct {
	Months       []MonthStats
	TotalIncome  float64
	TotalExpense float64
	TotalBalance float64
}

// CategoryStats holds the expense total for one category identifier.
type CategoryStats struct {
	Category     string
	Total        float64
	SharePercent float64
	Transactions int
}

// ProjectionPoint is the projected state of a portfolio after Month months.
type ProjectionPoint struct {
	Month    int
	Value    float64
	Invested float64
	Yield    float64
}

// Label formats Month as years and months, e.g. "2y 6m".
func (p ProjectionPoint) Label() string {
	return fmt.Sprintf("%dy %dm", p.Month/12, p.Month%12)
}

// GoalVerdict is the outcome of evaluating a goal against a monthly surplus.
type GoalVerdict uint8

// Goal verdicts.
const (
	VerdictReached    GoalVerdict = iota + 1 // nothing left to save
	VerdictOnTrack                           // deadline set, surplus covers the required rate
	VerdictBehind                            // deadline set, surplus falls short
	VerdictProjected                         // no deadline, reachable at the current surplus
	VerdictIndefinite                        // no deadline and no usable surplus
	verdictEnd
)

var verdictNames = [...]string{
	VerdictReached:    "reached",
	VerdictOnTrack:    "on track",
	VerdictBehind:     "behind",
	VerdictProjected:  "projected",
	VerdictIndefinite: "indefinite",
}

var _ = [1]struct{}{}[len(verdictNames)-int(verdictEnd)]

func (v GoalVerdict) String() string { return enumName(verdictNames[:], v) }

// Feasible reports whether the goal can be met at the evaluated surplus.
func (v GoalVerdict) Feasible() bool {
	switch v {
	case VerdictReached, VerdictOnTrack, VerdictProjected:
		return true
	case VerdictBehind, VerdictIndefinite:
		return false
	}
	panic(fmt.Sprintf("model: unknown goal verdict %d", v))
}

// GoalEvaluation carries the verdict and the numbers behind it.
type GoalEvaluation struct {
	Verdict   GoalVerdict
	Remaining float64
	Surplus   float64

	// Set when the goal has a deadline.
	MonthsLeft      int
	RequiredMonthly float64
	Shortfall       float64

	// Set for VerdictProjected.
	MonthsToReach int
}
