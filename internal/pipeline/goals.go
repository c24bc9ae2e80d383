package pipeline

import (
	"math"
	"time"

	"github.com/theirongolddev/lumina/internal/model"
)

// MonthsBetween counts whole calendar months from now to target:
// (targetYear-nowYear)*12 + (targetMonth-nowMonth). Days are ignored.
func MonthsBetween(now time.Time, target model.Date) int {
	return (target.Year-now.Year())*12 + int(target.Month) - int(now.Month())
}

// MaxProjectedMonths is the longest horizon a goal without a deadline is
// projected over. Beyond it the goal is indefinite.
const MaxProjectedMonths = 100 * 12

// EvaluateGoal compares what goal still needs against the monthly surplus
// available for saving, usually FinancialSummary.SavingsPotential.
func EvaluateGoal(goal model.Goal, surplus float64, now time.Time) model.GoalEvaluation {
	ev := model.GoalEvaluation{
		Remaining: goal.Remaining(),
		Surplus:   surplus,
	}

	if ev.Remaining <= 0 {
		ev.Verdict = model.VerdictReached
		return ev
	}

	if goal.Deadline != nil {
		ev.MonthsLeft = max(1, MonthsBetween(now, *goal.Deadline))
		ev.RequiredMonthly = ev.Remaining / float64(ev.MonthsLeft)
		if surplus >= ev.RequiredMonthly {
			ev.Verdict = model.VerdictOnTrack
		} else {
			ev.Verdict = model.VerdictBehind
			ev.Shortfall = ev.RequiredMonthly - surplus
		}
		return ev
	}

	// A surplus that is only float residue would project absurd horizons.
	if surplus > 0 {
		if months := math.Ceil(ev.Remaining / surplus); months <= MaxProjectedMonths {
			ev.Verdict = model.VerdictProjected
			ev.MonthsToReach = int(months)
			return ev
		}
	}

	ev.Verdict = model.VerdictIndefinite
	return ev
}

// GoalReport pairs a goal with its evaluation.
type GoalReport struct {
	Goal       model.Goal
	Evaluation model.GoalEvaluation
}

// EvaluateGoals evaluates every goal against the same surplus.
func EvaluateGoals(goals []model.Goal, surplus float64, now time.Time) []GoalReport {
	reports := make([]GoalReport, 0, len(goals))
	for _, g := range goals {
		reports = append(reports, GoalReport{Goal: g, Evaluation: EvaluateGoal(g, surplus, now)})
	}
	return reports
}
