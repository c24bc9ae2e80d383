package pipeline

import (
	"testing"
	"time"

	"github.com/theirongolddev/lumina/internal/model"
)

func deadline(y int, m time.Month, d int) *model.Date {
	date := model.NewDate(y, m, d)
	return &date
}

func TestEvaluateGoal(t *testing.T) {
	now := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		goal      model.Goal
		surplus   float64
		verdict   model.GoalVerdict
		required  float64
		shortfall float64
		toReach   int
	}{
		{
			name:      "deadline behind",
			goal:      model.Goal{TargetAmount: 12000, CurrentAmount: 2000, Deadline: deadline(2025, time.January, 1)},
			surplus:   800,
			verdict:   model.VerdictBehind,
			required:  1000,
			shortfall: 200,
		},
		{
			name:     "deadline on track",
			goal:     model.Goal{TargetAmount: 12000, CurrentAmount: 2000, Deadline: deadline(2025, time.January, 1)},
			surplus:  1000,
			verdict:  model.VerdictOnTrack,
			required: 1000,
		},
		{
			name:    "already reached",
			goal:    model.Goal{TargetAmount: 5000, CurrentAmount: 5000, Deadline: deadline(2020, time.January, 1)},
			surplus: 0,
			verdict: model.VerdictReached,
		},
		{
			name:    "overshot",
			goal:    model.Goal{TargetAmount: 5000, CurrentAmount: 7000},
			surplus: -100,
			verdict: model.VerdictReached,
		},
		{
			name:    "no deadline and no surplus",
			goal:    model.Goal{TargetAmount: 5000, CurrentAmount: 1000},
			surplus: 0,
			verdict: model.VerdictIndefinite,
		},
		{
			name:    "no deadline rounds months up",
			goal:    model.Goal{TargetAmount: 5000, CurrentAmount: 1000},
			surplus: 300,
			verdict: model.VerdictProjected,
			toReach: 14,
		},
		{
			name:    "residue surplus is indefinite",
			goal:    model.Goal{TargetAmount: 5000},
			surplus: 5.551115123125783e-17,
			verdict: model.VerdictIndefinite,
		},
		{
			name:    "horizon cap is inclusive",
			goal:    model.Goal{TargetAmount: 1200},
			surplus: 1,
			verdict: model.VerdictProjected,
			toReach: MaxProjectedMonths,
		},
		{
			name:    "just past the horizon cap",
			goal:    model.Goal{TargetAmount: 1201},
			surplus: 1,
			verdict: model.VerdictIndefinite,
		},
		{
			name:      "past deadline clamps to one month",
			goal:      model.Goal{TargetAmount: 1000, CurrentAmount: 400, Deadline: deadline(2023, time.June, 30)},
			surplus:   100,
			verdict:   model.VerdictBehind,
			required:  600,
			shortfall: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := EvaluateGoal(tt.goal, tt.surplus, now)
			if ev.Verdict != tt.verdict {
				t.Fatalf("Verdict = %s, want %s", ev.Verdict, tt.verdict)
			}
			if !almostEqual(ev.RequiredMonthly, tt.required) {
				t.Errorf("RequiredMonthly = %.2f, want %.2f", ev.RequiredMonthly, tt.required)
			}
			if !almostEqual(ev.Shortfall, tt.shortfall) {
				t.Errorf("Shortfall = %.2f, want %.2f", ev.Shortfall, tt.shortfall)
			}
			if ev.MonthsToReach != tt.toReach {
				t.Errorf("MonthsToReach = %d, want %d", ev.MonthsToReach, tt.toReach)
			}
		})
	}
}

func TestEvaluateGoal_ScenarioMonthsLeft(t *testing.T) {
	now := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)
	goal := model.Goal{TargetAmount: 12000, CurrentAmount: 2000, Deadline: deadline(2025, time.January, 1)}

	ev := EvaluateGoal(goal, 800, now)
	if ev.MonthsLeft != 10 {
		t.Errorf("MonthsLeft = %d, want 10", ev.MonthsLeft)
	}
	if ev.Remaining != 10000 {
		t.Errorf("Remaining = %.2f, want 10000", ev.Remaining)
	}
	if ev.Verdict.Feasible() {
		t.Error("behind-schedule goal reported as feasible")
	}
}

func TestMonthsBetween(t *testing.T) {
	now := time.Date(2024, time.November, 28, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		target model.Date
		want   int
	}{
		{model.NewDate(2024, time.November, 1), 0},
		{model.NewDate(2024, time.December, 1), 1},
		{model.NewDate(2025, time.February, 28), 3},
		{model.NewDate(2024, time.January, 31), -10},
	}
	for _, tt := range tests {
		if got := MonthsBetween(now, tt.target); got != tt.want {
			t.Errorf("MonthsBetween(%s) = %d, want %d", tt.target, got, tt.want)
		}
	}
}

func TestEvaluateGoals_KeepsOrder(t *testing.T) {
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	goals := []model.Goal{
		{ID: "car", TargetAmount: 100},
		{ID: "house", TargetAmount: 1000, CurrentAmount: 1000},
	}
	reports := EvaluateGoals(goals, 50, now)
	if len(reports) != 2 || reports[0].Goal.ID != "car" || reports[1].Goal.ID != "house" {
		t.Fatalf("EvaluateGoals = %+v", reports)
	}
	if reports[0].Evaluation.Verdict != model.VerdictProjected || reports[0].Evaluation.MonthsToReach != 2 {
		t.Errorf("car evaluation = %+v, want projected in 2 months", reports[0].Evaluation)
	}
	if reports[1].Evaluation.Verdict != model.VerdictReached {
		t.Errorf("house verdict = %s, want reached", reports[1].Evaluation.Verdict)
	}
}

func TestEvaluateGoal_FloatResidueSurplus(t *testing.T) {
	txs := []model.Transaction{
		tx(t, "a", 0.1, model.KindIncome, model.StatusPaid, "2024-03-01", "salary"),
		tx(t, "b", 0.2, model.KindIncome, model.StatusPaid, "2024-03-02", "salary"),
		tx(t, "c", 0.3, model.KindVariableExpense, model.StatusPaid, "2024-03-03", "food"),
	}
	s := Summarize(txs)
	if s.SavingsPotential <= 0 || s.SavingsPotential > 1e-9 {
		t.Fatalf("SavingsPotential = %v, want a tiny positive residue", s.SavingsPotential)
	}

	now := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)
	ev := EvaluateGoal(model.Goal{TargetAmount: 5000}, s.SavingsPotential, now)
	if ev.Verdict != model.VerdictIndefinite {
		t.Errorf("Verdict = %s, want %s", ev.Verdict, model.VerdictIndefinite)
	}
	if ev.MonthsToReach != 0 {
		t.Errorf("MonthsToReach = %d, want 0", ev.MonthsToReach)
	}
}
