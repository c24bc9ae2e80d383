package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/lumina/internal/cli"
	"github.com/theirongolddev/lumina/internal/model"
	"github.com/theirongolddev/lumina/internal/pipeline"
	"github.com/theirongolddev/lumina/internal/tui/components"
	"github.com/theirongolddev/lumina/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderPlanningTab(cw int) string {
	t := theme.Active
	inner := components.CardInnerWidth(cw)
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	goals := a.report.Goals
	feasible := 0
	remaining := 0.0
	for _, g := range goals {
		if g.Evaluation.Verdict.Feasible() {
			feasible++
		}
		remaining += max(0, g.Evaluation.Remaining)
	}

	cards := components.MetricCardRow([]components.Metric{
		{Label: "Savings potential", Value: a.money(a.report.Summary.SavingsPotential), Color: t.Secondary,
			Delta: cli.FormatMonth(a.month)},
		{Label: "Goals on course", Value: fmt.Sprintf("%d / %d", feasible, len(goals)), Color: t.Income},
		{Label: "Still to save", Value: a.money(remaining), Color: t.Warning},
	}, cw)

	if len(goals) == 0 {
		return cards + "\n" + components.ContentCard("Goals",
			muted.Render("No goals yet. Create one with `lumina goals add`."), cw)
	}

	labelW := 18
	barW := max(10, inner-labelW-20)

	var b strings.Builder
	for i, g := range goals {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(components.GoalBar(g.Goal.Name, g.Goal.ProgressPercent(), g.Evaluation.Verdict, labelW, barW))
		b.WriteString("\n")
		b.WriteString(muted.Render(strings.Repeat(" ", labelW+1) + a.goalDetail(g)))
	}

	return cards + "\n" + components.ContentCard("Goals", b.String(), cw)
}

// goalDetail explains a goal's verdict in one line.
func (a App) goalDetail(g pipeline.GoalReport) string {
	ev := g.Evaluation
	saved := fmt.Sprintf("%s of %s", a.money(g.Goal.CurrentAmount), a.money(g.Goal.TargetAmount))

	switch ev.Verdict {
	case model.VerdictReached:
		return saved + " · reached"
	case model.VerdictOnTrack:
		return fmt.Sprintf("%s · needs %s/month for %s until %s",
			saved, a.money(ev.RequiredMonthly), cli.FormatMonths(ev.MonthsLeft), g.Goal.Deadline)
	case model.VerdictBehind:
		return fmt.Sprintf("%s · needs %s/month until %s, short by %s",
			saved, a.money(ev.RequiredMonthly), g.Goal.Deadline, a.money(ev.Shortfall))
	case model.VerdictProjected:
		return fmt.Sprintf("%s · reachable in %s at the current surplus", saved, cli.FormatMonths(ev.MonthsToReach))
	default:
		return saved + " · no surplus this month"
	}
}
