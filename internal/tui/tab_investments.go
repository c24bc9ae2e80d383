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

func (a App) renderInvestmentsTab(cw int) string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	invs := a.snap.Investments
	if len(invs) == 0 {
		return components.ContentCard("Investments",
			muted.Render("No investments yet. Create one with `lumina invest add`."), cw)
	}

	metrics := []components.Metric{
		{Label: "Monthly contribution", Value: a.money(pipeline.TotalMonthlyContribution(invs)), Color: t.Secondary,
			Delta: fmt.Sprintf("%d investments", len(invs))},
	}
	for _, p := range a.report.Milestones {
		metrics = append(metrics, components.Metric{
			Label: "In " + cli.FormatMonths(p.Month),
			Value: a.money(p.Value),
			Color: t.Income,
			Delta: "yield " + a.money(p.Yield),
		})
	}
	cards := components.MetricCardRow(metrics, cw)

	chartW := components.CardInnerWidth(cw)
	chart := components.ContentCard(
		fmt.Sprintf("Projected value · %s", cli.FormatMonths(a.cfg.Projection.HorizonMonths)),
		a.renderProjectionChart(chartW), cw)

	return cards + "\n" + chart + "\n" + components.ContentCard("Portfolio", a.renderInvestmentList(invs), cw)
}

func (a App) renderProjectionChart(w int) string {
	series := a.report.Series
	values := make([]float64, len(series))
	labels := make([]string, len(series))
	for i, p := range series {
		values[i] = p.Value
		labels[i] = cli.FormatMonths(p.Month)
	}
	return components.BarChart(values, labels, theme.Active.Primary, w, 10)
}

func (a App) renderInvestmentList(invs []model.Investment) string {
	t := theme.Active
	name := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	value := lipgloss.NewStyle().Foreground(t.Secondary).Background(t.Surface)

	lines := make([]string, 0, len(invs))
	for _, inv := range invs {
		lines = append(lines,
			name.Render(fmt.Sprintf("%-24s", cli.Truncate(inv.Name, 24)))+
				value.Render(fmt.Sprintf("%16s/mo", a.money(inv.MonthlyContribution)))+
				muted.Render(fmt.Sprintf("  %s", cli.FormatRate(inv.AnnualRate))))
	}
	return strings.Join(lines, "\n")
}
