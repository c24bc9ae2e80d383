package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/lumina/internal/cli"
	"github.com/theirongolddev/lumina/internal/model"
	"github.com/theirongolddev/lumina/internal/tui/components"
	"github.com/theirongolddev/lumina/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// historyMonths caps how many months the history chart and table show.
const historyMonths = 12

func (a App) renderAnalyticsTab(cw int) string {
	hist := a.report.History
	if len(hist.Months) == 0 {
		return components.ContentCard("Analytics",
			lipgloss.NewStyle().Foreground(theme.Active.TextMuted).Background(theme.Active.Surface).
				Render("No transactions yet."), cw)
	}

	if a.isCompactLayout() {
		return components.ContentCard("History", a.renderHistory(components.CardInnerWidth(cw)), cw) + "\n" +
			components.ContentCard("Expenses by category", a.renderCategories(components.CardInnerWidth(cw)), cw)
	}

	widths := components.LayoutRow(cw, 2)
	leftW := widths[0] + widths[0]/4
	rightW := cw - leftW
	return components.CardRow([]string{
		components.ContentCard("History", a.renderHistory(components.CardInnerWidth(leftW)), leftW),
		components.ContentCard("Expenses by category", a.renderCategories(components.CardInnerWidth(rightW)), rightW),
	})
}

func (a App) renderHistory(w int) string {
	t := theme.Active
	hist := a.report.History
	months := hist.Months[max(0, len(hist.Months)-historyMonths):]

	expenses := make([]float64, len(months))
	balances := make([]float64, len(months))
	labels := make([]string, len(months))
	for i, m := range months {
		expenses[i] = m.Expense
		balances[i] = m.RunningBalance
		labels[i] = m.Month.Label()
	}

	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	var b strings.Builder
	b.WriteString(muted.Render("Monthly expenses"))
	b.WriteString("\n")
	b.WriteString(components.BarChart(expenses, labels, t.Expense, w, 8))
	b.WriteString("\n\n")
	b.WriteString(muted.Render("Running balance "))
	b.WriteString(components.Sparkline(balances, t.Secondary))
	b.WriteString("\n\n")

	header := fmt.Sprintf("%-8s %14s %14s %14s %14s", "Month", "Income", "Expense", "Result", "Balance")
	b.WriteString(muted.Render(header))
	for i := len(months) - 1; i >= 0; i-- {
		m := months[i]
		b.WriteString("\n")
		b.WriteString(value.Render(fmt.Sprintf("%-8s %14s %14s ", m.Month.Label(), a.money(m.Income), a.money(m.Expense))))
		b.WriteString(a.signedStyle(m.Result).Render(fmt.Sprintf("%14s", cli.FormatSignedMoney(a.cfg.General.Currency, m.Result))))
		b.WriteString(value.Render(" "))
		b.WriteString(a.signedStyle(m.RunningBalance).Render(fmt.Sprintf("%14s", a.money(m.RunningBalance))))
	}

	b.WriteString("\n\n")
	b.WriteString(muted.Render("Total  "))
	b.WriteString(lipgloss.NewStyle().Foreground(t.Income).Background(t.Surface).Render(a.money(hist.TotalIncome)))
	b.WriteString(muted.Render(" in · "))
	b.WriteString(lipgloss.NewStyle().Foreground(t.Expense).Background(t.Surface).Render(a.money(hist.TotalExpense)))
	b.WriteString(muted.Render(" out · "))
	b.WriteString(a.signedStyle(hist.TotalBalance).Bold(true).Render(a.money(hist.TotalBalance)))

	return b.String()
}

func (a App) renderCategories(w int) string {
	t := theme.Active
	cats := a.report.Categories
	if len(cats) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Render("No expenses recorded.")
	}

	labelW := 14
	valueW := 22
	barW := max(6, w-labelW-valueW-2)

	lines := make([]string, 0, len(cats))
	for _, c := range cats {
		label := a.catalog.DisplayName(c.Category)
		if _, ok := a.catalog.Resolve(c.Category); !ok {
			label = fmt.Sprintf("%s (%s)", label, c.Category)
		}
		val := fmt.Sprintf("%s %5.1f%%", a.money(c.Total), c.SharePercent)
		lines = append(lines, components.ShareBar(label, val, c.SharePercent/100,
			categoryColor(a.catalog, c.Category), labelW, barW))
	}
	return strings.Join(lines, "\n")
}

func (a App) signedStyle(v float64) lipgloss.Style {
	t := theme.Active
	color := t.Income
	if v < 0 {
		color = t.Expense
	}
	return lipgloss.NewStyle().Foreground(color).Background(t.Surface)
}

// monthStatsFor returns the history row for m, if any.
func monthStatsFor(hist model.HistoryStats, m model.MonthKey) (model.MonthStats, bool) {
	for _, s := range hist.Months {
		if s.Month == m {
			return s, true
		}
	}
	return model.MonthStats{}, false
}
