package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/lumina/internal/cli"
	"github.com/theirongolddev/lumina/internal/config"
	"github.com/theirongolddev/lumina/internal/tui/components"
	"github.com/theirongolddev/lumina/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderDashboardTab(cw, contentH int) string {
	t := theme.Active
	s := a.report.Summary
	tot := a.totals()

	balanceColor := t.Income
	if tot.Balance < 0 {
		balanceColor = t.Expense
	}

	pendingDelta := ""
	if s.Pending > 0 {
		pendingDelta = fmt.Sprintf("%d pending", s.Pending)
	}

	other := s.Projected
	otherLabel := "projected"
	if a.view == config.ViewProjected {
		other = s.Realized
		otherLabel = "realized"
	}

	cards := components.MetricCardRow([]components.Metric{
		{Label: "Income", Value: a.money(tot.Income), Color: t.Income,
			Delta: otherLabel + " " + a.money(other.Income)},
		{Label: "Expenses", Value: a.money(tot.Expenses), Color: t.Expense,
			Delta: otherLabel + " " + a.money(other.Expenses)},
		{Label: "Balance", Value: a.money(tot.Balance), Color: balanceColor,
			Delta: otherLabel + " " + a.money(other.Balance)},
		{Label: "Savings potential", Value: a.money(s.SavingsPotential), Color: t.Secondary,
			Delta: pendingDelta},
	}, cw)

	title := fmt.Sprintf("Transactions · %s · %d of %d", cli.KindFilters[a.filter], len(a.visible), s.Transactions)
	if ms, ok := monthStatsFor(a.report.History, a.month); ok {
		title += " · running balance " + a.money(ms.RunningBalance)
	}
	listH := max(3, contentH-lipgloss.Height(cards)-4)
	list := components.ContentCard(title, a.renderTransactionList(components.CardInnerWidth(cw), listH), cw)

	return cards + "\n" + list
}

// renderTransactionList draws at most rows lines, scrolled so the cursor
// stays visible.
func (a App) renderTransactionList(w, rows int) string {
	t := theme.Active

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	if len(a.visible) == 0 {
		return mutedStyle.Render(fmt.Sprintf("No transactions in %s. Add one with `lumina add`.", cli.FormatMonth(a.month)))
	}

	start := 0
	if a.cursor >= rows {
		start = a.cursor - rows + 1
	}
	end := min(len(a.visible), start+rows)

	const (
		dateW   = 6
		statusW = 8
		amountW = 16
	)
	catW := max(10, w/4)
	noteW := max(0, w-dateW-statusW-amountW-catW-8)

	var b strings.Builder
	for i := start; i < end; i++ {
		tx := a.visible[i]
		selected := i == a.cursor

		bg := t.Surface
		if selected {
			bg = t.SurfaceHover
		}
		base := lipgloss.NewStyle().Background(bg)

		amountColor := t.Expense
		sign := "-"
		if tx.Kind.IsIncome() {
			amountColor = t.Income
			sign = "+"
		}
		statusColor := t.Income
		if !tx.Status.IsPaid() {
			statusColor = t.Warning
		}

		marker := "  "
		if selected {
			marker = "▸ "
		}

		line := base.Foreground(t.Primary).Render(marker) +
			base.Foreground(t.TextMuted).Render(fmt.Sprintf("%-*s", dateW, tx.Date.Format("Jan 02"))) +
			base.Render(" ") +
			base.Foreground(categoryColor(a.catalog, tx.Category)).Render(fmt.Sprintf("%-*s", catW, cli.Truncate(a.catalog.DisplayName(tx.Category), catW))) +
			base.Render(" ") +
			base.Foreground(t.TextDim).Render(fmt.Sprintf("%-*s", noteW, cli.Truncate(tx.Note, noteW))) +
			base.Render(" ") +
			base.Foreground(statusColor).Render(fmt.Sprintf("%-*s", statusW, tx.Status)) +
			base.Foreground(amountColor).Bold(true).Render(fmt.Sprintf("%*s", amountW, sign+a.money(tx.Amount)))

		b.WriteString(lipgloss.PlaceHorizontal(w, lipgloss.Left, line, lipgloss.WithWhitespaceBackground(bg)))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// categoryColor resolves a category's display color, falling back to muted
// text for identifiers missing from the catalog.
func categoryColor(c *config.Catalog, id string) lipgloss.Color {
	if cat, ok := c.Resolve(id); ok && cat.Color != "" {
		return lipgloss.Color(cat.Color)
	}
	return lipgloss.Color(config.OtherCategory.Color)
}
