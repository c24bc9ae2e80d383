package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/lumina/internal/cli"
	"github.com/theirongolddev/lumina/internal/model"
	"github.com/theirongolddev/lumina/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a block progress bar followed by its percentage.
// pct is a fraction in [0, 1].
func ProgressBar(pct float64, width int) string {
	t := theme.Active
	pct = clampFraction(pct)
	filled := min(max(int(pct*float64(width)), 0), width)

	var barColor lipgloss.Color
	switch {
	case pct >= 1:
		barColor = t.Income
	case pct >= 0.5:
		barColor = t.Primary
	default:
		barColor = t.Secondary
	}

	filledStyle := lipgloss.NewStyle().Foreground(barColor).Background(t.Surface)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(barColor).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	b.WriteString(filledStyle.Render(strings.Repeat("█", filled)))
	b.WriteString(emptyStyle.Render(strings.Repeat("░", width-filled)))

	return b.String() + spaceStyle.Render(" ") + pctStyle.Render(fmt.Sprintf("%.0f%%", pct*100))
}

// ColorForVerdict maps a goal verdict to a theme color.
func ColorForVerdict(v model.GoalVerdict) lipgloss.Color {
	t := theme.Active
	switch v {
	case model.VerdictReached, model.VerdictOnTrack:
		return t.Income
	case model.VerdictProjected:
		return t.Secondary
	case model.VerdictBehind:
		return t.Warning
	default:
		return t.Expense
	}
}

// GoalBar renders a labeled goal progress bar colored by verdict.
func GoalBar(label string, percent int, verdict model.GoalVerdict, labelW, barWidth int) string {
	t := theme.Active
	pct := clampFraction(float64(percent) / 100)
	color := ColorForVerdict(verdict)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	verdictStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, cli.Truncate(label, labelW))) +
		spaceStyle.Render(" ") +
		bar.ViewAs(pct) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%3d%%", percent)) +
		spaceStyle.Render("  ") +
		verdictStyle.Render(verdict.String())
}

// ShareBar renders a category share line: label, solid bar, and value text.
func ShareBar(label, value string, share float64, color lipgloss.Color, labelW, barWidth int) string {
	t := theme.Active
	share = clampFraction(share)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.SurfaceHover)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, cli.Truncate(label, labelW))) +
		spaceStyle.Render(" ") +
		bar.ViewAs(share) +
		spaceStyle.Render(" ") +
		valueStyle.Render(value)
}

func clampFraction(f float64) float64 {
	if f < 0 || math.IsNaN(f) {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
