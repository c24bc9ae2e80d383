package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors (lumina dark)
var (
	ColorBg        = lipgloss.Color("#030712")
	ColorSurface   = lipgloss.Color("#111827")
	ColorBorder    = lipgloss.Color("#1F2937")
	ColorTextDim   = lipgloss.Color("#475569")
	ColorTextMuted = lipgloss.Color("#94A3B8")
	ColorText      = lipgloss.Color("#F1F5F9")
	ColorPrimary   = lipgloss.Color("#D946EF")
	ColorSecondary = lipgloss.Color("#06B6D4")
	ColorAccent    = lipgloss.Color("#8B5CF6")
	ColorSuccess   = lipgloss.Color("#00FF9D")
	ColorDanger    = lipgloss.Color("#FF0055")
	ColorWarning   = lipgloss.Color("#FACC15")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	incomeStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	expenseStyle = lipgloss.NewStyle().
			Foreground(ColorDanger)

	warnStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	// Calculate column widths
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			if w := lipgloss.Width(h); w > widths[i] {
				widths[i] = w
			}
		}
		for _, row := range t.Rows {
			for i, cell := range row {
				if i >= numCols {
					continue
				}
				if w := lipgloss.Width(cell); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  " + headerStyle.Render(t.Title) + "\n")
	}

	b.WriteString(rule("╭", "┬", "╮", widths))
	if len(t.Headers) > 0 {
		b.WriteString(tableRow(t.Headers, widths, func(_ int, cell string, w int) string {
			return headerStyle.Render(" " + padRight(cell, w) + " ")
		}))
		b.WriteString(rule("├", "┼", "┤", widths))
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			b.WriteString(rule("├", "┼", "┤", widths))
			continue
		}
		// The first column is a label; the rest are amounts and align right.
		b.WriteString(tableRow(row, widths, func(i int, cell string, w int) string {
			if i == 0 {
				return valueStyle.Render(" " + padRight(cell, w) + " ")
			}
			return valueStyle.Render(" " + padLeft(cell, w) + " ")
		}))
	}
	b.WriteString(rule("╰", "┴", "╯", widths))

	return b.String()
}

// rule draws a horizontal table border with the given corner and junction runes.
func rule(left, mid, right string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("─", w+2)
	}
	return dimStyle.Render(left+strings.Join(parts, mid)+right) + "\n"
}

// tableRow renders one bordered row; missing trailing cells render empty.
func tableRow(cells []string, widths []int, render func(i int, cell string, w int) string) string {
	sep := dimStyle.Render("│")
	var b strings.Builder
	b.WriteString(sep)
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString(render(i, cell, w))
		b.WriteString(sep)
	}
	b.WriteString("\n")
	return b.String()
}

// padRight pads s to display width w, ignoring ANSI sequences.
func padRight(s string, w int) string {
	return s + strings.Repeat(" ", max(0, w-lipgloss.Width(s)))
}

// padLeft right-aligns s within display width w.
func padLeft(s string, w int) string {
	return strings.Repeat(" ", max(0, w-lipgloss.Width(s))) + s
}

// RenderProgressBar renders a goal progress bar for a 0-100 percentage.
func RenderProgressBar(pct int, width int) string {
	if width <= 0 {
		return ""
	}
	pct = max(0, min(100, pct))

	filled := pct * width / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	style := mutedStyle
	if pct >= 100 {
		style = incomeStyle
	}
	return fmt.Sprintf("[%s] %3d%%", style.Render(bar), pct)
}

// RenderSparkline generates a unicode block sparkline from a series of values.
// Values are scaled between the series minimum and maximum, so negative
// balances render too.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if lo > 0 {
		lo = 0
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int((v - lo) / span * float64(len(blocks)-1))
		idx = max(0, min(len(blocks)-1, idx))
		b.WriteRune(blocks[idx])
	}

	return b.String()
}

// RenderHorizontalBar renders a labelled horizontal bar chart entry with the
// formatted value after the bar.
func RenderHorizontalBar(label, value string, amount, maxAmount float64, labelWidth, maxWidth int) string {
	barLen := 0
	if maxAmount > 0 && amount > 0 {
		barLen = int(amount / maxAmount * float64(maxWidth))
	}
	barLen = max(0, min(maxWidth, barLen))

	bar := strings.Repeat("█", barLen) + strings.Repeat(" ", maxWidth-barLen)
	return "  " + padRight(Truncate(label, labelWidth), labelWidth) + " " + headerStyle.Render(bar) + " " + value
}

// ColorAmount colors s green when v is positive and red when negative.
func ColorAmount(v float64, s string) string {
	switch {
	case v > 0:
		return incomeStyle.Render(s)
	case v < 0:
		return expenseStyle.Render(s)
	default:
		return valueStyle.Render(s)
	}
}

// Muted renders s in the muted text color.
func Muted(s string) string {
	return mutedStyle.Render(s)
}

// Warn renders s in the warning color.
func Warn(s string) string {
	return warnStyle.Render(s)
}
