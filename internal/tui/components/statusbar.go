package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/lumina/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// view mode and data age on the right.
func RenderStatusBar(width int, hints, mode, dataAge string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	left := " " + hints
	var right []string
	if mode != "" {
		right = append(right, lipgloss.NewStyle().Foreground(t.Primary).Background(t.Surface).Render(mode))
	}
	if dataAge != "" {
		right = append(right, fmt.Sprintf("loaded %s", dataAge))
	}
	rightStr := strings.Join(right, "  ") + " "

	padding := max(0, width-lipgloss.Width(left)-lipgloss.Width(rightStr))

	return style.Render(left + strings.Repeat(" ", padding) + rightStr)
}
