package components

import (
	"strings"

	"github.com/theirongolddev/lumina/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name   string
	Key    rune
	KeyPos int // position of the shortcut letter in the name (-1 if not in name)
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Dashboard", Key: 'd', KeyPos: 0},
	{Name: "Analytics", Key: 'a', KeyPos: 0},
	{Name: "Planning", Key: 'p', KeyPos: 0},
	{Name: "Investments", Key: 'i', KeyPos: 0},
}

const tabGap = 2

// TabVisualWidth is the rendered width of tab i, brackets included.
func TabVisualWidth(i int) int {
	tab := Tabs[i]
	w := len([]rune(tab.Name))
	if tab.KeyPos < 0 {
		w++
	}
	return w + 2 // "[" and "]" around the key
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.Primary).
		Background(t.SurfaceHover).
		Bold(true)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Background)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Background).
		Bold(true)

	dimKeyStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Background)

	var parts []string
	for i, tab := range Tabs {
		var rendered string
		if i == activeIdx {
			// Same width as the inactive form so click targets stay put.
			rendered = activeStyle.Render(" " + tab.Name + " ")
			if tab.KeyPos < 0 {
				rendered += inactiveStyle.Render(" ")
			}
		} else {
			if tab.KeyPos >= 0 && tab.KeyPos < len(tab.Name) {
				before := tab.Name[:tab.KeyPos]
				key := string(tab.Name[tab.KeyPos])
				after := tab.Name[tab.KeyPos+1:]
				rendered = inactiveStyle.Render(before) +
					dimKeyStyle.Render("[") + keyStyle.Render(key) + dimKeyStyle.Render("]") +
					inactiveStyle.Render(after)
			} else {
				rendered = inactiveStyle.Render(tab.Name) +
					dimKeyStyle.Render("[") + keyStyle.Render(string(tab.Key)) + dimKeyStyle.Render("]")
			}
		}
		parts = append(parts, rendered)
	}

	gap := lipgloss.NewStyle().Background(t.Background).Render(strings.Repeat(" ", tabGap))
	row := " " + strings.Join(parts, gap)

	return lipgloss.NewStyle().Background(t.Background).Width(width).Render(row)
}

// TabAtX returns the tab index under column x of the tab bar, or -1.
func TabAtX(x int) int {
	pos := 1 // leading space
	for i := range Tabs {
		w := TabVisualWidth(i)
		if x >= pos && x < pos+w {
			return i
		}
		pos += w + tabGap
	}
	return -1
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
