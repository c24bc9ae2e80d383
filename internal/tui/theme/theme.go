// Package theme defines color themes for the lumina TUI dashboard.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name         string
	Background   lipgloss.Color // Main app background
	Surface      lipgloss.Color // Card/panel backgrounds
	SurfaceHover lipgloss.Color // Highlighted surface (active tab, selected row)
	Border       lipgloss.Color // Subtle borders
	BorderAccent lipgloss.Color // Accent-colored borders for focus states
	TextDim      lipgloss.Color // Lowest contrast text (hints, disabled)
	TextMuted    lipgloss.Color // Secondary text (labels, metadata)
	TextPrimary  lipgloss.Color // Primary content text
	Primary      lipgloss.Color // Brand color (active tab, headings)
	Secondary    lipgloss.Color // Charts and projections
	Accent       lipgloss.Color // Highlights and keys
	Income       lipgloss.Color // Money in, positive balances
	Expense      lipgloss.Color // Money out, negative balances
	Warning      lipgloss.Color // Pending items, goals behind schedule
}

// Active is the currently selected theme.
var Active = LuminaDark

// LuminaDark is the default neon-on-black theme.
var LuminaDark = Theme{
	Name:         "lumina-dark",
	Background:   lipgloss.Color("#030712"),
	Surface:      lipgloss.Color("#111827"),
	SurfaceHover: lipgloss.Color("#1F2937"),
	Border:       lipgloss.Color("#374151"),
	BorderAccent: lipgloss.Color("#D946EF"),
	TextDim:      lipgloss.Color("#475569"),
	TextMuted:    lipgloss.Color("#94A3B8"),
	TextPrimary:  lipgloss.Color("#F1F5F9"),
	Primary:      lipgloss.Color("#D946EF"),
	Secondary:    lipgloss.Color("#06B6D4"),
	Accent:       lipgloss.Color("#8B5CF6"),
	Income:       lipgloss.Color("#00FF9D"),
	Expense:      lipgloss.Color("#FF0055"),
	Warning:      lipgloss.Color("#FACC15"),
}

// LuminaSlate is a low-contrast variant for long sessions.
var LuminaSlate = Theme{
	Name:         "lumina-slate",
	Background:   lipgloss.Color("#0F172A"),
	Surface:      lipgloss.Color("#1E293B"),
	SurfaceHover: lipgloss.Color("#334155"),
	Border:       lipgloss.Color("#475569"),
	BorderAccent: lipgloss.Color("#A78BFA"),
	TextDim:      lipgloss.Color("#64748B"),
	TextMuted:    lipgloss.Color("#94A3B8"),
	TextPrimary:  lipgloss.Color("#E2E8F0"),
	Primary:      lipgloss.Color("#A78BFA"),
	Secondary:    lipgloss.Color("#22D3EE"),
	Accent:       lipgloss.Color("#F472B6"),
	Income:       lipgloss.Color("#34D399"),
	Expense:      lipgloss.Color("#FB7185"),
	Warning:      lipgloss.Color("#FBBF24"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:         "terminal",
	Background:   lipgloss.Color("0"),
	Surface:      lipgloss.Color("0"),
	SurfaceHover: lipgloss.Color("8"),
	Border:       lipgloss.Color("8"),
	BorderAccent: lipgloss.Color("5"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Primary:      lipgloss.Color("13"),
	Secondary:    lipgloss.Color("14"),
	Accent:       lipgloss.Color("5"),
	Income:       lipgloss.Color("10"),
	Expense:      lipgloss.Color("9"),
	Warning:      lipgloss.Color("11"),
}

// All available themes.
var All = []Theme{LuminaDark, LuminaSlate, Terminal}

// ByName returns a theme by its name, defaulting to LuminaDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return LuminaDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// Names returns the names of all themes, in order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}
