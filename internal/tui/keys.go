package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every dashboard binding. It implements help.KeyMap.
type keyMap struct {
	Dashboard   key.Binding
	Analytics   key.Binding
	Planning    key.Binding
	Investments key.Binding
	NextTab     key.Binding
	PrevTab     key.Binding

	PrevMonth key.Binding
	NextMonth key.Binding
	ThisMonth key.Binding
	View      key.Binding
	Filter    key.Binding

	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Toggle key.Binding

	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Dashboard:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dashboard")),
		Analytics:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "analytics")),
		Planning:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "planning")),
		Investments: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "investments")),
		NextTab:     key.NewBinding(key.WithKeys("right", "tab"), key.WithHelp("→/tab", "next tab")),
		PrevTab:     key.NewBinding(key.WithKeys("left", "shift+tab"), key.WithHelp("←", "prev tab")),

		PrevMonth: key.NewBinding(key.WithKeys("[", "h"), key.WithHelp("[", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("]", "l"), key.WithHelp("]", "next month")),
		ThisMonth: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "this month")),
		View:      key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "realized/projected")),
		Filter:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter list")),

		Up:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Top:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first")),
		Bottom: key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last")),
		Toggle: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "paid/pending")),

		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevMonth, k.NextMonth, k.View, k.Toggle, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Dashboard, k.Analytics, k.Planning, k.Investments, k.NextTab, k.PrevTab},
		{k.PrevMonth, k.NextMonth, k.ThisMonth, k.View, k.Filter},
		{k.Up, k.Down, k.Top, k.Bottom, k.Toggle},
		{k.Reload, k.Help, k.Quit},
	}
}
