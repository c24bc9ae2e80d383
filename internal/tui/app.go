// Package tui provides the interactive Bubble Tea dashboard for lumina.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/theirongolddev/lumina/internal/cli"
	"github.com/theirongolddev/lumina/internal/config"
	"github.com/theirongolddev/lumina/internal/model"
	"github.com/theirongolddev/lumina/internal/pipeline"
	"github.com/theirongolddev/lumina/internal/tui/components"
	"github.com/theirongolddev/lumina/internal/tui/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Store is the persistence the dashboard reads from and toggles through.
type Store interface {
	pipeline.Source
	ToggleTransactionStatus(ctx context.Context, id string) (model.Status, error)
}

// DataLoadedMsg is sent when a snapshot load finishes.
type DataLoadedMsg struct {
	Snapshot *pipeline.Snapshot
	LoadTime time.Duration
	Err      error
}

// StatusToggledMsg is sent when a transaction's status flip is persisted.
type StatusToggledMsg struct {
	ID     string
	Status model.Status
	Err    error
}

// Options are the initial dashboard settings.
type Options struct {
	Month     model.MonthKey // zero means the current month
	NeedSetup bool           // show the first-run form once data loads
}

// App is the root Bubble Tea model.
type App struct {
	store   Store
	cfg     config.Config
	catalog *config.Catalog
	now     func() time.Time

	// Data
	snap     *pipeline.Snapshot
	report   pipeline.Report
	loaded   bool
	loading  bool
	loadTime time.Duration
	loadErr  error
	flash    string

	// Month view
	month   model.MonthKey
	view    string // config.ViewRealized or config.ViewProjected
	filter  int    // index into cli.KindFilters
	visible []model.Transaction
	cursor  int

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool

	spinner spinner.Model
	keys    keyMap
	help    help.Model
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180

	minContentHeight = 5
	loadTimeout      = 30 * time.Second
)

// NewApp creates a new TUI app model reading from st.
func NewApp(st Store, cfg config.Config, opts Options) App {
	t := theme.Active

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(t.Primary).Background(t.Surface)

	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(t.Secondary).Background(t.Surface).Bold(true)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	month := opts.Month
	if month == (model.MonthKey{}) {
		month = model.MonthOf(time.Now())
	}

	view := cfg.General.DefaultView
	if view != config.ViewProjected {
		view = config.ViewRealized
	}

	return App{
		store:     st,
		cfg:       cfg,
		catalog:   config.NewCatalog(cfg),
		now:       time.Now,
		month:     month,
		view:      view,
		needSetup: opts.NeedSetup,
		loading:   true,
		spinner:   sp,
		keys:      defaultKeyMap(),
		help:      h,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadDataCmd(a.store),
		a.spinner.Tick,
	)
}

func (a *App) recompute() {
	if a.snap == nil {
		return
	}
	a.report = pipeline.BuildReport(a.snap, a.month, a.now(), pipeline.ReportOptions{
		HorizonMonths:  a.cfg.Projection.HorizonMonths,
		StepMonths:     a.cfg.Projection.StepMonths,
		MilestoneYears: a.cfg.Projection.MilestoneYears,
	})

	kinds, _ := cli.ParseKindFilter(cli.KindFilters[a.filter])
	a.visible = pipeline.FilterByKind(a.report.Monthly, kinds...)

	// Clamp cursor to the new list bounds
	if a.cursor >= len(a.visible) {
		a.cursor = len(a.visible) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || a.setupForm != nil {
			return a, nil
		}
		if msg.Action != tea.MouseActionPress {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.activeTab == 0 {
				a.moveCursor(-1)
			}
		case tea.MouseButtonWheelDown:
			if a.activeTab == 0 {
				a.moveCursor(1)
			}
		case tea.MouseButtonLeft:
			// Tab bar is the first line
			if msg.Y == 0 {
				if tab := components.TabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
				}
			}
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.loaded {
			switch {
			case key.Matches(msg, a.keys.Quit):
				return a, tea.Quit
			case key.Matches(msg, a.keys.Reload) && a.loadErr != nil && !a.loading:
				a.loading = true
				a.loadErr = nil
				return a, tea.Batch(loadDataCmd(a.store), a.spinner.Tick)
			}
			return a, nil
		}

		// First-run setup wizard intercepts all keys
		if a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		if key.Matches(msg, a.keys.Help) {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		return a.handleKey(msg)

	case DataLoadedMsg:
		a.loading = false
		a.loadTime = msg.LoadTime
		if msg.Err != nil {
			slog.Warn("loading dashboard data", "err", msg.Err)
			a.loadErr = msg.Err
			a.loaded = a.snap != nil
			return a, nil
		}
		a.loadErr = nil
		a.snap = msg.Snapshot
		a.loaded = true
		a.recompute()

		if a.needSetup {
			a.needSetup = false
			a.setupVals = setupValuesFrom(a.cfg)
			a.setupForm = newSetupForm(&a.setupVals, len(a.snap.Transactions))
			if a.width > 0 {
				a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.setupForm.Init()
		}
		return a, nil

	case StatusToggledMsg:
		if msg.Err != nil {
			a.flash = "toggle failed: " + msg.Err.Error()
			return a, nil
		}
		a.applyStatus(msg.ID, msg.Status)
		a.flash = fmt.Sprintf("marked %s", msg.Status)
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.flash = ""
	k := a.keys

	switch {
	case key.Matches(msg, k.Quit):
		return a, tea.Quit

	case key.Matches(msg, k.Reload):
		if !a.loading {
			a.loading = true
			return a, loadDataCmd(a.store)
		}

	case key.Matches(msg, k.Dashboard):
		a.activeTab = 0
	case key.Matches(msg, k.Analytics):
		a.activeTab = 1
	case key.Matches(msg, k.Planning):
		a.activeTab = 2
	case key.Matches(msg, k.Investments):
		a.activeTab = 3
	case key.Matches(msg, k.NextTab):
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	case key.Matches(msg, k.PrevTab):
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)

	case key.Matches(msg, k.PrevMonth):
		a.month = a.month.Add(-1)
		a.cursor = 0
		a.recompute()
	case key.Matches(msg, k.NextMonth):
		a.month = a.month.Add(1)
		a.cursor = 0
		a.recompute()
	case key.Matches(msg, k.ThisMonth):
		a.month = model.MonthOf(a.now())
		a.cursor = 0
		a.recompute()

	case key.Matches(msg, k.View):
		if a.view == config.ViewRealized {
			a.view = config.ViewProjected
		} else {
			a.view = config.ViewRealized
		}
	case key.Matches(msg, k.Filter):
		a.filter = (a.filter + 1) % len(cli.KindFilters)
		a.cursor = 0
		a.recompute()

	case key.Matches(msg, k.Up):
		a.moveCursor(-1)
	case key.Matches(msg, k.Down):
		a.moveCursor(1)
	case key.Matches(msg, k.Top):
		a.cursor = 0
	case key.Matches(msg, k.Bottom):
		a.cursor = max(0, len(a.visible)-1)

	case key.Matches(msg, k.Toggle):
		if a.activeTab == 0 && a.cursor < len(a.visible) {
			return a, toggleStatusCmd(a.store, a.visible[a.cursor].ID)
		}
	}
	return a, nil
}

func (a *App) moveCursor(delta int) {
	a.cursor = min(max(a.cursor+delta, 0), max(0, len(a.visible)-1))
}

// applyStatus updates the in-memory snapshot after a persisted toggle.
func (a *App) applyStatus(id string, status model.Status) {
	if a.snap == nil {
		return
	}
	for i := range a.snap.Transactions {
		if a.snap.Transactions[i].ID == id {
			a.snap.Transactions[i].Status = status
			break
		}
	}
	a.recompute()
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		cfg := a.setupVals.apply(a.cfg)
		if err := config.Save(cfg); err != nil {
			a.flash = "could not save config: " + err.Error()
		}
		a.cfg = cfg
		a.catalog = config.NewCatalog(cfg)
		a.view = cfg.General.DefaultView
		theme.SetActive(cfg.Appearance.Theme)
		a.setupForm = nil
		a.recompute()
		return a, nil
	case huh.StateAborted:
		a.setupForm = nil
		return a, nil
	}
	return a, cmd
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

func (a App) money(v float64) string {
	return cli.FormatMoney(a.cfg.General.Currency, v)
}

// totals returns the month's totals for the active view.
func (a App) totals() model.Totals {
	if a.view == config.ViewProjected {
		return a.report.Summary.Projected
	}
	return a.report.Summary.Realized
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if !a.loaded {
		if a.loadErr != nil {
			return a.viewLoadError()
		}
		return a.viewLoading()
	}
	if a.setupForm != nil {
		return a.setupForm.View()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  lumina needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)
	logoStyle := lipgloss.NewStyle().Foreground(t.Primary).Background(t.Surface).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ lumina"))
	b.WriteString(subtitleStyle.Render(" · personal finance"))
	b.WriteString("\n\n")
	b.WriteString(a.spinner.View())
	b.WriteString(subtitleStyle.Render(" Loading ledger..."))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewLoadError() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Expense).
		Background(t.Surface).
		Padding(1, 3)
	errStyle := lipgloss.NewStyle().Foreground(t.Expense).Background(t.Surface).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	body := errStyle.Render("Could not load data") + "\n\n" +
		lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Width(min(60, a.width-10)).Render(a.loadErr.Error()) +
		"\n\n" + dimStyle.Render("r to retry · q to quit")

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(body),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.Primary).Background(t.Surface).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	b.WriteString(a.help.FullHelpView(a.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: tab bar + month/view/filter pill
	pillStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	sep := pillStyle.Render(" │ ")

	pill := pillStyle.Render(" ") +
		accentStyle.Render(cli.FormatMonth(a.month)) + sep +
		accentStyle.Render(a.view) + sep +
		pillStyle.Render("list: ") + accentStyle.Render(cli.KindFilters[a.filter])
	if a.loading {
		pill += sep + pillStyle.Render("reloading")
	}
	if a.flash != "" {
		pill += sep + lipgloss.NewStyle().Foreground(t.Warning).Background(t.Surface).Render(a.flash)
	}
	pillRow := lipgloss.NewStyle().Background(t.Surface).Width(w).Render(pill + pillStyle.Render(" "))

	header := components.RenderTabBar(a.activeTab, w) + "\n" + pillRow

	// 2. Status bar
	statusBar := components.RenderStatusBar(w, a.help.ShortHelpView(a.keys.ShortHelp()), "",
		fmt.Sprintf("%dms", a.loadTime.Milliseconds()))

	// 3. Content zone height
	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	// 4. Tab content
	var content string
	switch a.activeTab {
	case 0:
		content = a.renderDashboardTab(cw, contentH)
	case 1:
		content = a.renderAnalyticsTab(cw)
	case 2:
		content = a.renderPlanningTab(cw)
	case 3:
		content = a.renderInvestmentsTab(cw)
	}

	// 5. Truncate + pad to exactly contentH lines, fill to width
	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Commands ───────────────────────────────────────────────────

// loadDataCmd reads a fresh snapshot from st in the background.
func loadDataCmd(st Store) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		snap, err := pipeline.Load(ctx, st)
		return DataLoadedMsg{Snapshot: snap, LoadTime: time.Since(start), Err: err}
	}
}

// toggleStatusCmd flips a transaction between paid and pending.
func toggleStatusCmd(st Store, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		status, err := st.ToggleTransactionStatus(ctx, id)
		return StatusToggledMsg{ID: id, Status: status, Err: err}
	}
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		result.WriteString(lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg)))
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
