package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/lumina/internal/config"
	"github.com/theirongolddev/lumina/internal/model"
	"github.com/theirongolddev/lumina/internal/pipeline"
	"github.com/theirongolddev/lumina/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
)

type fakeStore struct {
	snap    pipeline.Snapshot
	toggled []string
}

func (f *fakeStore) ListTransactions(context.Context) ([]model.Transaction, error) {
	return f.snap.Transactions, nil
}

func (f *fakeStore) ListGoals(context.Context) ([]model.Goal, error) { return f.snap.Goals, nil }

func (f *fakeStore) ListInvestments(context.Context) ([]model.Investment, error) {
	return f.snap.Investments, nil
}

func (f *fakeStore) ToggleTransactionStatus(_ context.Context, id string) (model.Status, error) {
	f.toggled = append(f.toggled, id)
	for i := range f.snap.Transactions {
		if f.snap.Transactions[i].ID == id {
			f.snap.Transactions[i].Status = f.snap.Transactions[i].Status.Toggle()
			return f.snap.Transactions[i].Status, nil
		}
	}
	return 0, context.Canceled
}

var testNow = time.Date(2024, time.January, 20, 12, 0, 0, 0, time.UTC)

func testTx(id string, amount float64, kind model.Kind, status model.Status, day int) model.Transaction {
	return model.Transaction{
		ID: id, Amount: amount, Kind: kind, Status: status,
		Category: "food", Frequency: model.FrequencyOneTime, PaymentMethod: model.MethodPix,
		Date: time.Date(2024, time.January, day, 12, 0, 0, 0, time.UTC),
	}
}

func newTestApp(t *testing.T) (App, *fakeStore) {
	t.Helper()
	st := &fakeStore{snap: pipeline.Snapshot{
		Transactions: []model.Transaction{
			testTx("salary", 1000, model.KindIncome, model.StatusPaid, 5),
			testTx("rent", 400, model.KindFixedExpense, model.StatusPaid, 10),
			testTx("market", 200, model.KindVariableExpense, model.StatusPending, 15),
		},
		Goals: []model.Goal{{ID: "g1", Name: "Trip", TargetAmount: 1200, CurrentAmount: 0}},
		Investments: []model.Investment{
			{ID: "i1", Name: "Index fund", MonthlyContribution: 100, AnnualRate: 12},
		},
	}}

	a := NewApp(st, config.DefaultConfig(), Options{Month: model.MonthOf(testNow)})
	a.now = func() time.Time { return testNow }
	a = update(t, a, tea.WindowSizeMsg{Width: 140, Height: 40})

	msg := loadDataCmd(st)()
	a = update(t, a, msg)
	if !a.loaded {
		t.Fatal("app not loaded after DataLoadedMsg")
	}
	return a, st
}

func update(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	m, _ := a.Update(msg)
	app, ok := m.(App)
	if !ok {
		t.Fatalf("Update returned %T, want App", m)
	}
	return app
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestApp_LoadComputesMonth(t *testing.T) {
	a, _ := newTestApp(t)

	if got := a.report.Summary.Realized.Balance; got != 600 {
		t.Errorf("realized balance = %v, want 600", got)
	}
	if got := a.totals().Expenses; got != 400 {
		t.Errorf("realized view expenses = %v, want 400", got)
	}
	if len(a.visible) != 3 || a.visible[0].ID != "market" {
		t.Errorf("visible = %v, want 3 entries starting with market", a.visible)
	}
}

func TestApp_ViewToggle(t *testing.T) {
	a, _ := newTestApp(t)

	a = update(t, a, keyPress("v"))
	if a.view != config.ViewProjected {
		t.Fatalf("view = %q, want projected", a.view)
	}
	if got := a.totals().Expenses; got != 600 {
		t.Errorf("projected view expenses = %v, want 600", got)
	}
	a = update(t, a, keyPress("v"))
	if a.view != config.ViewRealized {
		t.Errorf("view = %q, want realized", a.view)
	}
}

func TestApp_MonthNavigation(t *testing.T) {
	a, _ := newTestApp(t)

	a = update(t, a, keyPress("["))
	if a.month.String() != "2023-12" {
		t.Fatalf("month = %s, want 2023-12", a.month)
	}
	if len(a.visible) != 0 || a.report.Summary.Transactions != 0 {
		t.Errorf("December should be empty, got %d transactions", a.report.Summary.Transactions)
	}

	a = update(t, a, keyPress("]"))
	a = update(t, a, keyPress("]"))
	if a.month.String() != "2024-02" {
		t.Errorf("month = %s, want 2024-02", a.month)
	}
	a = update(t, a, keyPress("t"))
	if a.month.String() != "2024-01" {
		t.Errorf("month = %s, want 2024-01 after t", a.month)
	}
}

func TestApp_FilterCycles(t *testing.T) {
	a, _ := newTestApp(t)

	want := []int{1, 1, 1, 3} // income, fixed, variable, all
	for i, n := range want {
		a = update(t, a, keyPress("f"))
		if len(a.visible) != n {
			t.Errorf("after %d presses visible = %d, want %d", i+1, len(a.visible), n)
		}
	}
}

func TestApp_ToggleStatus(t *testing.T) {
	a, st := newTestApp(t)

	// Cursor starts on the most recent entry, the pending market run.
	m, cmd := a.Update(keyPress("enter"))
	a = m.(App)
	if cmd == nil {
		t.Fatal("enter produced no command")
	}
	a = update(t, a, cmd())

	if len(st.toggled) != 1 || st.toggled[0] != "market" {
		t.Fatalf("toggled = %v, want [market]", st.toggled)
	}
	if got := a.report.Summary.Realized.Expenses; got != 600 {
		t.Errorf("realized expenses after toggle = %v, want 600", got)
	}
	if a.report.Summary.Pending != 0 {
		t.Errorf("pending = %d, want 0", a.report.Summary.Pending)
	}
}

func TestApp_CursorBounds(t *testing.T) {
	a, _ := newTestApp(t)

	a = update(t, a, keyPress("k"))
	if a.cursor != 0 {
		t.Errorf("cursor = %d, want 0", a.cursor)
	}
	for range 5 {
		a = update(t, a, keyPress("j"))
	}
	if a.cursor != 2 {
		t.Errorf("cursor = %d, want 2", a.cursor)
	}
	a = update(t, a, keyPress("g"))
	if a.cursor != 0 {
		t.Errorf("cursor = %d after g, want 0", a.cursor)
	}
}

func TestApp_TabKeysAndMouse(t *testing.T) {
	a, _ := newTestApp(t)

	a = update(t, a, keyPress("i"))
	if a.activeTab != 3 {
		t.Fatalf("activeTab = %d, want 3", a.activeTab)
	}

	x := 1 + components.TabVisualWidth(0) + 2 + 1 // inside "Analytics"
	a = update(t, a, tea.MouseMsg{X: x, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if a.activeTab != 1 {
		t.Errorf("activeTab = %d after click, want 1", a.activeTab)
	}

	// Clicks below the tab bar do not switch tabs.
	a = update(t, a, tea.MouseMsg{X: 1, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if a.activeTab != 1 {
		t.Errorf("activeTab = %d after content click, want 1", a.activeTab)
	}
}

func TestApp_ViewRendersEveryTab(t *testing.T) {
	a, _ := newTestApp(t)

	checks := []struct {
		key  string
		want string
	}{
		{"d", "Savings potential"},
		{"a", "Expenses by category"},
		{"p", "Trip"},
		{"i", "Index fund"},
	}
	for _, c := range checks {
		a = update(t, a, keyPress(c.key))
		out := a.View()
		if !strings.Contains(out, c.want) {
			t.Errorf("tab %q view missing %q", c.key, c.want)
		}
		if lines := strings.Count(out, "\n") + 1; lines != a.height {
			t.Errorf("tab %q rendered %d lines, want %d", c.key, lines, a.height)
		}
	}
}

func TestApp_TooNarrow(t *testing.T) {
	a, _ := newTestApp(t)
	a = update(t, a, tea.WindowSizeMsg{Width: 60, Height: 20})
	if !strings.Contains(a.View(), "too narrow") {
		t.Error("narrow terminal should show the too-narrow notice")
	}
}

func TestSetupValuesApply(t *testing.T) {
	cfg := config.DefaultConfig()
	vals := setupValuesFrom(cfg)
	vals.currency = " US$ "
	vals.defaultView = config.ViewProjected
	vals.theme = "terminal"
	vals.annualRate = "8,5"

	got := vals.apply(cfg)
	if got.General.Currency != "US$" || got.General.DefaultView != config.ViewProjected ||
		got.Appearance.Theme != "terminal" || got.Projection.DefaultAnnualRate != 8.5 {
		t.Errorf("apply = %+v", got)
	}

	vals.annualRate = "nope"
	if got := vals.apply(cfg); got.Projection.DefaultAnnualRate != cfg.Projection.DefaultAnnualRate {
		t.Errorf("bad rate changed config to %v", got.Projection.DefaultAnnualRate)
	}
}
