package cmd

import (
	"context"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/lumina/internal/model"
	"github.com/theirongolddev/lumina/internal/pipeline"
	"github.com/theirongolddev/lumina/internal/store"
)

func TestBuildTransaction(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	now := time.Date(2024, time.March, 10, 23, 30, 0, 0, time.UTC) // already the 10th in BRT, 20:30

	tx, err := buildTransaction(addInput{
		amount: "R$ 1.234,50", kind: "fixed", category: " Rent ", date: "yesterday",
		note: "  march rent ", status: "pending", method: "pix", frequency: "monthly",
	}, now, loc)
	if err != nil {
		t.Fatalf("buildTransaction: %v", err)
	}

	if tx.ID == "" {
		t.Error("transaction has no id")
	}
	if tx.Amount != 1234.5 {
		t.Errorf("Amount = %v, want 1234.5", tx.Amount)
	}
	if tx.Kind != model.KindFixedExpense || tx.Status != model.StatusPending {
		t.Errorf("Kind/Status = %v/%v", tx.Kind, tx.Status)
	}
	if tx.Category != "rent" || tx.Note != "march rent" {
		t.Errorf("Category/Note = %q/%q", tx.Category, tx.Note)
	}
	want := time.Date(2024, time.March, 9, 12, 0, 0, 0, loc)
	if !tx.Date.Equal(want) {
		t.Errorf("Date = %v, want %v", tx.Date, want)
	}
}

func TestBuildTransaction_Invalid(t *testing.T) {
	base := addInput{amount: "10", kind: "variable", category: "food", date: "today",
		status: "paid", method: "pix", frequency: "one_time"}

	tests := []struct {
		name   string
		mutate func(*addInput)
		want   error
	}{
		{"zero amount", func(in *addInput) { in.amount = "0" }, model.ErrInvalidAmount},
		{"bad kind", func(in *addInput) { in.kind = "gift" }, model.ErrUnknownValue},
		{"bad status", func(in *addInput) { in.status = "maybe" }, model.ErrUnknownValue},
		{"bad method", func(in *addInput) { in.method = "cheque" }, model.ErrUnknownValue},
		{"empty category", func(in *addInput) { in.category = " " }, model.ErrMissingCategory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			tt.mutate(&in)
			_, err := buildTransaction(in, time.Now(), time.UTC)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseKindArg(t *testing.T) {
	tests := map[string]model.Kind{
		"income":           model.KindIncome,
		"Fixed":            model.KindFixedExpense,
		"variable":         model.KindVariableExpense,
		"expense_variable": model.KindVariableExpense,
		"expense_fixed":    model.KindFixedExpense,
	}
	for in, want := range tests {
		got, err := parseKindArg(in)
		if err != nil || got != want {
			t.Errorf("parseKindArg(%q) = %v, %v, want %v", in, got, err, want)
		}
	}
}

func TestResolveID(t *testing.T) {
	ids := []string{"abc123", "abd456", "xyz"}

	got, err := resolveID("xyz", ids, "goal")
	if err != nil || got != "xyz" {
		t.Errorf("exact = %q, %v", got, err)
	}
	got, err = resolveID("abd", ids, "goal")
	if err != nil || got != "abd456" {
		t.Errorf("prefix = %q, %v", got, err)
	}
	if _, err := resolveID("ab", ids, "goal"); !errors.Is(err, errAmbiguousID) {
		t.Errorf("ambiguous error = %v", err)
	}
	if _, err := resolveID("nope", ids, "goal"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("missing error = %v", err)
	}
	if _, err := resolveID(" ", ids, "goal"); err == nil {
		t.Error("empty id accepted")
	}
}

func TestApplyGoalInput(t *testing.T) {
	g := model.Goal{ID: "g1"}
	in := goalInput{name: "Trip", target: "5.000,00", current: "0", deadline: "2025-06-30", icon: "plane"}
	if err := applyGoalInput(&g, in, allFields); err != nil {
		t.Fatalf("applyGoalInput: %v", err)
	}
	if g.TargetAmount != 5000 || g.CurrentAmount != 0 || g.Deadline == nil || g.Deadline.String() != "2025-06-30" {
		t.Errorf("goal = %+v", g)
	}

	// Only changed fields are applied.
	onlyCurrent := func(name string) bool { return name == "current" }
	if err := applyGoalInput(&g, goalInput{current: "1200"}, onlyCurrent); err != nil {
		t.Fatalf("applyGoalInput current: %v", err)
	}
	if g.CurrentAmount != 1200 || g.Name != "Trip" || g.TargetAmount != 5000 {
		t.Errorf("partial update = %+v", g)
	}

	onlyDeadline := func(name string) bool { return name == "deadline" }
	if err := applyGoalInput(&g, goalInput{deadline: "none"}, onlyDeadline); err != nil {
		t.Fatalf("clearing deadline: %v", err)
	}
	if g.Deadline != nil {
		t.Errorf("deadline = %v, want nil", g.Deadline)
	}

	if err := applyGoalInput(&g, goalInput{name: " "}, func(n string) bool { return n == "name" }); !errors.Is(err, model.ErrMissingName) {
		t.Errorf("blank name error = %v", err)
	}
}

func TestBuildInvestment(t *testing.T) {
	now := time.Date(2024, time.May, 3, 9, 0, 0, 0, time.UTC)

	inv, err := buildInvestment("Index fund", "500", "", "", 10, now)
	if err != nil {
		t.Fatalf("buildInvestment: %v", err)
	}
	if inv.AnnualRate != 10 || inv.MonthlyContribution != 500 {
		t.Errorf("investment = %+v", inv)
	}
	if inv.StartDate.Day() != 3 || inv.StartDate.Hour() != 12 {
		t.Errorf("StartDate = %v, want May 3 at noon", inv.StartDate)
	}

	inv, err = buildInvestment("Bonds", "100", "12,5%", "2023-01-15", 10, now)
	if err != nil || inv.AnnualRate != 12.5 || inv.StartDate.Year() != 2023 {
		t.Errorf("explicit = %+v, %v", inv, err)
	}

	if _, err := buildInvestment("Bad", "100", "-100", "", 10, now); !errors.Is(err, model.ErrInvalidRate) {
		t.Errorf("rate -100 error = %v", err)
	}
	if _, err := buildInvestment(" ", "100", "", "", 10, now); !errors.Is(err, model.ErrMissingName) {
		t.Errorf("blank name error = %v", err)
	}
}

func TestWriteFileAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	err := writeFileAtomic(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "{}")
		return err
	})
	if err != nil {
		t.Fatalf("writeFileAtomic: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil || string(b) != "{}" {
		t.Errorf("file = %q, %v", b, err)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind after a successful write")
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("file mode = %v, want 0600", info.Mode().Perm())
	}

	boom := errors.New("boom")
	if err := writeFileAtomic(path, func(io.Writer) error { return boom }); !errors.Is(err, boom) {
		t.Errorf("error = %v, want boom", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind")
	}
	if b, _ := os.ReadFile(path); string(b) != "{}" {
		t.Error("failed write clobbered the existing file")
	}
}

// run executes the root command with args against an isolated environment.
func run(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	return rootCmd.Execute()
}

func TestCommands_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("LUMINA_DB_PATH", "")
	dbFile := filepath.Join(dir, "lumina.db")
	backupFile := filepath.Join(dir, "backup.json")

	steps := [][]string{
		{"add", "--db", dbFile, "-q", "--amount", "3000", "--type", "income", "--category", "salary", "--date", "2024-01-05", "--status", "paid"},
		{"add", "--db", dbFile, "-q", "--amount", "1200", "--type", "fixed", "--category", "rent", "--date", "2024-01-10", "--status", "pending"},
		{"goals", "add", "--db", dbFile, "-q", "--name", "Trip", "--target", "5000", "--current", "0", "--deadline", "", "--icon", "plane"},
		{"invest", "add", "--db", dbFile, "-q", "--name", "Index", "--monthly", "200", "--rate", "10"},
		{"export", "--db", dbFile, "-q", "--out", backupFile},
		{"reset", "--db", dbFile, "-q", "--yes"},
	}
	for _, args := range steps {
		if err := run(t, args...); err != nil {
			t.Fatalf("lumina %s: %v", strings.Join(args, " "), err)
		}
	}

	st, err := store.Open(dbFile)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	counts, err := st.Count(context.Background())
	if err != nil || counts != (store.Counts{}) {
		t.Fatalf("after reset counts = %+v, %v", counts, err)
	}
	_ = st.Close()

	if err := run(t, "import", backupFile, "--db", dbFile, "-q", "--yes"); err != nil {
		t.Fatalf("import: %v", err)
	}

	st, err = store.Open(dbFile)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	defer func() { _ = st.Close() }()
	counts, err = st.Count(context.Background())
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if counts != (store.Counts{Transactions: 2, Goals: 1, Investments: 1}) {
		t.Errorf("after import counts = %+v", counts)
	}

	// Toggling by id prefix flips the pending rent to paid.
	txs, err := st.ListTransactions(context.Background())
	if err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}
	var rent model.Transaction
	for _, tx := range txs {
		if tx.Category == "rent" {
			rent = tx
		}
	}
	if err := run(t, "toggle", rent.ID[:8], "--db", dbFile, "-q"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	txs, _ = st.ListTransactions(context.Background())
	for _, tx := range txs {
		if tx.ID == rent.ID && tx.Status != model.StatusPaid {
			t.Errorf("rent status = %v, want paid", tx.Status)
		}
	}

	// Without --yes and without a terminal, destructive commands refuse.
	if err := run(t, "reset", "--db", dbFile, "-q", "--yes=false"); !errors.Is(err, errNeedConfirm) {
		t.Errorf("reset without --yes error = %v, want errNeedConfirm", err)
	}
}

func TestDescribeEvaluation_OutOfRangeMonths(t *testing.T) {
	for _, months := range []int{math.MinInt, 0, pipeline.MaxProjectedMonths + 1} {
		g := pipeline.GoalReport{Evaluation: model.GoalEvaluation{
			Verdict:       model.VerdictProjected,
			MonthsToReach: months,
		}}
		if got := describeEvaluation("R$", g); got != "no surplus" {
			t.Errorf("describeEvaluation(%d months) = %q, want %q", months, got, "no surplus")
		}
	}

	g := pipeline.GoalReport{Evaluation: model.GoalEvaluation{Verdict: model.VerdictProjected, MonthsToReach: 14}}
	if got := describeEvaluation("R$", g); got != "in 1y 2m" {
		t.Errorf("describeEvaluation(14 months) = %q, want %q", got, "in 1y 2m")
	}
}
