package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/lumina/internal/cli"
	"github.com/theirongolddev/lumina/internal/config"
	"github.com/theirongolddev/lumina/internal/model"
	"github.com/theirongolddev/lumina/internal/store"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// addInput holds the raw answers of the add form or flags.
type addInput struct {
	amount    string
	kind      string
	category  string
	date      string
	note      string
	status    string
	method    string
	frequency string
}

var flagAdd addInput

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a transaction",
	Long: "Add an income or expense. Without --amount on a terminal an\n" +
		"interactive form is shown.",
	Example: `  lumina add --amount 1200 --type income --category salary
  lumina add --amount "R$ 89,90" --type variable --category food --status pending`,
	RunE: runAdd,
}

func init() {
	f := addCmd.Flags()
	f.StringVarP(&flagAdd.amount, "amount", "a", "", "Amount, e.g. 1234.56 or 1.234,56")
	f.StringVarP(&flagAdd.kind, "type", "t", "variable", "income, fixed or variable")
	f.StringVarP(&flagAdd.category, "category", "c", "other", "Category id")
	f.StringVarP(&flagAdd.date, "date", "d", "today", "YYYY-MM-DD, today or yesterday")
	f.StringVarP(&flagAdd.note, "note", "n", "", "Free-text description")
	f.StringVarP(&flagAdd.status, "status", "s", "paid", "paid or pending")
	f.StringVar(&flagAdd.method, "method", "pix", "credit_card, debit_card, pix, cash or other")
	f.StringVar(&flagAdd.frequency, "frequency", "one_time", "monthly, yearly or one_time")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, _ []string) error {
	return withStore(func(cfg config.Config, st *store.Store) error {
		in := flagAdd
		if in.amount == "" {
			if !stdinIsTerminal() {
				return fmt.Errorf("--amount is required when not running on a terminal")
			}
			if err := runAddForm(&in, config.NewCatalog(cfg)); err != nil {
				return err
			}
		}

		tx, err := buildTransaction(in, time.Now(), time.Local)
		if err != nil {
			return err
		}
		if err := st.AddTransaction(cmd.Context(), tx); err != nil {
			return err
		}

		progressf("  Added %s %s (%s) on %s [%s]\n",
			kindArg(tx.Kind), cli.FormatMoney(cfg.General.Currency, tx.Amount),
			config.NewCatalog(cfg).DisplayName(tx.Category), tx.Date.Format("2006-01-02"), shortID(tx.ID))
		return nil
	})
}

// buildTransaction validates raw input into a new transaction with a fresh id.
func buildTransaction(in addInput, now time.Time, loc *time.Location) (model.Transaction, error) {
	amount, err := cli.ParseAmount(in.amount)
	if err != nil {
		return model.Transaction{}, err
	}
	kind, err := parseKindArg(in.kind)
	if err != nil {
		return model.Transaction{}, err
	}
	date, err := cli.ParseTransactionDate(in.date, now, loc)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("--date: %w", err)
	}
	status, err := model.ParseStatus(strings.TrimSpace(in.status))
	if err != nil {
		return model.Transaction{}, err
	}
	method, err := model.ParsePaymentMethod(strings.TrimSpace(in.method))
	if err != nil {
		return model.Transaction{}, err
	}
	freq, err := model.ParseFrequency(strings.TrimSpace(in.frequency))
	if err != nil {
		return model.Transaction{}, err
	}

	tx := model.Transaction{
		ID:            model.NewID(),
		Amount:        amount,
		Kind:          kind,
		Category:      strings.ToLower(strings.TrimSpace(in.category)),
		Frequency:     freq,
		Date:          date,
		Note:          strings.TrimSpace(in.note),
		Status:        status,
		PaymentMethod: method,
	}
	return tx, tx.Validate()
}

// parseKindArg accepts the short names used on the command line as well as
// the stored kind names.
func parseKindArg(s string) (model.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income", "in":
		return model.KindIncome, nil
	case "fixed":
		return model.KindFixedExpense, nil
	case "variable", "expense", "out":
		return model.KindVariableExpense, nil
	}
	return model.ParseKind(strings.TrimSpace(s))
}

func kindArg(k model.Kind) string {
	switch k {
	case model.KindIncome:
		return "income"
	case model.KindFixedExpense:
		return "fixed expense"
	default:
		return "expense"
	}
}

func runAddForm(in *addInput, catalog *config.Catalog) error {
	catOpts := make([]huh.Option[string], 0)
	for _, c := range catalog.All() {
		catOpts = append(catOpts, huh.NewOption(c.Name, c.ID))
	}
	catOpts = append(catOpts, huh.NewOption(config.OtherCategory.Name, config.OtherCategory.ID))

	methodOpts := make([]huh.Option[string], 0)
	for _, m := range model.PaymentMethods() {
		methodOpts = append(methodOpts, huh.NewOption(config.PaymentMethodLabel(m), m.String()))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("Expense (variable)", "variable"),
					huh.NewOption("Expense (fixed)", "fixed"),
					huh.NewOption("Income", "income"),
				).
				Value(&in.kind),
			huh.NewInput().
				Title("Amount").
				Placeholder("0,00").
				Validate(func(s string) error {
					_, err := cli.ParseAmount(s)
					return err
				}).
				Value(&in.amount),
			huh.NewSelect[string]().
				Title("Category").
				Options(catOpts...).
				Height(8).
				Value(&in.category),
			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD, today or yesterday").
				Validate(func(s string) error {
					_, err := cli.ParseTransactionDate(s, time.Now(), time.Local)
					return err
				}).
				Value(&in.date),
			huh.NewInput().
				Title("Note").
				Value(&in.note),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Status").
				Options(
					huh.NewOption("Paid", model.StatusPaid.String()),
					huh.NewOption("Pending", model.StatusPending.String()),
				).
				Value(&in.status),
			huh.NewSelect[string]().
				Title("Payment method").
				Options(methodOpts...).
				Value(&in.method),
			huh.NewSelect[string]().
				Title("Frequency").
				Options(
					huh.NewOption("One time", model.FrequencyOneTime.String()),
					huh.NewOption("Monthly", model.FrequencyMonthly.String()),
					huh.NewOption("Yearly", model.FrequencyYearly.String()),
				).
				Value(&in.frequency),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("add form: %w", err)
	}
	return nil
}
