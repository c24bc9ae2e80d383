package cmd

import (
	"fmt"

	"github.com/theirongolddev/lumina/internal/cli"
	"github.com/theirongolddev/lumina/internal/config"
	"github.com/theirongolddev/lumina/internal/model"
	"github.com/theirongolddev/lumina/internal/store"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Month summary: projected vs realized",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	return withStore(func(cfg config.Config, st *store.Store) error {
		snap, report, err := loadReport(cmd.Context(), cfg, st)
		if err != nil {
			return err
		}

		if len(snap.Transactions) == 0 {
			fmt.Println("\n  No transactions yet.")
			fmt.Println("  Add one with `lumina add`, or run `lumina import FILE`.")
			return nil
		}

		cur := cfg.General.Currency
		s := report.Summary

		fmt.Println()
		fmt.Println(cli.RenderTitle("LUMINA  " + cli.FormatMonth(report.Month)))
		fmt.Println()

		if s.Transactions == 0 {
			fmt.Printf("  No transactions in %s.\n\n", cli.FormatMonth(report.Month))
			return nil
		}

		projHeader, realHeader := "Projected", "Realized"
		if cfg.General.DefaultView == config.ViewProjected {
			projHeader += " *"
		} else {
			realHeader += " *"
		}

		row := func(label string, proj, realized float64) []string {
			return []string{label, cli.FormatMoney(cur, proj), cli.FormatMoney(cur, realized)}
		}
		rows := [][]string{
			row("Income", s.Projected.Income, s.Realized.Income),
			row("Expenses", s.Projected.Expenses, s.Realized.Expenses),
			{"---"},
			{"Balance",
				cli.ColorAmount(s.Projected.Balance, cli.FormatMoney(cur, s.Projected.Balance)),
				cli.ColorAmount(s.Realized.Balance, cli.FormatMoney(cur, s.Realized.Balance))},
		}

		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"", projHeader, realHeader},
			Rows:    rows,
		}))
		fmt.Println()

		fmt.Printf("  Savings potential  %s\n", cli.ColorAmount(s.SavingsPotential, cli.FormatMoney(cur, s.SavingsPotential)))
		pending := ""
		if s.Pending > 0 {
			pending = cli.Warn(fmt.Sprintf("  (%d pending, %s)", s.Pending,
				cli.FormatMoney(cur, pendingExpenses(report.Monthly))))
		}
		fmt.Printf("  Transactions       %d%s\n", s.Transactions, pending)
		fmt.Println()

		return nil
	})
}

// pendingExpenses sums the expenses not yet paid.
func pendingExpenses(txs []model.Transaction) float64 {
	total := 0.0
	for _, tx := range txs {
		if !tx.Kind.IsIncome() && !tx.Status.IsPaid() {
			total += tx.Amount
		}
	}
	return total
}
