package cmd

import (
	"fmt"

	"github.com/theirongolddev/lumina/internal/cli"
	"github.com/theirongolddev/lumina/internal/config"
	"github.com/theirongolddev/lumina/internal/store"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Per-month income, expenses and running balance",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	return withStore(func(cfg config.Config, st *store.Store) error {
		_, report, err := loadReport(cmd.Context(), cfg, st)
		if err != nil {
			return err
		}

		hist := report.History
		if len(hist.Months) == 0 {
			fmt.Println("\n  No transactions yet.")
			return nil
		}

		cur := cfg.General.Currency
		rows := make([][]string, 0, len(hist.Months)+2)
		balances := make([]float64, 0, len(hist.Months))
		for _, m := range hist.Months {
			rows = append(rows, []string{
				m.Month.String(),
				cli.FormatMoney(cur, m.Income),
				cli.FormatMoney(cur, m.Expense),
				cli.ColorAmount(m.Result, cli.FormatSignedMoney(cur, m.Result)),
				cli.ColorAmount(m.RunningBalance, cli.FormatMoney(cur, m.RunningBalance)),
				fmt.Sprintf("%d", m.Transactions),
			})
			balances = append(balances, m.RunningBalance)
		}
		rows = append(rows, []string{"---"}, []string{
			"Total",
			cli.FormatMoney(cur, hist.TotalIncome),
			cli.FormatMoney(cur, hist.TotalExpense),
			cli.ColorAmount(hist.TotalBalance, cli.FormatSignedMoney(cur, hist.TotalBalance)),
			"",
			"",
		})

		fmt.Println()
		fmt.Println(cli.RenderTitle("HISTORY"))
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Month", "Income", "Expenses", "Result", "Balance", "Txns"},
			Rows:    rows,
		}))
		fmt.Println()
		fmt.Printf("  Running balance  %s\n\n", cli.RenderSparkline(balances))
		return nil
	})
}
