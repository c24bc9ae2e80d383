package cmd

import (
	"fmt"

	"github.com/theirongolddev/lumina/internal/cli"
	"github.com/theirongolddev/lumina/internal/config"
	"github.com/theirongolddev/lumina/internal/pipeline"
	"github.com/theirongolddev/lumina/internal/store"

	"github.com/spf13/cobra"
)

var flagListKind string

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the month's transactions, most recent first",
	RunE:    runList,
}

func init() {
	listCmd.Flags().StringVarP(&flagListKind, "kind", "k", "all", "Filter: all, income, fixed, variable, expense")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	kinds, err := cli.ParseKindFilter(flagListKind)
	if err != nil {
		return err
	}

	return withStore(func(cfg config.Config, st *store.Store) error {
		_, report, err := loadReport(cmd.Context(), cfg, st)
		if err != nil {
			return err
		}

		txs := pipeline.FilterByKind(report.Monthly, kinds...)
		if len(txs) == 0 {
			fmt.Printf("\n  No transactions in %s.\n\n", cli.FormatMonth(report.Month))
			return nil
		}

		catalog := config.NewCatalog(cfg)
		cur := cfg.General.Currency

		rows := make([][]string, 0, len(txs))
		for _, tx := range txs {
			amount := cli.FormatMoney(cur, tx.Amount)
			if tx.Kind.IsIncome() {
				amount = cli.ColorAmount(1, "+"+amount)
			} else {
				amount = cli.ColorAmount(-1, "-"+amount)
			}
			status := tx.Status.String()
			if !tx.Status.IsPaid() {
				status = cli.Warn(status)
			}
			rows = append(rows, []string{
				tx.Date.Format("Jan 02"),
				catalog.DisplayName(tx.Category),
				cli.Truncate(tx.Note, 28),
				config.PaymentMethodLabel(tx.PaymentMethod),
				status,
				amount,
				cli.Muted(shortID(tx.ID)),
			})
		}

		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   fmt.Sprintf("%s · %s", cli.FormatMonth(report.Month), flagListKind),
			Headers: []string{"Date", "Category", "Note", "Method", "Status", "Amount", "ID"},
			Rows:    rows,
		}))
		fmt.Println()
		return nil
	})
}
