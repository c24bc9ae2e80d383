package cmd

import (
	"fmt"

	"github.com/theirongolddev/lumina/internal/cli"
	"github.com/theirongolddev/lumina/internal/config"
	"github.com/theirongolddev/lumina/internal/pipeline"
	"github.com/theirongolddev/lumina/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagCatMonthOnly bool
	flagCatCatalog   bool
)

var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"cats"},
	Short:   "Expense breakdown by category",
	RunE:    runCategories,
}

func init() {
	categoriesCmd.Flags().BoolVar(&flagCatMonthOnly, "month-only", false, "Only the selected month instead of all time")
	categoriesCmd.Flags().BoolVar(&flagCatCatalog, "catalog", false, "List known category ids instead")
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, _ []string) error {
	if flagCatCatalog {
		return printCatalog(loadConfig())
	}

	return withStore(func(cfg config.Config, st *store.Store) error {
		_, report, err := loadReport(cmd.Context(), cfg, st)
		if err != nil {
			return err
		}

		cats := report.Categories
		scope := "all time"
		if flagCatMonthOnly {
			cats = pipeline.AggregateCategories(report.Monthly)
			scope = cli.FormatMonth(report.Month)
		}
		if len(cats) == 0 {
			fmt.Printf("\n  No expenses (%s).\n\n", scope)
			return nil
		}

		catalog := config.NewCatalog(cfg)
		cur := cfg.General.Currency
		maxTotal := cats[0].Total

		fmt.Println()
		fmt.Println(cli.RenderTitle("EXPENSES BY CATEGORY  " + scope))
		fmt.Println()
		for _, c := range cats {
			label := catalog.DisplayName(c.Category)
			if _, ok := catalog.Resolve(c.Category); !ok {
				label = fmt.Sprintf("%s (%s)", label, c.Category)
			}
			value := fmt.Sprintf("%s  %s  %s", cli.FormatMoney(cur, c.Total), cli.FormatPercent(c.SharePercent),
				cli.Muted(fmt.Sprintf("%d txns", c.Transactions)))
			fmt.Println(cli.RenderHorizontalBar(label, value, c.Total, maxTotal, 24, 30))
		}
		fmt.Println()
		return nil
	})
}

func printCatalog(cfg config.Config) error {
	catalog := config.NewCatalog(cfg)
	rows := make([][]string, 0)
	for _, c := range catalog.All() {
		rows = append(rows, []string{c.ID, c.Name, c.Icon, c.Color})
	}
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Categories",
		Headers: []string{"ID", "Name", "Icon", "Color"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}
