package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/lumina/internal/cli"
	"github.com/theirongolddev/lumina/internal/config"
	"github.com/theirongolddev/lumina/internal/model"
	"github.com/theirongolddev/lumina/internal/pipeline"
	"github.com/theirongolddev/lumina/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagInvName    string
	flagInvMonthly string
	flagInvRate    string
	flagInvStart   string
	flagInvYes     bool
	flagInvMonths  int
	flagInvStep    int
)

var investCmd = &cobra.Command{
	Use:     "invest",
	Aliases: []string{"investments"},
	Short:   "Recurring investments and their projected growth",
	RunE:    runInvest,
}

var investAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a recurring monthly contribution",
	Example: `  lumina invest add --name "Index fund" --monthly 500 --rate 10.5`,
	RunE: runInvestAdd,
}

var investRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an investment",
	Args:  cobra.ExactArgs(1),
	RunE:  runInvestRm,
}

var investProjectCmd = &cobra.Command{
	Use:   "project",
	Short: "Projected portfolio value month by month",
	RunE:  runInvestProject,
}

func init() {
	f := investAddCmd.Flags()
	f.StringVar(&flagInvName, "name", "", "Investment name")
	f.StringVar(&flagInvMonthly, "monthly", "", "Monthly contribution")
	f.StringVar(&flagInvRate, "rate", "", "Annual rate in percent (default from config)")
	f.StringVar(&flagInvStart, "start", "", "Start date YYYY-MM-DD (default today)")
	_ = investAddCmd.MarkFlagRequired("name")
	_ = investAddCmd.MarkFlagRequired("monthly")

	investRmCmd.Flags().BoolVarP(&flagInvYes, "yes", "y", false, "Do not ask for confirmation")

	investProjectCmd.Flags().IntVar(&flagInvMonths, "months", 0, "Horizon in months (default from config)")
	investProjectCmd.Flags().IntVar(&flagInvStep, "step", 0, "Months between rows (default from config)")

	investCmd.AddCommand(investAddCmd, investRmCmd, investProjectCmd)
	rootCmd.AddCommand(investCmd)
}

func runInvest(cmd *cobra.Command, _ []string) error {
	return withStore(func(cfg config.Config, st *store.Store) error {
		snap, report, err := loadReport(cmd.Context(), cfg, st)
		if err != nil {
			return err
		}
		if len(snap.Investments) == 0 {
			fmt.Println("\n  No investments yet. Add one with `lumina invest add`.")
			return nil
		}

		cur := cfg.General.Currency
		rows := make([][]string, 0, len(snap.Investments)+2)
		for _, inv := range snap.Investments {
			start := "-"
			if !inv.StartDate.IsZero() {
				start = inv.StartDate.Format("2006-01-02")
			}
			rows = append(rows, []string{
				inv.Name,
				cli.FormatMoney(cur, inv.MonthlyContribution),
				cli.FormatRate(inv.AnnualRate),
				start,
				cli.Muted(shortID(inv.ID)),
			})
		}
		rows = append(rows, []string{"---"}, []string{
			"Total", cli.FormatMoney(cur, pipeline.TotalMonthlyContribution(snap.Investments)), "", "", "",
		})

		fmt.Println()
		fmt.Println(cli.RenderTitle("INVESTMENTS"))
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Name", "Monthly", "Rate", "Since", "ID"},
			Rows:    rows,
		}))
		fmt.Println()

		mrows := make([][]string, 0, len(report.Milestones))
		for _, p := range report.Milestones {
			mrows = append(mrows, []string{
				cli.FormatMonths(p.Month),
				cli.FormatMoney(cur, p.Value),
				cli.FormatMoney(cur, p.Invested),
				cli.ColorAmount(p.Yield, cli.FormatSignedMoney(cur, p.Yield)),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Milestones",
			Headers: []string{"After", "Value", "Invested", "Yield"},
			Rows:    mrows,
		}))
		fmt.Println()

		values := make([]float64, len(report.Series))
		for i, p := range report.Series {
			values[i] = p.Value
		}
		fmt.Printf("  Next %s  %s\n\n", cli.FormatMonths(cfg.Projection.HorizonMonths), cli.RenderSparkline(values))
		return nil
	})
}

func runInvestAdd(cmd *cobra.Command, _ []string) error {
	return withStore(func(cfg config.Config, st *store.Store) error {
		inv, err := buildInvestment(flagInvName, flagInvMonthly, flagInvRate, flagInvStart,
			cfg.Projection.DefaultAnnualRate, time.Now())
		if err != nil {
			return err
		}
		if err := st.AddInvestment(cmd.Context(), inv); err != nil {
			return err
		}
		progressf("  Added %q: %s/mo at %s [%s]\n", inv.Name,
			cli.FormatMoney(cfg.General.Currency, inv.MonthlyContribution), cli.FormatRate(inv.AnnualRate), shortID(inv.ID))
		return nil
	})
}

// buildInvestment validates raw input. An empty rate uses defaultRate and an
// empty start date means today.
func buildInvestment(name, monthly, rate, start string, defaultRate float64, now time.Time) (model.Investment, error) {
	amount, err := cli.ParseAmount(monthly)
	if err != nil {
		return model.Investment{}, fmt.Errorf("--monthly: %w", err)
	}

	r := defaultRate
	if strings.TrimSpace(rate) != "" {
		if r, err = cli.ParseRate(rate); err != nil {
			return model.Investment{}, fmt.Errorf("--rate: %w", err)
		}
	}

	startDate := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, now.Location())
	if strings.TrimSpace(start) != "" {
		if startDate, err = cli.ParseTransactionDate(start, now, now.Location()); err != nil {
			return model.Investment{}, fmt.Errorf("--start: %w", err)
		}
	}

	inv := model.Investment{
		ID:                  model.NewID(),
		Name:                strings.TrimSpace(name),
		MonthlyContribution: amount,
		AnnualRate:          r,
		StartDate:           startDate,
	}
	return inv, inv.Validate()
}

func runInvestRm(cmd *cobra.Command, args []string) error {
	return withStore(func(_ config.Config, st *store.Store) error {
		ctx := cmd.Context()
		inv, err := findInvestment(ctx, st, args[0])
		if err != nil {
			return err
		}
		if err := confirm(fmt.Sprintf("Delete investment %q?", inv.Name), flagInvYes); err != nil {
			return err
		}
		if err := st.DeleteInvestment(ctx, inv.ID); err != nil {
			return err
		}
		progressf("  Deleted investment %q\n", inv.Name)
		return nil
	})
}

func findInvestment(ctx context.Context, st *store.Store, arg string) (model.Investment, error) {
	invs, err := st.ListInvestments(ctx)
	if err != nil {
		return model.Investment{}, err
	}
	ids := make([]string, len(invs))
	for i, inv := range invs {
		ids[i] = inv.ID
	}
	id, err := resolveID(arg, ids, "investment")
	if err != nil {
		return model.Investment{}, err
	}
	for _, inv := range invs {
		if inv.ID == id {
			return inv, nil
		}
	}
	return model.Investment{}, store.ErrNotFound
}

func runInvestProject(cmd *cobra.Command, _ []string) error {
	return withStore(func(cfg config.Config, st *store.Store) error {
		invs, err := st.ListInvestments(cmd.Context())
		if err != nil {
			return err
		}
		if len(invs) == 0 {
			fmt.Println("\n  No investments to project.")
			return nil
		}

		months := flagInvMonths
		if months <= 0 {
			months = cfg.Projection.HorizonMonths
		}
		step := flagInvStep
		if step <= 0 {
			step = cfg.Projection.StepMonths
		}

		cur := cfg.General.Currency
		series := pipeline.ProjectSeries(invs, months, step)
		rows := make([][]string, 0, len(series))
		for _, p := range series {
			rows = append(rows, []string{
				p.Label(),
				cli.FormatMoney(cur, p.Value),
				cli.FormatMoney(cur, p.Invested),
				cli.ColorAmount(p.Yield, cli.FormatSignedMoney(cur, p.Yield)),
			})
		}

		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   fmt.Sprintf("Projection · %s/mo", cli.FormatMoney(cur, pipeline.TotalMonthlyContribution(invs))),
			Headers: []string{"After", "Value", "Invested", "Yield"},
			Rows:    rows,
		}))
		fmt.Println()
		return nil
	})
}
