package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/theirongolddev/lumina/internal/cli"
	"github.com/theirongolddev/lumina/internal/config"
	"github.com/theirongolddev/lumina/internal/model"
	"github.com/theirongolddev/lumina/internal/pipeline"
	"github.com/theirongolddev/lumina/internal/store"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

type goalInput struct {
	name     string
	target   string
	current  string
	deadline string
	icon     string
}

var (
	flagGoal    goalInput
	flagGoalYes bool
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Savings goals and whether the month's surplus covers them",
	RunE:  runGoals,
}

var goalsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a goal",
	RunE:  runGoalsAdd,
}

var goalsSetCmd = &cobra.Command{
	Use:   "set <id>",
	Short: "Update a goal; unspecified fields keep their value",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalsSet,
}

var goalsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a goal",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalsRm,
}

func init() {
	for _, c := range []*cobra.Command{goalsAddCmd, goalsSetCmd} {
		f := c.Flags()
		f.StringVar(&flagGoal.name, "name", "", "Goal name")
		f.StringVar(&flagGoal.target, "target", "", "Target amount")
		f.StringVar(&flagGoal.current, "current", "0", "Amount saved so far")
		f.StringVar(&flagGoal.deadline, "deadline", "", "YYYY-MM-DD, or \"none\" to clear")
		f.StringVar(&flagGoal.icon, "icon", "target", "Icon name")
	}
	goalsRmCmd.Flags().BoolVarP(&flagGoalYes, "yes", "y", false, "Do not ask for confirmation")

	goalsCmd.AddCommand(goalsAddCmd, goalsSetCmd, goalsRmCmd)
	rootCmd.AddCommand(goalsCmd)
}

func runGoals(cmd *cobra.Command, _ []string) error {
	return withStore(func(cfg config.Config, st *store.Store) error {
		_, report, err := loadReport(cmd.Context(), cfg, st)
		if err != nil {
			return err
		}

		if len(report.Goals) == 0 {
			fmt.Println("\n  No goals yet. Create one with `lumina goals add`.")
			return nil
		}

		cur := cfg.General.Currency
		rows := make([][]string, 0, len(report.Goals))
		for _, g := range report.Goals {
			deadline := "-"
			if g.Goal.Deadline != nil {
				deadline = g.Goal.Deadline.String()
			}
			rows = append(rows, []string{
				g.Goal.Name,
				cli.RenderProgressBar(g.Goal.ProgressPercent(), 12),
				cli.FormatMoney(cur, g.Goal.CurrentAmount),
				cli.FormatMoney(cur, g.Goal.TargetAmount),
				deadline,
				verdictLabel(g.Evaluation.Verdict),
				describeEvaluation(cur, g),
				cli.Muted(shortID(g.Goal.ID)),
			})
		}

		fmt.Println()
		fmt.Println(cli.RenderTitle("GOALS  surplus " + cli.FormatMoney(cur, report.Summary.SavingsPotential) +
			" in " + cli.FormatMonth(report.Month)))
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Goal", "Progress", "Saved", "Target", "Deadline", "Status", "Plan", "ID"},
			Rows:    rows,
		}))
		fmt.Println()
		return nil
	})
}

func verdictLabel(v model.GoalVerdict) string {
	switch v {
	case model.VerdictReached, model.VerdictOnTrack, model.VerdictProjected:
		return cli.ColorAmount(1, v.String())
	case model.VerdictBehind:
		return cli.Warn(v.String())
	default:
		return cli.ColorAmount(-1, v.String())
	}
}

// describeEvaluation summarizes what a goal still needs.
func describeEvaluation(cur string, g pipeline.GoalReport) string {
	ev := g.Evaluation
	switch ev.Verdict {
	case model.VerdictReached:
		return "done"
	case model.VerdictOnTrack:
		return fmt.Sprintf("%s/mo for %s", cli.FormatMoney(cur, ev.RequiredMonthly), cli.FormatMonths(ev.MonthsLeft))
	case model.VerdictBehind:
		return fmt.Sprintf("%s/mo, short %s", cli.FormatMoney(cur, ev.RequiredMonthly), cli.FormatMoney(cur, ev.Shortfall))
	case model.VerdictProjected:
		if ev.MonthsToReach <= 0 || ev.MonthsToReach > pipeline.MaxProjectedMonths {
			return "no surplus"
		}
		return "in " + cli.FormatMonths(ev.MonthsToReach)
	default:
		return "no surplus"
	}
}

func runGoalsAdd(cmd *cobra.Command, _ []string) error {
	return withStore(func(_ config.Config, st *store.Store) error {
		in := flagGoal
		if in.name == "" {
			if !stdinIsTerminal() {
				return fmt.Errorf("--name and --target are required when not running on a terminal")
			}
			if err := runGoalForm(&in); err != nil {
				return err
			}
		}

		g := model.Goal{ID: model.NewID()}
		if err := applyGoalInput(&g, in, allFields); err != nil {
			return err
		}
		if err := st.SaveGoal(cmd.Context(), g); err != nil {
			return err
		}
		progressf("  Created goal %q [%s]\n", g.Name, shortID(g.ID))
		return nil
	})
}

func runGoalsSet(cmd *cobra.Command, args []string) error {
	return withStore(func(_ config.Config, st *store.Store) error {
		ctx := cmd.Context()
		g, err := findGoal(ctx, st, args[0])
		if err != nil {
			return err
		}

		changed := func(name string) bool { return cmd.Flags().Changed(name) }
		if err := applyGoalInput(&g, flagGoal, changed); err != nil {
			return err
		}
		if err := st.SaveGoal(ctx, g); err != nil {
			return err
		}
		progressf("  Updated goal %q\n", g.Name)
		return nil
	})
}

func runGoalsRm(cmd *cobra.Command, args []string) error {
	return withStore(func(_ config.Config, st *store.Store) error {
		ctx := cmd.Context()
		g, err := findGoal(ctx, st, args[0])
		if err != nil {
			return err
		}
		if err := confirm(fmt.Sprintf("Delete goal %q?", g.Name), flagGoalYes); err != nil {
			return err
		}
		if err := st.DeleteGoal(ctx, g.ID); err != nil {
			return err
		}
		progressf("  Deleted goal %q\n", g.Name)
		return nil
	})
}

func findGoal(ctx context.Context, st *store.Store, arg string) (model.Goal, error) {
	goals, err := st.ListGoals(ctx)
	if err != nil {
		return model.Goal{}, err
	}
	ids := make([]string, len(goals))
	for i, g := range goals {
		ids[i] = g.ID
	}
	id, err := resolveID(arg, ids, "goal")
	if err != nil {
		return model.Goal{}, err
	}
	return st.GetGoal(ctx, id)
}

func allFields(string) bool { return true }

// applyGoalInput copies the fields selected by use from in onto g and
// validates the result.
func applyGoalInput(g *model.Goal, in goalInput, use func(flag string) bool) error {
	if use("name") {
		g.Name = strings.TrimSpace(in.name)
	}
	if use("target") {
		v, err := cli.ParseAmount(in.target)
		if err != nil {
			return fmt.Errorf("--target: %w", err)
		}
		g.TargetAmount = v
	}
	if use("current") {
		v, err := parseSaved(in.current)
		if err != nil {
			return fmt.Errorf("--current: %w", err)
		}
		g.CurrentAmount = v
	}
	if use("deadline") {
		if strings.EqualFold(strings.TrimSpace(in.deadline), "none") {
			g.Deadline = nil
		} else {
			d, err := cli.ParseDeadline(in.deadline)
			if err != nil {
				return fmt.Errorf("--deadline: %w", err)
			}
			g.Deadline = d
		}
	}
	if use("icon") {
		g.Icon = strings.TrimSpace(in.icon)
	}
	return g.Validate()
}

// parseSaved parses an amount that may be zero.
func parseSaved(s string) (float64, error) {
	switch strings.TrimSpace(s) {
	case "", "0", "0,00", "0.00":
		return 0, nil
	}
	return cli.ParseAmount(s)
}

func runGoalForm(in *goalInput) error {
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Goal name").Value(&in.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return model.ErrMissingName
					}
					return nil
				}),
			huh.NewInput().Title("Target amount").Value(&in.target).
				Validate(func(s string) error {
					_, err := cli.ParseAmount(s)
					return err
				}),
			huh.NewInput().Title("Saved so far").Value(&in.current).
				Validate(func(s string) error {
					_, err := parseSaved(s)
					return err
				}),
			huh.NewInput().Title("Deadline").Description("YYYY-MM-DD, empty for none").Value(&in.deadline).
				Validate(func(s string) error {
					_, err := cli.ParseDeadline(s)
					return err
				}),
		),
	).Run()
	if err != nil {
		return fmt.Errorf("goal form: %w", err)
	}
	return nil
}

