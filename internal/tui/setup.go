package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/lumina/internal/cli"
	"github.com/theirongolddev/lumina/internal/config"
	"github.com/theirongolddev/lumina/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues holds the first-run wizard answers.
type setupValues struct {
	currency    string
	defaultView string
	theme       string
	annualRate  string
}

func setupValuesFrom(cfg config.Config) setupValues {
	return setupValues{
		currency:    cfg.General.Currency,
		defaultView: cfg.General.DefaultView,
		theme:       cfg.Appearance.Theme,
		annualRate:  fmt.Sprintf("%g", cfg.Projection.DefaultAnnualRate),
	}
}

// apply copies the answers onto cfg. An unparsable rate keeps the old one.
func (v setupValues) apply(cfg config.Config) config.Config {
	cfg.General.Currency = strings.TrimSpace(v.currency)
	cfg.General.DefaultView = v.defaultView
	cfg.Appearance.Theme = v.theme
	if rate, err := cli.ParseRate(v.annualRate); err == nil {
		cfg.Projection.DefaultAnnualRate = rate
	}
	return cfg
}

// newSetupForm builds the first-run wizard. txCount is shown in the welcome
// note so users see whether the database already has data.
func newSetupForm(vals *setupValues, txCount int) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	welcome := "Let's set up a few things."
	if txCount > 0 {
		welcome = fmt.Sprintf("Found %d transactions. Let's set up a few things.", txCount)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to lumina!").
				Description(welcome),

			huh.NewInput().
				Title("Currency symbol").
				Description("Printed in front of every amount.").
				Placeholder("R$").
				Value(&vals.currency),

			huh.NewSelect[string]().
				Title("Default summary view").
				Description("Realized counts paid entries only, projected counts everything.").
				Options(
					huh.NewOption("Realized", config.ViewRealized),
					huh.NewOption("Projected", config.ViewProjected),
				).
				Value(&vals.defaultView),

			huh.NewInput().
				Title("Default annual rate for new investments (%)").
				Placeholder("10").
				Validate(func(s string) error {
					_, err := cli.ParseRate(s)
					return err
				}).
				Value(&vals.annualRate),

			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.theme),
		),
	).WithTheme(huh.ThemeDracula())
}

// RunSetup runs the wizard standalone and returns the updated config.
func RunSetup(cfg config.Config, txCount int) (config.Config, error) {
	vals := setupValuesFrom(cfg)
	if err := newSetupForm(&vals, txCount).Run(); err != nil {
		return cfg, err
	}
	return vals.apply(cfg), nil
}
