package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/theirongolddev/lumina/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Database:     %s\n", dbPath(cfg))
	if os.Getenv("LUMINA_DB_PATH") != "" && flagDBPath == "" {
		fmt.Println("                  (from LUMINA_DB_PATH)")
	}
	fmt.Printf("    Default view: %s\n", cfg.General.DefaultView)
	fmt.Printf("    Currency:     %s\n", cfg.General.Currency)
	fmt.Println()

	fmt.Println("  [Projection]")
	fmt.Printf("    Horizon:         %d months, every %d\n", cfg.Projection.HorizonMonths, cfg.Projection.StepMonths)
	years := make([]string, len(cfg.Projection.MilestoneYears))
	for i, y := range cfg.Projection.MilestoneYears {
		years[i] = fmt.Sprintf("%dy", y)
	}
	fmt.Printf("    Milestones:      %s\n", strings.Join(years, ", "))
	fmt.Printf("    Default rate:    %g%% a.a.\n", cfg.Projection.DefaultAnnualRate)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	if n := len(cfg.Categories.Overrides); n > 0 {
		fmt.Println("  [Categories]")
		fmt.Printf("    %d overrides (see `lumina categories --catalog`)\n", n)
		fmt.Println()
	}

	fmt.Println("  Run `lumina setup` to reconfigure.")
	return nil
}
