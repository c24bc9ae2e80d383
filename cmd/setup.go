package cmd

import (
	"fmt"

	"github.com/theirongolddev/lumina/internal/config"
	"github.com/theirongolddev/lumina/internal/tui"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	if !stdinIsTerminal() {
		return fmt.Errorf("setup needs an interactive terminal; edit %s instead", config.ConfigPath())
	}

	cfg := loadConfig()

	// Count existing data so the welcome note can mention it
	txCount := 0
	if st, err := openStore(cfg); err == nil {
		if counts, err := st.Count(cmd.Context()); err == nil {
			txCount = counts.Transactions
		}
		_ = st.Close()
	}

	cfg, err := tui.RunSetup(cfg, txCount)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `lumina setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
