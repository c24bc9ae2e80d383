// Package cmd implements the lumina CLI commands.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/theirongolddev/lumina/internal/cli"
	"github.com/theirongolddev/lumina/internal/config"
	"github.com/theirongolddev/lumina/internal/pipeline"
	"github.com/theirongolddev/lumina/internal/store"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	flagMonth   string
	flagDBPath  string
	flagQuiet   bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "lumina",
	Short: "Personal finance ledger and planner",
	Long: "Track income and expenses, see projected vs realized balances,\n" +
		"follow savings goals and project investment growth.",
	RunE:              runSummary,
	PersistentPreRunE: initRuntime,
	SilenceUsage:      true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagMonth, "month", "m", "", "Month to report, YYYY-MM (default current)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Database path (overrides config and LUMINA_DB_PATH)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging on stderr")
}

// initRuntime sets up logging and environment overrides before any command.
func initRuntime(_ *cobra.Command, _ []string) error {
	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := config.LoadEnv(); err != nil {
		slog.Warn("ignoring .env file", "err", err)
	}
	return nil
}

// loadConfig loads config, returning defaults on error so that a broken
// file never locks the user out of their data.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		slog.Warn("config unusable, falling back to defaults", "path", config.ConfigPath(), "err", err)
		return config.DefaultConfig()
	}
	return cfg
}

func dbPath(cfg config.Config) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return config.GetDBPath(cfg)
}

func openStore(cfg config.Config) (*store.Store, error) {
	path := dbPath(cfg)
	slog.Debug("opening database", "path", path)
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}
	return st, nil
}

// withStore opens the configured database, runs fn and closes it.
func withStore(fn func(cfg config.Config, st *store.Store) error) error {
	cfg := loadConfig()
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()
	return fn(cfg, st)
}

func reportOptions(cfg config.Config) pipeline.ReportOptions {
	return pipeline.ReportOptions{
		HorizonMonths:  cfg.Projection.HorizonMonths,
		StepMonths:     cfg.Projection.StepMonths,
		MilestoneYears: cfg.Projection.MilestoneYears,
	}
}

// loadReport is the shared read path used by the reporting commands.
func loadReport(ctx context.Context, cfg config.Config, st *store.Store) (*pipeline.Snapshot, pipeline.Report, error) {
	now := time.Now()
	month, err := cli.ParseMonthArg(flagMonth, now)
	if err != nil {
		return nil, pipeline.Report{}, fmt.Errorf("--month: %w", err)
	}

	snap, err := pipeline.Load(ctx, st)
	if err != nil {
		return nil, pipeline.Report{}, fmt.Errorf("loading data: %w", err)
	}
	return snap, pipeline.BuildReport(snap, month, now, reportOptions(cfg)), nil
}

// progressf writes a progress line to stderr unless --quiet.
func progressf(format string, args ...any) {
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

func stdinIsTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

var (
	errAmbiguousID = errors.New("ambiguous id")
	errNeedConfirm = errors.New("refusing to continue without confirmation (use --yes)")
)

// resolveID expands a unique id prefix, as printed by the list commands,
// into the full id.
func resolveID(arg string, ids []string, what string) (string, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return "", fmt.Errorf("missing %s id", what)
	}
	var match string
	for _, id := range ids {
		if id == arg {
			return id, nil
		}
		if strings.HasPrefix(id, arg) {
			if match != "" {
				return "", fmt.Errorf("%w: %q matches more than one %s", errAmbiguousID, arg, what)
			}
			match = id
		}
	}
	if match == "" {
		return "", fmt.Errorf("%s %q: %w", what, arg, store.ErrNotFound)
	}
	return match, nil
}

// shortID is the id prefix shown in tables.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
