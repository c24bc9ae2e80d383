package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/theirongolddev/lumina/internal/backup"
	"github.com/theirongolddev/lumina/internal/config"
	"github.com/theirongolddev/lumina/internal/pipeline"
	"github.com/theirongolddev/lumina/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagExportOut string
	flagImportYes bool
	flagResetYes  bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a JSON backup of every record",
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace all data with a JSON backup",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every transaction, goal and investment",
	RunE:  runReset,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Output file, - for stdout (default lumina_backup_YYYY-MM-DD.json)")
	importCmd.Flags().BoolVarP(&flagImportYes, "yes", "y", false, "Do not ask for confirmation")
	resetCmd.Flags().BoolVarP(&flagResetYes, "yes", "y", false, "Do not ask for confirmation")
	rootCmd.AddCommand(exportCmd, importCmd, resetCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	return withStore(func(_ config.Config, st *store.Store) error {
		snap, err := pipeline.Load(cmd.Context(), st)
		if err != nil {
			return fmt.Errorf("loading data: %w", err)
		}

		now := time.Now()
		doc := backup.NewDocument(snap, now)

		out := flagExportOut
		if out == "" {
			out = backup.FileName(now)
		}
		if out == "-" {
			return backup.Encode(os.Stdout, doc)
		}

		if err := writeFileAtomic(out, func(w io.Writer) error { return backup.Encode(w, doc) }); err != nil {
			return err
		}
		progressf("  Exported %d transactions, %d goals, %d investments to %s\n",
			len(doc.Transactions), len(doc.Goals), len(doc.Investments), out)
		return nil
	})
}

// writeFileAtomic writes through a temp file in the same directory, syncs
// it to disk and renames it into place.
func writeFileAtomic(path string, write func(io.Writer) error) error {
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating %s: %w", tmp, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("syncing %s: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("closing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("renaming %s: %w", tmp, err)
	}
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening backup: %w", err)
	}
	defer func() { _ = f.Close() }()

	doc, err := backup.Decode(f)
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	return withStore(func(_ config.Config, st *store.Store) error {
		ctx := cmd.Context()
		counts, err := st.Count(ctx)
		if err != nil {
			return err
		}

		title := fmt.Sprintf("Replace %d transactions, %d goals, %d investments with %d, %d, %d from the backup?",
			counts.Transactions, counts.Goals, counts.Investments,
			len(doc.Transactions), len(doc.Goals), len(doc.Investments))
		if err := confirm(title, flagImportYes); err != nil {
			return err
		}

		if err := st.ReplaceAll(ctx, doc.Transactions, doc.Goals, doc.Investments); err != nil {
			return fmt.Errorf("importing: %w", err)
		}
		progressf("  Imported %d transactions, %d goals, %d investments (backup version %s)\n",
			len(doc.Transactions), len(doc.Goals), len(doc.Investments), doc.Version)
		return nil
	})
}

func runReset(cmd *cobra.Command, _ []string) error {
	return withStore(func(_ config.Config, st *store.Store) error {
		ctx := cmd.Context()
		counts, err := st.Count(ctx)
		if err != nil {
			return err
		}

		title := fmt.Sprintf("Delete %d transactions, %d goals and %d investments? This cannot be undone.",
			counts.Transactions, counts.Goals, counts.Investments)
		if err := confirm(title, flagResetYes); err != nil {
			return err
		}

		if err := st.Reset(ctx); err != nil {
			return err
		}
		progressf("  All data deleted. Run `lumina export` regularly to keep backups.\n")
		return nil
	})
}
