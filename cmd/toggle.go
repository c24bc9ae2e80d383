package cmd

import (
	"context"
	"fmt"

	"github.com/theirongolddev/lumina/internal/cli"
	"github.com/theirongolddev/lumina/internal/config"
	"github.com/theirongolddev/lumina/internal/model"
	"github.com/theirongolddev/lumina/internal/store"

	"github.com/spf13/cobra"
)

var flagRmYes bool

var toggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Flip a transaction between paid and pending",
	Args:  cobra.ExactArgs(1),
	RunE:  runToggle,
}

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a transaction",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

func init() {
	rmCmd.Flags().BoolVarP(&flagRmYes, "yes", "y", false, "Do not ask for confirmation")
	rootCmd.AddCommand(toggleCmd, rmCmd)
}

// findTransaction resolves an id or unique id prefix against the store.
func findTransaction(ctx context.Context, st *store.Store, arg string) (model.Transaction, error) {
	txs, err := st.ListTransactions(ctx)
	if err != nil {
		return model.Transaction{}, err
	}
	ids := make([]string, len(txs))
	for i, tx := range txs {
		ids[i] = tx.ID
	}
	id, err := resolveID(arg, ids, "transaction")
	if err != nil {
		return model.Transaction{}, err
	}
	for _, tx := range txs {
		if tx.ID == id {
			return tx, nil
		}
	}
	return model.Transaction{}, store.ErrNotFound
}

func runToggle(cmd *cobra.Command, args []string) error {
	return withStore(func(_ config.Config, st *store.Store) error {
		ctx := cmd.Context()
		tx, err := findTransaction(ctx, st, args[0])
		if err != nil {
			return err
		}
		status, err := st.ToggleTransactionStatus(ctx, tx.ID)
		if err != nil {
			return err
		}
		progressf("  %s is now %s\n", shortID(tx.ID), status)
		return nil
	})
}

func runRm(cmd *cobra.Command, args []string) error {
	return withStore(func(cfg config.Config, st *store.Store) error {
		ctx := cmd.Context()
		tx, err := findTransaction(ctx, st, args[0])
		if err != nil {
			return err
		}
		title := fmt.Sprintf("Delete %s %s on %s?",
			config.NewCatalog(cfg).DisplayName(tx.Category),
			cli.FormatMoney(cfg.General.Currency, tx.Amount),
			tx.Date.Format("2006-01-02"))
		if err := confirm(title, flagRmYes); err != nil {
			return err
		}

		if err := st.DeleteTransaction(ctx, tx.ID); err != nil {
			return err
		}
		progressf("  Deleted %s\n", shortID(tx.ID))
		return nil
	})
}
