package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rl1809/inventory-tracker/internal/app"
	"github.com/rl1809/inventory-tracker/internal/core/domain"
)

func newTransactionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tx",
		Aliases: []string{"transactions"},
		Short:   "Record and list stock movements",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List transactions, newest first",
			Args:  cobra.NoArgs,
			RunE: withApp(func(cmd *cobra.Command, _ []string, a *app.App) error {
				return printJSON(cmd, a.Inventory.Transactions())
			}),
		},
		newCommitCommand(),
	)
	return cmd
}

func newCommitCommand() *cobra.Command {
	var (
		req      domain.TransactionRequest
		txType   string
		quantity string
	)
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Check stock in or out",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, _ []string, a *app.App) error {
			req.Type = domain.TransactionType(txType)
			req.Quantity = domain.CoerceCount(quantity)

			tx, err := a.Inventory.CommitTransaction(req)
			if err != nil {
				return err
			}
			verb := "Added"
			if tx.Type == domain.TransactionCheckOut {
				verb = "Removed"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Transaction processed: %s %d items\n", verb, tx.Quantity)
			return err
		}),
	}
	f := cmd.Flags()
	f.StringVar(&req.SKU, "sku", "", "item sku")
	f.StringVar(&txType, "type", string(domain.TransactionCheckOut), "check-in or check-out")
	f.StringVar(&quantity, "quantity", "", "number of units")
	f.StringVar(&req.User, "user", "", "who moved the stock (default Admin)")
	f.StringVar(&req.Notes, "notes", "", "")
	return cmd
}
