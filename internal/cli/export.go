package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rl1809/inventory-tracker/internal/app"
)

func newExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write CSV exports to the configured sink",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "inventory",
			Short: "Export the item catalog",
			Args:  cobra.NoArgs,
			RunE: withApp(func(cmd *cobra.Command, _ []string, a *app.App) error {
				location, err := a.Exporter.ExportInventory(cmd.Context())
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), location)
				return err
			}),
		},
		&cobra.Command{
			Use:   "transactions",
			Short: "Export the transaction ledger",
			Args:  cobra.NoArgs,
			RunE: withApp(func(cmd *cobra.Command, _ []string, a *app.App) error {
				location, err := a.Exporter.ExportTransactions(cmd.Context())
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), location)
				return err
			}),
		},
	)
	return cmd
}
