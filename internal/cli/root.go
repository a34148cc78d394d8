// Package cli implements inventoryctl, a command line client that operates
// directly on the configured snapshot store.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rl1809/inventory-tracker/internal/app"
	"github.com/rl1809/inventory-tracker/internal/config"
	"github.com/rl1809/inventory-tracker/internal/logging"
)

const closeTimeout = 10 * time.Second

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "inventoryctl",
		Short:         "Manage inventory items, departments and transactions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newItemsCommand(),
		newDepartmentsCommand(),
		newTransactionsCommand(),
		newFiltersCommand(),
		newExportCommand(),
	)
	return root
}

// withApp loads the inventory for one command and flushes it afterwards.
func withApp(run func(cmd *cobra.Command, args []string, a *app.App) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logger := logging.Setup(cfg.LogLevel, cfg.IsProduction())

		a, err := app.New(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}

		runErr := run(cmd, args, a)

		ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		if err := a.Close(ctx); err != nil && runErr == nil {
			return fmt.Errorf("close store: %w", err)
		}
		return runErr
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
