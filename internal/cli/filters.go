package cli

import (
	"github.com/spf13/cobra"

	"github.com/rl1809/inventory-tracker/internal/app"
)

func newFiltersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filters",
		Short: "Manage the stored item view filters",
	}

	var search, department string
	set := &cobra.Command{
		Use:   "set",
		Short: "Set the search term and/or department filter; empty clears",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, _ []string, a *app.App) error {
			if cmd.Flags().Changed("search") {
				a.Inventory.SetSearchTerm(search)
			}
			if cmd.Flags().Changed("department") {
				a.Inventory.SetDepartmentFilter(department)
			}
			return printJSON(cmd, a.Inventory.FilteredItems())
		}),
	}
	set.Flags().StringVar(&search, "search", "", "case-insensitive match on name, sku and description")
	set.Flags().StringVar(&department, "department", "", "department id")

	cmd.AddCommand(set)
	return cmd
}
