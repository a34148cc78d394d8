package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rl1809/inventory-tracker/internal/app"
	"github.com/rl1809/inventory-tracker/internal/core/domain"
)

func newItemsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Manage catalog items",
	}
	cmd.AddCommand(
		newItemsListCommand(),
		newItemsGetCommand(),
		newItemsAddCommand(),
		newItemsUpdateCommand(),
		newItemsDeleteCommand(),
		newItemsLowStockCommand(),
	)
	return cmd
}

func newItemsListCommand() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List items matching the stored search and department filters",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, _ []string, a *app.App) error {
			if all {
				return printJSON(cmd, a.Inventory.Items())
			}
			return printJSON(cmd, a.Inventory.FilteredItems())
		}),
	}
	cmd.Flags().BoolVar(&all, "all", false, "ignore the stored filters")
	return cmd
}

func newItemsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SKU",
		Short: "Show one item",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app.App) error {
			item, ok := a.Inventory.Item(args[0])
			if !ok {
				return fmt.Errorf("item %s not found", args[0])
			}
			return printJSON(cmd, item)
		}),
	}
}

func newItemsAddCommand() *cobra.Command {
	var (
		draft                  domain.ItemDraft
		condition              string
		quantity, reorderPoint string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item to the catalog",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, _ []string, a *app.App) error {
			draft.Condition = domain.Condition(condition)
			draft.Quantity = domain.CoerceCount(quantity)
			draft.ReorderPoint = domain.CoerceCount(reorderPoint)

			item, err := a.Inventory.AddItem(draft)
			if err != nil {
				return err
			}
			return printJSON(cmd, item)
		}),
	}
	f := cmd.Flags()
	f.StringVar(&draft.SKU, "sku", "", "stock keeping unit")
	f.StringVar(&draft.Name, "name", "", "item name")
	f.StringVar(&draft.DepartmentID, "department", "", "department id")
	f.StringVar(&draft.Unit, "unit", "", "unit of measure")
	f.StringVar(&quantity, "quantity", "0", "quantity on hand")
	f.StringVar(&reorderPoint, "reorder-point", "0", "low stock threshold, 0 disables")
	f.StringVar(&condition, "condition", string(domain.ConditionNew), "New, Good, Fair, Needs Repair or Expired")
	f.StringVar(&draft.Description, "description", "", "")
	f.StringVar(&draft.BillName, "bill-name", "", "supplier on the purchase bill")
	f.StringVar(&draft.BillNumber, "bill-number", "", "purchase bill number")
	return cmd
}

func newItemsUpdateCommand() *cobra.Command {
	var (
		name, department, unit, condition string
		description, billName, billNumber string
		quantity, reorderPoint            int
	)
	cmd := &cobra.Command{
		Use:   "update SKU",
		Short: "Update fields of an item; only the given flags change",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app.App) error {
			f := cmd.Flags()
			var u domain.ItemUpdate
			if f.Changed("name") {
				u.Name = &name
			}
			if f.Changed("department") {
				u.DepartmentID = &department
			}
			if f.Changed("unit") {
				u.Unit = &unit
			}
			if f.Changed("quantity") {
				u.Quantity = &quantity
			}
			if f.Changed("reorder-point") {
				u.ReorderPoint = &reorderPoint
			}
			if f.Changed("condition") {
				c := domain.Condition(condition)
				u.Condition = &c
			}
			if f.Changed("description") {
				u.Description = &description
			}
			if f.Changed("bill-name") {
				u.BillName = &billName
			}
			if f.Changed("bill-number") {
				u.BillNumber = &billNumber
			}

			if _, ok := a.Inventory.Item(args[0]); !ok {
				return fmt.Errorf("item %s not found", args[0])
			}
			if err := a.Inventory.UpdateItem(args[0], u); err != nil {
				return err
			}
			item, _ := a.Inventory.Item(args[0])
			return printJSON(cmd, item)
		}),
	}
	f := cmd.Flags()
	f.StringVar(&name, "name", "", "item name")
	f.StringVar(&department, "department", "", "department id")
	f.StringVar(&unit, "unit", "", "unit of measure")
	f.IntVar(&quantity, "quantity", 0, "quantity on hand")
	f.IntVar(&reorderPoint, "reorder-point", 0, "low stock threshold")
	f.StringVar(&condition, "condition", "", "New, Good, Fair, Needs Repair or Expired")
	f.StringVar(&description, "description", "", "")
	f.StringVar(&billName, "bill-name", "", "")
	f.StringVar(&billNumber, "bill-number", "", "")
	return cmd
}

func newItemsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete SKU",
		Short: "Remove an item from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app.App) error {
			if err := a.Inventory.DeleteItem(args[0]); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return err
		}),
	}
}

func newItemsLowStockCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "low-stock",
		Short: "List items at or below their reorder point",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, _ []string, a *app.App) error {
			return printJSON(cmd, a.Inventory.LowStockItems())
		}),
	}
}
