package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rl1809/inventory-tracker/internal/app"
	"github.com/rl1809/inventory-tracker/internal/core/domain"
)

func newDepartmentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "departments",
		Aliases: []string{"dept"},
		Short:   "Manage departments",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List departments",
			Args:  cobra.NoArgs,
			RunE: withApp(func(cmd *cobra.Command, _ []string, a *app.App) error {
				return printJSON(cmd, a.Inventory.Departments())
			}),
		},
		newDepartmentsAddCommand(),
		newDepartmentsUpdateCommand(),
		&cobra.Command{
			Use:   "delete ID",
			Short: "Delete a department and every item assigned to it",
			Args:  cobra.ExactArgs(1),
			RunE: withApp(func(cmd *cobra.Command, args []string, a *app.App) error {
				if err := a.Inventory.DeleteDepartment(args[0]); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "deleted department %s\n", args[0])
				return err
			}),
		},
	)
	return cmd
}

func newDepartmentsAddCommand() *cobra.Command {
	var name, notes string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a department",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, _ []string, a *app.App) error {
			dept, err := a.Inventory.AddDepartment(name, notes)
			if err != nil {
				return err
			}
			return printJSON(cmd, dept)
		}),
	}
	cmd.Flags().StringVar(&name, "name", "", "department name")
	cmd.Flags().StringVar(&notes, "notes", "", "")
	return cmd
}

func newDepartmentsUpdateCommand() *cobra.Command {
	var name, notes string
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Rename a department or change its notes",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app.App) error {
			var u domain.DepartmentUpdate
			if cmd.Flags().Changed("name") {
				u.Name = &name
			}
			if cmd.Flags().Changed("notes") {
				u.Notes = &notes
			}
			return a.Inventory.UpdateDepartment(args[0], u)
		}),
	}
	cmd.Flags().StringVar(&name, "name", "", "department name")
	cmd.Flags().StringVar(&notes, "notes", "", "")
	return cmd
}
