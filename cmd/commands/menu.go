package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var menuPrice int64

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Manage menu items",
}

var menuAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a menu item",
	Long: `Add a menu item with a unit price in the smallest currency unit.

Examples:
  restomart menu add Ramen --price 800`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		item, err := a.menus.AddMenuItem(cmd.Context(), args[0], menuPrice)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), item)
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added menu item %d: %s (%d)\n", item.ID, item.Name, item.Price)
		return err
	},
}

var menuListCmd = &cobra.Command{
	Use:   "list",
	Short: "List menu items in insertion order",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		items, err := a.menus.ListMenuItems(cmd.Context())
		if err != nil {
			return err
		}
		return printMenuItems(cmd.OutOrStdout(), items)
	},
}

func init() {
	menuAddCmd.Flags().Int64Var(&menuPrice, "price", 0, "Unit price in the smallest currency unit")
	_ = menuAddCmd.MarkFlagRequired("price")

	menuCmd.AddCommand(menuAddCmd, menuListCmd)
	rootCmd.AddCommand(menuCmd)
}
