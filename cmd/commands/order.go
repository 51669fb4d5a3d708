package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	orderMenuID   int64
	orderQuantity int
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Place and list orders",
}

var orderPlaceCmd = &cobra.Command{
	Use:   "place",
	Short: "Place an order for a menu item",
	Long: `Place an order. The order time is assigned by the database.

Examples:
  restomart order place --menu-id 1 --quantity 2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		order, err := a.orders.PlaceOrder(cmd.Context(), orderMenuID, orderQuantity)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), order)
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Placed order %d: menu item %d x%d at %s\n",
			order.ID, order.MenuID, order.Quantity, order.OrderTime.Format(time.RFC3339))
		return err
	},
}

var orderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders with their menu item names",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		lines, err := a.orders.ListOrders(cmd.Context())
		if err != nil {
			return err
		}
		return printOrderLines(cmd.OutOrStdout(), lines)
	},
}

func init() {
	orderPlaceCmd.Flags().Int64Var(&orderMenuID, "menu-id", 0, "Menu item id")
	orderPlaceCmd.Flags().IntVar(&orderQuantity, "quantity", 1, "Quantity")
	_ = orderPlaceCmd.MarkFlagRequired("menu-id")

	orderCmd.AddCommand(orderPlaceCmd, orderListCmd)
	rootCmd.AddCommand(orderCmd)
}
