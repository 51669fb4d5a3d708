package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"restomart/internal/models"
)

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printMenuItems(w io.Writer, items []*models.MenuItem) error {
	if jsonOutput {
		return printJSON(w, items)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE")
	for _, item := range items {
		fmt.Fprintf(tw, "%d\t%s\t%d\n", item.ID, item.Name, item.Price)
	}
	return tw.Flush()
}

func printOrderLines(w io.Writer, lines []*models.OrderLine) error {
	if jsonOutput {
		return printJSON(w, lines)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ORDER\tMENU ITEM\tQUANTITY\tTIME")
	for _, line := range lines {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", line.OrderID, line.MenuName, line.Quantity, line.OrderTime.Format(time.RFC3339))
	}
	return tw.Flush()
}

func printSummary(w io.Writer, summary *models.SalesSummary) error {
	if jsonOutput {
		return printJSON(w, summary)
	}
	day := summary.Day
	if day == "" {
		day = "today"
	}
	_, err := fmt.Fprintf(w, "Day: %s\nOrders: %d\nTotal sales: %d\n", day, summary.OrderCount, summary.TotalSales)
	return err
}

// printSalesByMenuItem prints the breakdown ordered by menu item name
func printSalesByMenuItem(w io.Writer, sales models.SalesByMenuItem) error {
	if jsonOutput {
		return printJSON(w, sales)
	}
	names := make([]string, 0, len(sales))
	for name := range sales {
		names = append(names, name)
	}
	sort.Strings(names)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MENU ITEM\tSALES")
	for _, name := range names {
		fmt.Fprintf(tw, "%s\t%d\n", name, sales[name])
	}
	return tw.Flush()
}
