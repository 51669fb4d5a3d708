package commands

import (
	"fmt"

	"restomart/internal/common"
	"restomart/internal/jobs"

	"github.com/spf13/cobra"
)

var salesDay string

var salesCmd = &cobra.Command{
	Use:   "sales",
	Short: "Daily sales figures",
	Long: `Daily sales figures. --day takes YYYY-MM-DD and defaults to the
database's current date.`,
}

var salesSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Order count and total sales of a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := common.ParseDay(salesDay)
		if err != nil {
			return err
		}
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		summary, err := a.orders.DailySalesSummary(cmd.Context(), day)
		if err != nil {
			return err
		}
		return printSummary(cmd.OutOrStdout(), summary)
	},
}

var salesByItemCmd = &cobra.Command{
	Use:   "by-item",
	Short: "Sales of a day per menu item",
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := common.ParseDay(salesDay)
		if err != nil {
			return err
		}
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		sales, err := a.orders.DailySalesByMenuItem(cmd.Context(), day)
		if err != nil {
			return err
		}
		return printSalesByMenuItem(cmd.OutOrStdout(), sales)
	},
}

var salesReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Full report of a day as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := common.ParseDay(salesDay)
		if err != nil {
			return err
		}
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		report, err := a.reports.DailyReport(cmd.Context(), day)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), report)
	},
}

var salesArchiveCmd = &cobra.Command{
	Use:   "archive-yesterday",
	Short: "Build and archive yesterday's report now",
	Long: `Run the scheduled daily report job once: build the report of the
previous day and upload it to the configured MinIO bucket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		result, err := jobs.NewDailyReportService(a.reports, newArchive(cmd.Context(), a)).RunDailyReport(cmd.Context())
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), result)
		}
		location := result.ObjectName
		if location == "" {
			location = "not archived"
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Report %s: Orders=%d, Sales=%d (%s)\n",
			result.Day, result.OrderCount, result.TotalSales, location)
		return err
	},
}

func init() {
	salesCmd.PersistentFlags().StringVar(&salesDay, "day", "", "Day in YYYY-MM-DD format (default: today)")

	salesCmd.AddCommand(salesSummaryCmd, salesByItemCmd, salesReportCmd, salesArchiveCmd)
	rootCmd.AddCommand(salesCmd)
}
