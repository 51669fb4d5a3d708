package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var jsonOutput bool

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "restomart",
	Short: "Restomart - menu, orders and daily sales for a single restaurant",
	Long: `Restomart records menu items and orders in PostgreSQL and answers
daily sales questions over them.

Configuration is read from the environment (and an optional .env file):
  DATABASE_URL     PostgreSQL connection URL (required)
  STORE_TIMEZONE   time zone that decides calendar days (default UTC)
  REDIS_ADDR       report cache, disabled when empty
  MINIO_ENDPOINT   report archive, disabled when empty`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command until it finishes or the process is interrupted
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}
