// Package cmd implements the snooze command line interface.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/d-kuro/snooze/internal/config"
	"github.com/d-kuro/snooze/internal/countdown"
	"github.com/spf13/cobra"
)

// exitInterrupted is the conventional exit status after SIGINT.
const exitInterrupted = 130

var (
	sleepProgress bool
	sleepVerbose  bool
	sleepDryRun   bool
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "snooze [duration...]",
	Short: "Sleep for a human-friendly duration",
	Long: `Sleep for a duration written the way people write it.

Bare numbers are milliseconds. Units may be written as ms, s, m or h, or
spelled out (millis, seconds, minutes, hours). Units can be combined, as in
1h2m3s or "1 hour 30 minutes", and seconds or minutes may be fractional,
as in 1.5s. Several arguments are added together.

Zero and negative values do not sleep at all.`,
	Example: `  # Sleep for 500 milliseconds
  snooze 500

  # Sleep for a minute and a half with a countdown
  snooze --progress 1m30s

  # Arguments are summed
  snooze 1m 30s

  # Negative numbers need -- so they are not read as flags
  snooze -- -50

  # Show what would happen without sleeping
  snooze --dry-run "2 hours"`,
	Args:              cobra.ArbitraryArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
	RunE:              runSleep,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&sleepVerbose, "verbose", "v", false, "Print what is being waited for")

	rootCmd.Flags().BoolVarP(&sleepProgress, "progress", "p", false, "Show a countdown while sleeping")
	rootCmd.Flags().BoolVarP(&sleepDryRun, "dry-run", "n", false, "Print the resolved duration without sleeping")
}

func initConfig(cmd *cobra.Command, args []string) error {
	if err := config.Init(); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}
	return nil
}

// Execute runs the root command and returns the process exit status.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	if isInterrupted(err) {
		return exitInterrupted
	}

	fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	return 1
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, countdown.ErrInterrupted)
}
