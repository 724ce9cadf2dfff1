package cmd

import (
	"fmt"
	"math"
	"time"

	"github.com/d-kuro/snooze/internal/countdown"
	"github.com/d-kuro/snooze/pkg/duration"
	"github.com/d-kuro/snooze/pkg/sleep"
	"github.com/spf13/cobra"
)

func runSleep(cmd *cobra.Command, args []string) error {
	return ExecuteWithArgs(func(ctx *CommandContext, cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			args = []string{ctx.Config.Sleep.Default}
			ctx.Printer.Verbosef("no duration given, using sleep.default = %q", ctx.Config.Sleep.Default)
		}

		total, err := resolveTotal(ctx, args)
		if err != nil {
			return err
		}

		return ctx.wait(cmd, "snooze", total)
	})(cmd, args)
}

// resolveTotal sums the durations of all arguments. Arguments that are
// plain integers <= 0 are skipped without parsing.
func resolveTotal(ctx *CommandContext, args []string) (time.Duration, error) {
	var total time.Duration
	for _, arg := range args {
		in := sleep.Text(arg)
		if !in.ShouldSleep() {
			ctx.Printer.Verbosef("skipping %q", arg)
			continue
		}

		d, err := in.Duration()
		if err != nil {
			return 0, fmt.Errorf("failed to parse duration: %w", err)
		}
		if d == 0 {
			ctx.Printer.PrintWarning(fmt.Sprintf("%q resolves to zero", arg))
		}
		if d > math.MaxInt64-total {
			return 0, fmt.Errorf("failed to add %q: %w", arg, duration.ErrNumberOutOfRange)
		}
		total += d
	}
	return total, nil
}

// wait blocks for d, honoring --dry-run and --progress.
func (ctx *CommandContext) wait(cmd *cobra.Command, label string, d time.Duration) error {
	if sleepDryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "Would sleep for %s (%dms)\n", ctx.Printer.FormatDuration(d), d.Milliseconds())
		return nil
	}

	ctx.Printer.Verbosef("sleeping for %s", ctx.Printer.FormatDuration(d))

	if d > 0 && (sleepProgress || ctx.Config.UI.Progress) {
		return countdown.Run(cmd.Context(), label, d, cmd.InOrStdin(), cmd.ErrOrStderr(), ctx.Printer.FormatDuration)
	}
	return sleep.SleepContext(cmd.Context(), d)
}
