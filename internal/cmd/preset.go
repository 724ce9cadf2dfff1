package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/d-kuro/snooze/internal/config"
	"github.com/d-kuro/snooze/pkg/duration"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"
)

// presetCmd represents the preset command.
var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Named durations",
	Long: `Manage and run named durations from the presets table of the configuration.

Presets are added with 'snooze config set presets.<name> <duration>'.`,
}

// presetListCmd represents the preset list command.
var presetListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List presets",
	Example: `  # Show all presets
  snooze preset list`,
	Args: cobra.NoArgs,
	RunE: runPresetList,
}

// presetRunCmd represents the preset run command.
var presetRunCmd = &cobra.Command{
	Use:   "run <name>",
	Short: "Sleep for a preset",
	Example: `  # Sleep for the pomodoro preset with a countdown
  snooze preset run pomodoro --progress`,
	Args:              cobra.ExactArgs(1),
	RunE:              runPresetRun,
	ValidArgsFunction: getPresetCompletions,
}

// presetPickCmd represents the preset pick command.
var presetPickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose a preset with a fuzzy finder and sleep for it",
	Example: `  # Pick interactively
  snooze preset pick`,
	Args: cobra.NoArgs,
	RunE: runPresetPick,
}

func init() {
	rootCmd.AddCommand(presetCmd)
	presetCmd.AddCommand(presetListCmd)
	presetCmd.AddCommand(presetRunCmd)
	presetCmd.AddCommand(presetPickCmd)

	for _, c := range []*cobra.Command{presetRunCmd, presetPickCmd} {
		c.Flags().BoolVarP(&sleepProgress, "progress", "p", false, "Show a countdown while sleeping")
		c.Flags().BoolVarP(&sleepDryRun, "dry-run", "n", false, "Print the resolved duration without sleeping")
	}
}

func runPresetList(cmd *cobra.Command, args []string) error {
	return ExecuteWithArgs(func(ctx *CommandContext, cmd *cobra.Command, args []string) error {
		ctx.Printer.PrintPresets(ctx.Presets(), duration.Parse)
		return nil
	})(cmd, args)
}

func runPresetRun(cmd *cobra.Command, args []string) error {
	return ExecuteWithArgs(func(ctx *CommandContext, cmd *cobra.Command, args []string) error {
		preset, d, err := ctx.ResolvePreset(args[0])
		if err != nil {
			return err
		}
		return ctx.wait(cmd, preset.Name, d)
	})(cmd, args)
}

func runPresetPick(cmd *cobra.Command, args []string) error {
	return ExecuteWithArgs(func(ctx *CommandContext, cmd *cobra.Command, args []string) error {
		selected, err := ctx.GetFinder().SelectPreset(ctx.Presets())
		if err != nil {
			if errors.Is(err, fuzzyfinder.ErrAbort) {
				return nil
			}
			return fmt.Errorf("failed to select preset: %w", err)
		}

		preset, d, err := ctx.ResolvePreset(selected.Name)
		if err != nil {
			return err
		}
		return ctx.wait(cmd, preset.Name, d)
	})(cmd, args)
}

// getPresetCompletions completes preset names for shell completion.
func getPresetCompletions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	// Completion runs without the root pre-run hook.
	_ = config.Init()

	var names []string
	for _, p := range config.Get().SortedPresets() {
		if strings.HasPrefix(p.Name, toComplete) {
			names = append(names, fmt.Sprintf("%s\t%s", p.Name, p.Value))
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
