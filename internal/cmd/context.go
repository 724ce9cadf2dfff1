package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/d-kuro/snooze/internal/config"
	"github.com/d-kuro/snooze/internal/finder"
	"github.com/d-kuro/snooze/internal/ui"
	"github.com/d-kuro/snooze/pkg/duration"
	"github.com/d-kuro/snooze/pkg/models"
	"github.com/spf13/cobra"
)

// CommandContext encapsulates common dependencies used across commands.
type CommandContext struct {
	Config  *models.Config
	Printer *ui.Printer
	finder  *finder.Finder // Lazy-loaded
}

// NewCommandContext creates a command context writing to the command's streams.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	printer := ui.NewWithWriters(&cfg.UI, cmd.OutOrStdout(), cmd.ErrOrStderr())
	printer.SetVerbose(sleepVerbose)

	return &CommandContext{
		Config:  cfg,
		Printer: printer,
	}, nil
}

// GetFinder returns a finder instance, creating it if needed.
func (ctx *CommandContext) GetFinder() *finder.Finder {
	if ctx.finder == nil {
		ctx.finder = finder.New(&ctx.Config.Finder, duration.Parse, ctx.Printer.FormatDuration)
	}
	return ctx.finder
}

// Presets returns the configured presets ordered by name.
func (ctx *CommandContext) Presets() []models.Preset {
	return ctx.Config.SortedPresets()
}

// ResolvePreset looks up a preset by name.
func (ctx *CommandContext) ResolvePreset(name string) (models.Preset, time.Duration, error) {
	name = strings.ToLower(name)
	value, ok := ctx.Config.Presets[name]
	if !ok {
		return models.Preset{}, 0, fmt.Errorf("preset '%s' not found - use 'snooze preset list' to see available presets", name)
	}

	d, err := duration.Parse(value)
	if err != nil {
		return models.Preset{}, 0, fmt.Errorf("invalid preset %q: %w", name, err)
	}
	return models.Preset{Name: name, Value: value}, d, nil
}

// ExecuteWithArgs creates a command context and executes the provided function.
// This is the main wrapper function that eliminates boilerplate in command implementations.
func ExecuteWithArgs(fn func(*CommandContext, *cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, err := NewCommandContext(cmd)
		if err != nil {
			return err
		}
		return fn(ctx, cmd, args)
	}
}
