package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/d-kuro/snooze/internal/config"
	"github.com/d-kuro/snooze/internal/ui"
	"github.com/spf13/cobra"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	Long:  `Manage snooze configuration settings.`,
}

// configListCmd represents the config list command.
var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show configuration",
	Long:  `Display all current configuration settings.`,
	Example: `  # Show all configuration
  snooze config list`,
	RunE: runConfigList,
}

// configSetCmd represents the config set command.
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set configuration value",
	Long: `Set a configuration value.

Configuration keys follow a dot notation format (e.g., sleep.default).
Duration values are checked before they are written.`,
	Example: `  # Change the duration used when no argument is given
  snooze config set sleep.default 30s

  # Add a preset
  snooze config set presets.tea 3m

  # Always show a countdown
  snooze config set ui.progress true`,
	Args:              cobra.ExactArgs(2),
	RunE:              runConfigSet,
	ValidArgsFunction: getConfigKeyCompletions,
}

// configGetCmd represents the config get command.
var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get configuration value",
	Long:  `Get a specific configuration value.`,
	Example: `  # Get the default duration
  snooze config get sleep.default`,
	Args:              cobra.ExactArgs(1),
	RunE:              runConfigGet,
	ValidArgsFunction: getConfigKeyCompletions,
}

var configSetLocal bool

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)

	configSetCmd.Flags().BoolVar(&configSetLocal, "local", false, "Write to local config (.snooze.toml) instead of global")
}

func runConfigList(cmd *cobra.Command, args []string) error {
	return ExecuteWithArgs(func(ctx *CommandContext, cmd *cobra.Command, args []string) error {
		ctx.Printer.PrintConfig(config.AllSettings())
		return nil
	})(cmd, args)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	// Convert string values to appropriate types
	var typedValue any = value
	switch value {
	case "true":
		typedValue = true
	case "false":
		typedValue = false
	}

	var err error
	if configSetLocal {
		err = config.SetLocal(key, typedValue)
	} else {
		err = config.SetGlobal(key, typedValue)
	}

	if err != nil {
		return fmt.Errorf("failed to set config: %w", err)
	}

	target := "global"
	if configSetLocal {
		target = "local (.snooze.toml)"
	}
	printer := ui.NewWithWriters(&config.Get().UI, cmd.OutOrStdout(), cmd.ErrOrStderr())
	printer.PrintSuccess(fmt.Sprintf("Set %s = %v (%s)", key, typedValue, target))
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := config.GetValue(key)

	if value == nil {
		return fmt.Errorf("configuration key '%s' not found - use 'snooze config list' to see available keys", key)
	}

	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

// getConfigKeyCompletions completes known configuration keys.
func getConfigKeyCompletions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	_ = config.Init()

	var keys []string
	for _, key := range config.AllKeys() {
		if strings.HasPrefix(key, toComplete) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, cobra.ShellCompDirectiveNoFileComp
}
