package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/d-kuro/snooze/internal/template"
	"github.com/d-kuro/snooze/internal/ui"
	"github.com/d-kuro/snooze/pkg/duration"
	"github.com/d-kuro/snooze/pkg/models"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	parseOutput string
	parseFormat string
	parseUnits  bool
)

// parseCmd represents the parse command.
var parseCmd = &cobra.Command{
	Use:   "parse <duration>...",
	Short: "Show how durations are parsed",
	Long: `Parse one or more durations and print the result without sleeping.

Output can be a table (text), JSON or YAML, or a Go template given with
--format. Templates see the fields Input, Milliseconds, Duration, Human and
Error, and the helpers seconds, minutes, until and upper.`,
	Example: `  # Parse a combined duration
  snooze parse 1h2m3s

  # Compare several inputs as JSON
  snooze parse -o json 1.5s 90 "2 minutes"

  # Print only the millisecond count
  snooze parse --format '{{.Milliseconds}}' 1m30s

  # List the recognized unit spellings
  snooze parse --units`,
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "text", "Output format (text, json, yaml)")
	parseCmd.Flags().StringVar(&parseFormat, "format", "", "Go template applied to each result")
	parseCmd.Flags().BoolVar(&parseUnits, "units", false, "List recognized unit spellings")

	_ = parseCmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})
}

func runParse(cmd *cobra.Command, args []string) error {
	return ExecuteWithArgs(func(ctx *CommandContext, cmd *cobra.Command, args []string) error {
		if parseUnits {
			ctx.Printer.PrintUnits(duration.Units())
			return nil
		}
		if len(args) == 0 {
			return fmt.Errorf("requires at least one duration argument")
		}

		results := make([]models.ParseResult, 0, len(args))
		failed := 0
		for _, arg := range args {
			result := parseResult(arg, ctx.Config.UI.Humanize)
			if result.Error != "" {
				failed++
			}
			results = append(results, result)
		}

		if err := writeResults(ctx, cmd, results); err != nil {
			return err
		}
		if failed > 0 {
			return fmt.Errorf("failed to parse %d of %d duration(s)", failed, len(args))
		}
		return nil
	})(cmd, args)
}

// parseResult parses one argument into its report form.
func parseResult(input string, humanize bool) models.ParseResult {
	d, err := duration.Parse(input)
	if err != nil {
		return models.ParseResult{Input: input, Error: err.Error()}
	}

	result := models.ParseResult{
		Input:        input,
		Milliseconds: d.Milliseconds(),
		Duration:     d.String(),
	}
	if humanize && d > 0 {
		result.Human = ui.Humanize(d)
	}
	return result
}

func writeResults(ctx *CommandContext, cmd *cobra.Command, results []models.ParseResult) error {
	if parseFormat != "" {
		return writeTemplate(cmd, results)
	}

	switch parseOutput {
	case "text", "":
		ctx.Printer.PrintResults(results)
		return nil
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "yaml":
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format '%s' - use text, json or yaml", parseOutput)
	}
}

func writeTemplate(cmd *cobra.Command, results []models.ParseResult) error {
	processor, err := template.New(parseFormat)
	if err != nil {
		return err
	}

	for _, r := range results {
		line, err := processor.Render(r)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}
