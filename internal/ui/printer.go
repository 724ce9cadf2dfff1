// Package ui provides output formatting for the snooze application.
package ui

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/d-kuro/snooze/pkg/models"
	"github.com/hako/durafmt"
	"github.com/mattn/go-runewidth"
)

// Printer writes user-facing output.
type Printer struct {
	out      io.Writer
	errOut   io.Writer
	color    bool
	humanize bool
	verbose  bool

	header  lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	accent  lipgloss.Style
	dim     lipgloss.Style
}

// NewWithWriters creates a Printer with explicit output streams.
func NewWithWriters(config *models.UIConfig, out, errOut io.Writer) *Printer {
	color := config.Color && os.Getenv("NO_COLOR") == ""
	return &Printer{
		out:      out,
		errOut:   errOut,
		color:    color,
		humanize: config.Humanize,
		header:   lipgloss.NewStyle().Bold(true).Underline(true),
		success:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		failure:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		dim:      lipgloss.NewStyle().Faint(true),
	}
}

// SetVerbose enables Verbosef output.
func (p *Printer) SetVerbose(verbose bool) {
	p.verbose = verbose
}

func (p *Printer) style(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

// FormatDuration renders d either as words or in time.Duration notation.
func (p *Printer) FormatDuration(d time.Duration) string {
	if d == 0 {
		return "0s"
	}
	if p.humanize {
		return Humanize(d)
	}
	return d.String()
}

// Humanize renders d as words, e.g. "1 minute 30 seconds".
func Humanize(d time.Duration) string {
	return durafmt.Parse(d).String()
}

// PrintSuccess prints a success message.
func (p *Printer) PrintSuccess(message string) {
	fmt.Fprintln(p.out, p.style(p.success, "✓")+" "+message)
}

// PrintWarning prints a warning to the error stream.
func (p *Printer) PrintWarning(message string) {
	fmt.Fprintln(p.errOut, p.style(p.warning, "[snooze] warning:")+" "+message)
}

// Verbosef prints a progress line to the error stream when verbose output is on.
func (p *Printer) Verbosef(format string, args ...any) {
	if !p.verbose {
		return
	}
	fmt.Fprintln(p.errOut, p.style(p.dim, "[snooze] "+fmt.Sprintf(format, args...)))
}

// PrintResults prints parse results as an aligned table.
func (p *Printer) PrintResults(results []models.ParseResult) {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		if r.Error != "" {
			rows = append(rows, []string{r.Input, p.style(p.failure, "error"), r.Error})
			continue
		}
		detail := fmt.Sprintf("%dms", r.Milliseconds)
		if r.Human != "" {
			detail += " (" + r.Human + ")"
		}
		rows = append(rows, []string{r.Input, p.style(p.accent, r.Duration), detail})
	}
	p.PrintTable([]string{"INPUT", "DURATION", "DETAIL"}, rows)
}

// PrintPresets prints presets with their resolved durations.
func (p *Printer) PrintPresets(presets []models.Preset, resolve func(string) (time.Duration, error)) {
	if len(presets) == 0 {
		fmt.Fprintln(p.out, "No presets configured")
		return
	}

	rows := make([][]string, 0, len(presets))
	for _, preset := range presets {
		resolved := ""
		if d, err := resolve(preset.Value); err != nil {
			resolved = p.style(p.failure, err.Error())
		} else {
			resolved = p.FormatDuration(d)
		}
		rows = append(rows, []string{p.style(p.accent, preset.Name), preset.Value, resolved})
	}
	p.PrintTable([]string{"NAME", "VALUE", "DURATION"}, rows)
}

// PrintUnits prints the unit spelling table.
func (p *Printer) PrintUnits(units map[string]int64) {
	names := make([]string, 0, len(units))
	for name := range units {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if units[names[i]] != units[names[j]] {
			return units[names[i]] < units[names[j]]
		}
		return names[i] < names[j]
	})

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name, fmt.Sprintf("%d", units[name])})
	}
	p.PrintTable([]string{"UNIT", "MILLISECONDS"}, rows)
}

// PrintConfig prints all configuration settings as flattened key = value lines.
func (p *Printer) PrintConfig(settings map[string]any) {
	flat := make(map[string]any)
	flatten("", settings, flat)

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(p.out, "%s = %v\n", p.style(p.accent, k), flat[k])
	}
}

func flatten(prefix string, in map[string]any, out map[string]any) {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch nested := v.(type) {
		case map[string]any:
			flatten(key, nested, out)
		case map[string]string:
			for nk, nv := range nested {
				out[key+"."+nk] = nv
			}
		default:
			out[key] = v
		}
	}
}

// PrintTable prints rows in columns padded to their display width.
func (p *Printer) PrintTable(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	styled := make([]string, len(headers))
	for i, h := range headers {
		styled[i] = pad(p.style(p.header, h), runewidth.StringWidth(h), widths[i])
	}
	fmt.Fprintln(p.out, strings.TrimRight(strings.Join(styled, "  "), " "))

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = pad(cell, lipgloss.Width(cell), widths[i])
		}
		fmt.Fprintln(p.out, strings.TrimRight(strings.Join(cells, "  "), " "))
	}
}

// pad right-pads s, whose visible width is width, to target columns.
func pad(s string, width, target int) string {
	if width >= target {
		return s
	}
	return s + strings.Repeat(" ", target-width)
}
