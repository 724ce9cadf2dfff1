// Package finder provides fuzzy finder integration for the snooze application.
package finder

import (
	"fmt"
	"strings"
	"time"

	"github.com/d-kuro/snooze/pkg/models"
	"github.com/ktr0731/go-fuzzyfinder"
)

// Resolver turns a preset value into a duration.
type Resolver func(string) (time.Duration, error)

// Finder provides fuzzy finder functionality.
type Finder struct {
	config  *models.FinderConfig
	resolve Resolver
	format  func(time.Duration) string
}

// New creates a new Finder instance.
func New(config *models.FinderConfig, resolve Resolver, format func(time.Duration) string) *Finder {
	if format == nil {
		format = func(d time.Duration) string { return d.String() }
	}
	return &Finder{
		config:  config,
		resolve: resolve,
		format:  format,
	}
}

// SelectPreset displays a fuzzy finder for preset selection.
func (f *Finder) SelectPreset(presets []models.Preset) (*models.Preset, error) {
	if len(presets) == 0 {
		return nil, fmt.Errorf("no presets available for selection")
	}

	opts := []fuzzyfinder.Option{
		fuzzyfinder.WithPromptString("Select preset> "),
	}

	if f.config.Preview {
		opts = append(opts, fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return f.generatePresetPreview(presets[i], h)
		}))
	}

	idx, err := fuzzyfinder.Find(
		presets,
		func(i int) string {
			return formatPresetForDisplay(presets[i])
		},
		opts...,
	)

	if err != nil {
		return nil, err
	}

	return &presets[idx], nil
}

// formatPresetForDisplay formats a preset as a finder line.
func formatPresetForDisplay(p models.Preset) string {
	return fmt.Sprintf("%s (%s)", p.Name, p.Value)
}

// generatePresetPreview generates preview content for a preset.
func (f *Finder) generatePresetPreview(p models.Preset, maxLines int) string {
	preview := []string{
		fmt.Sprintf("Preset: %s", p.Name),
		fmt.Sprintf("Value: %s", p.Value),
	}

	d, err := f.resolve(p.Value)
	if err != nil {
		preview = append(preview, fmt.Sprintf("Error: %v", err))
	} else {
		preview = append(preview,
			fmt.Sprintf("Duration: %s", f.format(d)),
			fmt.Sprintf("Milliseconds: %d", d.Milliseconds()),
		)
		if maxLines-len(preview) >= 2 {
			preview = append(preview, "", fmt.Sprintf("Ends at: %s", time.Now().Add(d).Format("15:04:05")))
		}
	}

	if len(preview) > maxLines && maxLines > 0 {
		preview = preview[:maxLines]
	}
	return strings.Join(preview, "\n")
}
