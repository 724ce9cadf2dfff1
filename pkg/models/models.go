// Package models defines the core data structures used throughout the snooze application.
package models

import "sort"

// Config represents the application configuration.
type Config struct {
	Sleep   SleepConfig       `mapstructure:"sleep"`   // Sleep command configuration
	UI      UIConfig          `mapstructure:"ui"`      // UI-related configuration
	Finder  FinderConfig      `mapstructure:"finder"`  // Fuzzy finder configuration
	Presets map[string]string `mapstructure:"presets"` // Named durations
}

// SleepConfig contains configuration for the sleep command behavior.
type SleepConfig struct {
	Default string `mapstructure:"default"` // Duration used when no argument is given
}

// UIConfig contains user interface configuration options.
type UIConfig struct {
	Color    bool `mapstructure:"color"`    // Enable colored output
	Humanize bool `mapstructure:"humanize"` // Show durations as words, e.g. "1 minute 30 seconds"
	Progress bool `mapstructure:"progress"` // Show a countdown while sleeping
}

// FinderConfig contains fuzzy finder configuration options.
type FinderConfig struct {
	Preview bool `mapstructure:"preview"` // Show preview window
}

// Preset is a named duration from the presets table.
type Preset struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// ParseResult is the outcome of parsing one duration argument.
type ParseResult struct {
	Input        string `json:"input" yaml:"input"`
	Milliseconds int64  `json:"milliseconds" yaml:"milliseconds"`
	Duration     string `json:"duration" yaml:"duration"`
	Human        string `json:"human,omitempty" yaml:"human,omitempty"`
	Error        string `json:"error,omitempty" yaml:"error,omitempty"`
}

// SortedPresets returns the presets ordered by name.
func (c *Config) SortedPresets() []Preset {
	presets := make([]Preset, 0, len(c.Presets))
	for name, value := range c.Presets {
		presets = append(presets, Preset{Name: name, Value: value})
	}
	sort.Slice(presets, func(i, j int) bool {
		return presets[i].Name < presets[j].Name
	})
	return presets
}
