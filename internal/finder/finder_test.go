package finder

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/d-kuro/snooze/pkg/models"
)

func TestFormatPresetForDisplay(t *testing.T) {
	got := formatPresetForDisplay(models.Preset{Name: "tea", Value: "3m"})
	if got != "tea (3m)" {
		t.Errorf("formatPresetForDisplay() = %q, want %q", got, "tea (3m)")
	}
}

func TestGeneratePresetPreview(t *testing.T) {
	resolve := func(s string) (time.Duration, error) {
		if s == "bad" {
			return 0, errors.New("invalid duration format")
		}
		return 3 * time.Minute, nil
	}
	f := New(&models.FinderConfig{Preview: true}, resolve, nil)

	tests := []struct {
		name     string
		preset   models.Preset
		maxLines int
		contains []string
		absent   []string
	}{
		{
			name:     "valid preset",
			preset:   models.Preset{Name: "tea", Value: "3m"},
			maxLines: 20,
			contains: []string{"Preset: tea", "Duration: 3m0s", "Milliseconds: 180000", "Ends at:"},
		},
		{
			name:     "short window",
			preset:   models.Preset{Name: "tea", Value: "3m"},
			maxLines: 4,
			contains: []string{"Preset: tea"},
			absent:   []string{"Ends at:"},
		},
		{
			name:     "invalid preset",
			preset:   models.Preset{Name: "oops", Value: "bad"},
			maxLines: 20,
			contains: []string{"Error: invalid duration format"},
			absent:   []string{"Duration:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preview := f.generatePresetPreview(tt.preset, tt.maxLines)
			for _, want := range tt.contains {
				if !strings.Contains(preview, want) {
					t.Errorf("preview missing %q:\n%s", want, preview)
				}
			}
			for _, unwanted := range tt.absent {
				if strings.Contains(preview, unwanted) {
					t.Errorf("preview should not contain %q:\n%s", unwanted, preview)
				}
			}
			if lines := strings.Count(preview, "\n") + 1; lines > tt.maxLines {
				t.Errorf("preview has %d lines, max %d", lines, tt.maxLines)
			}
		})
	}
}

func TestSelectPresetEmpty(t *testing.T) {
	f := New(&models.FinderConfig{}, nil, nil)
	if _, err := f.SelectPreset(nil); err == nil {
		t.Error("SelectPreset() should fail without presets")
	}
}
