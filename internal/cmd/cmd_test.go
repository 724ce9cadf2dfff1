package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/d-kuro/snooze/internal/countdown"
	"github.com/d-kuro/snooze/pkg/duration"
	"github.com/d-kuro/snooze/pkg/models"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// runCommand executes rootCmd with args in a fresh HOME and returns stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runCommandWithHome(t, t.TempDir(), args...)
}

// runCommandWithHome executes rootCmd with HOME and the working directory set
// to home, so config written by one call is seen by the next.
func runCommandWithHome(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()

	t.Setenv("HOME", home)
	t.Setenv("NO_COLOR", "1")

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(originalWd) })
	if err := os.Chdir(home); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}

	viper.Reset()
	t.Cleanup(func() { viper.Reset() })

	sleepProgress, sleepVerbose, sleepDryRun = false, false, false
	parseOutput, parseFormat, parseUnits = "text", "", false
	configSetLocal = false

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err = rootCmd.Execute()
	return out.String(), err
}

func TestRootDryRun(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "single argument", args: []string{"--dry-run", "1m30s"}, want: "(90000ms)"},
		{name: "arguments are summed", args: []string{"--dry-run", "1s", "500ms"}, want: "(1500ms)"},
		{name: "zero integers are skipped", args: []string{"--dry-run", "0", "2s"}, want: "(2000ms)"},
		{name: "negative after separator", args: []string{"--dry-run", "--", "-50"}, want: "(0ms)"},
		{name: "fractional", args: []string{"--dry-run", "1.5s"}, want: "(1500ms)"},
		{name: "default from config", args: []string{"--dry-run"}, want: "(1000ms)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestRootSleeps(t *testing.T) {
	start := time.Now()
	if _, err := runCommand(t, "20ms"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("snooze 20ms returned after %v", elapsed)
	}
}

func TestRootInvalidDuration(t *testing.T) {
	_, err := runCommand(t, "--dry-run", "soonish")
	if !errors.Is(err, duration.ErrInvalidDuration) {
		t.Errorf("Execute() error = %v, want %v", err, duration.ErrInvalidDuration)
	}
}

func TestParseText(t *testing.T) {
	out, err := runCommand(t, "parse", "1h2m3s", "2s500ms")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"INPUT", "3723000ms", "2500ms", "1h2m3s"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestParseJSON(t *testing.T) {
	out, err := runCommand(t, "parse", "-o", "json", "1.5s", "0h0m0s")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var results []models.ParseResult
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Milliseconds != 1500 || results[0].Human == "" {
		t.Errorf("results[0] = %+v", results[0])
	}
	if results[1].Milliseconds != 0 || results[1].Human != "" {
		t.Errorf("results[1] = %+v", results[1])
	}
}

func TestParseYAMLWithError(t *testing.T) {
	out, err := runCommand(t, "parse", "-o", "yaml", "abc", "1x2m")
	if err == nil {
		t.Fatal("Execute() should fail when an argument does not parse")
	}

	var results []models.ParseResult
	if err := yaml.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("invalid YAML output: %v\n%s", err, out)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if !strings.Contains(results[0].Error, "invalid duration format") {
		t.Errorf("results[0].Error = %q", results[0].Error)
	}
	if results[1].Milliseconds != 120000 {
		t.Errorf("results[1].Milliseconds = %d, want 120000", results[1].Milliseconds)
	}
}

func TestParseTemplate(t *testing.T) {
	out, err := runCommand(t, "parse", "--format", "{{.Input}}={{.Milliseconds}}", "1m", "250")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "1m=60000\n250=250\n" {
		t.Errorf("output = %q", out)
	}
}

func TestParseUnsupportedFormat(t *testing.T) {
	if _, err := runCommand(t, "parse", "-o", "xml", "1s"); err == nil {
		t.Error("Execute() should reject unknown output format")
	}
}

func TestParseUnits(t *testing.T) {
	out, err := runCommand(t, "parse", "--units")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"milliseconds", "seconds", "hr", "3600000"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPresetListAndRun(t *testing.T) {
	out, err := runCommand(t, "preset", "list")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "pomodoro") || !strings.Contains(out, "short") {
		t.Errorf("preset list output:\n%s", out)
	}

	out, err = runCommand(t, "preset", "run", "--dry-run", "Pomodoro")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "(1500000ms)") {
		t.Errorf("preset run output = %q", out)
	}

	if _, err := runCommand(t, "preset", "run", "missing"); err == nil {
		t.Error("Execute() should fail for an unknown preset")
	}
}

func TestConfigSetAndGet(t *testing.T) {
	tmpDir := t.TempDir()
	out, err := runCommandWithHome(t, tmpDir, "config", "set", "presets.tea", "3m")
	if err != nil {
		t.Fatalf("config set error = %v", err)
	}
	if out != "✓ Set presets.tea = 3m (global)\n" {
		t.Errorf("config set output = %q", out)
	}

	data, err := os.ReadFile(filepath.Join(tmpDir, ".config", "snooze", "config.toml"))
	if err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}
	if !strings.Contains(string(data), "tea") {
		t.Errorf("config file missing preset:\n%s", data)
	}

	out, err = runCommandWithHome(t, tmpDir, "config", "get", "presets.tea")
	if err != nil {
		t.Fatalf("config get error = %v", err)
	}
	if strings.TrimSpace(out) != "3m" {
		t.Errorf("config get output = %q, want 3m", out)
	}

	if _, err := runCommandWithHome(t, tmpDir, "config", "set", "sleep.default", "eventually"); err == nil {
		t.Error("config set should reject an invalid duration")
	}
}

func TestIsInterrupted(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "countdown quit", err: countdown.ErrInterrupted, want: true},
		{name: "parse error", err: duration.ErrInvalidDuration, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isInterrupted(tt.err); got != tt.want {
				t.Errorf("isInterrupted(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestCompletionCmd_Structure(t *testing.T) {
	if completionCmd.Use != "completion [bash|zsh|fish]" {
		t.Errorf("completionCmd.Use = %q, want %q", completionCmd.Use, "completion [bash|zsh|fish]")
	}

	names := make(map[string]bool)
	for _, cmd := range completionCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, expected := range []string{"bash", "zsh", "fish"} {
		if !names[expected] {
			t.Errorf("completion command should have %q subcommand", expected)
		}
	}
}

func TestCompletionBash(t *testing.T) {
	out, err := runCommand(t, "completion", "bash")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "snooze") {
		t.Error("bash completion should mention the command name")
	}
}
