// Package config provides configuration management for the snooze application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/d-kuro/snooze/pkg/duration"
	"github.com/d-kuro/snooze/pkg/models"
	"github.com/spf13/viper"
)

const (
	configName      = "config"
	configType      = "toml"
	localConfigName = ".snooze"
	envPrefix       = "SNOOZE"
)

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home is not available
		return filepath.Join(".", ".config", "snooze")
	}
	return filepath.Join(home, ".config", "snooze")
}

// getLocalConfigPath returns the path to the local config file if it exists.
// Returns empty string if no local config is found.
func getLocalConfigPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	localConfigPath := filepath.Join(cwd, localConfigName+"."+configType)
	if _, err := os.Stat(localConfigPath); os.IsNotExist(err) {
		return ""
	}

	return localConfigPath
}

// mergeLocalConfig merges the local config file (.snooze.toml) from the current directory.
// Local config takes precedence over the global config. Presets are merged by name.
func mergeLocalConfig() error {
	localConfigPath := getLocalConfigPath()
	if localConfigPath == "" {
		return nil
	}

	localViper := viper.New()
	localViper.SetConfigFile(localConfigPath)
	localViper.SetConfigType(configType)

	if err := localViper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read local config %s: %w", localConfigPath, err)
		}
		return nil
	}

	for _, key := range localViper.AllKeys() {
		viper.Set(key, localViper.Get(key))
	}

	return nil
}

// setDefaults registers the built-in defaults.
func setDefaults() {
	viper.SetDefault("sleep.default", "1s")
	viper.SetDefault("ui.color", true)
	viper.SetDefault("ui.humanize", true)
	viper.SetDefault("ui.progress", false)
	viper.SetDefault("finder.preview", true)
	viper.SetDefault("presets", map[string]string{
		"short":    "5s",
		"pomodoro": "25m",
	})
}

// Init initializes the configuration system, creating default config if needed.
func Init() error {
	configDir := getConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigName(configName)
	viper.SetConfigType(configType)
	viper.AddConfigPath(configDir)

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			configPath := filepath.Join(configDir, configName+"."+configType)
			if err := viper.SafeWriteConfig(); err != nil {
				if err := viper.WriteConfigAs(configPath); err != nil {
					return fmt.Errorf("failed to create config file: %w", err)
				}
			}
		} else {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	// Merge local config from current directory if present
	if err := mergeLocalConfig(); err != nil {
		return fmt.Errorf("failed to merge local config: %w", err)
	}

	return nil
}

// Load loads and returns the current configuration.
func Load() (*models.Config, error) {
	var cfg models.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate checks that every configured duration parses.
func validate(cfg *models.Config) error {
	if _, err := duration.Parse(cfg.Sleep.Default); err != nil {
		return fmt.Errorf("invalid sleep.default: %w", err)
	}

	for _, p := range cfg.SortedPresets() {
		if _, err := duration.Parse(p.Value); err != nil {
			return fmt.Errorf("invalid preset %q: %w", p.Name, err)
		}
	}
	return nil
}

// SetGlobal sets a configuration value and writes to the global config file only.
// This uses a separate viper instance to avoid writing merged local settings.
func SetGlobal(key string, value any) error {
	if err := checkValue(key, value); err != nil {
		return err
	}

	globalViper := viper.New()
	globalViper.SetConfigName(configName)
	globalViper.SetConfigType(configType)
	globalViper.AddConfigPath(getConfigDir())

	// Read only global config (ignore error if file doesn't exist)
	_ = globalViper.ReadInConfig()
	globalViper.Set(key, value)

	configPath := filepath.Join(getConfigDir(), configName+"."+configType)
	if err := globalViper.WriteConfigAs(configPath); err != nil {
		return err
	}

	// Update main viper instance as well
	viper.Set(key, value)
	return nil
}

// SetLocal sets a configuration value and writes to the local config file (.snooze.toml).
func SetLocal(key string, value any) error {
	if err := checkValue(key, value); err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	localConfigPath := filepath.Join(cwd, localConfigName+"."+configType)

	localViper := viper.New()
	localViper.SetConfigFile(localConfigPath)
	localViper.SetConfigType(configType)

	_ = localViper.ReadInConfig()
	localViper.Set(key, value)

	if err := localViper.WriteConfigAs(localConfigPath); err != nil {
		return fmt.Errorf("failed to write local config: %w", err)
	}

	// Update main viper instance as well
	viper.Set(key, value)
	return nil
}

// checkValue rejects duration keys whose value would not parse.
func checkValue(key string, value any) error {
	if key != "sleep.default" && !strings.HasPrefix(key, "presets.") {
		return nil
	}

	s, ok := value.(string)
	if !ok {
		s = fmt.Sprint(value)
	}
	if _, err := duration.Parse(s); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return nil
}

// GetValue retrieves a configuration value by key.
func GetValue(key string) any {
	return viper.Get(key)
}

// AllKeys returns every known configuration key in dot notation.
func AllKeys() []string {
	return viper.AllKeys()
}

// AllSettings returns all configuration settings.
func AllSettings() map[string]any {
	return viper.AllSettings()
}

// Get returns the current loaded configuration, falling back to the
// defaults if it cannot be loaded.
func Get() *models.Config {
	cfg, err := Load()
	if err != nil {
		var defaultCfg models.Config
		if err := viper.Unmarshal(&defaultCfg); err != nil {
			return &models.Config{}
		}
		return &defaultCfg
	}
	return cfg
}
