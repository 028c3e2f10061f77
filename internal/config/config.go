package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// configName is the file looked up in the project directory, with any
// extension viper understands (.json, .yaml, .toml).
const configName = ".azmodal"

// envPrefix is prepended to environment overrides, e.g. AZMODAL_MODAL_LABEL.
const envPrefix = "AZMODAL"

// Config represents the full azmodal configuration
type Config struct {
	Modal ModalConfig `mapstructure:"modal"`
	UI    UIConfig    `mapstructure:"ui"`
	Log   LogConfig   `mapstructure:"log"`
}

// ModalConfig contains the trigger label and dialog body
type ModalConfig struct {
	Label   string `mapstructure:"label"`
	Content string `mapstructure:"content"`
}

// UIConfig contains terminal program settings
type UIConfig struct {
	Mouse     bool `mapstructure:"mouse"`
	AltScreen bool `mapstructure:"altScreen"`
}

// LogConfig contains logging settings. An empty File disables logging,
// since the TUI owns stdout.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Modal: ModalConfig{
			Label:   "Open Modal",
			Content: "This dialog sits above the page.\nClick outside it, press Esc, or use X to close.",
		},
		UI: UIConfig{
			Mouse:     true,
			AltScreen: true,
		},
		Log: LogConfig{
			Level: "info",
			File:  "",
		},
	}
}

func newViper() *viper.Viper {
	defaults := DefaultConfig()

	v := viper.New()
	v.SetDefault("modal.label", defaults.Modal.Label)
	v.SetDefault("modal.content", defaults.Modal.Content)
	v.SetDefault("ui.mouse", defaults.UI.Mouse)
	v.SetDefault("ui.altScreen", defaults.UI.AltScreen)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.file", defaults.Log.File)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig loads configuration with priority:
// 1. AZMODAL_* environment variables
// 2. .azmodal.{json,yaml,toml} in projectPath
// 3. Defaults
func LoadConfig(projectPath string) (*Config, error) {
	v := newViper()
	v.SetConfigName(configName)
	v.AddConfigPath(projectPath)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}

// SaveConfig writes cfg to path. The format follows the file extension.
func SaveConfig(cfg *Config, path string) error {
	v := viper.New()
	v.Set("modal.label", cfg.Modal.Label)
	v.Set("modal.content", cfg.Modal.Content)
	v.Set("ui.mouse", cfg.UI.Mouse)
	v.Set("ui.altScreen", cfg.UI.AltScreen)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks values the widget cannot work without
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Modal.Label) == "" {
		return errors.New("invalid config: modal.label must not be empty")
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// SlogLevel returns the configured log level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}
