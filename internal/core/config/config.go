// Package config handles configuration loading and validation for courtside.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/courtside/internal/core/styles"
	"github.com/colonyops/courtside/internal/toast"
)

// Config holds the application configuration.
type Config struct {
	Toast ToastConfig `yaml:"toast"`
	TUI   TUIConfig   `yaml:"tui"`
}

// ToastConfig holds the notification engine timing. Durations use Go
// duration syntax ("4s", "300ms").
type ToastConfig struct {
	DisplayDuration time.Duration `yaml:"display_duration"`
	ExitDuration    time.Duration `yaml:"exit_duration"`
	DedupWindow     time.Duration `yaml:"dedup_window"`
}

// TUIConfig holds terminal host settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Toast: ToastConfig{
			DisplayDuration: toast.DefaultDisplayDuration,
			ExitDuration:    toast.DefaultExitDuration,
			DedupWindow:     toast.DefaultDedupWindow,
		},
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
		},
	}
}

// Load reads configuration from the given path and validates it. A missing
// or empty path yields the defaults.
func Load(configPath string) (*Config, error) {
	cfg, err := Read(configPath)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Read parses the config file without validating it. Keys absent from the
// file keep their default values.
func Read(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults fills values that must never be zero.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Toast.DisplayDuration == 0 {
		c.Toast.DisplayDuration = defaults.Toast.DisplayDuration
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
}

// Engine converts the toast section into engine configuration.
func (c ToastConfig) Engine() toast.Config {
	return toast.Config{
		DisplayDuration: c.DisplayDuration,
		ExitDuration:    c.ExitDuration,
		DedupWindow:     c.DedupWindow,
	}
}
