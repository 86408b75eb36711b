package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Language string `koanf:"language"` // "", "en" or "pl"; empty follows the locale
	Icons    string `koanf:"icons"`    // "nerd", "unicode", or "none"
	Verbose  bool   `koanf:"verbose"`  // enable debug logging

	Tick          TickConfig          `koanf:"tick"`
	Notifications NotificationsConfig `koanf:"notifications"`
}

// TickConfig controls how often the scheduler checks for newly crossed
// urgency boundaries, in seconds.
type TickConfig struct {
	Foreground int `koanf:"foreground"`
	Background int `koanf:"background"`
}

// NotificationsConfig holds desktop notification settings.
type NotificationsConfig struct {
	Enabled bool `koanf:"enabled"`
	Timeout int  `koanf:"timeout"` // ms handed to the notification server
}

const envPrefix = "LOOM_"

func Load() (*Config, error) {
	return load(getConfigPaths())
}

func load(configPaths []string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(NewDefaultProvider(), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Try config files in order of priority (last wins)
	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load %s: %w", path, err)
			}
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// envKey turns LOOM_TICK_FOREGROUND into tick.foreground.
func envKey(s string) string {
	s = strings.TrimPrefix(s, envPrefix)
	return strings.ReplaceAll(strings.ToLower(s), "_", ".")
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/loom/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "loom", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

// Intervals returns the check cadence with defaults applied.
func (c *Config) Intervals() (foreground, background time.Duration) {
	fg := c.Tick.Foreground
	if fg <= 0 {
		fg = defaultForegroundSeconds
	}
	bg := c.Tick.Background
	if bg <= 0 {
		bg = defaultBackgroundSeconds
	}
	return time.Duration(fg) * time.Second, time.Duration(bg) * time.Second
}
