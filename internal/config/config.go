// Package config loads the podbridge configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultWatchDebounce is used when watch_debounce is unset or invalid.
const DefaultWatchDebounce = 600 * time.Millisecond

// AppConfig defines the global podbridge configuration options.
type AppConfig struct {
	Verbose       bool   `yaml:"verbose"`
	DebugLog      string `yaml:"debug_log"`
	EngineDir     string `yaml:"engine_dir"`
	DisableStats  *bool  `yaml:"disable_stats"`  // default true
	WatchDebounce string `yaml:"watch_debounce"` // duration, e.g. "600ms"
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *AppConfig {
	return &AppConfig{}
}

// StatsDisabled resolves the disable_stats option, defaulting to true.
func (c *AppConfig) StatsDisabled() bool {
	if c.DisableStats == nil {
		return true
	}
	return *c.DisableStats
}

// WatchDebounceDuration parses watch_debounce, falling back to the default.
func (c *AppConfig) WatchDebounceDuration() time.Duration {
	if c.WatchDebounce == "" {
		return DefaultWatchDebounce
	}
	d, err := time.ParseDuration(c.WatchDebounce)
	if err != nil || d <= 0 {
		return DefaultWatchDebounce
	}
	return d
}

// defaultConfigPath returns the XDG location of the config file.
func defaultConfigPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "podbridge", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "podbridge", "config.yaml"), nil
}

// LoadConfig reads configuration from the given path, or the XDG default
// when path is empty. A missing file yields the defaults without error;
// unknown keys are rejected.
func LoadConfig(path string) (*AppConfig, error) {
	if path == "" {
		var err error
		path, err = defaultConfigPath()
		if err != nil {
			return DefaultConfig(), nil
		}
	}

	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("opening config %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
