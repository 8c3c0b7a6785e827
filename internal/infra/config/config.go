// Package config provides configuration loading from a TOML file with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the config file looked up inside the config directory.
const ConfigFileName = "config.toml"

// Reminders configures the reminder loop.
type Reminders struct {
	// Interval is the number of seconds between reminder messages.
	Interval int `toml:"interval"`
	// QuietStart and QuietEnd bound the local hours (inclusive) during
	// which reminders are suppressed.
	QuietStart int `toml:"quiet_start"`
	QuietEnd   int `toml:"quiet_end"`
}

// Config holds the application configuration.
type Config struct {
	// DataDir is the directory holding the task list documents.
	DataDir   string    `toml:"data_dir"`
	Reminders Reminders `toml:"reminders"`
}

// Default returns the built-in configuration: data under the XDG data
// directory, a reminder every 30 minutes, quiet from 1 to 6 AM.
func Default() *Config {
	return &Config{
		DataDir: filepath.Join(defaultDataHome(), "remindersbot"),
		Reminders: Reminders{
			Interval:   1800,
			QuietStart: 1,
			QuietEnd:   6,
		},
	}
}

// Loader loads configuration from a TOML file.
type Loader struct {
	confDir string
}

// NewLoader creates a Loader rooted at the default config directory
// (XDG_CONFIG_HOME/remindersbot).
func NewLoader() *Loader {
	return &Loader{confDir: defaultConfigDir()}
}

// NewLoaderWithDir creates a Loader with a custom config directory.
// This is useful for testing.
func NewLoaderWithDir(dir string) *Loader {
	return &Loader{confDir: dir}
}

// Load returns the configuration: defaults, overlaid by the config file
// if present, overlaid by REMINDERS_* environment variables.
func (l *Loader) Load() (*Config, error) {
	cfg := Default()

	path := filepath.Join(l.confDir, ConfigFileName)
	content, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// No file; defaults apply.
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := toml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("REMINDERS_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("REMINDERS_INTERVAL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Reminders.Interval = n
		}
	}
	if v := os.Getenv("REMINDERS_QUIET_START"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Reminders.QuietStart = n
		}
	}
	if v := os.Getenv("REMINDERS_QUIET_END"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Reminders.QuietEnd = n
		}
	}
}

func (c *Config) validate() error {
	if c.DataDir == "" {
		return errors.New("data_dir cannot be empty")
	}
	if c.Reminders.Interval <= 0 {
		return fmt.Errorf("reminders.interval must be positive, got %d", c.Reminders.Interval)
	}
	if c.Reminders.QuietStart < 0 || c.Reminders.QuietStart > 23 {
		return fmt.Errorf("reminders.quiet_start must be an hour between 0 and 23, got %d", c.Reminders.QuietStart)
	}
	if c.Reminders.QuietEnd < 0 || c.Reminders.QuietEnd > 23 {
		return fmt.Errorf("reminders.quiet_end must be an hour between 0 and 23, got %d", c.Reminders.QuietEnd)
	}
	return nil
}

func defaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "remindersbot")
}

func defaultDataHome() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return dataHome
}
