// Package config resolves leveltrack settings from a YAML file and
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds all user-tunable settings. Values come from, in
// ascending priority: built-in defaults, the YAML config file,
// environment variables.
type Config struct {
	// ClientLog is the path to the game's Client.txt. Empty means
	// auto-discover from known install locations.
	ClientLog string `yaml:"client_log" env:"LEVELTRACK_CLIENT_TXT"`

	// PollInterval is how often the tailer checks for new lines.
	PollInterval time.Duration `yaml:"poll_interval" env:"LEVELTRACK_POLL_INTERVAL"`

	// EventSource selects the log line format: "generating" or "entered".
	EventSource string `yaml:"event_source" env:"LEVELTRACK_EVENT_SOURCE"`

	// MonotonicAct keeps the current act from moving backward when
	// revisiting earlier zones.
	MonotonicAct bool `yaml:"monotonic_act" env:"LEVELTRACK_MONOTONIC_ACT"`

	// AreasFile points at an external areas dataset. Empty uses the
	// built-in data.
	AreasFile string `yaml:"areas_file" env:"LEVELTRACK_AREAS"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		PollInterval: 500 * time.Millisecond,
		EventSource:  "generating",
	}
}

// Load resolves the effective configuration. path selects the YAML
// file; empty uses DefaultPath. A missing file is not an error — the
// defaults plus environment apply.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// No config file; defaults stand.
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive, got %s", c.PollInterval)
	}
	switch c.EventSource {
	case "generating", "entered":
	default:
		return fmt.Errorf("event_source must be %q or %q, got %q", "generating", "entered", c.EventSource)
	}
	return nil
}

// DefaultPath resolves the config file location:
// $XDG_CONFIG_HOME/leveltrack/config.yaml, falling back to
// ~/.config/leveltrack/config.yaml.
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "leveltrack", "config.yaml"), nil
}
