package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete application configuration
type Config struct {
	Session SessionConfig `json:"session" yaml:"session"`
	Presets PresetsConfig `json:"presets" yaml:"presets"`
	Archive ArchiveConfig `json:"archive" yaml:"archive"`
	UI      UIConfig      `json:"ui" yaml:"ui"`
}

// SessionConfig controls the autosaved session file
type SessionConfig struct {
	// Path overrides the default location chain (env var, ./sessions, temp dir)
	Path     string `json:"path,omitempty" yaml:"path,omitempty"`
	Debounce string `json:"debounce,omitempty" yaml:"debounce,omitempty"` // e.g. "500ms", "2s"
}

// ParseDebounce converts the debounce string to time.Duration
func (s SessionConfig) ParseDebounce() (time.Duration, error) {
	if s.Debounce == "" {
		return 0, nil
	}
	return time.ParseDuration(s.Debounce)
}

// PresetsConfig locates the category preset label file
type PresetsConfig struct {
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// ArchiveConfig locates the SQLite session archive
type ArchiveConfig struct {
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// UIConfig contains presentation settings
type UIConfig struct {
	Theme string `json:"theme,omitempty" yaml:"theme,omitempty"` // "dark" or "light"
}

// LoadFromFile loads configuration from a file (JSON or YAML based on content)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if d, err := c.Session.ParseDebounce(); err != nil {
		return fmt.Errorf("session.debounce: %w", err)
	} else if c.Session.Debounce != "" && d <= 0 {
		return fmt.Errorf("session.debounce must be positive")
	}
	if c.Presets.Path == "" {
		return fmt.Errorf("presets.path is required")
	}
	if c.Archive.DBPath == "" {
		return fmt.Errorf("archive.db_path is required")
	}
	switch c.UI.Theme {
	case "", "dark", "light":
	default:
		return fmt.Errorf("ui.theme must be 'dark' or 'light'")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Session: SessionConfig{
			Debounce: "500ms",
		},
		Presets: PresetsConfig{
			Path: "./presets.json",
		},
		Archive: ArchiveConfig{
			DBPath: "./barjournal.sqlite",
		},
		UI: UIConfig{
			Theme: "dark",
		},
	}
}
