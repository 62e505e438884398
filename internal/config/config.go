// ABOUTME: Configuration for the notepad application.
// ABOUTME: Reads XDG YAML config, applies .env/environment overrides, validates.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds application settings.
type Config struct {
	// LogLevel is a zerolog level name (default: info)
	LogLevel string `yaml:"log_level" validate:"oneof=trace debug info warn error disabled"`

	// LogFormat is console or json (default: console)
	LogFormat string `yaml:"log_format" validate:"oneof=console json"`

	// LogFile receives logs when set; the TUI discards logs otherwise.
	LogFile string `yaml:"log_file,omitempty"`

	// Samples seeds the store with demonstration notes (default: true)
	Samples bool `yaml:"samples"`

	// WordWrap is the markdown rendering width.
	WordWrap int `yaml:"word_wrap" validate:"gte=20,lte=400"`

	// Markdown renders note content with glamour in CLI output.
	Markdown bool `yaml:"markdown"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "console",
		Samples:   true,
		WordWrap:  80,
		Markdown:  true,
	}
}

// ConfigDir returns the configuration directory path.
func ConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "notepad")
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Load reads the config file at path (ConfigPath when empty), applies
// environment overrides and validates the result. A missing file yields
// defaults.
func Load(path string) (*Config, error) {
	_ = godotenv.Load() // .env is optional

	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()
	data, err := os.ReadFile(path) //nolint:gosec // User-specified config path is expected CLI behavior
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.LogLevel = getEnv("NOTEPAD_LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnv("NOTEPAD_LOG_FORMAT", c.LogFormat)
	c.LogFile = getEnv("NOTEPAD_LOG_FILE", c.LogFile)

	if v := os.Getenv("NOTEPAD_SAMPLES"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid NOTEPAD_SAMPLES: %w", err)
		}
		c.Samples = b
	}
	if v := os.Getenv("NOTEPAD_WORD_WRAP"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid NOTEPAD_WORD_WRAP: %w", err)
		}
		c.WordWrap = n
	}
	return nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// SaveConfig writes configuration to path (ConfigPath when empty).
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		path = ConfigPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
