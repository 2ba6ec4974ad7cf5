// Package config handles loading and saving application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const appName = "backoffice-tui"

// Config represents the application configuration.
type Config struct {
	API  APIConfig  `yaml:"api"`
	Auth AuthConfig `yaml:"auth"`
	UI   UIConfig   `yaml:"ui"`
	Log  LogConfig  `yaml:"log"`
}

// APIConfig points the client at a back-office deployment.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout,omitempty"` // e.g. "15s"
}

// AuthConfig holds authentication-related settings.
type AuthConfig struct {
	// APIToken is a long-lived admin token. Takes precedence over stored credentials.
	APIToken string `yaml:"api_token,omitempty"`

	// Email is the login identity; the password is read from BACKOFFICE_PASSWORD.
	Email string `yaml:"email,omitempty"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	RowsPerPage      int    `yaml:"rows_per_page"`
	NarrowBreakpoint int    `yaml:"narrow_breakpoint"`
	Notifications    bool   `yaml:"notifications"`
	StartPage        string `yaml:"start_page,omitempty"`
	// ExportDir receives CSV exports; empty means the working directory.
	ExportDir string `yaml:"export_dir,omitempty"`
}

// LogConfig controls the debug log file.
type LogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level,omitempty"`
	Dir     string `yaml:"dir,omitempty"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:8080/api",
			Timeout: "30s",
		},
		UI: UIConfig{
			RowsPerPage:      10,
			NarrowBreakpoint: 100,
			Notifications:    true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Uses XDG_CONFIG_HOME or defaults to ~/.config/backoffice-tui/.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configHome = filepath.Join(homeDir, ".config")
	}

	configDir := filepath.Join(configHome, appName)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the configuration to the config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	// Write with restricted permissions (owner read/write only)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks value ranges and formats.
func (c *Config) Validate() error {
	var errs []error

	if c.API.BaseURL != "" && !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		errs = append(errs, fmt.Errorf("api.base_url must start with http:// or https://, got %q", c.API.BaseURL))
	}
	if c.API.Timeout != "" {
		if d, err := time.ParseDuration(c.API.Timeout); err != nil || d <= 0 {
			errs = append(errs, fmt.Errorf("api.timeout must be a positive duration, got %q", c.API.Timeout))
		}
	}
	if c.UI.RowsPerPage < 0 {
		errs = append(errs, fmt.Errorf("ui.rows_per_page cannot be negative"))
	}
	if c.UI.NarrowBreakpoint < 0 {
		errs = append(errs, fmt.Errorf("ui.narrow_breakpoint cannot be negative"))
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level))
	}

	return errors.Join(errs...)
}

// Timeout returns the configured request timeout, or 0 when unset.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// HasValidAuth returns true if the config can authenticate without prompting.
func (c *Config) HasValidAuth() bool {
	return c.Auth.APIToken != "" || c.Auth.Email != ""
}
