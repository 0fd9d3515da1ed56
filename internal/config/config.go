// Package config handles user configuration for shipchat.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultBaseURL points at a locally running analysis service, which
// listens on port 8000 out of the box.
const DefaultBaseURL = "http://localhost:8000"

// EnvBaseURL is the environment variable that overrides the API base URL.
const EnvBaseURL = "SHIPCHAT_API_URL"

// Themes supported by the TUI
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Config represents the user configuration
type Config struct {
	// APIBaseURL is the base URL of the shipment analysis service.
	APIBaseURL string `json:"api_base_url"`
	// Theme is the TUI color theme, "light" or "dark".
	Theme string `json:"theme"`
	// ForecastPeriods is the number of days forecast questions project ahead.
	ForecastPeriods int `json:"forecast_periods"`
	// CopyToClipboard copies one-shot answers to the system clipboard.
	CopyToClipboard bool `json:"copy_to_clipboard"`
	// Verbose enables debug-level diagnostics logging.
	Verbose bool `json:"verbose"`
	// ChartsDir is the directory chart images are downloaded into.
	ChartsDir string `json:"charts_dir,omitempty"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	homeDir, _ := os.UserHomeDir()
	return Config{
		APIBaseURL:      DefaultBaseURL,
		Theme:           ThemeDark,
		ForecastPeriods: 14,
		CopyToClipboard: false,
		Verbose:         false,
		ChartsDir:       filepath.Join(homeDir, ".shipchat", "charts"),
	}
}

// ValidTheme reports whether name is a supported theme.
func ValidTheme(name string) bool {
	return name == ThemeLight || name == ThemeDark
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".shipchat"), nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// GetStatePath returns the path to the persisted UI state file
// (theme preference and dashboards).
func GetStatePath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "state.json"), nil
}

// GetChartsDir returns the charts download directory from config, creating
// it if necessary.
func GetChartsDir(cfg Config) (string, error) {
	dir := cfg.ChartsDir
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(homeDir, ".shipchat", "charts")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create charts directory: %w", err)
	}

	return dir, nil
}

// LoadConfig loads the configuration from disk. A missing or corrupt file
// silently falls back to defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	configPath, err := GetConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), nil
	}

	if !ValidTheme(cfg.Theme) {
		cfg.Theme = ThemeDark
	}

	return cfg, nil
}

// SaveConfig saves the configuration to disk
func SaveConfig(cfg Config) error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.json")

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ResolveBaseURL returns the API base URL in precedence order:
// explicit value, SHIPCHAT_API_URL, config file, built-in default.
func ResolveBaseURL(explicit string, cfg Config) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvBaseURL); env != "" {
		return env
	}
	if cfg.APIBaseURL != "" {
		return cfg.APIBaseURL
	}
	return DefaultBaseURL
}
