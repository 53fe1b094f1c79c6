// ABOUTME: Credential configuration for the breeze CLI
// ABOUTME: Handles config storage at XDG paths with .env and environment overrides
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
)

// Config stores the tenant subdomain and API key used by every command.
type Config struct {
	Subdomain string `json:"subdomain"`
	APIKey    string `json:"api_key"`
}

// ConfigDir returns the XDG-compliant directory for breeze configuration.
func ConfigDir() string {
	return filepath.Join(xdg.DataHome, "breeze")
}

// ConfigPath returns the XDG-compliant path of the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.json")
}

// LoadConfig loads credentials from the config file, then lets a local .env
// file and the environment override:
// - BREEZE_SUBDOMAIN
// - BREEZE_API_KEY.
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(ConfigPath())
	switch {
	case err == nil:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// A .env in the working directory feeds the environment; missing is fine.
	_ = godotenv.Load()

	if subdomain := os.Getenv("BREEZE_SUBDOMAIN"); subdomain != "" {
		cfg.Subdomain = subdomain
	}
	if key := os.Getenv("BREEZE_API_KEY"); key != "" {
		cfg.APIKey = key
	}

	return cfg, nil
}

// Save writes the config file with owner-only permissions.
func (c *Config) Save() error {
	if err := os.MkdirAll(ConfigDir(), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(ConfigPath(), data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// IsConfigured reports whether both credentials are present.
func (c *Config) IsConfigured() bool {
	return c.Subdomain != "" && c.APIKey != ""
}
