// Package config loads and validates MMSS console configuration.
// Configuration is read from <state dir>/console.yaml with environment
// variable overrides applied on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all MMSS console configuration.
type Config struct {
	// Backend connection
	Server ServerConfig `yaml:"server"`

	// Research campaign defaults
	Campaign CampaignConfig `yaml:"campaign"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig configures the backend API connection.
type ServerConfig struct {
	// BaseURL is the root of the MMSS server; the /api prefix is appended
	// by the client, not configured here.
	BaseURL string `yaml:"base_url"`

	// Timeout bounds single-shot CLI requests. Zero disables the bound,
	// matching the dashboard's no-timeout model.
	Timeout string `yaml:"timeout"`
}

// CampaignConfig overrides the built-in research campaign defaults.
// Blank fields keep the compiled-in values.
type CampaignConfig struct {
	DefaultGoal   string `yaml:"default_goal"`
	DefaultTarget string `yaml:"default_target"`
	DefaultSteps  int    `yaml:"default_steps"`
}

// LoggingConfig configures the category file logger.
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode"`
	Categories map[string]bool `yaml:"categories"`
	Level      string          `yaml:"level"`
}

// DefaultConfig returns a Config with all defaults applied.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			BaseURL: "http://127.0.0.1:8080",
			Timeout: "30s",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultStateDir returns the console state directory (~/.mmss).
func DefaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mmss"
	}
	return filepath.Join(home, ".mmss")
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist, and applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the config to path in YAML form.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// applyEnvOverrides lets environment variables win over file values.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("MMSS_BASE_URL"); v != "" {
		c.Server.BaseURL = v
	}
	if v := os.Getenv("MMSS_TIMEOUT"); v != "" {
		c.Server.Timeout = v
	}
	if v := os.Getenv("MMSS_CAMPAIGN_GOAL"); v != "" {
		c.Campaign.DefaultGoal = v
	}
	if v := os.Getenv("MMSS_CAMPAIGN_TARGET"); v != "" {
		c.Campaign.DefaultTarget = v
	}
	if v := os.Getenv("MMSS_CAMPAIGN_STEPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Campaign.DefaultSteps = n
		}
	}
	if v := os.Getenv("MMSS_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Logging.DebugMode = b
		}
	}
}

// GetTimeout parses the request timeout, returning zero (unbounded) for
// blank or malformed values.
func (c *Config) GetTimeout() time.Duration {
	if c.Server.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Server.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// Validate checks for configuration errors worth failing startup over.
func (c *Config) Validate() error {
	if c.Server.BaseURL == "" {
		return fmt.Errorf("server.base_url must not be empty")
	}
	if c.Server.Timeout != "" {
		if _, err := time.ParseDuration(c.Server.Timeout); err != nil {
			return fmt.Errorf("server.timeout: %w", err)
		}
	}
	if c.Campaign.DefaultSteps < 0 {
		return fmt.Errorf("campaign.default_steps must not be negative")
	}
	return nil
}
