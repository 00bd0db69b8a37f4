// Package config handles loading and saving application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const appName = "basiclist"

// Store backends.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendHTTP   = "http"
	BackendMySQL  = "mysql"
)

// Config represents the application configuration.
type Config struct {
	Store StoreConfig `yaml:"store"`
	UI    UIConfig    `yaml:"ui"`
}

// StoreConfig selects and configures the task store backend.
type StoreConfig struct {
	Backend string `yaml:"backend"`

	// Seed is the number of demo rows generated by the memory backend.
	Seed int `yaml:"seed,omitempty"`

	// File is the YAML task file used by the file backend.
	File string `yaml:"file,omitempty"`

	// BaseURL and APIToken configure the http backend.
	BaseURL  string `yaml:"base_url,omitempty"`
	APIToken string `yaml:"api_token,omitempty"`

	// DSN configures the mysql backend.
	DSN string `yaml:"dsn,omitempty"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	PageSize      int           `yaml:"page_size"`
	Total         int           `yaml:"total"`
	Owners        []string      `yaml:"owners"`
	Notifications bool          `yaml:"notifications"`
	Labels        Labels        `yaml:"labels"`
	Summary       []SummaryTile `yaml:"summary"`
}

// Labels holds the user-facing texts of the delete confirmation dialog.
type Labels struct {
	DeleteTitle   string `yaml:"delete_title"`
	DeleteContent string `yaml:"delete_content"`
	Confirm       string `yaml:"confirm"`
	Cancel        string `yaml:"cancel"`
}

// SummaryTile is one informational tile of the summary panel.
type SummaryTile struct {
	Title string `yaml:"title"`
	Value string `yaml:"value"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend: BackendMemory,
			Seed:    5,
		},
		UI: UIConfig{
			PageSize: 5,
			Total:    50,
			Owners:   []string{"付晓晓", "周毛毛", "周勇"},
			Labels: Labels{
				DeleteTitle:   "Delete task",
				DeleteContent: "Are you sure you want to delete this task?",
				Confirm:       "Confirm",
				Cancel:        "Cancel",
			},
			Summary: []SummaryTile{
				{Title: "My to-dos", Value: "8 tasks"},
				{Title: "Avg. handling time this week", Value: "32 min"},
				{Title: "Completed this week", Value: "24 tasks"},
			},
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", appName)
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

// Load reads the configuration from the default config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the configuration from path, filling unset values with
// defaults. A missing file yields the default configuration.
func LoadFile(path string) (*Config, error) {
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

// Save writes the configuration to the default config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveFile(path, cfg)
}

// SaveFile writes the configuration to path.
func SaveFile(path string, cfg *Config) error {
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

// Validate checks values that would otherwise fail later at runtime.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendMemory, BackendFile, BackendHTTP, BackendMySQL:
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
	if c.Store.Backend == BackendMySQL && c.Store.DSN == "" {
		return fmt.Errorf("store.dsn is required for the mysql backend")
	}
	if c.UI.PageSize <= 0 {
		return fmt.Errorf("ui.page_size must be positive, got %d", c.UI.PageSize)
	}
	if len(c.UI.Owners) == 0 {
		return fmt.Errorf("ui.owners must list at least one owner")
	}
	return nil
}

// TaskFile returns the file used by the file backend, defaulting to
// tasks.yaml in the data directory.
func (c *Config) TaskFile() (string, error) {
	if c.Store.File != "" {
		return c.Store.File, nil
	}
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tasks.yaml"), nil
}
