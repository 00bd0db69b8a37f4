package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	keyringService = appName
	keyringUser    = "api-token"
	credFileName   = ".credentials"

	// TokenEnv overrides every stored token.
	TokenEnv = "BASICLIST_TOKEN"
)

// DataDir returns the path to the data directory for secure storage.
// Uses XDG_DATA_HOME or defaults to ~/.local/share/basiclist/
func DataDir() (string, error) {
	// XDG_DATA_HOME wins when set
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}

	dataDir := filepath.Join(dataHome, appName)
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	return dataDir, nil
}

// GetToken retrieves the API token for the http backend.
// Priority: 1. BASICLIST_TOKEN env var, 2. System keyring, 3. Credentials file
func GetToken() (string, error) {
	// 1. Environment variable, so scripts can override a stored token
	if token := os.Getenv(TokenEnv); token != "" {
		return strings.TrimSpace(token), nil
	}

	// 2. System keyring
	token, err := keyring.Get(keyringService, keyringUser)
	if err == nil && token != "" {
		return strings.TrimSpace(token), nil
	}

	// 3. Credentials file
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(filepath.Join(dataDir, credFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil // nothing stored yet
		}
		return "", fmt.Errorf("failed to read credentials file: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

// SaveToken stores the API token securely.
// Tries system keyring first, falls back to credentials file.
func SaveToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}

	// Keyring first
	if err := keyring.Set(keyringService, keyringUser, token); err == nil {
		return nil
	}

	// No keyring (headless box, no D-Bus): private file instead
	dataDir, err := DataDir()
	if err != nil {
		return err
	}

	credPath := filepath.Join(dataDir, credFileName)
	if err := os.WriteFile(credPath, []byte(token), 0600); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}

	return nil
}

// ClearToken removes the stored API token from all locations.
func ClearToken() error {
	// Keyring errors are ignored, the entry may never have existed
	_ = keyring.Delete(keyringService, keyringUser)

	// Then the credentials file, if present
	dataDir, err := DataDir()
	if err != nil {
		return err
	}

	credPath := filepath.Join(dataDir, credFileName)
	if err := os.Remove(credPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove credentials file: %w", err)
	}

	return nil
}

// ResolveToken returns the token the http backend should send: the config
// value when set, otherwise whatever GetToken finds.
func (c *Config) ResolveToken() (string, error) {
	if c.Store.APIToken != "" {
		return c.Store.APIToken, nil
	}
	return GetToken()
}
