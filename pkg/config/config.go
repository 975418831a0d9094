// Package config provides configuration management for the cryptocore CLI
// tool: defaults for the padding, block-size and output flags, loaded from
// a JSON file in the user's config directory.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the main configuration structure
type Config struct {
	Version  string          `json:"version"`
	Defaults DefaultSettings `json:"defaults"`
	UI       UIConfig        `json:"ui"`
}

// DefaultSettings contains default values for common operations
type DefaultSettings struct {
	PaddingScheme string `json:"padding_scheme"` // Default: pkcs7
	BlockSize     int    `json:"block_size"`     // Default: 16
	StrictHex     bool   `json:"strict_hex"`     // Reject whitespace/odd-length hex
	RandomLength  int    `json:"random_length"`  // Default: 32
}

// UIConfig contains output-related settings
type UIConfig struct {
	Color      bool `json:"color"`       // Colored terminal output
	JSONOutput bool `json:"json_output"` // Default to JSON output
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: "1",
		Defaults: DefaultSettings{
			PaddingScheme: "pkcs7",
			BlockSize:     16,
			StrictHex:     false,
			RandomLength:  32,
		},
		UI: UIConfig{
			Color: true,
		},
	}
}

// Path returns the location of the config file.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "cryptocore", "config.json"), nil
}

// Load reads the config file, falling back to defaults when it does not
// exist.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Save writes the config file, creating the directory if needed.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
