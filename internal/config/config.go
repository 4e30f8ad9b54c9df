// Package config loads deckcli settings from the XDG config directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the deckcli defaults. Flags override these per run.
type Config struct {
	// DeckCount is the number of standard 52-card sets to start from.
	DeckCount int `toml:"deck_count"`
	// Seed fixes the shuffle seed when non-zero; zero means a fresh
	// random seed per run.
	Seed int64 `toml:"seed"`
	// Color enables red/black suit coloring in output.
	Color bool `toml:"color"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DeckCount: 1,
		Seed:      0,
		Color:     true,
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or the default path.
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file.
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "deckcli", "config.toml")
}

// Load reads the config file, creating it with defaults on first run.
func Load() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("decoding config file: %w", err)
	}
	if config.DeckCount < 1 {
		config.DeckCount = 1
	}
	return config, nil
}

// Save writes the config file, creating its directory if needed.
func Save(config *Config) error {
	configPath := GetConfigFilePath()
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	f, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(config); err != nil {
		return fmt.Errorf("encoding config file: %w", err)
	}
	return nil
}

func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := Save(config); err != nil {
		return nil, err
	}
	return config, nil
}
