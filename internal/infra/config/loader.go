// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the name of the taskvault configuration file.
const ConfigFileName = "config.toml"

// Config represents the application configuration.
type Config struct {
	StorePath string    `toml:"store_path"` // Path to the task container file
	Log       LogConfig `toml:"log"`        // [log] settings
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // Log level: debug, info, warn, error
}

// Loader loads configuration from a TOML file in the user config directory.
type Loader struct {
	confDir string
	dataDir string
}

// NewLoader creates a Loader using the XDG config and data directories.
func NewLoader() *Loader {
	return &Loader{
		confDir: userDir("XDG_CONFIG_HOME", ".config"),
		dataDir: userDir("XDG_DATA_HOME", filepath.Join(".local", "share")),
	}
}

// NewLoaderWithDirs creates a Loader with explicit directories.
// This is useful for testing.
func NewLoaderWithDirs(confDir, dataDir string) *Loader {
	return &Loader{confDir: confDir, dataDir: dataDir}
}

// userDir resolves an XDG base directory, falling back to the home-relative
// default. Returns empty string if the home directory cannot be determined.
func userDir(envVar, fallback string) string {
	if dir := os.Getenv(envVar); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, fallback)
}

// Default returns the configuration used when no config file exists.
func (l *Loader) Default() *Config {
	return &Config{
		StorePath: filepath.Join(l.dataDir, "taskvault", "tasks.bin"),
		Log:       LogConfig{Level: "info"},
	}
}

// Load returns the configuration, merging the config file over defaults.
// A missing file is not an error; defaults apply.
func (l *Loader) Load() (*Config, error) {
	cfg := l.Default()

	if l.confDir == "" {
		return cfg, nil
	}

	path := filepath.Join(l.confDir, "taskvault", ConfigFileName)
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := toml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if cfg.StorePath == "" {
		cfg.StorePath = l.Default().StorePath
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}
