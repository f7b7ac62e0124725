// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/pomo-dev/pomo/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from a TOML file in the user config directory.
type Loader struct {
	confDir string
}

// NewLoader creates a new Loader against the default config directory.
func NewLoader() *Loader {
	return &Loader{confDir: defaultConfigDir()}
}

// NewLoaderWithDir creates a new Loader with a custom config directory.
// This is useful for testing.
func NewLoaderWithDir(dir string) *Loader {
	return &Loader{confDir: dir}
}

// defaultConfigDir returns the default config directory.
func defaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "pomo")
}

// fileConfig mirrors the TOML file layout.
type fileConfig struct {
	User      string `toml:"user"`
	Store     string `toml:"store"`
	DataDir   string `toml:"data_dir"`
	Durations struct {
		Focus int `toml:"focus"`
		Break int `toml:"break"`
	} `toml:"durations"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
}

// Load returns the configuration, merging the config file over defaults.
// A missing file is not an error; defaults apply.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	path := filepath.Join(l.confDir, domain.ConfigFileName)
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(content, &fc); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.User != "" {
		cfg.User = fc.User
	}
	if fc.Store != "" {
		if fc.Store != domain.StoreJSON && fc.Store != domain.StoreSQLite {
			return nil, fmt.Errorf("unknown store backend %q in %s", fc.Store, path)
		}
		cfg.Store = fc.Store
	}
	if fc.DataDir != "" {
		cfg.DataDir = fc.DataDir
	}
	if fc.Durations.Focus > 0 {
		cfg.Durations.Focus = fc.Durations.Focus
	}
	if fc.Durations.Break > 0 {
		cfg.Durations.Break = fc.Durations.Break
	}
	if fc.Log.Level != "" {
		cfg.Log.Level = fc.Log.Level
	}

	return cfg, nil
}
