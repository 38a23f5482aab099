// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for madjust.
//
// Configuration is TOML with built-in defaults and environment variable
// overrides:
//   - ~/.madjust/config.toml
//   - MADJUST_SCENE, MADJUST_SPACE, MADJUST_TARGET overrides
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/madjust-tui/internal/model"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is the complete madjust configuration.
type Config struct {
	// ScenePath is the scene file opened at startup; empty means the
	// built-in demo scene
	ScenePath string `toml:"scene_path"`

	// DefaultSpace is the ambient coordinate frame: "local" or "global"
	DefaultSpace string `toml:"default_space"`

	// DefaultTarget is the ambient mesh target: "auto", "verts",
	// "edges" or "faces"
	DefaultTarget string `toml:"default_target"`

	// UI holds terminal UI preferences
	UI UIConfig `toml:"ui"`
}

// UIConfig contains terminal UI preferences.
type UIConfig struct {
	// ShowShortcuts displays the key hint line in the status bar
	ShowShortcuts bool `toml:"show_shortcuts"`

	// WatchScene reloads the scene file when it changes on disk
	WatchScene bool `toml:"watch_scene"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DefaultSpace:  "local",
		DefaultTarget: "auto",
		UI: UIConfig{
			ShowShortcuts: true,
			WatchScene:    true,
		},
	}
}

// =============================================================================
// LOADING
// =============================================================================

// ConfigDir returns the madjust configuration directory.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".madjust"), nil
}

// EnsureConfigDir creates the configuration directory if missing.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o755)
}

// Load reads the config file, falling back to defaults when it does not
// exist, then applies environment overrides and validates.
func Load() (*Config, error) {
	cfg := Default()

	dir, err := ConfigDir()
	if err == nil {
		path := filepath.Join(dir, "config.toml")
		if _, statErr := os.Stat(path); statErr == nil {
			if _, decErr := toml.DecodeFile(path, cfg); decErr != nil {
				return nil, fmt.Errorf("config: %w", decErr)
			}
		}
	}

	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv layers environment variables over the file values.
func applyEnv(cfg *Config) {
	if v := os.Getenv("MADJUST_SCENE"); v != "" {
		cfg.ScenePath = v
	}
	if v := os.Getenv("MADJUST_SPACE"); v != "" {
		cfg.DefaultSpace = v
	}
	if v := os.Getenv("MADJUST_TARGET"); v != "" {
		cfg.DefaultTarget = v
	}
}

// Validate checks the enumerated fields.
func (c *Config) Validate() error {
	if _, ok := model.ParseSpace(c.DefaultSpace); !ok {
		return fmt.Errorf("config: invalid default_space %q", c.DefaultSpace)
	}
	if _, ok := model.ParseMeshTarget(c.DefaultTarget); !ok {
		return fmt.Errorf("config: invalid default_target %q", c.DefaultTarget)
	}
	return nil
}

// Space returns the parsed ambient space.
func (c *Config) Space() model.Space {
	s, _ := model.ParseSpace(c.DefaultSpace)
	return s
}

// Target returns the parsed ambient mesh target.
func (c *Config) Target() model.MeshTarget {
	t, _ := model.ParseMeshTarget(c.DefaultTarget)
	return t
}
