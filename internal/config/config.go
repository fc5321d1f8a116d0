// SPDX-License-Identifier: Apache-2.0

// Package config loads the optional .solv.yaml project configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is looked up in the directory of the file being checked.
const FileName = ".solv.yaml"

// Config controls diagnostic filtering and output of the CLI and the
// language server.
type Config struct {
	// Disabled lists diagnostic codes that are suppressed, e.g. ["E0405"].
	Disabled []string `yaml:"disabled"`

	// MaxErrors caps the number of diagnostics printed; 0 means no cap.
	MaxErrors int `yaml:"max_errors"`

	// Color is "auto", "always" or "never".
	Color string `yaml:"color"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{Color: "auto"}
}

// Load reads .solv.yaml from dir. A missing file yields the default
// configuration without error; a malformed file is an error.
func Load(dir string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	if cfg.Color == "" {
		cfg.Color = "auto"
	}
	return cfg, nil
}

// Enabled reports whether diagnostics with the given code should be shown.
func (c Config) Enabled(code string) bool {
	for _, disabled := range c.Disabled {
		if disabled == code {
			return false
		}
	}
	return true
}
