// Package config loads the optional .ttt.yaml CLI configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks when no --config flag is given.
const DefaultPath = ".ttt.yaml"

// Config carries CLI defaults and engine limit overrides.
type Config struct {
	// Output is the default output format: table, json, csv or nuon.
	Output string `yaml:"output"`
	// MaxDifferences caps the differences printed by equivalence output.
	MaxDifferences int `yaml:"maxDifferences"`
	// MaxVariables and MaxNameLength override the engine limits.
	MaxVariables  int `yaml:"maxVariables"`
	MaxNameLength int `yaml:"maxNameLength"`
}

// Default returns the published defaults.
func Default() Config {
	return Config{
		Output:         "table",
		MaxDifferences: 10,
		MaxVariables:   20,
		MaxNameLength:  50,
	}
}

// Load reads a config file, filling unset fields from the defaults. A
// missing file is not an error: the defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}
	d, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(d, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Output == "" {
		cfg.Output = "table"
	}
	if cfg.MaxDifferences <= 0 {
		cfg.MaxDifferences = Default().MaxDifferences
	}
	if cfg.MaxVariables <= 0 {
		cfg.MaxVariables = Default().MaxVariables
	}
	if cfg.MaxNameLength <= 0 {
		cfg.MaxNameLength = Default().MaxNameLength
	}
	return cfg, nil
}

// Init writes a fresh config file with the defaults.
func Init(path string) error {
	if path == "" {
		path = DefaultPath
	}
	d, err := yaml.Marshal(Default())
	if err != nil {
		return err
	}
	return os.WriteFile(path, d, 0o644)
}
