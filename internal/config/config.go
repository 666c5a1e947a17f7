// Package config loads valvenet run settings from YAML or TOML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds the parameters of one run.
type Config struct {
	// Input is the path of the valve report.
	Input string `yaml:"input" toml:"input"`

	// Start is the label of the node both agents start from.
	Start string `yaml:"start" toml:"start"`

	// Budget is the time budget in minutes.
	Budget int `yaml:"budget" toml:"budget"`

	// SetupDelay is subtracted from Budget before the two-agent search.
	SetupDelay int `yaml:"setup_delay" toml:"setup_delay"`

	// Verify cross-checks the single-agent answer with the descent solver.
	Verify bool `yaml:"verify" toml:"verify"`

	LogLevel  string `yaml:"log_level" toml:"log_level"`
	LogFormat string `yaml:"log_format" toml:"log_format"`
}

// Default returns the canonical puzzle settings.
func Default() Config {
	return Config{
		Start:      "AA",
		Budget:     30,
		SetupDelay: 4,
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// Load reads path on top of Default. The format follows the extension:
// .yaml/.yml (strict, unknown fields rejected) or .toml (undecoded keys
// rejected). An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("config: decode yaml %s: %w", path, err)
		}
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return cfg, fmt.Errorf("config: decode toml %s: %w", path, err)
		}
		if undec := md.Undecoded(); len(undec) > 0 {
			return cfg, fmt.Errorf("config: decode toml %s: unknown keys %v", path, undec)
		}
	default:
		return cfg, fmt.Errorf("config: unsupported extension %q", ext)
	}
	return cfg, nil
}

// Validate checks the settings needed before a run.
func (c Config) Validate() error {
	switch {
	case c.Input == "":
		return fmt.Errorf("%w: input path is empty", ErrInvalid)
	case c.Start == "":
		return fmt.Errorf("%w: start label is empty", ErrInvalid)
	case c.Budget < 0:
		return fmt.Errorf("%w: budget %d < 0", ErrInvalid, c.Budget)
	case c.SetupDelay < 0:
		return fmt.Errorf("%w: setup_delay %d < 0", ErrInvalid, c.SetupDelay)
	}
	return nil
}
