// Package config loads the YAML run configuration of the caves CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/caves/paths"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the complete run configuration.
type Config struct {
	// Input is the edge-list file; a CLI argument overrides it.
	Input string `yaml:"input"`

	// Policy names the revisit rule used by count and list.
	Policy string `yaml:"policy"`

	// Workers > 1 enables the parallel search.
	Workers int `yaml:"workers"`

	// Order is the frontier discipline, "fifo" or "lifo".
	Order string `yaml:"order"`

	// MaxLength caps path length in caves; 0 disables the cap.
	MaxLength int `yaml:"max_length"`

	Log LogConfig `yaml:"log"`
}

// LogConfig selects the zap logger flavour.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Policy:  "single",
		Workers: 1,
		Order:   "fifo",
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a YAML file over the defaults.
// A missing file is not an error: defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if _, err := paths.ParsePolicy(c.Policy); err != nil {
		return fmt.Errorf("%w: policy: %w", ErrInvalid, err)
	}
	if _, err := paths.ParseOrder(c.Order); err != nil {
		return fmt.Errorf("%w: order: %w", ErrInvalid, err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers cannot be negative (%d)", ErrInvalid, c.Workers)
	}
	if c.MaxLength < 0 {
		return fmt.Errorf("%w: max_length cannot be negative (%d)", ErrInvalid, c.MaxLength)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}

// PolicyValue returns the parsed Policy.
func (c *Config) PolicyValue() (paths.Policy, error) {
	return paths.ParsePolicy(c.Policy)
}

// Options converts the search settings into enumeration options.
func (c *Config) Options() ([]paths.Option, error) {
	order, err := paths.ParseOrder(c.Order)
	if err != nil {
		return nil, err
	}
	return []paths.Option{
		paths.WithOrder(order),
		paths.WithWorkers(c.Workers),
		paths.WithMaxLength(c.MaxLength),
	}, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
