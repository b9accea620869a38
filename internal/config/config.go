// Package config holds the patrol solver settings loaded from YAML.
package config

import (
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config is the solver configuration
type Config struct {
	// Workers is the number of obstruction candidates evaluated at once,
	// 0 uses GOMAXPROCS
	Workers int `yaml:"workers"`
	// Sequential forces a single worker regardless of Workers
	Sequential bool `yaml:"sequential"`
	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the settings used when no file is given
func DefaultConfig() *Config {
	return &Config{
		Workers:  0,
		LogLevel: "info",
	}
}

// Load reads the configuration from path on top of the defaults.
// An empty or missing path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
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

// Validate checks the configuration values
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("invalid workers: %d (must be >= 0)", c.Workers)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed log level
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level: %q", c.LogLevel)
	}
	return lvl, nil
}

// EffectiveWorkers returns the worker count to hand to the search
func (c *Config) EffectiveWorkers() int {
	if c.Sequential {
		return 1
	}
	return c.Workers
}
