// Package config loads the optional YAML settings file of the wiener command.
//
// Example:
//
//	order: 4
//	correlation: fft      # direct | fft
//	solver: levinson      # dense | levinson
//	log_level: info       # any logrus level
package config

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-wiener/dsp/filter/wiener"
)

// ErrInvalid is returned for values that fail validation.
var ErrInvalid = errors.New("config: invalid value")

// Config mirrors the settings file.
type Config struct {
	Order       int    `yaml:"order"`
	Correlation string `yaml:"correlation"`
	Solver      string `yaml:"solver"`
	LogLevel    string `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() *Config {
	d := wiener.DefaultConfig()
	return &Config{
		Order:       d.Order,
		Correlation: d.Correlation.String(),
		Solver:      d.Solver.String(),
		LogLevel:    log.WarnLevel.String(),
	}
}

// Load reads path on top of the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if c.Order < 1 {
		return fmt.Errorf("%w: order %d, need at least 1", ErrInvalid, c.Order)
	}
	if _, err := wiener.ParseCorrelationMethod(c.Correlation); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := wiener.ParseSolverMethod(c.Solver); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Options converts the settings into design options.
func (c *Config) Options() ([]wiener.Option, error) {
	corr, err := wiener.ParseCorrelationMethod(c.Correlation)
	if err != nil {
		return nil, err
	}
	solver, err := wiener.ParseSolverMethod(c.Solver)
	if err != nil {
		return nil, err
	}
	return []wiener.Option{
		wiener.WithOrder(c.Order),
		wiener.WithCorrelation(corr),
		wiener.WithSolver(solver),
	}, nil
}

// Level returns the parsed log level.
func (c *Config) Level() (log.Level, error) {
	return log.ParseLevel(c.LogLevel)
}
