// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gsokit/matrix"
)

// Config holds the engine settings a config file may provide.
// Command-line flags override file values.
type Config struct {
	Epsilon   float64 `yaml:"epsilon"`
	MaxPasses int     `yaml:"max_passes"`
	LogLevel  string  `yaml:"log_level"`
}

var (
	errBadEpsilon   = errors.New("epsilon must be finite and > 0")
	errBadMaxPasses = errors.New("max_passes must be >= 1")
)

// defaultConfig mirrors the library defaults.
func defaultConfig() Config {
	return Config{
		Epsilon:   matrix.DefaultEpsilon,
		MaxPasses: matrix.DefaultMaxPasses,
		LogLevel:  zerolog.InfoLevel.String(),
	}
}

// loadConfig reads path on top of base. Keys absent from the file keep base's value.
func loadConfig(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read config: %w", err)
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return base, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// validate rejects values the engine's option constructors would panic on.
func (c Config) validate() error {
	if !(c.Epsilon > 0) || math.IsInf(c.Epsilon, 0) {
		return fmt.Errorf("%w, got %g", errBadEpsilon, c.Epsilon)
	}
	if c.MaxPasses < 1 {
		return fmt.Errorf("%w, got %d", errBadMaxPasses, c.MaxPasses)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// options translates the configuration into engine options.
func (c Config) options(log zerolog.Logger) []matrix.Option {
	return []matrix.Option{
		matrix.WithEpsilon(c.Epsilon),
		matrix.WithMaxPasses(c.MaxPasses),
		matrix.WithLogger(log),
	}
}

// epsilonValue is a pflag.Value accepting decimal or hex floats ("0x1p-52").
type epsilonValue float64

var _ pflag.Value = (*epsilonValue)(nil)

func (e *epsilonValue) String() string { return strconv.FormatFloat(float64(*e), 'g', -1, 64) }

func (e *epsilonValue) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	if !(v > 0) || math.IsInf(v, 0) {
		return fmt.Errorf("%w, got %s", errBadEpsilon, s)
	}
	*e = epsilonValue(v)

	return nil
}

func (e *epsilonValue) Type() string { return "float" }
