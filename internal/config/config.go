// SPDX-License-Identifier: MIT

// Package config loads beaconreg settings from defaults, an optional
// .beaconreg.yaml, BEACONREG_* environment variables and bound CLI flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/beaconreg/resolve"
)

// EnvPrefix prefixes every environment override, e.g. BEACONREG_WORKERS.
const EnvPrefix = "BEACONREG"

// Output formats accepted by Config.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrInvalid is returned by Validate for unusable settings.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds runtime settings for one beaconreg invocation.
type Config struct {
	Workers    int    `mapstructure:"workers"`
	MinOverlap int    `mapstructure:"min_overlap"`
	Root       int    `mapstructure:"root"`
	Strategy   string `mapstructure:"strategy"`
	ProperOnly bool   `mapstructure:"proper_only"`
	Format     string `mapstructure:"format"`
	NoColor    bool   `mapstructure:"no_color"`
	Verbose    bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// value not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("workers", 0)
	viper.SetDefault("min_overlap", 12)
	viper.SetDefault("root", 0)
	viper.SetDefault("strategy", "bfs")
	viper.SetDefault("proper_only", false)
	viper.SetDefault("format", FormatText)
	viper.SetDefault("no_color", false)
	viper.SetDefault("verbose", false)

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Validate rejects settings the resolver or the report writer cannot use.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0 (%d)", ErrInvalid, c.Workers)
	}
	if c.MinOverlap < 2 || c.MinOverlap > 64 {
		return fmt.Errorf("%w: min_overlap must be in [2, 64] (%d)", ErrInvalid, c.MinOverlap)
	}
	if c.Root < 0 {
		return fmt.Errorf("%w: root must be >= 0 (%d)", ErrInvalid, c.Root)
	}
	if _, err := resolve.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: strategy %q", ErrInvalid, c.Strategy)
	}
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: format %q (want text, json or yaml)", ErrInvalid, c.Format)
	}
	return nil
}

// ResolveOptions translates the settings into resolver options.
// Call Validate first.
func (c Config) ResolveOptions() []resolve.Option {
	strategy, _ := resolve.ParseStrategy(c.Strategy)
	opts := []resolve.Option{
		resolve.WithWorkers(c.Workers),
		resolve.WithMinOverlap(c.MinOverlap),
		resolve.WithRoot(c.Root),
		resolve.WithStrategy(strategy),
	}
	if c.ProperOnly {
		opts = append(opts, resolve.WithProperOnly())
	}
	return opts
}
