// Package config provides configuration management for planimeter using
// Viper for flexible configuration loading from files, environment
// variables, and command-line flags.
//
// The configuration system supports YAML files (.planimeter.yml),
// environment variable overrides with the PLANIMETER_ prefix, and flag
// binding in the cmd package. It manages output formatting and the
// watch-mode debounce interval.
package config

import (
	"time"

	"github.com/spf13/viper"

	"github.com/conneroisu/planimeter/internal/errors"
)

type Config struct {
	Output OutputConfig `yaml:"output"`
	Watch  WatchConfig  `yaml:"watch"`
}

type OutputConfig struct {
	Format    string `yaml:"format"`
	Precision int    `yaml:"precision"`
}

type WatchConfig struct {
	DebounceMs int `yaml:"debounce_ms"`
}

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// DefaultDebounce is the watch-mode debounce interval used when the
// configuration does not set one.
const DefaultDebounce = 300 * time.Millisecond

// Load builds the configuration from viper's merged sources and applies
// defaults for unset values.
func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, errors.NewConfigError(errors.ErrCodeConfigInvalid, "cannot unmarshal configuration").WithContext("cause", err.Error())
	}

	// Handle output settings set via viper (flag and env bindings land
	// here rather than in the unmarshal)
	if viper.IsSet("output.format") {
		config.Output.Format = viper.GetString("output.format")
	}
	if viper.IsSet("output.precision") {
		config.Output.Precision = viper.GetInt("output.precision")
	}
	if viper.IsSet("watch.debounce_ms") {
		config.Watch.DebounceMs = viper.GetInt("watch.debounce_ms")
	}

	if config.Output.Format == "" {
		config.Output.Format = FormatText
	}
	if config.Output.Precision == 0 {
		config.Output.Precision = 6
	}
	if config.Watch.DebounceMs == 0 {
		config.Watch.DebounceMs = int(DefaultDebounce / time.Millisecond)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return errors.NewConfigError(
			errors.ErrCodeConfigInvalid,
			"output.format must be one of text, json, yaml",
		).WithContext("format", c.Output.Format)
	}

	if c.Output.Precision < -1 || c.Output.Precision > 17 {
		return errors.NewConfigError(
			errors.ErrCodeConfigInvalid,
			"output.precision must be between -1 and 17",
		).WithContext("precision", c.Output.Precision)
	}

	if c.Watch.DebounceMs < 0 {
		return errors.NewConfigError(
			errors.ErrCodeConfigInvalid,
			"watch.debounce_ms must not be negative",
		).WithContext("debounce_ms", c.Watch.DebounceMs)
	}

	return nil
}

// Debounce returns the watch-mode debounce interval as a duration.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Watch.DebounceMs) * time.Millisecond
}
