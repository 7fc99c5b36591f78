package demokit

import (
	"fmt"
	"strings"
)

// Config holds the ambient settings of a tour run. Lesson behaviour never
// depends on it: it only paces simulated delays, shapes diagnostics and picks
// which lessons the tour CLI runs.
type Config struct {
	// DelayScale multiplies simulated delays into real sleeps. 0 disables sleeping.
	DelayScale float64 `yaml:"delay_scale" toml:"delay_scale" env:"DELAY_SCALE" default:"0"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" toml:"log_level" env:"LOG_LEVEL" default:"warn"`

	// LogFormat is text or json.
	LogFormat string `yaml:"log_format" toml:"log_format" env:"LOG_FORMAT" default:"text"`

	// Lessons lists the lessons to run, in order. Empty means all.
	Lessons []string `yaml:"lessons" toml:"lessons" env:"LESSONS"`
}

// Feeder populates a config struct from one source.
type Feeder interface {
	Feed(target any) error
}

// Validate implements ConfigValidator.
func (c *Config) Validate() error {
	if c.DelayScale < 0 {
		return NewValidationError("delay_scale", c.DelayScale, "must not be negative")
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return NewValidationError("log_level", c.LogLevel, "must be one of debug, info, warn, error")
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return NewValidationError("log_format", c.LogFormat, "must be text or json")
	}

	return nil
}

// LoadConfig feeds cfg from every feeder in order (later feeders win), then
// applies defaults and validates the result.
func LoadConfig(cfg *Config, feeders ...Feeder) error {
	if cfg == nil {
		return ErrConfigNil
	}

	for _, feeder := range feeders {
		if err := feeder.Feed(cfg); err != nil {
			return fmt.Errorf("%w: %T: %w", ErrConfigFeederError, feeder, err)
		}
	}

	return ValidateConfig(cfg)
}
