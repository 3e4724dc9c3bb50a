// Package config provides configuration for chessrules.
package config

import (
	"io"
	"net/url"
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// LogConfig holds settings for the structured logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error, fatal
	Level string

	// Format is text, json or logfmt
	Format string

	// File receives log output
	File io.Writer
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level:  "warn",
		Format: "text",
		File:   os.Stderr,
	}
}

// PerftConfig holds settings for move-tree counting.
type PerftConfig struct {
	// Depth in plies; 0 disables perft
	Depth int

	// Workers searching root moves in parallel
	Workers int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{Workers: runtime.NumCPU()}
}

// Config holds all program configuration.
type Config struct {
	Log     *LogConfig
	Advisor *AdvisorConfig
	Perft   *PerftConfig

	// Presets available for selection, keyed by id. Starts as a copy of
	// the built-in table.
	Presets map[string]Preset

	// OutputFile receives command output
	OutputFile io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	cfg := &Config{
		Log:        NewLogConfig(),
		Advisor:    NewAdvisorConfig(),
		Perft:      NewPerftConfig(),
		Presets:    DefaultPresets(),
		OutputFile: os.Stdout,
	}
	cfg.Advisor.Options = cfg.Presets[DefaultPresetID].Options
	return cfg
}

// Validate reports the first invalid setting, wrapped in
// errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "log level %q", c.Log.Level)
	}
	if _, ok := formatters[c.Log.Format]; !ok {
		return errors.Wrapf(errors.ErrInvalidConfig, "log format %q", c.Log.Format)
	}

	u, err := url.Parse(c.Advisor.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.Wrapf(errors.ErrInvalidConfig, "advisor url %q", c.Advisor.URL)
	}
	if c.Advisor.Timeout <= 0 || c.Advisor.Timeout > time.Minute {
		return errors.Wrapf(errors.ErrInvalidConfig, "advisor timeout %s", c.Advisor.Timeout)
	}
	if _, ok := c.Presets[c.Advisor.Preset]; !ok && c.Advisor.Preset != CustomPresetID {
		return errors.Wrapf(errors.ErrInvalidConfig, "unknown preset %q", c.Advisor.Preset)
	}
	if err := validateOptions(c.Advisor.Options); err != nil {
		return err
	}

	if c.Perft.Depth < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "perft depth %d", c.Perft.Depth)
	}
	if c.Perft.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "perft workers %d", c.Perft.Workers)
	}
	return nil
}

var formatters = map[string]log.Formatter{
	"text":   log.TextFormatter,
	"json":   log.JSONFormatter,
	"logfmt": log.LogfmtFormatter,
}

// NewLogger builds the logger described by cfg.Log.
func NewLogger(cfg *Config) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "log level %q", cfg.Log.Level)
	}
	formatter, ok := formatters[cfg.Log.Format]
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "log format %q", cfg.Log.Format)
	}
	w := cfg.Log.File
	if w == nil {
		w = io.Discard
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       formatter,
		Prefix:          "chessrules",
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	}), nil
}
