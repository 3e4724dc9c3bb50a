package config

import (
	"io"
	"time"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
	err error
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build validates and returns the built Config.
func (b *ConfigBuilder) Build() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// WithLogLevel sets the log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithLogFormat sets the log format.
func (b *ConfigBuilder) WithLogFormat(format string) *ConfigBuilder {
	b.cfg.Log.Format = format
	return b
}

// WithLogOutput sets the log writer.
func (b *ConfigBuilder) WithLogOutput(w io.Writer) *ConfigBuilder {
	b.cfg.Log.File = w
	return b
}

// WithAdvisorURL sets the engine service URL.
func (b *ConfigBuilder) WithAdvisorURL(url string) *ConfigBuilder {
	b.cfg.Advisor.URL = url
	return b
}

// WithTimeout sets the advisor request timeout.
func (b *ConfigBuilder) WithTimeout(d time.Duration) *ConfigBuilder {
	b.cfg.Advisor.Timeout = d
	return b
}

// WithPreset selects a difficulty preset.
func (b *ConfigBuilder) WithPreset(id string) *ConfigBuilder {
	if err := b.cfg.SelectPreset(id); err != nil && b.err == nil {
		b.err = err
	}
	return b
}

// WithOffline controls the local fallback suggester.
func (b *ConfigBuilder) WithOffline(enabled bool) *ConfigBuilder {
	b.cfg.Advisor.Offline = enabled
	return b
}

// WithPerft sets the perft depth and worker count.
func (b *ConfigBuilder) WithPerft(depth, workers int) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	b.cfg.Perft.Workers = workers
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}
