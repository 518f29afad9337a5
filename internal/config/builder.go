package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build validates and returns the built Config.
func (b *ConfigBuilder) Build() (*Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// WithLogLevel sets the log level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithLogEncoding selects the development and JSON encoder options.
func (b *ConfigBuilder) WithLogEncoding(dev, json bool) *ConfigBuilder {
	b.cfg.Log.Dev = dev
	b.cfg.Log.JSON = json
	return b
}

// WithLogWriter sets the log destination.
func (b *ConfigBuilder) WithLogWriter(w io.Writer) *ConfigBuilder {
	b.cfg.Log.Writer = w
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSON = enabled
	return b
}

// WithColour enables or disables coloured diagrams.
func (b *ConfigBuilder) WithColour(enabled bool) *ConfigBuilder {
	b.cfg.Output.Colour = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.Output.Writer = w
	return b
}

// WithWorkers sets the number of analysis workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Analysis.Workers = n
	return b
}

// WithBufferSize sets the channel buffer size.
func (b *ConfigBuilder) WithBufferSize(n int) *ConfigBuilder {
	b.cfg.Analysis.BufferSize = n
	return b
}

// WithPerftDepth sets the perft depth.
func (b *ConfigBuilder) WithPerftDepth(depth int) *ConfigBuilder {
	b.cfg.Analysis.PerftDepth = depth
	return b
}

// WithUnique enables duplicate position suppression.
func (b *ConfigBuilder) WithUnique(enabled bool) *ConfigBuilder {
	b.cfg.Analysis.Unique = enabled
	return b
}

// WithMaterial sets the material filter.
func (b *ConfigBuilder) WithMaterial(pattern string, exact bool) *ConfigBuilder {
	b.cfg.Analysis.Material = pattern
	b.cfg.Analysis.MaterialExact = exact
	return b
}

// WithPatterns adds placement pattern filters.
func (b *ConfigBuilder) WithPatterns(patterns ...string) *ConfigBuilder {
	b.cfg.Analysis.Patterns = append(b.cfg.Analysis.Patterns, patterns...)
	return b
}
