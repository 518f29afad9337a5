// Package config holds the driver configuration: logging, output and batch
// analysis settings, with defaults and validation.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/logx"
)

// Config holds all program configuration.
type Config struct {
	Log      *LogConfig
	Output   *OutputConfig
	Analysis *AnalysisConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Log:      NewLogConfig(),
		Output:   NewOutputConfig(),
		Analysis: NewAnalysisConfig(),
	}
}

// Validate checks every section and returns the first problem found, wrapping
// errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	return c.Analysis.Validate()
}

// LogConfig holds settings for the zap logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error, dpanic, panic, fatal.
	Level string

	// Dev selects the development encoder config (coloured levels, stack traces on warn).
	Dev bool

	// JSON selects the JSON encoder instead of the console encoder.
	JSON bool

	// Writer receives log output.
	Writer io.Writer
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level:  "info",
		Writer: os.Stderr,
	}
}

// Validate rejects unknown level names.
func (c *LogConfig) Validate() error {
	if !logx.ValidLevel(c.Level) {
		return fmt.Errorf("log level %q: %w", c.Level, errors.ErrInvalidConfig)
	}
	return nil
}

// NewLogger builds the logger described by the config.
func (c *LogConfig) NewLogger() *logx.Logx {
	l := logx.NewLogx(logx.GetLoggerLevelByString(c.Level), c.Dev, c.JSON)
	l.InitLogger(c.Writer)
	return l
}
