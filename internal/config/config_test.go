package config

import (
	"bytes"
	"errors"
	"runtime"
	"testing"

	ierrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if cfg.Log.Dev || cfg.Log.JSON {
		t.Error("log encoder options should be off by default")
	}
	if cfg.Output.JSON {
		t.Error("Output.JSON should be false by default")
	}
	if !cfg.Output.Colour {
		t.Error("Output.Colour should be true by default")
	}
	if cfg.Analysis.Workers != runtime.NumCPU() {
		t.Errorf("Analysis.Workers = %d, want %d", cfg.Analysis.Workers, runtime.NumCPU())
	}
	if cfg.Analysis.BufferSize != 64 {
		t.Errorf("Analysis.BufferSize = %d, want 64", cfg.Analysis.BufferSize)
	}
	if cfg.Analysis.PerftDepth != 3 {
		t.Errorf("Analysis.PerftDepth = %d, want 3", cfg.Analysis.PerftDepth)
	}
	if cfg.Analysis.Unique {
		t.Error("Analysis.Unique should be false by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown log level", func(c *Config) { c.Log.Level = "verbose" }},
		{"zero workers", func(c *Config) { c.Analysis.Workers = 0 }},
		{"zero buffer", func(c *Config) { c.Analysis.BufferSize = 0 }},
		{"zero perft depth", func(c *Config) { c.Analysis.PerftDepth = 0 }},
		{"perft depth too deep", func(c *Config) { c.Analysis.PerftDepth = MaxPerftDepth + 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ierrors.ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfigBuilder(t *testing.T) {
	var out, log bytes.Buffer
	cfg, err := NewConfigBuilder().
		WithLogLevel("debug").
		WithLogEncoding(true, true).
		WithLogWriter(&log).
		WithJSONOutput(true).
		WithColour(false).
		WithOutput(&out).
		WithWorkers(2).
		WithBufferSize(8).
		WithPerftDepth(5).
		WithUnique(true).
		WithMaterial("KQ:k", true).
		WithPatterns("*/*/*/*/*/*/*/*").
		WithPatterns("8/8/8/8/8/8/8/*").
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if cfg.Log.Level != "debug" || !cfg.Log.Dev || !cfg.Log.JSON || cfg.Log.Writer != &log {
		t.Errorf("unexpected log config: %+v", cfg.Log)
	}
	if !cfg.Output.JSON || cfg.Output.Colour || cfg.Output.Writer != &out {
		t.Errorf("unexpected output config: %+v", cfg.Output)
	}
	if cfg.Analysis.Workers != 2 || cfg.Analysis.BufferSize != 8 || cfg.Analysis.PerftDepth != 5 || !cfg.Analysis.Unique {
		t.Errorf("unexpected analysis config: %+v", cfg.Analysis)
	}
	if cfg.Analysis.Material != "KQ:k" || !cfg.Analysis.MaterialExact || len(cfg.Analysis.Patterns) != 2 {
		t.Errorf("unexpected filter config: %+v", cfg.Analysis)
	}

	cfg.Log.NewLogger().Debug("configured")
	if log.Len() == 0 {
		t.Error("logger built from config wrote nothing at debug level")
	}
}

func TestConfigBuilder_Invalid(t *testing.T) {
	if _, err := NewConfigBuilder().WithWorkers(-1).Build(); !errors.Is(err, ierrors.ErrInvalidConfig) {
		t.Errorf("Build() = %v, want ErrInvalidConfig", err)
	}
}
