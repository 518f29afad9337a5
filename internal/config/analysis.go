package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MaxPerftDepth bounds the perft depth accepted from the command line.
const MaxPerftDepth = 8

// AnalysisConfig holds settings for batch position analysis and perft.
type AnalysisConfig struct {
	// Workers is the number of goroutines analysing positions.
	Workers int

	// BufferSize is the capacity of the work and result channels.
	BufferSize int

	// PerftDepth is the default perft depth.
	PerftDepth int

	// Unique drops positions whose hash was already seen in the batch.
	Unique bool

	// Material is a material pattern such as "KQ:k"; empty means no filter.
	Material string

	// MaterialExact requires exactly the pieces in Material instead of at least them.
	MaterialExact bool

	// Patterns are FEN placement patterns with wildcards; a position passes when
	// it matches any of them.
	Patterns []string
}

// NewAnalysisConfig creates an AnalysisConfig with default values.
func NewAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{
		Workers:    runtime.NumCPU(),
		BufferSize: 64,
		PerftDepth: 3,
	}
}

// Validate checks the numeric settings.
func (c *AnalysisConfig) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.BufferSize < 1 {
		return fmt.Errorf("buffer size must be at least 1, got %d: %w", c.BufferSize, errors.ErrInvalidConfig)
	}
	if c.PerftDepth < 1 || c.PerftDepth > MaxPerftDepth {
		return fmt.Errorf("perft depth must be in 1..%d, got %d: %w", MaxPerftDepth, c.PerftDepth, errors.ErrInvalidConfig)
	}
	return nil
}
