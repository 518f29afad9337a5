package config

import (
	"io"
	"os"
)

// OutputConfig holds settings for result output.
type OutputConfig struct {
	// JSON writes one JSON record per position instead of text.
	JSON bool

	// Colour enables ANSI colours in board diagrams.
	Colour bool

	// Writer receives results.
	Writer io.Writer
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Colour: true,
		Writer: os.Stdout,
	}
}
