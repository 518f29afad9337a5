package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/processing"
)

// Report is one input line's outcome: an analysis, a duplicate marker or an error.
type Report struct {
	Line      int
	FEN       string
	Analysis  *processing.PositionAnalysis
	Duplicate bool
	Err       error
}

// ReportWriter is the interface for writing reports to output.
// Different implementations handle different output formats (text, JSON).
type ReportWriter interface {
	// Write writes a single report to the output.
	Write(r Report) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// TextWriter writes reports in the plain text format.
type TextWriter struct {
	w          io.Writer
	lineLength int
	written    int
}

// NewTextWriter creates a new text writer that wraps move lists at lineLength.
func NewTextWriter(w io.Writer, lineLength int) *TextWriter {
	return &TextWriter{w: w, lineLength: lineLength}
}

// Write writes a report, separating records with a blank line.
func (tw *TextWriter) Write(r Report) error {
	if tw.written > 0 {
		if _, err := fmt.Fprintln(tw.w); err != nil {
			return err
		}
	}
	tw.written++

	switch {
	case r.Err != nil:
		_, err := fmt.Fprintf(tw.w, "line %d: error: %v\n", r.Line, r.Err)
		return err
	case r.Duplicate:
		_, err := fmt.Fprintf(tw.w, "line %d: duplicate position: %s\n", r.Line, r.FEN)
		return err
	}
	if r.Line > 0 {
		if _, err := fmt.Fprintf(tw.w, "line %d\n", r.Line); err != nil {
			return err
		}
	}
	OutputPosition(tw.w, r.Analysis, tw.lineLength)
	return nil
}

// Flush is a no-op: the text writer writes immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONOutput holds multiple positions for array output.
type JSONOutput struct {
	Positions []*JSONPosition `json:"positions"`
}

// JSONWriter writes reports in JSON format.
// It buffers reports and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w         io.Writer
	positions []*JSONPosition
	single    bool // If true, write each report immediately as one JSON line
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches reports and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:         w,
		positions: make([]*JSONPosition, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each report immediately
// as a line of its own.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// Write buffers a report for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) Write(r Report) error {
	jp := reportToJSON(r)
	if jw.single {
		return json.NewEncoder(jw.w).Encode(jp)
	}

	jw.positions = append(jw.positions, jp)
	return nil
}

// Flush writes all buffered reports as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.positions) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Positions: jw.positions})

	// Clear buffer after writing
	jw.positions = jw.positions[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func reportToJSON(r Report) *JSONPosition {
	if r.Err != nil || r.Duplicate || r.Analysis == nil {
		jp := &JSONPosition{Line: r.Line, FEN: r.FEN, Duplicate: r.Duplicate}
		if r.Err != nil {
			jp.Error = r.Err.Error()
		}
		return jp
	}
	jp := PositionToJSON(r.Analysis)
	jp.Line = r.Line
	return jp
}
