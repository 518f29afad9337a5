// Package output renders position analyses as text, JSON and board diagrams.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/processing"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	indent        string
}

// NewOutputWriter creates a new output writer. Continuation lines start with indent.
func NewOutputWriter(w io.Writer, maxLineLength int, indent string) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
		indent:        indent,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			fmt.Fprint(o.w, o.indent)
			o.lineLength = len(o.indent)
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputPosition writes an analysis in the plain text format: a header line with
// the FEN, one line of facts, then the legal moves in SAN wrapped at lineLength.
func OutputPosition(w io.Writer, analysis *processing.PositionAnalysis, lineLength int) {
	fmt.Fprintf(w, "FEN: %s\n", analysis.FEN)

	facts := []string{
		"to move: " + colorName(analysis.Position.ToMove),
		"status: " + analysis.Status.String(),
		fmt.Sprintf("material: %+d", analysis.Material),
	}
	if analysis.InCheck {
		facts = append(facts, "check")
	}
	if analysis.HasInsufficientMaterial {
		facts = append(facts, "insufficient material")
	}
	if analysis.Has75MoveRule {
		facts = append(facts, "75-move rule")
	} else if analysis.HasFiftyMoveRule {
		facts = append(facts, "50-move rule")
	}
	fmt.Fprintln(w, strings.Join(facts, ", "))

	ow := NewOutputWriter(w, lineLength, "  ")
	ow.Write(fmt.Sprintf("moves (%d):", len(analysis.Moves)))
	for _, m := range analysis.Moves {
		ow.Write(m.SAN)
	}
	ow.NewLine()
}

// formatHash renders a Zobrist hash as fixed-width hex.
func formatHash(h uint64) string {
	return fmt.Sprintf("%016x", h)
}
