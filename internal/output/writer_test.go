package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/notation"
	"github.com/lgbarn/chess-rules-go/internal/processing"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func analyse(t *testing.T, fen string) *processing.PositionAnalysis {
	t.Helper()
	return processing.Analyze(testutil.MustParseFEN(t, fen))
}

// TestTextWriter_Write verifies the text format of a single report
func TestTextWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf, 80)

	err := w.Write(Report{Line: 3, Analysis: analyse(t, "7k/6Q1/6K1/8/8/8/8/8 b - - 0 1")})
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, w.Close())

	want := "line 3\n" +
		"FEN: 7k/6Q1/6K1/8/8/8/8/8 b - - 0 1\n" +
		"to move: black, status: checkmate, material: +9, check\n" +
		"moves (0):\n"
	testutil.AssertEqual(t, buf.String(), want)
}

// TestTextWriter_ErrorsAndDuplicates verifies non-analysis reports
func TestTextWriter_ErrorsAndDuplicates(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf, 80)

	testutil.AssertNoError(t, w.Write(Report{Line: 1, Err: fmt.Errorf("bad rank: %w", errors.ErrInvalidFEN)}))
	testutil.AssertNoError(t, w.Write(Report{Line: 2, FEN: notation.InitialFEN, Duplicate: true}))

	want := "line 1: error: bad rank: invalid FEN string\n" +
		"\n" +
		"line 2: duplicate position: " + notation.InitialFEN + "\n"
	testutil.AssertEqual(t, buf.String(), want)
}

// TestOutputPosition_Wrapping verifies move lists wrap with an indent
func TestOutputPosition_Wrapping(t *testing.T) {
	var buf bytes.Buffer
	OutputPosition(&buf, analyse(t, notation.InitialFEN), 40)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) < 4 {
		t.Fatalf("expected wrapped move list, got:\n%s", buf.String())
	}
	testutil.AssertTrue(t, strings.HasPrefix(lines[2], "moves (20):"), "moves header")
	for _, line := range lines[2:] {
		testutil.AssertTrue(t, len(line) <= 40, "line too long: %q", line)
	}
	for _, line := range lines[3:] {
		testutil.AssertTrue(t, strings.HasPrefix(line, "  "), "continuation indent: %q", line)
	}
}

// TestJSONWriter_Batch verifies batched JSON output
func TestJSONWriter_Batch(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf)

	testutil.AssertNoError(t, w.Write(Report{Line: 1, Analysis: analyse(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")}))
	testutil.AssertNoError(t, w.Write(Report{Line: 2, FEN: "x", Err: errors.ErrInvalidFEN}))
	testutil.AssertEqual(t, buf.Len(), 0)
	testutil.AssertNoError(t, w.Close())

	var out JSONOutput
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &out))
	testutil.AssertEqual(t, len(out.Positions), 2)

	first := out.Positions[0]
	testutil.AssertEqual(t, first.Line, 1)
	testutil.AssertEqual(t, first.ToMove, "white")
	testutil.AssertEqual(t, first.Status, "in progress")
	testutil.AssertEqual(t, first.Material, 2)
	testutil.AssertEqual(t, len(first.Hash), 16)

	var mate *JSONMove
	for i := range first.Moves {
		if first.Moves[i].SAN == "Ra8#" {
			mate = &first.Moves[i]
		}
	}
	if mate == nil {
		t.Fatal("Ra8# missing from move list")
	}
	testutil.AssertEqual(t, *mate, JSONMove{SAN: "Ra8#", UCI: "a1a8", From: "a1", To: "a8", Piece: "rook", Check: true, Mate: true})

	testutil.AssertEqual(t, out.Positions[1].Error, "invalid FEN string")
	testutil.AssertEqual(t, out.Positions[1].FEN, "x")
}

// TestJSONWriter_Single verifies one JSON line per report
func TestJSONWriter_Single(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriterSingle(&buf)

	testutil.AssertNoError(t, w.Write(Report{Line: 1, Analysis: analyse(t, notation.InitialFEN)}))
	testutil.AssertNoError(t, w.Write(Report{Line: 2, FEN: notation.InitialFEN, Duplicate: true}))
	testutil.AssertNoError(t, w.Close())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	testutil.AssertEqual(t, len(lines), 2)

	var dup JSONPosition
	testutil.AssertNoError(t, json.Unmarshal([]byte(lines[1]), &dup))
	testutil.AssertTrue(t, dup.Duplicate, "duplicate flag")
	testutil.AssertEqual(t, len(dup.Moves), 0)
}

// TestJSONWriter_FlushEmpty verifies that an empty batch writes nothing
func TestJSONWriter_FlushEmpty(t *testing.T) {
	var buf bytes.Buffer
	testutil.AssertNoError(t, NewJSONWriter(&buf).Flush())
	testutil.AssertEqual(t, buf.String(), "")
}

func TestPositionToJSON_Capture(t *testing.T) {
	jp := PositionToJSON(analyse(t, "8/8/8/8/8/8/1r6/P7 w - - 0 1"))

	got := make(map[string]JSONMove)
	for _, m := range jp.Moves {
		got[m.UCI] = m
	}
	testutil.AssertEqual(t, got["a1b2"], JSONMove{SAN: "axb2", UCI: "a1b2", From: "a1", To: "b2", Piece: "pawn", Captured: "rook"})
	testutil.AssertEqual(t, got["a1a2"].Captured, "")
	testutil.AssertTrue(t, jp.InsufficientMaterial == false, "pawn and rook are sufficient")
	testutil.AssertTrue(t, jp.MaterialOdds, "no kings")
}
