package testutil

import (
	"sort"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// MustParseFEN parses a FEN string and stops the test if it is invalid.
func MustParseFEN(t testing.TB, fen string) chess.Position {
	t.Helper()
	pos, err := notation.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return pos
}

// Board builds a position from square names and pieces, with White to move.
func Board(pieces map[string]chess.Piece) chess.Position {
	pos := chess.NewPosition()
	for name, piece := range pieces {
		sq, err := notation.ParseSquare(name)
		if err != nil {
			panic(err)
		}
		pos.Set(sq, piece)
	}
	return pos
}

// Squares converts square names to sorted square values.
func Squares(names ...string) []chess.Square {
	out := make([]chess.Square, 0, len(names))
	for _, name := range names {
		sq, err := notation.ParseSquare(name)
		if err != nil {
			panic(err)
		}
		out = append(out, sq)
	}
	return SortSquares(out)
}

// SortSquares sorts squares in place and returns them. A nil input yields an
// empty, non-nil slice so results compare equal under cmp.
func SortSquares(squares []chess.Square) []chess.Square {
	if squares == nil {
		return []chess.Square{}
	}
	sort.Slice(squares, func(i, j int) bool { return squares[i] < squares[j] })
	return squares
}

// MoveTargets returns the sorted quiet and capture targets of the piece on from,
// or of the hypothetical piece if it is not chess.Empty.
func MoveTargets(pos *chess.Position, from chess.Square, piece chess.Piece) (quiet, captures []chess.Square) {
	quiet, captures = engine.Targets(pos, from, piece)
	return SortSquares(quiet), SortSquares(captures)
}

// UCIMoves returns the sorted long algebraic text of the moves.
func UCIMoves(moves []engine.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, notation.UCI(m))
	}
	sort.Strings(out)
	return out
}
