package engine_test

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want int
	}{
		{"start position is balanced", startFEN, 0},
		{"empty board", "8/8/8/8/8/8/8/8 w - - 0 1", 0},
		{"pawn against rook", "8/8/8/8/8/8/1r6/P7 w - - 0 1", 1 - 5},
		{"white up a queen", "4k3/8/8/8/8/8/8/3QK3 w - - 0 1", 9},
		{"black minor pieces", "2b1k1n1/8/8/8/8/8/8/4K3 w - - 0 1", -6},
		{"lone white king", "8/8/8/8/8/8/8/4K3 w - - 0 1", 9999},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.MustParseFEN(t, tt.fen)
			testutil.AssertEqual(t, engine.Material(&pos), tt.want)
		})
	}
}

func TestPieceValue(t *testing.T) {
	testutil.AssertEqual(t, engine.PieceValue(chess.Empty), 0)
	testutil.AssertEqual(t, engine.PieceValue(wn), 3)
	testutil.AssertEqual(t, engine.PieceValue(bb), -3)
	testutil.AssertEqual(t, engine.PieceValue(bk), -9999)
	testutil.AssertPanicsWith(t, errors.ErrInvariant, func() { engine.PieceValue(chess.Piece(-7)) })
}
