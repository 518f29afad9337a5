package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	ierrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestAssertions_Success(t *testing.T) {
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, "e4", "e4", "square %d", 28)
	AssertNoError(t, nil)
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", ierrors.ErrInvalidFEN), ierrors.ErrInvalidFEN)
	AssertTrue(t, true)
	AssertFalse(t, false)
	AssertPanicsWith(t, ierrors.ErrInvariant, func() {
		panic(fmt.Errorf("bad piece: %w", ierrors.ErrInvariant))
	})
}

func TestCapturePanic(t *testing.T) {
	tests := []struct {
		name    string
		fn      func()
		wantErr string
	}{
		{"no panic", func() {}, ""},
		{"error value", func() { panic(errors.New("boom")) }, "boom"},
		{"string value", func() { panic("boom") }, "panic: boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CapturePanic(tt.fn)
			got := ""
			if err != nil {
				got = err.Error()
			}
			if got != tt.wantErr {
				t.Errorf("CapturePanic() = %q; want %q", got, tt.wantErr)
			}
		})
	}
}

func TestPrefix(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"plain string", []interface{}{"context"}, "context: "},
		{"format", []interface{}{"depth %d", 3}, "depth 3: "},
		{"non-string", []interface{}{42}, "42: "},
		{"empty string", []interface{}{""}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := prefix(tt.args...); got != tt.want {
				t.Errorf("prefix() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestPositionHelpers(t *testing.T) {
	pos := Board(map[string]chess.Piece{
		"a1": chess.W(chess.Pawn),
		"b2": chess.B(chess.Rook),
	})
	AssertEqual(t, pos.Get(0), chess.W(chess.Pawn))
	AssertEqual(t, pos.Get(9), chess.B(chess.Rook))

	AssertEqual(t, Squares("b2", "a2"), []chess.Square{8, 9})
	AssertEqual(t, SortSquares(nil), []chess.Square{})

	quiet, captures := MoveTargets(&pos, 0, chess.Empty)
	AssertEqual(t, quiet, Squares("a2"))
	AssertEqual(t, captures, Squares("b2"))

	parsed := MustParseFEN(t, "8/8/8/8/8/8/1r6/P7 w - - 0 1")
	AssertEqual(t, parsed, pos)
}
