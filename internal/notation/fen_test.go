package notation

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	ierrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestParseFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(chess.Position) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(p chess.Position) bool {
				return p.Get(4) == chess.W(chess.King) &&
					p.Get(60) == chess.B(chess.King) &&
					p.Get(12) == chess.W(chess.Pawn) &&
					p.Get(52) == chess.B(chess.Pawn) &&
					p.ToMove == chess.White &&
					p.Castling == chess.CastlingRights{WhiteKingside: true, WhiteQueenside: true, BlackKingside: true, BlackQueenside: true} &&
					p.EnPassant == chess.NoSquare
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(p chess.Position) bool {
				return p.Get(28) == chess.W(chess.Pawn) &&
					p.Get(12) == chess.Empty &&
					p.ToMove == chess.Black &&
					p.EnPassant == 20
			},
		},
		{
			name: "partial castling and clocks",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w Kq - 13 42",
			checkFn: func(p chess.Position) bool {
				return p.Castling == chess.CastlingRights{WhiteKingside: true, BlackQueenside: true} &&
					p.HalfmoveClock == 13 &&
					p.FullmoveNumber == 42
			},
		},
		{
			name: "placement only",
			fen:  "8/8/8/8/8/8/1r6/P7",
			checkFn: func(p chess.Position) bool {
				return p.Get(0) == chess.W(chess.Pawn) &&
					p.Get(9) == chess.B(chess.Rook) &&
					p.ToMove == chess.White &&
					!p.Castling.Any() &&
					p.HalfmoveClock == 0 &&
					p.FullmoveNumber == 1
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := ParseFEN(tt.fen)
			if err != nil {
				t.Fatalf("ParseFEN(%q) error: %v", tt.fen, err)
			}
			if !tt.checkFn(pos) {
				t.Errorf("ParseFEN(%q) position check failed", tt.fen)
			}
		})
	}
}

func TestParseFEN_Errors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty string", ""},
		{"blank string", "   "},
		{"too few ranks", "8/8/8/8/8/8/8 w - - 0 1"},
		{"too many ranks", "8/8/8/8/8/8/8/8/8 w - - 0 1"},
		{"rank overflows with digits", "9/8/8/8/8/8/8/8 w - - 0 1"},
		{"rank overflows with pieces", "ppppppppp/8/8/8/8/8/8/8 w - - 0 1"},
		{"rank overflows after digit", "7pp/8/8/8/8/8/8/8 w - - 0 1"},
		{"short rank", "7/8/8/8/8/8/8/8 w - - 0 1"},
		{"invalid piece", "8/8/8/8/8/8/8/7X w - - 0 1"},
		{"invalid side to move", "8/8/8/8/8/8/8/8 x - - 0 1"},
		{"invalid castling", "8/8/8/8/8/8/8/8 w KX - 0 1"},
		{"chess960 castling", "8/8/8/8/8/8/8/8 w HAha - 0 1"},
		{"invalid en passant square", "8/8/8/8/8/8/8/8 w - z9 0 1"},
		{"en passant on wrong rank", "8/8/8/8/8/8/8/8 w - e4 0 1"},
		{"non-numeric halfmove clock", "8/8/8/8/8/8/8/8 w - - x 1"},
		{"negative halfmove clock", "8/8/8/8/8/8/8/8 w - - -1 1"},
		{"zero fullmove number", "8/8/8/8/8/8/8/8 w - - 0 0"},
		{"extra field", "8/8/8/8/8/8/8/8 w - - 0 1 extra"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFEN(tt.fen)
			if !errors.Is(err, ierrors.ErrInvalidFEN) {
				t.Errorf("ParseFEN(%q) error = %v; want ErrInvalidFEN", tt.fen, err)
			}
		})
	}
}

func TestFEN_RoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
		"8/8/8/8/8/8/1r6/P7 w - - 0 1",
		"8/8/8/8/8/8/8/8 b - - 99 120",
		"r3k2r/8/8/8/8/8/8/R3K2R w Kq - 13 42",
	}
	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q) error: %v", fen, err)
		}
		if diff := cmp.Diff(fen, FEN(pos)); diff != "" {
			t.Errorf("FEN round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestStartPosition(t *testing.T) {
	if diff := cmp.Diff(MustParseFEN(InitialFEN), StartPosition()); diff != "" {
		t.Errorf("StartPosition() mismatch (-want +got):\n%s", diff)
	}
	if got := FEN(StartPosition()); got != InitialFEN {
		t.Errorf("FEN(StartPosition()) = %q; want %q", got, InitialFEN)
	}
}

func TestMustParseFEN_Panics(t *testing.T) {
	defer func() {
		err, _ := recover().(error)
		if !errors.Is(err, ierrors.ErrInvalidFEN) {
			t.Errorf("MustParseFEN panic = %v; want ErrInvalidFEN", err)
		}
	}()
	MustParseFEN("not a fen")
}

func TestPieceLetter(t *testing.T) {
	tests := []struct {
		piece chess.Piece
		want  byte
	}{
		{chess.W(chess.King), 'K'},
		{chess.B(chess.King), 'k'},
		{chess.W(chess.Knight), 'N'},
		{chess.B(chess.Pawn), 'p'},
	}
	for _, tt := range tests {
		if got := PieceLetter(tt.piece); got != tt.want {
			t.Errorf("PieceLetter(%v) = %c; want %c", tt.piece, got, tt.want)
		}
	}
}
