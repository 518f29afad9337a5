package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// CastlingRights records the four castling availabilities. The rules core carries
// them through unchanged; it does not generate castling moves.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// Any reports whether at least one right is still available.
func (c CastlingRights) Any() bool {
	return c.WhiteKingside || c.WhiteQueenside || c.BlackKingside || c.BlackQueenside
}

// Position is a complete board position. It is a plain value: assigning it copies
// the whole placement array, so a derived position never aliases its parent.
type Position struct {
	// Placement holds the piece on each square, indexed by Square.
	Placement [NumSquares]Piece

	// Who has the next move.
	ToMove Colour

	Castling CastlingRights

	// EnPassant is the en-passant target square, or NoSquare.
	EnPassant Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock int

	// The current move number, starting at 1.
	FullmoveNumber int
}

// NewPosition creates an empty board with White to move.
func NewPosition() Position {
	return Position{
		ToMove:         White,
		EnPassant:      NoSquare,
		FullmoveNumber: 1,
	}
}

// SetupInitialPosition places the standard starting position on p.
func (p *Position) SetupInitialPosition() {
	*p = NewPosition()

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f := File(0); f < BoardSize; f++ {
		p.Placement[SquareAt(f, 0)] = W(backRank[f])
		p.Placement[SquareAt(f, 1)] = W(Pawn)
		p.Placement[SquareAt(f, 6)] = B(Pawn)
		p.Placement[SquareAt(f, 7)] = B(backRank[f])
	}
	p.Castling = CastlingRights{true, true, true, true}
}

// Get returns the piece on sq.
func (p *Position) Get(sq Square) Piece {
	mustBeOnBoard(sq)
	return p.Placement[sq]
}

// Set places piece on sq.
func (p *Position) Set(sq Square, piece Piece) {
	mustBeOnBoard(sq)
	piece.MustBeValid()
	p.Placement[sq] = piece
}

// FindKing returns the square of the king of the given colour, or NoSquare if the
// board has none.
func (p *Position) FindKing(colour Colour) Square {
	king := MakePiece(colour, King)
	for sq := Square(0); sq < NumSquares; sq++ {
		if p.Placement[sq] == king {
			return sq
		}
	}
	return NoSquare
}

// Count returns how many copies of piece stand on the board.
func (p *Position) Count(piece Piece) int {
	n := 0
	for _, pc := range p.Placement {
		if pc == piece {
			n++
		}
	}
	return n
}

func mustBeOnBoard(sq Square) {
	if !sq.Valid() {
		panic(fmt.Errorf("square %d: %w", int8(sq), errors.ErrInvariant))
	}
}
