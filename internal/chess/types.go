// Package chess provides core chess types and operations.
package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int8

const (
	Black Colour = -1
	White Colour = 1
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	return -c
}

// Sign returns +1 for White and -1 for Black.
func (c Colour) Sign() int {
	return int(c)
}

// Piece is a signed piece code: the magnitude is the kind, the sign is the colour
// (positive for White, negative for Black) and zero is an empty square.
type Piece int8

// Piece kinds. A white piece has the same value as its kind.
const (
	Empty Piece = iota
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
	NumPieceKinds = King
)

var pieceNames = [...]string{"Empty", "Pawn", "Rook", "Knight", "Bishop", "Queen", "King"}

// MakePiece creates a coloured piece value from a kind.
func MakePiece(colour Colour, kind Piece) Piece {
	return Piece(int8(colour)) * kind.Kind()
}

// W creates a white piece.
func W(kind Piece) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind Piece) Piece {
	return MakePiece(Black, kind)
}

// Kind strips the colour from a piece.
func (p Piece) Kind() Piece {
	if p < 0 {
		return -p
	}
	return p
}

// Colour returns the colour of a piece. Callers must not ask an empty square for its colour.
func (p Piece) Colour() Colour {
	if p < 0 {
		return Black
	}
	return White
}

// IsEmpty reports whether p is the empty square.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// Is reports whether p is a piece of the given colour.
func (p Piece) Is(colour Colour) bool {
	return p != Empty && p.Colour() == colour
}

// Valid reports whether p is empty or has a magnitude in Pawn..King.
func (p Piece) Valid() bool {
	return p.Kind() <= King && p >= -King
}

// String returns the string representation of a piece.
func (p Piece) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Piece(%d)", int8(p))
	}
	if p == Empty {
		return pieceNames[0]
	}
	return p.Colour().String() + " " + pieceNames[p.Kind()]
}

// Letter returns the single upper-case letter for a piece kind (' ' for empty).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'R', 'N', 'B', 'Q', 'K'}
	if !p.Valid() {
		return '?'
	}
	return letters[p.Kind()]
}

// MustBeValid panics with an error wrapping errors.ErrInvariant for an
// out-of-range piece code.
func (p Piece) MustBeValid() {
	if !p.Valid() {
		panic(fmt.Errorf("piece code %d: %w", int8(p), errors.ErrInvariant))
	}
}

// Board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize
)

// File is a board column, 0 ('a') to 7 ('h').
type File int8

// Rank is a board row, 0 ('1') to 7 ('8').
type Rank int8

// Square is a board index 0..63 with a1 = 0, h1 = 7 and h8 = 63.
type Square int8

// NoSquare marks an absent square, e.g. no en-passant target.
const NoSquare Square = -1

// SquareAt builds the square for a file and rank.
func SquareAt(f File, r Rank) Square {
	return Square(int8(r)*BoardSize + int8(f))
}

// File returns the column of the square.
func (sq Square) File() File {
	return File(sq % BoardSize)
}

// Rank returns the row of the square.
func (sq Square) Rank() Rank {
	return Rank(sq / BoardSize)
}

// Valid reports whether the square lies on the board.
func (sq Square) Valid() bool {
	return sq >= 0 && sq < NumSquares
}

// String returns the algebraic name of the square, e.g. "e4".
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + sq.File()), byte('1' + sq.Rank())})
}

// onBoard reports whether a file/rank pair lies inside the 8x8 board.
func onBoard(f File, r Rank) bool {
	return f >= 0 && f < BoardSize && r >= 0 && r < BoardSize
}

// PawnStartRank returns the rank from which pawns of the colour may advance two squares.
func PawnStartRank(colour Colour) Rank {
	if colour == White {
		return 1
	}
	return 6
}
