package notation

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ParseSquare converts an algebraic square name such as "e4" to a square.
func ParseSquare(name string) (chess.Square, error) {
	if len(name) != 2 {
		return chess.NoSquare, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	file, rank := name[0], name[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return chess.NoSquare, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	return chess.SquareAt(chess.File(file-'a'), chess.Rank(rank-'1')), nil
}

// SquareName returns the algebraic name of sq, or "-" for chess.NoSquare.
func SquareName(sq chess.Square) string {
	return sq.String()
}

// FileLetter returns the letter of a file, 'a' to 'h'.
func FileLetter(f chess.File) byte {
	return byte('a' + f)
}

// RankDigit returns the digit of a rank, '1' to '8'.
func RankDigit(r chess.Rank) byte {
	return byte('1' + r)
}
