package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// HasInsufficientMaterial returns true if neither side has enough material to
// mate. Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (bishops on the same square colour)
func HasInsufficientMaterial(pos *chess.Position) bool {
	var whiteMinors, blackMinors []chess.Piece
	var whiteBishopOnLight, blackBishopOnLight bool

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := pos.Placement[sq]
		if piece.IsEmpty() {
			continue
		}

		switch piece.Kind() {
		case chess.King:
			continue
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		}

		if piece.Colour() == chess.White {
			whiteMinors = append(whiteMinors, piece.Kind())
			if piece.Kind() == chess.Bishop {
				whiteBishopOnLight = isLightSquare(sq)
			}
		} else {
			blackMinors = append(blackMinors, piece.Kind())
			if piece.Kind() == chess.Bishop {
				blackBishopOnLight = isLightSquare(sq)
			}
		}
	}

	switch {
	case len(whiteMinors) == 0 && len(blackMinors) == 0:
		return true
	case len(whiteMinors) == 0 && len(blackMinors) == 1:
		return true
	case len(blackMinors) == 0 && len(whiteMinors) == 1:
		return true
	case len(whiteMinors) == 1 && len(blackMinors) == 1:
		return whiteMinors[0] == chess.Bishop && blackMinors[0] == chess.Bishop &&
			whiteBishopOnLight == blackBishopOnLight
	}
	return false
}

// isLightSquare returns true if sq is a light square (a1 is dark).
func isLightSquare(sq chess.Square) bool {
	return (int(sq.File())+int(sq.Rank()))%2 == 1
}

// standardMaterial is the piece count of each side in the starting position.
var standardMaterial = map[chess.Piece]int{
	chess.Pawn:   8,
	chess.Rook:   2,
	chess.Knight: 2,
	chess.Bishop: 2,
	chess.Queen:  1,
	chess.King:   1,
}

// HasStandardMaterial reports whether both sides have exactly the material of the
// starting position.
func HasStandardMaterial(pos *chess.Position) bool {
	for kind, want := range standardMaterial {
		if pos.Count(chess.W(kind)) != want || pos.Count(chess.B(kind)) != want {
			return false
		}
	}
	return true
}
