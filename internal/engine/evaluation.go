package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pieceValues holds the material value of each piece kind, indexed by kind.
var pieceValues = [chess.NumPieceKinds + 1]int{
	chess.Empty:  0,
	chess.Pawn:   1,
	chess.Rook:   5,
	chess.Knight: 3,
	chess.Bishop: 3,
	chess.Queen:  9,
	chess.King:   9999,
}

// PieceValue returns the material value of a piece: positive for White, negative
// for Black, zero for an empty square.
func PieceValue(p chess.Piece) int {
	p.MustBeValid()
	if p.IsEmpty() {
		return 0
	}
	return p.Colour().Sign() * pieceValues[p.Kind()]
}

// Material returns the static material balance of the position. Positive favours
// White.
func Material(pos *chess.Position) int {
	total := 0
	for _, p := range pos.Placement {
		total += PieceValue(p)
	}
	return total
}
