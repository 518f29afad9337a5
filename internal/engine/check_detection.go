package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// attackerKinds are probed from the defended square. A pawn is probed like any
// other piece: a defending-colour pawn captures toward exactly the squares from
// which an enemy pawn would capture back.
var attackerKinds = []chess.Piece{chess.Rook, chess.Knight, chess.Bishop, chess.Queen, chess.Pawn, chess.King}

// IsAttacked returns true if sq is attacked by the opponent of colour.
//
// Attack relations are reversible under the movement rules: an enemy piece on A
// attacks B exactly when the same kind of piece, of colour's side, placed on B
// could capture on A. So for each kind the generator is run from sq with a
// hypothetical piece of that kind, and the first capture target that really holds
// an enemy piece of the same kind ends the search.
func IsAttacked(pos *chess.Position, sq chess.Square, colour chess.Colour) bool {
	for _, kind := range attackerKinds {
		probe := chess.MakePiece(colour, kind)
		attacker := chess.MakePiece(colour.Opposite(), kind)
		found := false
		Generate(pos, sq, probe, nil, func(_ chess.Square, captured chess.Piece) bool {
			found = captured == attacker
			return !found
		})
		if found {
			return true
		}
	}
	return false
}

// IsInCheck returns true if the given colour's king is attacked. A board without
// that king is never in check.
func IsInCheck(pos *chess.Position, colour chess.Colour) bool {
	king := pos.FindKing(colour)
	if king == chess.NoSquare {
		return false
	}
	return IsAttacked(pos, king, colour)
}

// IsKingAttacked reports whether a king is attacked: the king of the side to move
// when forActiveColour is true, otherwise the king of the side that just moved,
// which is what the legality filter asks of a successor position.
func IsKingAttacked(pos *chess.Position, forActiveColour bool) bool {
	colour := pos.ToMove
	if !forActiveColour {
		colour = colour.Opposite()
	}
	return IsInCheck(pos, colour)
}
