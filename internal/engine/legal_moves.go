package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// LegalMoves returns the moves of the side to move that do not leave its own king
// attacked. Each candidate is played on a copy of the position and the mover's
// king is probed there; surviving moves keep that successor as their Result.
func LegalMoves(pos *chess.Position) []Move {
	candidates := PseudoLegalMoves(pos)
	legal := make([]Move, 0, len(candidates))
	for _, m := range candidates {
		next, ok := tryMove(pos, m)
		if !ok {
			continue
		}
		m.Result = NewNode(next)
		legal = append(legal, m)
	}
	return legal
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(pos *chess.Position) bool {
	for _, m := range PseudoLegalMoves(pos) {
		if _, ok := tryMove(pos, m); ok {
			return true
		}
	}
	return false
}

// tryMove makes a move on a copied position and checks that it does not leave the
// mover's king attacked.
func tryMove(pos *chess.Position, m Move) (chess.Position, bool) {
	next := Apply(*pos, m)
	return next, !IsKingAttacked(&next, false)
}
