package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree of the given depth. Depth 0
// counts the position itself.
func Perft(pos chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(&pos)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += Perft(m.Result.Position, depth-1)
	}
	return nodes
}

// Divide returns the perft count below each legal root move, keyed by the move in
// long algebraic form.
func Divide(pos chess.Position, depth int) map[string]uint64 {
	counts := make(map[string]uint64)
	if depth <= 0 {
		return counts
	}
	for _, m := range LegalMoves(&pos) {
		counts[m.String()] = Perft(m.Result.Position, depth-1)
	}
	return counts
}
