package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Apply returns the position after m is played on pos. The origin square is
// cleared, the moving piece is written to the destination and the side to move
// flips. Castling rights, the en-passant target and both move counters are carried
// over unchanged: castling, en passant and promotion are not part of this rules core.
//
// pos is received by value, so the result never shares its placement with the parent.
func Apply(pos chess.Position, m Move) chess.Position {
	next := pos
	next.Set(m.From, chess.Empty)
	next.Set(m.To, m.Piece)
	next.ToMove = pos.ToMove.Opposite()
	return next
}
