package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Move is a single move of one piece from one square to another.
type Move struct {
	// The piece being moved, with its colour.
	Piece chess.Piece

	From chess.Square
	To   chess.Square

	// The piece standing on To before the move (Empty if not a capture).
	Captured chess.Piece

	// Result is the position after the move. The legality filter attaches it;
	// the move owns it from then on.
	Result *Node
}

// IsCapture returns true if this move is a capture.
func (m Move) IsCapture() bool {
	return m.Captured != chess.Empty
}

// String returns the move in long algebraic form, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}
