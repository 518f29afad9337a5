// Package engine provides move generation, attack detection, legality filtering
// and terminal classification over chess.Position values.
package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// QuietFunc receives a target square that is empty. Returning false stops generation.
type QuietFunc func(to chess.Square) bool

// CaptureFunc receives a target square holding an enemy piece. Returning false
// stops generation: no further squares are produced for this or any later direction.
type CaptureFunc func(to chess.Square, captured chess.Piece) bool

// Generate produces every square the piece on from could move or capture to under
// movement geometry alone, ignoring king safety. If piece is not chess.Empty it
// overrides the board content at from, so callers can ask where a hypothetical
// piece would reach; the real occupant of from is then ignored.
// Either callback may be nil.
func Generate(pos *chess.Position, from chess.Square, piece chess.Piece, quiet QuietFunc, capture CaptureFunc) {
	occupant := pos.Get(from)
	if piece == chess.Empty {
		piece = occupant
		if piece == chess.Empty {
			return
		}
	}
	piece.MustBeValid()

	g := generator{pos: pos, colour: piece.Colour(), quiet: quiet, capture: capture}
	if piece.Kind() == chess.Pawn {
		g.pawn(from)
		return
	}
	g.piece(from, chess.MovementOf(piece))
}

type generator struct {
	pos     *chess.Position
	colour  chess.Colour
	quiet   QuietFunc
	capture CaptureFunc
}

func (g *generator) emitQuiet(to chess.Square) bool {
	if g.quiet == nil {
		return true
	}
	return g.quiet(to)
}

func (g *generator) emitCapture(to chess.Square, captured chess.Piece) bool {
	if g.capture == nil {
		return true
	}
	return g.capture(to, captured)
}

// piece walks each direction of a rook, knight, bishop, queen or king.
func (g *generator) piece(from chess.Square, m chess.Movement) {
	for _, dir := range m.Directions {
		f, r := from.File(), from.Rank()
		for {
			var off bool
			f, r, off = chess.Step(f, r, dir)
			if off {
				break
			}
			to := chess.SquareAt(f, r)
			target := g.pos.Placement[to]
			if target == chess.Empty {
				if !g.emitQuiet(to) {
					return
				}
			} else {
				if target.Colour() != g.colour && !g.emitCapture(to, target) {
					return
				}
				break // blocked
			}
			if !m.Slides {
				break
			}
		}
	}
}

// pawn handles the forward pushes and diagonal captures of a pawn.
func (g *generator) pawn(from chess.Square) {
	forward := chess.PawnForward(g.colour)

	if one, ok := chess.Next(from, forward); ok && g.pos.Placement[one] == chess.Empty {
		if !g.emitQuiet(one) {
			return
		}
		if from.Rank() == chess.PawnStartRank(g.colour) {
			if two, ok := chess.Next(one, forward); ok && g.pos.Placement[two] == chess.Empty {
				if !g.emitQuiet(two) {
					return
				}
			}
		}
	}

	for _, dir := range chess.PawnCaptures(g.colour) {
		to, ok := chess.Next(from, dir)
		if !ok {
			continue
		}
		target := g.pos.Placement[to]
		if target != chess.Empty && target.Colour() != g.colour {
			if !g.emitCapture(to, target) {
				return
			}
		}
	}
}

// PseudoLegalMoves returns every move of the side to move that obeys movement
// geometry, without checking whether it leaves the mover's king attacked.
func PseudoLegalMoves(pos *chess.Position) []Move {
	moves := make([]Move, 0, 64)
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := pos.Placement[sq]
		if !piece.Is(pos.ToMove) {
			continue
		}
		from := sq
		Generate(pos, from, piece,
			func(to chess.Square) bool {
				moves = append(moves, Move{Piece: piece, From: from, To: to, Captured: chess.Empty})
				return true
			},
			func(to chess.Square, captured chess.Piece) bool {
				moves = append(moves, Move{Piece: piece, From: from, To: to, Captured: captured})
				return true
			})
	}
	return moves
}

// Targets collects the quiet and capture targets of the piece on from (or the
// hypothetical piece, if not chess.Empty), in generation order.
func Targets(pos *chess.Position, from chess.Square, piece chess.Piece) (quiet, captures []chess.Square) {
	Generate(pos, from, piece,
		func(to chess.Square) bool {
			quiet = append(quiet, to)
			return true
		},
		func(to chess.Square, _ chess.Piece) bool {
			captures = append(captures, to)
			return true
		})
	return quiet, captures
}
