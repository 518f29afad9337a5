package notation

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// SAN returns the standard algebraic notation of a legal move m in pos, e.g.
// "Nbd7", "exd5" or "Qh4#".
func SAN(pos *chess.Position, m engine.Move) string {
	return san(pos, m, engine.LegalMoves(pos))
}

// SANList returns the SAN of each move of legal, which must be the legal move
// list of pos. The list is only generated once for all moves.
func SANList(pos *chess.Position, legal []engine.Move) []string {
	out := make([]string, len(legal))
	for i, m := range legal {
		out[i] = san(pos, m, legal)
	}
	return out
}

func san(pos *chess.Position, m engine.Move, legal []engine.Move) string {
	var sb strings.Builder

	if m.Piece.Kind() == chess.Pawn {
		if m.IsCapture() {
			sb.WriteByte(FileLetter(m.From.File()))
		}
	} else {
		sb.WriteByte(m.Piece.Letter())
		sb.WriteString(disambiguation(m, legal))
	}
	if m.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(SquareName(m.To))
	sb.WriteString(checkSuffix(pos, m))

	return sb.String()
}

// disambiguation returns the origin file, rank or square needed to tell m apart
// from other legal moves of the same piece to the same square.
func disambiguation(m engine.Move, legal []engine.Move) string {
	ambiguous, sameFile, sameRank := false, false, false
	for _, other := range legal {
		if other.Piece != m.Piece || other.To != m.To || other.From == m.From {
			continue
		}
		ambiguous = true
		if other.From.File() == m.From.File() {
			sameFile = true
		}
		if other.From.Rank() == m.From.Rank() {
			sameRank = true
		}
	}

	switch {
	case !ambiguous:
		return ""
	case !sameFile:
		return string(FileLetter(m.From.File()))
	case !sameRank:
		return string(RankDigit(m.From.Rank()))
	}
	return SquareName(m.From)
}

// checkSuffix returns "#" if m mates, "+" if it checks and "" otherwise. The
// move's successor node is expanded if nobody has done so yet.
func checkSuffix(pos *chess.Position, m engine.Move) string {
	node := m.Result
	if node == nil {
		node = engine.NewNode(engine.Apply(*pos, m))
	}
	if !node.IsExpanded() {
		node.Expand()
	}

	switch {
	case node.IsCheckmate():
		return "#"
	case node.InCheck():
		return "+"
	}
	return ""
}

// UCI returns the move in long algebraic form, e.g. "e2e4".
func UCI(m engine.Move) string {
	return SquareName(m.From) + SquareName(m.To)
}

// ParseUCI resolves a long algebraic move against the legal moves of pos.
// Promotion suffixes are rejected because promotion is not generated.
func ParseUCI(pos *chess.Position, text string) (engine.Move, error) {
	if len(text) != 4 {
		return engine.Move{}, fmt.Errorf("%q: %w", text, errors.ErrIllegalMove)
	}
	from, err := ParseSquare(text[:2])
	if err != nil {
		return engine.Move{}, err
	}
	to, err := ParseSquare(text[2:])
	if err != nil {
		return engine.Move{}, err
	}

	for _, m := range engine.LegalMoves(pos) {
		if m.From == from && m.To == to {
			return m, nil
		}
	}
	return engine.Move{}, fmt.Errorf("%s is not legal for %s: %w", text, pos.ToMove, errors.ErrIllegalMove)
}
