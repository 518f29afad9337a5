package matching

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

var allKinds = []chess.Piece{chess.King, chess.Queen, chess.Rook, chess.Bishop, chess.Knight, chess.Pawn}

// MaterialMatcher matches positions by the pieces on the board.
type MaterialMatcher struct {
	// Pattern like "QR:qrr" means white has Q+R, black has Q+2R
	pattern     string
	exactMatch  bool
	whitePieces map[chess.Piece]int
	blackPieces map[chess.Piece]int
}

// NewMaterialMatcher creates a new material matcher.
// Pattern format: "QRN:qrn" (white pieces : black pieces)
// Use uppercase for white, lowercase for black
// K=King, Q=Queen, R=Rook, B=Bishop, N=Knight, P=Pawn
//
// With exact set the position must hold exactly the listed pieces; otherwise it
// must hold at least them. Unknown letters wrap errors.ErrInvalidConfig.
func NewMaterialMatcher(pattern string, exact bool) (*MaterialMatcher, error) {
	mm := &MaterialMatcher{
		pattern:     pattern,
		exactMatch:  exact,
		whitePieces: make(map[chess.Piece]int),
		blackPieces: make(map[chess.Piece]int),
	}
	if err := mm.parsePattern(pattern); err != nil {
		return nil, err
	}
	return mm, nil
}

// parsePattern parses a material pattern like "QR:qrr"
func (mm *MaterialMatcher) parsePattern(pattern string) error {
	parts := strings.Split(pattern, ":")
	if len(parts) > 2 {
		return fmt.Errorf("material pattern %q has more than one ':': %w", pattern, errors.ErrInvalidConfig)
	}
	if err := parsePieces(parts[0], chess.White, mm.whitePieces); err != nil {
		return fmt.Errorf("material pattern %q: %w", pattern, err)
	}
	if len(parts) == 2 {
		if err := parsePieces(parts[1], chess.Black, mm.blackPieces); err != nil {
			return fmt.Errorf("material pattern %q: %w", pattern, err)
		}
	}
	return nil
}

// parsePieces counts piece letters of one side: upper case for White, lower case
// for Black.
func parsePieces(s string, colour chess.Colour, counts map[chess.Piece]int) error {
	for i := 0; i < len(s); i++ {
		kind := kindOfLetter(s[i], colour)
		if kind == chess.Empty {
			return fmt.Errorf("unexpected %q for %s: %w", s[i], colour, errors.ErrInvalidConfig)
		}
		counts[kind]++
	}
	return nil
}

func kindOfLetter(c byte, colour chess.Colour) chess.Piece {
	if colour == chess.Black {
		if c < 'a' || c > 'z' {
			return chess.Empty
		}
		c -= 'a' - 'A'
	}
	for _, kind := range allKinds {
		if kind.Letter() == c {
			return kind
		}
	}
	return chess.Empty
}

// Match checks if a position matches the material pattern.
func (mm *MaterialMatcher) Match(pos *chess.Position) bool {
	whiteCounts := make(map[chess.Piece]int, len(allKinds))
	blackCounts := make(map[chess.Piece]int, len(allKinds))
	for _, kind := range allKinds {
		whiteCounts[kind] = pos.Count(chess.W(kind))
		blackCounts[kind] = pos.Count(chess.B(kind))
	}

	if mm.exactMatch {
		return mm.exactMaterialMatch(whiteCounts, blackCounts)
	}
	return mm.minimalMaterialMatch(whiteCounts, blackCounts)
}

// Name implements Matcher.
func (mm *MaterialMatcher) Name() string {
	if mm.exactMatch {
		return "MaterialMatcher(exact " + mm.pattern + ")"
	}
	return "MaterialMatcher(" + mm.pattern + ")"
}

// exactMaterialMatch checks for exact material match.
func (mm *MaterialMatcher) exactMaterialMatch(whiteCounts, blackCounts map[chess.Piece]int) bool {
	for _, kind := range allKinds {
		if whiteCounts[kind] != mm.whitePieces[kind] || blackCounts[kind] != mm.blackPieces[kind] {
			return false
		}
	}
	return true
}

// minimalMaterialMatch checks that at least the specified pieces exist.
func (mm *MaterialMatcher) minimalMaterialMatch(whiteCounts, blackCounts map[chess.Piece]int) bool {
	// White must have at least the specified pieces
	for piece, count := range mm.whitePieces {
		if whiteCounts[piece] < count {
			return false
		}
	}

	// Black must have at least the specified pieces
	for piece, count := range mm.blackPieces {
		if blackCounts[piece] < count {
			return false
		}
	}

	return true
}
