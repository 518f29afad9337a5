package matching

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// FENPattern represents a FEN placement pattern to match.
// Supports wildcards:
//   - ? matches any square (empty or occupied)
//   - ! matches any non-empty square
//   - * matches zero or more of anything
//   - A matches any white piece
//   - a matches any black piece
//   - _ matches empty square
type FENPattern struct {
	Pattern string
	Label   string // optional label for matched position
	Hash    uint64 // position hash for exact FEN matches
	IsExact bool   // true if this is an exact FEN (no wildcards)
	ranks   []string
}

// PositionMatcher matches positions against exact FENs and placement patterns.
type PositionMatcher struct {
	patterns    []*FENPattern
	exactHashes map[uint64]*FENPattern
}

// NewPositionMatcher creates a new position matcher.
func NewPositionMatcher() *PositionMatcher {
	return &PositionMatcher{
		exactHashes: make(map[uint64]*FENPattern),
	}
}

// AddFEN adds an exact FEN position to match. Placement, side to move, castling
// rights and en-passant file must all agree; the move counters are ignored.
func (pm *PositionMatcher) AddFEN(fen string, label string) error {
	pos, err := notation.ParseFEN(fen)
	if err != nil {
		return err
	}

	hash := hashing.GenerateZobristHash(&pos)
	pattern := &FENPattern{
		Pattern: fen,
		Label:   label,
		Hash:    hash,
		IsExact: true,
	}

	pm.patterns = append(pm.patterns, pattern)
	pm.exactHashes[hash] = pattern

	return nil
}

// AddPattern adds a placement pattern with wildcards. With includeInvert the
// colour-inverted pattern (ranks mirrored, cases swapped) is added too.
func (pm *PositionMatcher) AddPattern(pattern string, label string, includeInvert bool) error {
	ranks := strings.Split(pattern, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("pattern %q has %d ranks, want 8: %w", pattern, len(ranks), errors.ErrInvalidConfig)
	}
	pm.patterns = append(pm.patterns, &FENPattern{Pattern: pattern, Label: label, ranks: ranks})

	if includeInvert {
		inverted := invertPattern(pattern)
		pm.patterns = append(pm.patterns, &FENPattern{
			Pattern: inverted,
			Label:   label,
			ranks:   strings.Split(inverted, "/"),
		})
	}
	return nil
}

// Match implements Matcher.
func (pm *PositionMatcher) Match(pos *chess.Position) bool {
	return pm.MatchPosition(pos) != nil
}

// Name implements Matcher.
func (pm *PositionMatcher) Name() string {
	return fmt.Sprintf("PositionMatcher(%d patterns)", len(pm.patterns))
}

// MatchPosition returns the first pattern the position matches, or nil.
func (pm *PositionMatcher) MatchPosition(pos *chess.Position) *FENPattern {
	// First check exact hash matches (fast)
	if len(pm.exactHashes) > 0 {
		if pattern, ok := pm.exactHashes[hashing.GenerateZobristHash(pos)]; ok {
			return pattern
		}
	}

	var boardRanks [chess.BoardSize]string
	converted := false
	for _, pattern := range pm.patterns {
		if pattern.IsExact {
			continue
		}
		if !converted {
			boardRanks = positionToRanks(pos)
			converted = true
		}
		if matchRanks(boardRanks, pattern.ranks) {
			return pattern
		}
	}

	return nil
}

// matchRanks matches rank strings (rank 1 first) against pattern ranks (rank 8
// first).
func matchRanks(boardRanks [chess.BoardSize]string, patternRanks []string) bool {
	for i, patternRank := range patternRanks {
		if !matchRank(boardRanks[chess.BoardSize-1-i], patternRank) {
			return false
		}
	}
	return true
}

// positionToRanks converts a position to rank strings (rank 1 first), using FEN
// letters and '_' for empty squares.
func positionToRanks(pos *chess.Position) [chess.BoardSize]string {
	var ranks [chess.BoardSize]string

	for r := chess.Rank(0); r < chess.BoardSize; r++ {
		var sb strings.Builder
		for f := chess.File(0); f < chess.BoardSize; f++ {
			piece := pos.Get(chess.SquareAt(f, r))
			if piece.IsEmpty() {
				sb.WriteByte('_')
				continue
			}
			sb.WriteByte(notation.PieceLetter(piece))
		}
		ranks[r] = sb.String()
	}

	return ranks
}

// matchRank matches a board rank string against a pattern rank.
func matchRank(boardRank, patternRank string) bool {
	bi := 0 // board index
	pi := 0 // pattern index

	for pi < len(patternRank) {
		if bi >= len(boardRank) && patternRank[pi] != '*' {
			return false
		}

		c := patternRank[pi]

		switch c {
		case '*':
			pi++
			if pi >= len(patternRank) {
				return true // * at end matches rest
			}
			// Try matching rest of pattern at each position
			for bi <= len(boardRank) {
				if matchRank(boardRank[bi:], patternRank[pi:]) {
					return true
				}
				bi++
			}
			return false

		case '?':
			bi++
			pi++

		case '!':
			if boardRank[bi] == '_' {
				return false
			}
			bi++
			pi++

		case 'A':
			if boardRank[bi] < 'A' || boardRank[bi] > 'Z' {
				return false
			}
			bi++
			pi++

		case 'a':
			if boardRank[bi] < 'a' || boardRank[bi] > 'z' {
				return false
			}
			bi++
			pi++

		case '1', '2', '3', '4', '5', '6', '7', '8':
			// Number means N empty squares
			count := int(c - '0')
			for i := 0; i < count; i++ {
				if bi >= len(boardRank) || boardRank[bi] != '_' {
					return false
				}
				bi++
			}
			pi++

		default:
			// '_' or an exact piece letter
			if boardRank[bi] != c {
				return false
			}
			bi++
			pi++
		}
	}

	return bi == len(boardRank)
}

// invertPattern inverts colours in a FEN pattern.
func invertPattern(pattern string) string {
	var result strings.Builder

	for _, c := range pattern {
		switch {
		case c >= 'A' && c <= 'Z':
			result.WriteRune(c + 32) // to lowercase
		case c >= 'a' && c <= 'z':
			result.WriteRune(c - 32) // to uppercase
		default:
			result.WriteRune(c)
		}
	}

	// Also reverse rank order
	ranks := strings.Split(result.String(), "/")
	for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}

	return strings.Join(ranks, "/")
}

// PatternCount returns the number of patterns.
func (pm *PositionMatcher) PatternCount() int {
	return len(pm.patterns)
}
