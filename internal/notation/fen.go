// Package notation converts between positions and moves and their text forms:
// FEN, algebraic square names, SAN and UCI long algebraic notation.
package notation

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenPieceKinds maps upper-case FEN letters to piece kinds.
var fenPieceKinds = map[byte]chess.Piece{
	'P': chess.Pawn,
	'R': chess.Rook,
	'N': chess.Knight,
	'B': chess.Bishop,
	'Q': chess.Queen,
	'K': chess.King,
}

// StartPosition returns the standard starting position.
func StartPosition() chess.Position {
	var pos chess.Position
	pos.SetupInitialPosition()
	return pos
}

// PieceLetter returns the FEN letter for a coloured piece: upper case for White,
// lower case for Black.
func PieceLetter(p chess.Piece) byte {
	letter := p.Letter()
	if p.Is(chess.Black) {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// ParseFEN decodes a FEN string. Only the placement field is mandatory; missing
// trailing fields default to "w - - 0 1".
func ParseFEN(fen string) (chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return chess.Position{}, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}
	if len(parts) > 6 {
		return chess.Position{}, fmt.Errorf("%d fields, at most 6 allowed: %w", len(parts), errors.ErrInvalidFEN)
	}

	pos := chess.NewPosition()
	if err := parsePlacement(&pos, parts[0]); err != nil {
		return chess.Position{}, err
	}
	if err := parseSideToMove(&pos, parts); err != nil {
		return chess.Position{}, err
	}
	if err := parseCastlingRights(&pos, parts); err != nil {
		return chess.Position{}, err
	}
	if err := parseEnPassant(&pos, parts); err != nil {
		return chess.Position{}, err
	}
	if err := parseClocks(&pos, parts); err != nil {
		return chess.Position{}, err
	}
	return pos, nil
}

// MustParseFEN is like ParseFEN but panics on error. It is meant for constant
// positions known to be valid.
func MustParseFEN(fen string) chess.Position {
	pos, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}

// parsePlacement parses the piece placement field, rank 8 first.
func parsePlacement(pos *chess.Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("placement has %d ranks: %w", len(ranks), errors.ErrInvalidFEN)
	}

	for i, row := range ranks {
		rank := chess.Rank(chess.BoardSize - 1 - i)
		file := chess.File(0)
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += chess.File(c - '0')
				if file > chess.BoardSize {
					return fmt.Errorf("rank %d overflows: %w", rank+1, errors.ErrInvalidFEN)
				}
				continue
			}

			kind, ok := fenPieceKinds[byte(unicode.ToUpper(rune(c)))]
			if !ok {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if file >= chess.BoardSize {
				return fmt.Errorf("rank %d overflows: %w", rank+1, errors.ErrInvalidFEN)
			}
			colour := chess.White
			if unicode.IsLower(rune(c)) {
				colour = chess.Black
			}
			pos.Set(chess.SquareAt(file, rank), chess.MakePiece(colour, kind))
			file++
		}
		if file != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", rank+1, file, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *chess.Position, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(pos *chess.Position, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}
	for _, c := range parts[2] {
		switch c {
		case 'K':
			pos.Castling.WhiteKingside = true
		case 'Q':
			pos.Castling.WhiteQueenside = true
		case 'k':
			pos.Castling.BlackKingside = true
		case 'q':
			pos.Castling.BlackQueenside = true
		default:
			return fmt.Errorf("invalid castling character: %c: %w", c, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(pos *chess.Position, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, err := ParseSquare(parts[3])
	if err != nil {
		return fmt.Errorf("en passant target: %v: %w", err, errors.ErrInvalidFEN)
	}
	if r := sq.Rank(); r != 2 && r != 5 {
		return fmt.Errorf("en passant target %s not on rank 3 or 6: %w", parts[3], errors.ErrInvalidFEN)
	}
	pos.EnPassant = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(pos *chess.Position, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid halfmove clock: %s: %w", parts[4], errors.ErrInvalidFEN)
		}
		pos.HalfmoveClock = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid fullmove number: %s: %w", parts[5], errors.ErrInvalidFEN)
		}
		pos.FullmoveNumber = n
	}
	return nil
}

// FEN encodes a position as a FEN string.
func FEN(pos chess.Position) string {
	var sb strings.Builder

	writePlacement(&sb, &pos)
	sb.WriteByte(' ')
	if pos.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, pos.Castling)
	sb.WriteByte(' ')
	sb.WriteString(SquareName(pos.EnPassant))
	fmt.Fprintf(&sb, " %d %d", pos.HalfmoveClock, pos.FullmoveNumber)

	return sb.String()
}

// writePlacement writes the piece placement, rank 8 first.
func writePlacement(sb *strings.Builder, pos *chess.Position) {
	for rank := chess.Rank(chess.BoardSize - 1); rank >= 0; rank-- {
		empty := 0
		for file := chess.File(0); file < chess.BoardSize; file++ {
			piece := pos.Placement[chess.SquareAt(file, rank)]
			if piece.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(PieceLetter(piece))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

func writeCastlingRights(sb *strings.Builder, rights chess.CastlingRights) {
	if !rights.Any() {
		sb.WriteByte('-')
		return
	}
	if rights.WhiteKingside {
		sb.WriteByte('K')
	}
	if rights.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if rights.BlackKingside {
		sb.WriteByte('k')
	}
	if rights.BlackQueenside {
		sb.WriteByte('q')
	}
}
