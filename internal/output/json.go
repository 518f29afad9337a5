package output

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/processing"
)

// JSONPosition represents an analysed position in JSON format.
type JSONPosition struct {
	Line     int        `json:"line,omitempty"`
	FEN      string     `json:"fen"`
	ToMove   string     `json:"toMove"` // "white" or "black"
	Status   string     `json:"status"`
	InCheck  bool       `json:"inCheck"`
	Material int        `json:"material"`
	Hash     string     `json:"hash"`
	Moves    []JSONMove `json:"moves"`

	FiftyMoveRule        bool   `json:"fiftyMoveRule,omitempty"`
	SeventyFiveMoveRule  bool   `json:"seventyFiveMoveRule,omitempty"`
	InsufficientMaterial bool   `json:"insufficientMaterial,omitempty"`
	MaterialOdds         bool   `json:"materialOdds,omitempty"`
	Duplicate            bool   `json:"duplicate,omitempty"`
	Error                string `json:"error,omitempty"`
}

// JSONMove represents a legal move in JSON format.
type JSONMove struct {
	SAN      string `json:"san"`
	UCI      string `json:"uci"`
	From     string `json:"from"`
	To       string `json:"to"`
	Piece    string `json:"piece"`
	Captured string `json:"captured,omitempty"`
	Check    bool   `json:"check,omitempty"`
	Mate     bool   `json:"mate,omitempty"`
}

// PositionToJSON converts an analysis to JSON format.
func PositionToJSON(analysis *processing.PositionAnalysis) *JSONPosition {
	jp := &JSONPosition{
		FEN:                  analysis.FEN,
		ToMove:               colorName(analysis.Position.ToMove),
		Status:               analysis.Status.String(),
		InCheck:              analysis.InCheck,
		Material:             analysis.Material,
		Hash:                 formatHash(analysis.Hash),
		Moves:                make([]JSONMove, len(analysis.Moves)),
		FiftyMoveRule:        analysis.HasFiftyMoveRule,
		SeventyFiveMoveRule:  analysis.Has75MoveRule,
		InsufficientMaterial: analysis.HasInsufficientMaterial,
		MaterialOdds:         analysis.HasMaterialOdds,
	}
	for i, m := range analysis.Moves {
		jp.Moves[i] = JSONMove{
			SAN:      m.SAN,
			UCI:      m.UCI,
			From:     m.From.String(),
			To:       m.To.String(),
			Piece:    pieceTypeName(m.Piece),
			Captured: pieceTypeName(m.Captured),
			Check:    m.Check,
			Mate:     m.Mate,
		}
	}
	return jp
}

// colorName returns "white" or "black".
func colorName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

// pieceTypeName returns the piece kind as a string, or "" for an empty square.
func pieceTypeName(p chess.Piece) string {
	switch p.Kind() {
	case chess.Pawn:
		return "pawn"
	case chess.Knight:
		return "knight"
	case chess.Bishop:
		return "bishop"
	case chess.Rook:
		return "rook"
	case chess.Queen:
		return "queen"
	case chess.King:
		return "king"
	default:
		return ""
	}
}
