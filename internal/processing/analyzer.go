// Package processing turns positions into analysis records: status, material,
// hash and the legal move list in SAN and UCI form.
package processing

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/logx"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// MoveInfo describes one legal move.
type MoveInfo struct {
	SAN      string
	UCI      string
	Piece    chess.Piece
	From     chess.Square
	To       chess.Square
	Captured chess.Piece
	Check    bool
	Mate     bool
}

// PositionAnalysis holds everything derived from one position.
type PositionAnalysis struct {
	Position chess.Position
	FEN      string
	Hash     uint64
	InCheck  bool
	Status   engine.Status
	Material int
	Moves    []MoveInfo

	// Draw rule and material indicators
	HasFiftyMoveRule        bool
	Has75MoveRule           bool
	HasInsufficientMaterial bool
	HasMaterialOdds         bool
}

// IsTerminal returns true if the side to move is checkmated or stalemated.
func (pa *PositionAnalysis) IsTerminal() bool {
	return pa.Status != engine.InProgress
}

// Analyze expands pos and builds its analysis record.
func Analyze(pos chess.Position) *PositionAnalysis {
	node := engine.Classify(pos)
	legal := node.LegalMoves()
	sans := notation.SANList(&node.Position, legal)

	analysis := &PositionAnalysis{
		Position:                pos,
		FEN:                     notation.FEN(pos),
		Hash:                    hashing.GenerateZobristHash(&pos),
		InCheck:                 node.InCheck(),
		Status:                  node.Status(),
		Material:                engine.Material(&pos),
		Moves:                   make([]MoveInfo, 0, len(legal)),
		HasFiftyMoveRule:        pos.HalfmoveClock >= 100,
		Has75MoveRule:           pos.HalfmoveClock >= 150,
		HasInsufficientMaterial: engine.HasInsufficientMaterial(&pos),
		HasMaterialOdds:         !engine.HasStandardMaterial(&pos),
	}

	for i, m := range legal {
		// SANList has expanded every successor.
		analysis.Moves = append(analysis.Moves, MoveInfo{
			SAN:      sans[i],
			UCI:      notation.UCI(m),
			Piece:    m.Piece,
			From:     m.From,
			To:       m.To,
			Captured: m.Captured,
			Check:    m.Result.InCheck(),
			Mate:     m.Result.IsCheckmate(),
		})
	}
	return analysis
}

// Analyzer analyses FEN text and logs what it finds.
type Analyzer struct {
	logger logx.Logger
}

// NewAnalyzer creates an analyzer that logs through logger.
func NewAnalyzer(logger logx.Logger) *Analyzer {
	return &Analyzer{logger: logger}
}

// AnalyzeFEN parses fen and analyses the position. Parse errors are returned
// wrapping errors.ErrInvalidFEN.
func (a *Analyzer) AnalyzeFEN(fen string) (*PositionAnalysis, error) {
	pos, err := notation.ParseFEN(fen)
	if err != nil {
		return nil, errors.Wrapf(err, "analyse %q", fen)
	}
	return a.Analyze(pos), nil
}

// Analyze analyses pos, logging terminal positions at debug level.
func (a *Analyzer) Analyze(pos chess.Position) *PositionAnalysis {
	analysis := Analyze(pos)
	if analysis.IsTerminal() {
		a.logger.Debugw("terminal position", "fen", analysis.FEN, "status", analysis.Status.String())
	}
	return analysis
}
