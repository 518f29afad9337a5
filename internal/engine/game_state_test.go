package engine_test

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		fen         string
		wantStatus  engine.Status
		wantInCheck bool
		wantMoves   int
	}{
		{"start position", startFEN, engine.InProgress, false, 20},
		{"kings far apart", "k7/8/8/8/8/8/8/7K w - - 0 1", engine.InProgress, false, 3},
		{"no kings", "8/8/8/8/8/8/1r6/P7 w - - 0 1", engine.InProgress, false, 2},
		{"queen mates a boxed king", "7k/6Q1/6K1/8/8/8/8/8 b - - 0 1", engine.Checkmate, true, 0},
		{"back rank mate", "4k3/8/8/8/8/8/3PPP2/r3K3 w - - 0 1", engine.Checkmate, true, 0},
		{"queen stalemates a cornered king", "7k/8/6Q1/8/8/8/8/6K1 b - - 0 1", engine.Stalemate, false, 0},
		{"king hemmed in by its own pieces can still move them", "7k/8/8/8/8/8/PP6/KB6 w - - 0 1", engine.InProgress, false, 10},
		{"white boxed in with every piece blocked", "7k/8/8/8/8/p1p5/P1P5/KB6 w - - 0 1", engine.Stalemate, false, 0},
		{"black boxed in with every piece blocked", "kb6/p1p5/P1P5/8/8/8/8/7K b - - 0 1", engine.Stalemate, false, 0},
		{"pawn mates a boxed king", "6bk/6Pp/7P/8/8/8/8/K7 b - - 0 1", engine.Checkmate, true, 0},
		{"check that can be escaped", "4k3/8/8/8/8/8/8/4K2r w - - 0 1", engine.InProgress, true, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := engine.Classify(testutil.MustParseFEN(t, tt.fen))
			testutil.AssertEqual(t, node.Status(), tt.wantStatus, "status")
			testutil.AssertEqual(t, node.InCheck(), tt.wantInCheck, "in check")
			testutil.AssertEqual(t, len(node.LegalMoves()), tt.wantMoves, "legal move count")
			testutil.AssertFalse(t, node.IsCheckmate() && node.IsStalemate(), "checkmate and stalemate at once")
			if node.IsCheckmate() || node.IsStalemate() {
				testutil.AssertEqual(t, len(node.LegalMoves()), 0, "terminal with legal moves")
			}

			pos := node.Position
			testutil.AssertEqual(t, engine.IsCheckmate(&pos), node.IsCheckmate(), "IsCheckmate")
			testutil.AssertEqual(t, engine.IsStalemate(&pos), node.IsStalemate(), "IsStalemate")
		})
	}
}

func TestNode_ExpandOnce(t *testing.T) {
	node := engine.NewNode(testutil.MustParseFEN(t, startFEN))
	testutil.AssertFalse(t, node.IsExpanded())

	testutil.AssertTrue(t, node.Expand() == node, "Expand returns its receiver")
	testutil.AssertTrue(t, node.IsExpanded())
	testutil.AssertPanicsWith(t, errors.ErrProtocol, func() { node.Expand() })
}

func TestNode_ReadBeforeExpand(t *testing.T) {
	reads := map[string]func(*engine.Node){
		"InCheck":     func(n *engine.Node) { n.InCheck() },
		"LegalMoves":  func(n *engine.Node) { n.LegalMoves() },
		"IsCheckmate": func(n *engine.Node) { n.IsCheckmate() },
		"IsStalemate": func(n *engine.Node) { n.IsStalemate() },
		"Status":      func(n *engine.Node) { n.Status() },
	}
	for name, read := range reads {
		t.Run(name, func(t *testing.T) {
			node := engine.NewNode(chess.NewPosition())
			testutil.AssertPanicsWith(t, errors.ErrProtocol, func() { read(node) })
		})
	}
}

func TestNode_SuccessorsExpandIndependently(t *testing.T) {
	root := engine.Classify(testutil.MustParseFEN(t, startFEN))
	moves := root.LegalMoves()

	child := moves[0].Result.Expand()
	testutil.AssertEqual(t, len(child.LegalMoves()), 20)
	testutil.AssertFalse(t, moves[1].Result.IsExpanded(), "sibling stays unexpanded")
}

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status engine.Status
		want   string
	}{
		{engine.InProgress, "in progress"},
		{engine.Checkmate, "checkmate"},
		{engine.Stalemate, "stalemate"},
		{engine.Status(7), "Status(7)"},
	}
	for _, tt := range tests {
		testutil.AssertEqual(t, tt.status.String(), tt.want)
	}
}
