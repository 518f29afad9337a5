package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Status is the terminal classification of a position for the side to move.
type Status int

const (
	InProgress Status = iota
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Node wraps a position with its derived facts. A node starts unexpanded; Expand
// computes the facts exactly once, and only then may they be read.
type Node struct {
	Position chess.Position

	expanded   bool
	inCheck    memo[bool]
	legalMoves memo[[]Move]
	checkmate  memo[bool]
	stalemate  memo[bool]
}

// NewNode creates an unexpanded node for pos.
func NewNode(pos chess.Position) *Node {
	return &Node{
		Position:   pos,
		inCheck:    memo[bool]{name: "check flag"},
		legalMoves: memo[[]Move]{name: "legal moves"},
		checkmate:  memo[bool]{name: "checkmate flag"},
		stalemate:  memo[bool]{name: "stalemate flag"},
	}
}

// Expand computes the derived facts in their fixed order: check flag, legal moves,
// checkmate flag, stalemate flag. Expanding a node twice panics with
// errors.ErrProtocol.
func (n *Node) Expand() *Node {
	if n.expanded {
		panic(fmt.Errorf("position expanded twice: %w", errors.ErrProtocol))
	}
	n.expanded = true

	n.inCheck.store(IsKingAttacked(&n.Position, true))
	n.legalMoves.store(LegalMoves(&n.Position))
	n.checkmate.store(n.computeCheckmate())
	n.stalemate.store(n.computeStalemate())
	return n
}

// IsExpanded reports whether Expand has run.
func (n *Node) IsExpanded() bool {
	return n.expanded
}

func (n *Node) computeCheckmate() bool {
	return len(n.legalMoves.load()) == 0 && n.inCheck.load()
}

func (n *Node) computeStalemate() bool {
	return len(n.legalMoves.load()) == 0 && !n.inCheck.load()
}

// InCheck reports whether the side to move's king is attacked.
func (n *Node) InCheck() bool {
	return n.inCheck.load()
}

// LegalMoves returns the legal moves of the side to move. Each move carries its
// unexpanded successor node.
func (n *Node) LegalMoves() []Move {
	return n.legalMoves.load()
}

// IsCheckmate returns true if the side to move has no legal move and is in check.
func (n *Node) IsCheckmate() bool {
	return n.checkmate.load()
}

// IsStalemate returns true if the side to move has no legal move and is not in check.
func (n *Node) IsStalemate() bool {
	return n.stalemate.load()
}

// Status classifies the node. Checkmate and stalemate are mutually exclusive.
func (n *Node) Status() Status {
	switch {
	case n.IsCheckmate():
		return Checkmate
	case n.IsStalemate():
		return Stalemate
	}
	return InProgress
}

// Classify builds and expands a node for pos in one call.
func Classify(pos chess.Position) *Node {
	return NewNode(pos).Expand()
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(pos *chess.Position) bool {
	return IsInCheck(pos, pos.ToMove) && !HasLegalMoves(pos)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(pos *chess.Position) bool {
	return !IsInCheck(pos, pos.ToMove) && !HasLegalMoves(pos)
}
