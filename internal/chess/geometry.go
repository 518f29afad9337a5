package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Direction is one of the sixteen movement directions: four orthogonal, four
// diagonal and eight knight leaps.
type Direction int8

const (
	Up Direction = iota
	Right
	Down
	Left
	UpRight
	DownRight
	DownLeft
	UpLeft
	UpUpRight
	RightRightUp
	RightRightDown
	DownDownRight
	DownDownLeft
	LeftLeftDown
	LeftLeftUp
	UpUpLeft
	NumDirections
)

// unit steps that each direction is composed of, applied in order.
var directionSteps = [NumDirections][]Direction{
	Up:             {Up},
	Right:          {Right},
	Down:           {Down},
	Left:           {Left},
	UpRight:        {Up, Right},
	DownRight:      {Down, Right},
	DownLeft:       {Down, Left},
	UpLeft:         {Up, Left},
	UpUpRight:      {Up, Up, Right},
	RightRightUp:   {Right, Right, Up},
	RightRightDown: {Right, Right, Down},
	DownDownRight:  {Down, Down, Right},
	DownDownLeft:   {Down, Down, Left},
	LeftLeftDown:   {Left, Left, Down},
	LeftLeftUp:     {Left, Left, Up},
	UpUpLeft:       {Up, Up, Left},
}

var directionNames = [NumDirections]string{
	"Up", "Right", "Down", "Left",
	"UpRight", "DownRight", "DownLeft", "UpLeft",
	"UpUpRight", "RightRightUp", "RightRightDown", "DownDownRight",
	"DownDownLeft", "LeftLeftDown", "LeftLeftUp", "UpUpLeft",
}

// String returns the name of the direction.
func (d Direction) String() string {
	if d < 0 || d >= NumDirections {
		return fmt.Sprintf("Direction(%d)", int8(d))
	}
	return directionNames[d]
}

// IsKnight reports whether d is one of the eight knight leaps.
func (d Direction) IsKnight() bool {
	return d >= UpUpRight && d < NumDirections
}

// Delta returns the (file, rank) offset of one application of d.
func (d Direction) Delta() (df, dr int) {
	for _, unit := range d.units() {
		switch unit {
		case Up:
			dr++
		case Right:
			df++
		case Down:
			dr--
		case Left:
			df--
		}
	}
	return df, dr
}

func (d Direction) units() []Direction {
	if d < 0 || d >= NumDirections {
		panic(fmt.Errorf("direction %d: %w", int8(d), errors.ErrInvariant))
	}
	return directionSteps[d]
}

// Step applies one full application of d to a file/rank pair. The returned flag is
// true when the result left the board; the coordinates are then meaningless.
func Step(f File, r Rank, d Direction) (File, Rank, bool) {
	for _, unit := range d.units() {
		switch unit {
		case Up:
			r++
		case Right:
			f++
		case Down:
			r--
		case Left:
			f--
		}
		if !onBoard(f, r) {
			return f, r, true
		}
	}
	return f, r, false
}

// Next returns the square one step from sq in direction d. Knight leaps are
// single-shot and are never chained, so Next refuses them.
func Next(sq Square, d Direction) (Square, bool) {
	if d.IsKnight() {
		return NoSquare, false
	}
	f, r, off := Step(sq.File(), sq.Rank(), d)
	if off {
		return NoSquare, false
	}
	return SquareAt(f, r), true
}

// Movement describes how a non-pawn piece kind moves.
type Movement struct {
	Directions []Direction
	Slides     bool // repeat the step until blocked, otherwise step once
}

var (
	orthogonal = []Direction{Up, Right, Down, Left}
	diagonal   = []Direction{UpRight, DownRight, DownLeft, UpLeft}
	allLines   = []Direction{Up, Right, Down, Left, UpRight, DownRight, DownLeft, UpLeft}
	knightLeap = []Direction{
		UpUpRight, RightRightUp, RightRightDown, DownDownRight,
		DownDownLeft, LeftLeftDown, LeftLeftUp, UpUpLeft,
	}
)

var movements = map[Piece]Movement{
	Rook:   {Directions: orthogonal, Slides: true},
	Bishop: {Directions: diagonal, Slides: true},
	Queen:  {Directions: allLines, Slides: true},
	Knight: {Directions: knightLeap},
	King:   {Directions: allLines},
}

// MovementOf returns the movement rule for a non-pawn piece kind.
// Asking for a pawn or an unknown kind is an invariant violation.
func MovementOf(kind Piece) Movement {
	m, ok := movements[kind.Kind()]
	if !ok {
		panic(fmt.Errorf("no movement rule for %v: %w", kind, errors.ErrInvariant))
	}
	return m
}

// PawnForward returns the direction in which pawns of the colour advance.
func PawnForward(colour Colour) Direction {
	if colour == White {
		return Up
	}
	return Down
}

// PawnCaptures returns the two diagonal capture directions for pawns of the colour.
func PawnCaptures(colour Colour) [2]Direction {
	if colour == White {
		return [2]Direction{UpRight, UpLeft}
	}
	return [2]Direction{DownRight, DownLeft}
}
