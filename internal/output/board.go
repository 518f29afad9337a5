package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

const filesLine = "   a  b  c  d  e  f  g  h"

// boardPalette holds the square and piece colours of a diagram.
type boardPalette struct {
	lightWhite, lightBlack, lightEmpty *color.Color
	darkWhite, darkBlack, darkEmpty    *color.Color
}

func newBoardPalette(enabled bool) *boardPalette {
	p := &boardPalette{
		lightWhite: color.New(color.BgWhite, color.FgHiWhite, color.Bold),
		lightBlack: color.New(color.BgWhite, color.FgBlack, color.Bold),
		lightEmpty: color.New(color.BgWhite, color.FgHiBlack),
		darkWhite:  color.New(color.BgHiBlack, color.FgHiWhite, color.Bold),
		darkBlack:  color.New(color.BgHiBlack, color.FgBlack, color.Bold),
		darkEmpty:  color.New(color.BgHiBlack, color.FgHiBlack),
	}
	for _, c := range []*color.Color{p.lightWhite, p.lightBlack, p.lightEmpty, p.darkWhite, p.darkBlack, p.darkEmpty} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *boardPalette) pick(sq chess.Square, piece chess.Piece) *color.Color {
	light := (int(sq.File())+int(sq.Rank()))%2 == 1
	switch {
	case light && piece.Is(chess.White):
		return p.lightWhite
	case light && piece.Is(chess.Black):
		return p.lightBlack
	case light:
		return p.lightEmpty
	case piece.Is(chess.White):
		return p.darkWhite
	case piece.Is(chess.Black):
		return p.darkBlack
	}
	return p.darkEmpty
}

// RenderBoard draws pos as an 8x8 diagram with rank 8 at the top, using FEN
// letters for pieces and '.' for empty squares. With colour set the squares are
// shaded with ANSI escapes.
func RenderBoard(w io.Writer, pos *chess.Position, colour bool) error {
	palette := newBoardPalette(colour)

	if _, err := fmt.Fprintln(w, filesLine); err != nil {
		return err
	}
	for r := chess.Rank(chess.BoardSize - 1); r >= 0; r-- {
		fmt.Fprintf(w, "%d ", r+1)
		for f := chess.File(0); f < chess.BoardSize; f++ {
			sq := chess.SquareAt(f, r)
			piece := pos.Get(sq)
			glyph := "."
			if !piece.IsEmpty() {
				glyph = string(notation.PieceLetter(piece))
			}
			palette.pick(sq, piece).Fprint(w, " "+glyph+" ")
		}
		fmt.Fprintf(w, " %d\n", r+1)
	}
	_, err := fmt.Fprintln(w, filesLine)
	return err
}
