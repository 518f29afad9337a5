package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/notation"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

func showCommand() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "draw a position and its status",
		Flags: []cli.Flag{
			fenFlag(),
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "draw without ANSI colours",
			},
		},
		Action: runShow,
	}
}

func runShow(ctx context.Context, c *cli.Command) error {
	b := newBuilder(c)
	b.WithColour(!c.Bool("no-color") && isTerminal(c.Root().Writer))
	cfg, logger, err := build(b)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	pos, err := notation.ParseFEN(c.String("fen"))
	if err != nil {
		return err
	}
	w := cfg.Output.Writer
	if err := output.RenderBoard(w, &pos, cfg.Output.Colour); err != nil {
		return err
	}

	node := engine.Classify(pos)
	line := fmt.Sprintf("%s to move, %s, %d legal moves", pos.ToMove, node.Status(), len(node.LegalMoves()))
	if node.InCheck() && node.Status() == engine.InProgress {
		line += ", in check"
	}
	_, err = fmt.Fprintln(w, line)
	return err
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
