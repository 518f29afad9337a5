package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/processing"
)

func movesCommand() *cli.Command {
	return &cli.Command{
		Name:  "moves",
		Usage: "list the legal moves and status of a position",
		Flags: []cli.Flag{
			fenFlag(),
			&cli.BoolFlag{
				Name:  "json",
				Usage: "write JSON instead of text",
			},
		},
		Action: runMoves,
	}
}

func runMoves(ctx context.Context, c *cli.Command) error {
	cfg, logger, err := build(newBuilder(c).WithJSONOutput(c.Bool("json")))
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	analysis, err := processing.NewAnalyzer(logger).AnalyzeFEN(c.String("fen"))
	if err != nil {
		return err
	}
	logger.Debugw("moves", "fen", analysis.FEN, "count", len(analysis.Moves))

	rw := newReportWriter(cfg.Output.JSON, cfg.Output.Writer)
	if err := rw.Write(output.Report{FEN: analysis.FEN, Analysis: analysis}); err != nil {
		return err
	}
	return rw.Close()
}
