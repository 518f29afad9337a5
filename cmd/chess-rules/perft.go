package main

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

func perftCommand() *cli.Command {
	return &cli.Command{
		Name:  "perft",
		Usage: "count the leaf nodes of the legal move tree",
		Flags: []cli.Flag{
			fenFlag(),
			&cli.IntFlag{
				Name:    "depth",
				Aliases: []string{"d"},
				Value:   int64(config.NewAnalysisConfig().PerftDepth),
				Usage:   fmt.Sprintf("tree depth, 1 to %d", config.MaxPerftDepth),
			},
			&cli.BoolFlag{
				Name:  "divide",
				Usage: "print the count below each root move",
			},
		},
		Action: runPerft,
	}
}

func runPerft(ctx context.Context, c *cli.Command) error {
	cfg, logger, err := build(newBuilder(c).WithPerftDepth(int(c.Int("depth"))))
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	pos, err := notation.ParseFEN(c.String("fen"))
	if err != nil {
		return err
	}
	depth := cfg.Analysis.PerftDepth
	w := cfg.Output.Writer
	start := time.Now()

	var total uint64
	if c.Bool("divide") {
		counts := engine.Divide(pos, depth)
		moves := maps.Keys(counts)
		slices.Sort(moves)
		for _, m := range moves {
			fmt.Fprintf(w, "%s: %d\n", m, counts[m])
			total += counts[m]
		}
		fmt.Fprintln(w)
	} else {
		total = engine.Perft(pos, depth)
	}

	logger.Infow("perft finished", "depth", depth, "nodes", total, "elapsed", time.Since(start).String())
	_, err = fmt.Fprintf(w, "perft(%d) = %d\n", depth, total)
	return err
}
