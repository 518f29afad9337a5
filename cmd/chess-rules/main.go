// chess-rules lists legal moves, classifies positions and counts perft trees for
// positions given in FEN.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/logx"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

const programVersion = "0.1.0"

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "chess-rules: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "chess-rules",
		Usage:   "legal moves, check and terminal classification for chess positions",
		Version: programVersion,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "log level: debug, info, warn, error",
			},
			&cli.BoolFlag{
				Name:  "log-dev",
				Usage: "development logging (coloured levels, stack traces)",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "log as JSON",
			},
		},
		Commands: []*cli.Command{
			movesCommand(),
			perftCommand(),
			showCommand(),
			analyzeCommand(),
		},
	}
}

// fenFlag is the position flag shared by the single-position commands.
func fenFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "fen",
		Value: notation.InitialFEN,
		Usage: "position in FEN format",
	}
}

// newBuilder starts a config from the global flags, sending output and logs to
// the root command's writers.
func newBuilder(c *cli.Command) *config.ConfigBuilder {
	root := c.Root()
	return config.NewConfigBuilder().
		WithLogLevel(c.String("log-level")).
		WithLogEncoding(c.Bool("log-dev"), c.Bool("log-json")).
		WithLogWriter(root.ErrWriter).
		WithOutput(root.Writer)
}

// build validates the config and creates its logger.
func build(b *config.ConfigBuilder) (*config.Config, logx.Logger, error) {
	cfg, err := b.Build()
	if err != nil {
		return nil, nil, err
	}
	return cfg, cfg.Log.NewLogger(), nil
}
