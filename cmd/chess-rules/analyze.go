package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/logx"
	"github.com/lgbarn/chess-rules-go/internal/matching"
	"github.com/lgbarn/chess-rules-go/internal/notation"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/processing"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// textLineLength is where text output wraps move lists.
const textLineLength = 80

func analyzeCommand() *cli.Command {
	defaults := config.NewAnalysisConfig()
	return &cli.Command{
		Name:      "analyze",
		Usage:     "analyse one FEN per line from a file, or stdin with -",
		ArgsUsage: "FILE|-",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Value:   int64(defaults.Workers),
				Usage:   "number of analysis workers",
			},
			&cli.IntFlag{
				Name:  "buffer",
				Value: int64(defaults.BufferSize),
				Usage: "work queue size",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "write JSON instead of text",
			},
			&cli.BoolFlag{
				Name:  "unique",
				Usage: "report repeated positions as duplicates instead of analysing them again",
			},
			&cli.StringFlag{
				Name:  "material",
				Usage: "only positions with at least this material, e.g. KQ:kr",
			},
			&cli.BoolFlag{
				Name:  "material-exact",
				Usage: "require exactly the --material pieces",
			},
			&cli.StringSliceFlag{
				Name:  "pattern",
				Usage: "only positions matching a placement pattern (wildcards ? ! * A a _) or a full FEN; repeatable",
			},
		},
		Action: runAnalyze,
	}
}

func runAnalyze(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("analyze takes exactly one input, got %d: %w", c.Args().Len(), errors.ErrInvalidConfig)
	}
	cfg, logger, err := build(newBuilder(c).
		WithWorkers(int(c.Int("workers"))).
		WithBufferSize(int(c.Int("buffer"))).
		WithJSONOutput(c.Bool("json")).
		WithUnique(c.Bool("unique")).
		WithMaterial(c.String("material"), c.Bool("material-exact")).
		WithPatterns(c.StringSlice("pattern")...))
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	in, closeInput, err := openInput(c.Args().First(), c.Root().Reader)
	if err != nil {
		return err
	}
	defer closeInput()

	stats, err := analyzeStream(ctx, in, cfg, logger)
	if err != nil {
		return err
	}
	logger.Infow("analysis finished",
		"positions", stats.positions,
		"filtered", stats.filtered,
		"errors", stats.failed,
		"duplicates", stats.duplicates)
	if stats.failed > 0 {
		return fmt.Errorf("%d of %d positions could not be analysed", stats.failed, stats.positions)
	}
	return nil
}

// openInput opens name, or returns stdin for "-".
func openInput(name string, stdin io.Reader) (io.Reader, func(), error) {
	if name == "-" {
		if stdin == nil {
			stdin = os.Stdin
		}
		return stdin, func() {}, nil
	}
	f, err := os.Open(name) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil //nolint:errcheck,gosec // G104: read-only file
}

type analyzeStats struct {
	positions  int
	filtered   int
	failed     int
	duplicates int
}

// buildMatcher combines the configured position filters. It returns nil when
// no filter is configured.
func buildMatcher(cfg *config.AnalysisConfig) (matching.Matcher, error) {
	filters := matching.NewCompositeMatcher(matching.MatchAll)
	if cfg.Material != "" {
		mm, err := matching.NewMaterialMatcher(cfg.Material, cfg.MaterialExact)
		if err != nil {
			return nil, err
		}
		filters.Add(mm)
	}
	if len(cfg.Patterns) > 0 {
		pm := matching.NewPositionMatcher()
		for _, pattern := range cfg.Patterns {
			var err error
			if strings.ContainsRune(pattern, ' ') {
				err = pm.AddFEN(pattern, pattern)
			} else {
				err = pm.AddPattern(pattern, pattern, false)
			}
			if err != nil {
				return nil, err
			}
		}
		filters.Add(pm)
	}
	if filters.Len() == 0 {
		return nil, nil
	}
	return filters, nil
}

// analyzeStream analyses every position in r on a worker pool and writes the
// reports in input order.
func analyzeStream(ctx context.Context, r io.Reader, cfg *config.Config, logger logx.Logger) (analyzeStats, error) {
	var stats analyzeStats
	analyzer := processing.NewAnalyzer(logger)
	matcher, err := buildMatcher(cfg.Analysis)
	if err != nil {
		return stats, err
	}
	if matcher != nil {
		logger.Debugw("filtering positions", "matcher", matcher.Name())
	}

	pool := worker.NewPool(func(item worker.WorkItem) worker.ProcessResult {
		result := worker.ProcessResult{Index: item.Index, Line: item.Line, FEN: item.FEN}
		pos, err := notation.ParseFEN(item.FEN)
		if err != nil {
			result.Error = err
			return result
		}
		if matcher != nil && !matcher.Match(&pos) {
			return result
		}
		result.Matched = true
		result.Analysis = analyzer.Analyze(pos)
		return result
	}, worker.WithWorkers(cfg.Analysis.Workers), worker.WithBufferSize(cfg.Analysis.BufferSize))

	logger.Debugw("starting workers", "workers", pool.NumWorkers(), "buffer", cfg.Analysis.BufferSize)
	pool.Start(ctx)

	var readErr error
	go func() {
		defer pool.Close()
		readErr = submitPositions(ctx, r, pool)
	}()

	detector := hashing.NewDuplicateDetector(0)
	rw := newReportWriter(cfg.Output.JSON, cfg.Output.Writer)
	var writeErr error

	held := worker.InOrder(pool.Results(), func(res worker.ProcessResult) {
		stats.positions++
		if res.Error == nil && !res.Matched {
			stats.filtered++
			return
		}
		report := output.Report{Line: res.Line, FEN: res.FEN}

		if res.Error != nil {
			stats.failed++
			report.Err = res.Error
			logger.Warnw("position rejected", "line", res.Line, "error", res.Error.Error())
		} else {
			analysis := res.Analysis.(*processing.PositionAnalysis)
			if cfg.Analysis.Unique && detector.CheckAndAdd(&analysis.Position) {
				stats.duplicates++
				report.Duplicate = true
				logger.Debugw("duplicate position", "line", res.Line, "fen", res.FEN)
			} else {
				report.Analysis = analysis
			}
		}

		if err := rw.Write(report); err != nil && writeErr == nil {
			writeErr = err
		}
	})
	if held > 0 {
		logger.Warnw("results lost after cancellation", "count", held)
	}

	if err := rw.Close(); err != nil && writeErr == nil {
		writeErr = err
	}
	if readErr != nil {
		return stats, readErr
	}
	if writeErr != nil {
		return stats, writeErr
	}
	return stats, ctx.Err()
}

// submitPositions queues every FEN line of r. Blank lines and lines starting
// with '#' are skipped but still counted for line numbers.
func submitPositions(ctx context.Context, r io.Reader, pool *worker.Pool) error {
	scanner := bufio.NewScanner(r)
	line, index := 0, 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := pool.Submit(ctx, worker.WorkItem{FEN: text, Line: line, Index: index}); err != nil {
			return err
		}
		index++
	}
	return scanner.Err()
}

// newReportWriter picks the writer for the configured output format.
func newReportWriter(json bool, w io.Writer) output.ReportWriter {
	if json {
		return output.NewJSONWriter(w)
	}
	return output.NewTextWriter(w, textLineLength)
}
