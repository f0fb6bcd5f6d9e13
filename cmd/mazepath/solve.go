package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/batch"
	"github.com/katalvlaran/mazepath/grid"
)

type solveFlags struct {
	input         string
	output        string
	conn          string
	strategies    []string
	workers       int
	maxExpansions int
	verify        bool
	watch         bool
	metricsFile   string
	appendOutput  bool
}

func newSolveCmd(a *app) *cobra.Command {
	var fl solveFlags
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve every maze of the configured (or given) input files",
		Long: "Reads blank-line separated mazes, runs each strategy on every maze and\n" +
			"writes a label line, the marked grid and a blank line per run.\n" +
			"Without --input the runs listed in the configuration are executed.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd, a, fl)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&fl.input, "input", "i", "", "input maze file (overrides configured runs)")
	f.StringVarP(&fl.output, "output", "o", "", "output file (default: <input>_out.txt)")
	f.StringVarP(&fl.conn, "conn", "c", "conn4", "connectivity for --input: conn4 or conn8")
	f.StringSliceVarP(&fl.strategies, "strategy", "s", nil, "strategies in output order (greedy, astar)")
	f.IntVarP(&fl.workers, "workers", "w", 0, "concurrent searches (0: configured or GOMAXPROCS)")
	f.IntVar(&fl.maxExpansions, "max-expansions", 0, "cap on expansions per search (0: configured)")
	f.BoolVar(&fl.verify, "verify", false, "check A* step counts against breadth-first search")
	f.BoolVar(&fl.watch, "watch", false, "re-run whenever an input file changes")
	f.StringVar(&fl.metricsFile, "metrics-file", "", "write Prometheus metrics in textfile format")
	f.BoolVar(&fl.appendOutput, "append-output", false, "append results to output files instead of replacing them")
	return cmd
}

// defaultOutput maps dir/name.txt to dir/name_out.txt.
func defaultOutput(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_out" + ext
}

func solveSpecs(a *app, fl solveFlags) ([]batch.RunSpec, error) {
	if fl.input != "" {
		conn, err := grid.ParseConnectivity(fl.conn)
		if err != nil {
			return nil, err
		}
		out := fl.output
		if out == "" {
			out = defaultOutput(fl.input)
		}
		if out == fl.input {
			return nil, fmt.Errorf("output %s would overwrite the input", out)
		}
		return []batch.RunSpec{{Input: fl.input, Output: out, Connectivity: conn, Append: fl.appendOutput}}, nil
	}

	specs := make([]batch.RunSpec, 0, len(a.cfg.Runs))
	for _, run := range a.cfg.Runs {
		conn, err := run.Conn()
		if err != nil {
			return nil, err
		}
		specs = append(specs, batch.RunSpec{
			Input:        run.Input,
			Output:       run.Output,
			Connectivity: conn,
			Append:       run.Append || fl.appendOutput,
		})
	}
	return specs, nil
}

func runSolve(cmd *cobra.Command, a *app, fl solveFlags) error {
	specs, err := solveSpecs(a, fl)
	if err != nil {
		return err
	}

	cfg := a.cfg
	if len(fl.strategies) > 0 {
		cfg.Strategies = fl.strategies
	}
	strategies, err := cfg.SearchStrategies()
	if err != nil {
		return err
	}
	workers := cfg.Workers
	if fl.workers > 0 {
		workers = fl.workers
	}
	maxExp := cfg.MaxExpansions
	if fl.maxExpansions > 0 {
		maxExp = fl.maxExpansions
	}
	metricsFile := cfg.MetricsFile
	if fl.metricsFile != "" {
		metricsFile = fl.metricsFile
	}

	reg := prometheus.NewRegistry()
	runner := batch.New(
		batch.WithLogger(a.logger),
		batch.WithMetrics(batch.NewMetrics(reg)),
		batch.WithWorkers(workers),
		batch.WithStrategies(strategies...),
		batch.WithVerify(cfg.Verify || fl.verify),
		batch.WithMaxExpansions(maxExp),
	)

	once := func(ctx context.Context) error {
		rep, err := runner.RunAll(ctx, specs)
		if metricsFile != "" {
			if werr := prometheus.WriteToTextfile(metricsFile, reg); werr != nil {
				a.logger.Error("writing metrics failed", slog.String("path", metricsFile), slog.String("error", werr.Error()))
			}
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "run %s: %d searches, %d found, %d without path, %d failed\n",
			rep.ID, rep.Totals.Jobs, rep.Totals.Found, rep.Totals.NotFound, rep.Totals.Failed)
		for _, o := range rep.Failed() {
			a.logger.Error("search failed", slog.Int("maze", o.Maze), slog.String("strategy", o.Strategy.Key()),
				slog.String("error", o.Err.Error()))
		}
		if rep.Totals.Failed > 0 {
			return fmt.Errorf("%d of %d searches failed", rep.Totals.Failed, rep.Totals.Jobs)
		}
		return nil
	}

	ctx := cmd.Context()
	err = once(ctx)
	if !fl.watch {
		return err
	}
	if err != nil {
		a.logger.Error("initial run failed", slog.String("error", err.Error()))
	}

	inputs := make([]string, len(specs))
	for i, s := range specs {
		inputs[i] = s.Input
	}
	return runner.Watch(ctx, inputs, once)
}
