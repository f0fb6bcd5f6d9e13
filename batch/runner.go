package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/mazeio"
	"github.com/katalvlaran/mazepath/route"
	"github.com/katalvlaran/mazepath/search"
)

// Runner executes search jobs. It is safe for concurrent use once built.
type Runner struct {
	logger        *slog.Logger
	metrics       *Metrics
	tracer        trace.Tracer
	workers       int
	strategies    []search.Strategy
	verify        bool
	maxExpansions int
	searchOpts    []search.Option
	debounce      time.Duration
}

// New returns a Runner running Greedy then A* on every maze unless
// WithStrategies says otherwise.
func New(opts ...Option) *Runner {
	r := &Runner{
		logger:     slog.Default(),
		tracer:     defaultTracer(),
		strategies: []search.Strategy{search.Greedy, search.AStar},
		debounce:   200 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.workers <= 0 {
		r.workers = runtime.GOMAXPROCS(0)
	}
	return r
}

type job struct {
	slot     int
	maze     mazeio.Maze
	strategy search.Strategy
}

// Run solves every well-formed maze with every configured strategy under conn.
// Mazes carrying a parse error are skipped. Individual job failures are
// reported in Outcome.Err; only context cancellation aborts the whole run.
func (r *Runner) Run(ctx context.Context, mazes []mazeio.Maze, conn grid.Connectivity) ([]Outcome, error) {
	if len(r.strategies) == 0 {
		return nil, ErrNoStrategies
	}

	var jobs []job
	for _, m := range mazes {
		if m.Err != nil || m.Grid == nil {
			continue
		}
		for _, s := range r.strategies {
			jobs = append(jobs, job{slot: len(jobs), maze: m, strategy: s})
		}
	}

	out := make([]Outcome, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for _, j := range jobs {
		if gctx.Err() != nil {
			break
		}
		j := j
		g.Go(func() error {
			o := r.solve(gctx, j, conn)
			out[j.slot] = o
			if errors.Is(o.Err, context.Canceled) || errors.Is(o.Err, context.DeadlineExceeded) {
				return o.Err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// solve runs one job on a private clone of the maze.
func (r *Runner) solve(ctx context.Context, j job, conn grid.Connectivity) Outcome {
	ctx, span := r.tracer.Start(ctx, "batch.solve", trace.WithAttributes(
		attribute.Int("maze.index", j.maze.Index),
		attribute.String("search.strategy", j.strategy.Key()),
		attribute.String("search.connectivity", conn.String()),
	))
	defer span.End()

	o := Outcome{Maze: j.maze.Index, Line: j.maze.Line, Strategy: j.strategy, Steps: -1}
	g := j.maze.Grid.Clone()
	o.Grid = g

	opts := make([]search.Option, 0, len(r.searchOpts)+4)
	opts = append(opts,
		search.WithStrategy(j.strategy),
		search.WithConnectivity(conn),
		search.WithContext(ctx),
		search.WithMaxExpansions(r.maxExpansions),
	)
	opts = append(opts, r.searchOpts...)

	start := time.Now()
	res, err := search.Search(g, opts...)
	o.Duration = time.Since(start)
	if res != nil {
		o.Expanded = res.Expanded
		o.StalePops = res.StalePops
	}

	switch {
	case errors.Is(err, search.ErrPathNotFound):
	case err != nil:
		o.Err = fmt.Errorf("maze %d %s: %w", j.maze.Index, j.strategy, err)
	default:
		o.Found = true
		o.Steps = res.Steps()
		if merr := route.Mark(g, res.Path, conn); merr != nil {
			o.Err = fmt.Errorf("maze %d %s: %w", j.maze.Index, j.strategy, merr)
		}
	}

	if o.Err == nil && r.verify && j.strategy == search.AStar {
		o.Err = r.check(j.maze, conn, o)
	}

	span.SetAttributes(
		attribute.Bool("search.found", o.Found),
		attribute.Int("search.steps", o.Steps),
		attribute.Int("search.expanded", o.Expanded),
	)
	if o.Err != nil {
		span.RecordError(o.Err)
		span.SetStatus(codes.Error, o.Err.Error())
	}
	r.metrics.observe(o, conn.String())
	r.logger.Debug("search finished",
		slog.Int("maze", o.Maze),
		slog.String("strategy", o.Strategy.Key()),
		slog.String("connectivity", conn.String()),
		slog.Bool("found", o.Found),
		slog.Int("steps", o.Steps),
		slog.Int("expanded", o.Expanded),
		slog.Duration("duration", o.Duration),
	)

	return o
}

// check compares an A* outcome with the breadth-first shortest distance.
func (r *Runner) check(m mazeio.Maze, conn grid.Connectivity, o Outcome) error {
	want, err := bfs.Distance(m.Grid, conn)
	if err != nil && !errors.Is(err, bfs.ErrNoPath) {
		return fmt.Errorf("maze %d verify: %w", m.Index, err)
	}
	if err != nil {
		want = -1
	}
	if want != o.Steps {
		return fmt.Errorf("%w: maze %d has %d steps, shortest is %d", ErrSuboptimal, m.Index, o.Steps, want)
	}
	return nil
}
