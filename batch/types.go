package batch

import (
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/search"
)

var (
	// ErrSuboptimal marks an A* outcome whose step count disagrees with
	// the breadth-first shortest distance.
	ErrSuboptimal = errors.New("batch: A* result is not a shortest path")
	// ErrNoStrategies indicates a Runner configured without strategies.
	ErrNoStrategies = errors.New("batch: no strategies configured")
)

// Outcome is the result of one strategy on one maze.
type Outcome struct {
	Maze     int
	Line     int
	Strategy search.Strategy
	Found    bool
	// Steps is len(path)-1, or -1 when no path was found.
	Steps     int
	Expanded  int
	StalePops int
	Duration  time.Duration
	// Grid is the maze with the path marked. It is left unmarked when no
	// path was found or the job failed.
	Grid *grid.Grid
	Err  error
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics attaches Prometheus instruments.
func WithMetrics(m *Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// WithTracerProvider sets the provider for job spans. Default: the global one.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(r *Runner) {
		if tp != nil {
			r.tracer = tp.Tracer(tracerName)
		}
	}
}

// WithWorkers bounds concurrent jobs; n <= 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(r *Runner) { r.workers = n }
}

// WithStrategies sets the strategies applied to every maze, in output order.
func WithStrategies(s ...search.Strategy) Option {
	return func(r *Runner) { r.strategies = append([]search.Strategy(nil), s...) }
}

// WithVerify checks every A* outcome against a breadth-first search.
func WithVerify(v bool) Option {
	return func(r *Runner) { r.verify = v }
}

// WithMaxExpansions caps each search; 0 means unlimited.
func WithMaxExpansions(n int) Option {
	return func(r *Runner) { r.maxExpansions = n }
}

// WithSearchOptions appends options passed to every search.Search call.
func WithSearchOptions(opts ...search.Option) Option {
	return func(r *Runner) { r.searchOpts = append(r.searchOpts, opts...) }
}

// WithDebounce sets the quiet period Watch waits before firing. Default 200ms.
func WithDebounce(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.debounce = d
		}
	}
}

const tracerName = "github.com/katalvlaran/mazepath/batch"

func defaultTracer() trace.Tracer {
	return otel.GetTracerProvider().Tracer(tracerName)
}
