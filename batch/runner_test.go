package batch_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/mazepath/batch"
	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/heuristic"
	"github.com/katalvlaran/mazepath/mazeio"
	"github.com/katalvlaran/mazepath/search"
)

// mixedInput holds a solvable maze, a malformed one and an unreachable one.
const mixedInput = "S__\n_X_\n__G\n\nS__\n__\n\nSXG\n"

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parse(t *testing.T, in string) []mazeio.Maze {
	t.Helper()
	mazes, err := mazeio.ParseAll(strings.NewReader(in))
	require.NoError(t, err)
	return mazes
}

func TestRun_OrderAndResults(t *testing.T) {
	mazes := parse(t, mixedInput)
	r := batch.New(batch.WithLogger(quietLogger()), batch.WithWorkers(3))

	out, err := r.Run(context.Background(), mazes, grid.Conn4)
	require.NoError(t, err)
	require.Len(t, out, 4)

	type row struct {
		maze     int
		strategy search.Strategy
		found    bool
		steps    int
		expanded int
		grid     string
	}
	want := []row{
		{0, search.Greedy, true, 4, 4, "SPP\n_XP\n__G"},
		{0, search.AStar, true, 4, 7, "SPP\n_XP\n__G"},
		{2, search.Greedy, false, -1, 1, "SXG"},
		{2, search.AStar, false, -1, 1, "SXG"},
	}
	for i, w := range want {
		o := out[i]
		assert.NoError(t, o.Err)
		assert.Equal(t, w.maze, o.Maze, "outcome %d", i)
		assert.Equal(t, w.strategy, o.Strategy, "outcome %d", i)
		assert.Equal(t, w.found, o.Found, "outcome %d", i)
		assert.Equal(t, w.steps, o.Steps, "outcome %d", i)
		assert.Equal(t, w.expanded, o.Expanded, "outcome %d", i)
		assert.Equal(t, w.grid, o.Grid.String(), "outcome %d", i)
	}

	// inputs stay untouched
	assert.Equal(t, "S__\n_X_\n__G", mazes[0].Grid.String())
}

func TestRun_Verify(t *testing.T) {
	mazes := parse(t, "GX____\n____S_\nX___X_\nX_X_X_\n")
	inflated := func(a, b grid.Coordinate) int { return 10 * heuristic.Manhattan(a, b) }

	r := batch.New(
		batch.WithLogger(quietLogger()),
		batch.WithStrategies(search.AStar),
		batch.WithVerify(true),
		batch.WithSearchOptions(search.WithHeuristic(inflated)),
	)
	out, err := r.Run(context.Background(), mazes, grid.Conn4)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, out[0].Found)
	assert.Equal(t, 7, out[0].Steps)
	assert.ErrorIs(t, out[0].Err, batch.ErrSuboptimal)

	r = batch.New(batch.WithLogger(quietLogger()), batch.WithStrategies(search.AStar), batch.WithVerify(true))
	out, err = r.Run(context.Background(), mazes, grid.Conn4)
	require.NoError(t, err)
	assert.NoError(t, out[0].Err)
	assert.Equal(t, 5, out[0].Steps)
}

func TestRun_ExpansionLimit(t *testing.T) {
	r := batch.New(batch.WithLogger(quietLogger()), batch.WithMaxExpansions(1))
	out, err := r.Run(context.Background(), parse(t, "S__\n_X_\n__G\n"), grid.Conn4)
	require.NoError(t, err)
	require.Len(t, out, 2)
	for _, o := range out {
		assert.ErrorIs(t, o.Err, search.ErrExpansionLimit)
		assert.False(t, o.Found)
		assert.Equal(t, "S__\n_X_\n__G", o.Grid.String())
	}
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := batch.New(batch.WithLogger(quietLogger())).Run(ctx, parse(t, mixedInput), grid.Conn8)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_NoStrategies(t *testing.T) {
	_, err := batch.New(batch.WithStrategies()).Run(context.Background(), nil, grid.Conn4)
	assert.ErrorIs(t, err, batch.ErrNoStrategies)
}

func TestRun_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := batch.NewMetrics(reg)
	r := batch.New(batch.WithLogger(quietLogger()), batch.WithMetrics(m))

	_, err := r.Run(context.Background(), parse(t, mixedInput), grid.Conn4)
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Jobs.WithLabelValues("astar", "conn4", batch.ResultFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Jobs.WithLabelValues("greedy", "conn4", batch.ResultNotFound)))
	assert.Equal(t, 2, testutil.CollectAndCount(m.Expanded))
	assert.Equal(t, 4, testutil.CollectAndCount(m.Jobs))
}

func TestRun_Spans(t *testing.T) {
	exp := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	r := batch.New(
		batch.WithLogger(quietLogger()),
		batch.WithTracerProvider(tp),
		batch.WithStrategies(search.AStar),
		batch.WithMaxExpansions(1),
	)
	_, err := r.Run(context.Background(), parse(t, "S__\n_X_\n__G\n\nSG\n"), grid.Conn4)
	require.NoError(t, err)

	spans := exp.GetSpans()
	require.Len(t, spans, 2)
	codesByName := map[codes.Code]int{}
	for _, s := range spans {
		assert.Equal(t, "batch.solve", s.Name)
		codesByName[s.Status.Code]++
	}
	assert.Equal(t, 1, codesByName[codes.Error])
}
