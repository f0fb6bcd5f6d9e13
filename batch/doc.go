// Package batch solves many mazes concurrently and writes the marked results.
//
// A Runner fans (maze, strategy) jobs out over a bounded errgroup. Every job
// searches its own clone of the maze, so marking never races. Outcomes come
// back in input order: maze by maze, and within a maze in strategy order.
//
// RunFile reads one input file, runs it and writes the output file in the
// text format of package mazeio. RunAll executes several such runs and
// returns a Report tagged with a run ID. Watch re-runs a callback whenever
// watched input files change.
//
// Observability: each job gets an OpenTelemetry span and, when Metrics are
// attached, Prometheus counters and histograms. Per-run timing is logged
// through log/slog.
package batch
