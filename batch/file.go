package batch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/mazeio"
)

// RunSpec names one input file, its output file and the connectivity.
// With Append set, results are appended to Output instead of replacing it.
type RunSpec struct {
	Input        string
	Output       string
	Connectivity grid.Connectivity
	Append       bool
}

// RunReport summarises one RunFile call.
type RunReport struct {
	Spec     RunSpec
	Mazes    int
	Skipped  int
	Outcomes []Outcome
	Duration time.Duration
}

// Totals aggregates outcome counts.
type Totals struct {
	Jobs, Found, NotFound, Failed int
}

// Report is the result of RunAll.
type Report struct {
	ID       uuid.UUID
	Started  time.Time
	Duration time.Duration
	Runs     []RunReport
	Totals   Totals
}

// Failed returns every outcome carrying an error, across all runs.
func (rep *Report) Failed() []Outcome {
	var out []Outcome
	for _, run := range rep.Runs {
		for _, o := range run.Outcomes {
			if o.Err != nil {
				out = append(out, o)
			}
		}
	}
	return out
}

func (t *Totals) add(outcomes []Outcome) {
	for _, o := range outcomes {
		t.Jobs++
		switch {
		case o.Err != nil:
			t.Failed++
		case o.Found:
			t.Found++
		default:
			t.NotFound++
		}
	}
}

// RunFile reads spec.Input, solves it and writes spec.Output.
// Malformed mazes are logged and left out of the output.
func (r *Runner) RunFile(ctx context.Context, spec RunSpec) (RunReport, error) {
	rep := RunReport{Spec: spec}
	start := time.Now()

	mazes, err := mazeio.ReadFile(spec.Input)
	if err != nil {
		return rep, err
	}
	rep.Mazes = len(mazes)
	for _, m := range mazes {
		if m.Err != nil {
			rep.Skipped++
			r.logger.Warn("skipping malformed maze",
				slog.String("input", spec.Input),
				slog.Int("maze", m.Index),
				slog.Int("line", m.Line),
				slog.String("error", m.Err.Error()),
			)
		}
	}
	r.metrics.skipped(rep.Skipped)

	rep.Outcomes, err = r.Run(ctx, mazes, spec.Connectivity)
	if err != nil {
		return rep, err
	}
	if err := writeOutcomes(spec.Output, spec.Append, rep.Outcomes); err != nil {
		return rep, err
	}
	rep.Duration = time.Since(start)

	var t Totals
	t.add(rep.Outcomes)
	r.logger.Info("run complete",
		slog.String("input", spec.Input),
		slog.String("output", spec.Output),
		slog.String("connectivity", spec.Connectivity.String()),
		slog.Int("mazes", rep.Mazes),
		slog.Int("skipped", rep.Skipped),
		slog.Int("found", t.Found),
		slog.Int("not_found", t.NotFound),
		slog.Int("failed", t.Failed),
		slog.Duration("duration", rep.Duration),
	)

	return rep, nil
}

func writeOutcomes(path string, appendTo bool, outcomes []Outcome) (err error) {
	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if appendTo {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("batch: close %s: %w", path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	for _, o := range outcomes {
		if err := mazeio.WriteResult(w, o.Strategy.String(), o.Grid); err != nil {
			return fmt.Errorf("batch: write %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("batch: write %s: %w", path, err)
	}
	return nil
}

// RunAll executes specs in order. A failing run is logged and does not stop
// the others; all run errors are joined in the returned error. Context
// cancellation stops immediately.
func (r *Runner) RunAll(ctx context.Context, specs []RunSpec) (*Report, error) {
	rep := &Report{ID: uuid.New(), Started: time.Now()}
	log := r.logger.With(slog.String("run_id", rep.ID.String()))
	log.Info("batch started", slog.Int("runs", len(specs)), slog.Int("workers", r.workers))

	var errs []error
	for _, spec := range specs {
		run, err := r.RunFile(ctx, spec)
		if err != nil {
			if ctx.Err() != nil {
				return rep, err
			}
			log.Error("run failed", slog.String("input", spec.Input), slog.String("error", err.Error()))
			errs = append(errs, err)
			continue
		}
		rep.Runs = append(rep.Runs, run)
		rep.Totals.add(run.Outcomes)
	}
	rep.Duration = time.Since(rep.Started)
	log.Info("batch finished",
		slog.Int("jobs", rep.Totals.Jobs),
		slog.Int("failed", rep.Totals.Failed),
		slog.Duration("duration", rep.Duration),
	)

	return rep, errors.Join(errs...)
}
