// Package mazegen generates random mazes for exercising the search
// packages.
//
// A generated maze has a blocked border, interior cells blocked with a
// fixed probability, and distinct Start and Goal cells drawn uniformly from
// the interior. Unless WithSolvable is given nothing guarantees the goal is
// reachable; unreachable mazes are useful test inputs too.
//
// Determinism is explicit: seeding is done via WithSeed or WithRand.
package mazegen

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/regions"
)

// DefaultBlockedProbability is the share of interior cells turned into walls.
const DefaultBlockedProbability = 0.3

var (
	// ErrTooSmall indicates a maze whose interior cannot hold both endpoints.
	ErrTooSmall = errors.New("mazegen: maze too small")
	// ErrBadProbability indicates a blocked probability outside [0,1].
	ErrBadProbability = errors.New("mazegen: blocked probability must be within [0,1]")
	// ErrUnsolvable indicates WithSolvable could not produce a solvable maze
	// within the attempt budget.
	ErrUnsolvable = errors.New("mazegen: no solvable maze within attempt budget")
)

// DefaultMaxAttempts bounds the redraws made for WithSolvable.
const DefaultMaxAttempts = 1000

// Option customizes Generate.
type Option func(*config)

type config struct {
	rng         *rand.Rand
	blocked     float64
	solvable    bool
	conn        grid.Connectivity
	maxAttempts int
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("mazegen: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithBlockedProbability sets the chance that an interior cell is a wall.
// NaN and values outside [0,1] make Generate fail with ErrBadProbability.
func WithBlockedProbability(p float64) Option {
	return func(c *config) {
		c.blocked = p
	}
}

// WithSolvable redraws the maze until the goal is reachable from the start
// under conn, giving up with ErrUnsolvable after the attempt budget.
func WithSolvable(conn grid.Connectivity) Option {
	return func(c *config) {
		c.solvable = true
		c.conn = conn
	}
}

// WithMaxAttempts sets the WithSolvable attempt budget (minimum 1).
func WithMaxAttempts(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = 1
		}
		c.maxAttempts = n
	}
}

// Generate builds a rows×cols maze. The interior (rows-2)×(cols-2) must hold
// at least two cells.
// Complexity: O(rows×cols).
func Generate(rows, cols int, opts ...Option) (*grid.Grid, error) {
	cfg := config{blocked: DefaultBlockedProbability, maxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		opt(&cfg)
	}
	if math.IsNaN(cfg.blocked) || cfg.blocked < 0 || cfg.blocked > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrBadProbability, cfg.blocked)
	}
	if rows < 3 || cols < 3 || (rows-2)*(cols-2) < 2 {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooSmall, rows, cols)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if !cfg.solvable {
		return draw(rows, cols, cfg)
	}
	for i := 0; i < cfg.maxAttempts; i++ {
		g, err := draw(rows, cols, cfg)
		if err != nil {
			return nil, err
		}
		if regions.Reachable(g, cfg.conn) {
			return g, nil
		}
	}
	return nil, fmt.Errorf("%w: %d attempts at %dx%d, p=%v", ErrUnsolvable, cfg.maxAttempts, rows, cols, cfg.blocked)
}

// draw builds one maze from cfg.rng.
func draw(rows, cols int, cfg config) (*grid.Grid, error) {
	rng := cfg.rng
	interior := func() grid.Coordinate {
		return grid.C(1+rng.Intn(rows-2), 1+rng.Intn(cols-2))
	}
	start := interior()
	goal := interior()
	for goal == start {
		goal = interior()
	}

	cells := make([][]grid.CellState, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]grid.CellState, cols)
		for c := 0; c < cols; c++ {
			switch {
			case r == 0 || r == rows-1 || c == 0 || c == cols-1:
				cells[r][c] = grid.Blocked
			case rng.Float64() < cfg.blocked:
				cells[r][c] = grid.Blocked
			default:
				cells[r][c] = grid.Open
			}
		}
	}
	cells[start.Row][start.Col] = grid.Start
	cells[goal.Row][goal.Col] = grid.Goal

	return grid.New(cells)
}
