package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/heuristic"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrPathNotFound indicates the goal is unreachable from the start under
	// the chosen movement model.
	ErrPathNotFound = errors.New("search: no path found")

	// ErrExpansionLimit indicates the MaxExpansions ceiling was hit.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrEndpointNotOpen indicates an overridden start or goal on a blocked
	// or out-of-bounds cell.
	ErrEndpointNotOpen = errors.New("search: endpoint is not an open cell")
)

// Strategy selects the frontier ordering.
type Strategy int

const (
	// AStar orders by cost so far plus heuristic.
	AStar Strategy = iota
	// Greedy orders by heuristic only and never reopens a coordinate.
	Greedy
)

// String returns the label used in maze output files: "A*" or "Greedy".
func (s Strategy) String() string {
	switch s {
	case AStar:
		return "A*"
	case Greedy:
		return "Greedy"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Key returns the lower-case configuration key: "astar" or "greedy".
func (s Strategy) Key() string {
	switch s {
	case AStar:
		return "astar"
	case Greedy:
		return "greedy"
	default:
		return "unknown"
	}
}

// ParseStrategy accepts "astar", "a*", "greedy" (case-sensitive).
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "astar", "a*", "A*", "a-star":
		return AStar, nil
	case "greedy", "Greedy":
		return Greedy, nil
	}
	return AStar, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, s)
}

// Options configures a single search invocation.
//
// Strategy      – AStar (default) or Greedy.
// Connectivity  – grid.Conn4 (default) or grid.Conn8.
// Heuristic     – nil means heuristic.ForConnectivity(Connectivity).
// Start, Goal   – nil means the grid's own endpoints.
// Ctx           – checked once per pop; default context.Background().
// MaxExpansions – 0 disables the ceiling; must be ≥ 0.
type Options struct {
	Strategy      Strategy
	Connectivity  grid.Connectivity
	Heuristic     heuristic.Func
	Start         *grid.Coordinate
	Goal          *grid.Coordinate
	Ctx           context.Context
	MaxExpansions int

	// OnPush is called for every frontier push with the entry's priority.
	OnPush func(c grid.Coordinate, priority int)
	// OnExpand is called for every non-stale pop that is not the goal,
	// right before its neighbors are generated.
	OnExpand func(c grid.Coordinate)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns A* over Conn4 with the matching heuristic, the
// grid's endpoints, no ceiling and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Strategy:     AStar,
		Connectivity: grid.Conn4,
		Ctx:          context.Background(),
		OnPush:       func(grid.Coordinate, int) {},
		OnExpand:     func(grid.Coordinate) {},
	}
}

// WithStrategy selects AStar or Greedy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != AStar && s != Greedy {
			o.err = fmt.Errorf("%w: strategy %d", ErrOptionViolation, int(s))
			return
		}
		o.Strategy = s
	}
}

// WithConnectivity selects the movement model.
func WithConnectivity(c grid.Connectivity) Option {
	return func(o *Options) {
		if c != grid.Conn4 && c != grid.Conn8 {
			o.err = fmt.Errorf("%w: connectivity %d", ErrOptionViolation, int(c))
			return
		}
		o.Connectivity = c
	}
}

// WithHeuristic overrides the heuristic. A non-admissible function voids
// the A* optimality guarantee.
func WithHeuristic(h heuristic.Func) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithStart searches from c instead of the grid's Start cell.
func WithStart(c grid.Coordinate) Option {
	return func(o *Options) { o.Start = &c }
}

// WithGoal searches towards c instead of the grid's Goal cell. The goal
// test becomes coordinate equality.
func WithGoal(c grid.Coordinate) Option {
	return func(o *Options) { o.Goal = &c }
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions aborts the search with ErrExpansionLimit after n
// expansions. n == 0 disables the ceiling; n < 0 is an option violation.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnPush registers a callback for frontier pushes.
func WithOnPush(fn func(c grid.Coordinate, priority int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithOnExpand registers a callback for expansions.
func WithOnExpand(fn func(c grid.Coordinate)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result is the outcome of one search invocation. It is owned by the
// caller; nothing in it is shared with other invocations.
//
// CameFrom maps every discovered coordinate to its predecessor; Start maps
// to grid.NoCoordinate. CostSoFar is nil for Greedy.
// Path runs from Start to Goal and is nil when Found is false.
type Result struct {
	Strategy     Strategy
	Connectivity grid.Connectivity
	Start, Goal  grid.Coordinate
	Found        bool
	Path         []grid.Coordinate
	CameFrom     map[grid.Coordinate]grid.Coordinate
	CostSoFar    map[grid.Coordinate]int

	// Expanded counts non-stale pops whose neighbors were generated.
	Expanded int
	// Pushed counts frontier pushes, the initial one included.
	Pushed int
	// StalePops counts pops discarded as outdated duplicates.
	StalePops int
}

// Steps returns the number of moves on Path, or -1 when no path was found.
func (r *Result) Steps() int {
	if r == nil || !r.Found {
		return -1
	}
	return len(r.Path) - 1
}
