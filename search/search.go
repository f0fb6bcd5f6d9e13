package search

import (
	"fmt"

	"github.com/katalvlaran/mazepath/frontier"
	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/heuristic"
	"github.com/katalvlaran/mazepath/route"
)

// Search runs the configured strategy on g and returns the outcome.
// g is only read; marking the path is the caller's decision (see route.Mark).
//
// Returns:
//
//   - (*Result, nil) when the goal was popped; Result.Path holds start..goal.
//   - (*Result, ErrPathNotFound) when the frontier emptied first. The Result
//     carries the explored maps and counters, Found=false and a nil Path.
//   - (nil, err) for invalid input, options, cancellation or ErrExpansionLimit.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Options must be valid (ErrOptionViolation).
//  3. Start and goal must be open cells (ErrEndpointNotOpen).
func Search(g *grid.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	r, err := newRunner(g, cfg)
	if err != nil {
		return nil, err
	}

	// Degenerate case: nothing to explore, no neighbor generation.
	if r.res.Start == r.res.Goal {
		r.res.Found = true
		r.res.Path = []grid.Coordinate{r.res.Start}
		return r.res, nil
	}

	r.init()
	found, err := r.process()
	if err != nil {
		return nil, err
	}
	if !found {
		return r.res, fmt.Errorf("%w: %v→%v under %v (%s, %d expanded)",
			ErrPathNotFound, r.res.Start, r.res.Goal, cfg.Connectivity, cfg.Strategy, r.res.Expanded)
	}

	path, err := route.Walk(r.res.CameFrom, r.res.Start, r.res.Goal)
	if err != nil {
		return nil, fmt.Errorf("search: %s result is inconsistent: %w", cfg.Strategy, err)
	}
	r.res.Found = true
	r.res.Path = path

	return r.res, nil
}

// GreedySearch is shorthand for Search with WithStrategy(Greedy) and WithConnectivity(conn).
func GreedySearch(g *grid.Grid, conn grid.Connectivity, opts ...Option) (*Result, error) {
	return Search(g, append([]Option{WithStrategy(Greedy), WithConnectivity(conn)}, opts...)...)
}

// AStarSearch is shorthand for Search with WithStrategy(AStar) and WithConnectivity(conn).
func AStarSearch(g *grid.Grid, conn grid.Connectivity, opts ...Option) (*Result, error) {
	return Search(g, append([]Option{WithStrategy(AStar), WithConnectivity(conn)}, opts...)...)
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g      *grid.Grid                 // read-only within Search
	opts   Options                    // validated configuration
	h      func(grid.Coordinate) int  // heuristic to the goal
	isGoal func(grid.Coordinate) bool // goal test
	pq     *frontier.Queue            // min-heap with lazy decrease-key
	buf    []grid.Coordinate          // neighbor buffer reused across expansions
	res    *Result
}

func newRunner(g *grid.Grid, cfg Options) (*runner, error) {
	start, goal := g.Start(), g.Goal()
	if cfg.Start != nil {
		start = *cfg.Start
	}
	if cfg.Goal != nil {
		goal = *cfg.Goal
	}
	if !g.IsOpen(start) {
		return nil, fmt.Errorf("%w: start %v", ErrEndpointNotOpen, start)
	}
	if !g.IsOpen(goal) {
		return nil, fmt.Errorf("%w: goal %v", ErrEndpointNotOpen, goal)
	}

	hf := cfg.Heuristic
	if hf == nil {
		hf = heuristic.ForConnectivity(cfg.Connectivity)
	}
	isGoal := g.IsGoal
	if cfg.Goal != nil {
		isGoal = func(c grid.Coordinate) bool { return c == goal }
	}

	n := g.Rows() * g.Cols()
	res := &Result{
		Strategy:     cfg.Strategy,
		Connectivity: cfg.Connectivity,
		Start:        start,
		Goal:         goal,
		CameFrom:     make(map[grid.Coordinate]grid.Coordinate, n),
	}
	if cfg.Strategy == AStar {
		res.CostSoFar = make(map[grid.Coordinate]int, n)
	}
	res.CameFrom[start] = grid.NoCoordinate

	return &runner{
		g:      g,
		opts:   cfg,
		h:      heuristic.ToGoal(hf, goal),
		isGoal: isGoal,
		pq:     frontier.New(n),
		buf:    make([]grid.Coordinate, 0, 8),
		res:    res,
	}, nil
}

// init seeds the frontier with the start coordinate.
func (r *runner) init() {
	priority := 0
	if r.opts.Strategy == AStar {
		r.res.CostSoFar[r.res.Start] = 0
		priority = r.h(r.res.Start)
	}
	r.push(r.res.Start, priority)
}

// process pops until the goal is popped (true) or the frontier is empty (false).
func (r *runner) process() (bool, error) {
	for {
		select {
		case <-r.opts.Ctx.Done():
			return false, r.opts.Ctx.Err()
		default:
		}

		e, ok := r.pq.PopMin()
		if !ok {
			return false, nil
		}
		if r.stale(e) {
			r.res.StalePops++
			continue
		}
		if r.isGoal(e.Coord) {
			return true, nil
		}
		if r.opts.MaxExpansions > 0 && r.res.Expanded >= r.opts.MaxExpansions {
			return false, fmt.Errorf("%w: %d expansions", ErrExpansionLimit, r.res.Expanded)
		}

		r.res.Expanded++
		r.opts.OnExpand(e.Coord)
		r.buf = r.g.AppendNeighbors(r.buf[:0], e.Coord, r.opts.Connectivity)
		if r.opts.Strategy == Greedy {
			r.expandGreedy(e.Coord)
		} else {
			r.expandAStar(e.Coord)
		}
	}
}

// stale reports whether e was superseded by a cheaper push of the same
// coordinate. Only A* produces duplicates: the cost encoded in the entry
// (priority minus heuristic) is compared with cost_so_far.
func (r *runner) stale(e frontier.Entry) bool {
	if r.opts.Strategy != AStar {
		return false
	}
	return e.Priority-r.h(e.Coord) > r.res.CostSoFar[e.Coord]
}

// expandGreedy pushes every neighbor not yet discovered, by heuristic only.
func (r *runner) expandGreedy(cur grid.Coordinate) {
	for _, next := range r.buf {
		if _, seen := r.res.CameFrom[next]; seen {
			continue
		}
		r.res.CameFrom[next] = cur
		r.push(next, r.h(next))
	}
}

// expandAStar relaxes every neighbor with unit step cost.
func (r *runner) expandAStar(cur grid.Coordinate) {
	newCost := r.res.CostSoFar[cur] + 1
	for _, next := range r.buf {
		if old, ok := r.res.CostSoFar[next]; ok && newCost >= old {
			continue
		}
		r.res.CostSoFar[next] = newCost
		r.res.CameFrom[next] = cur
		r.push(next, newCost+r.h(next))
	}
}

func (r *runner) push(c grid.Coordinate, priority int) {
	r.pq.Push(frontier.Entry{Priority: priority, Coord: c})
	r.res.Pushed++
	r.opts.OnPush(c, priority)
}
