// Package route turns a search backpointer map into a path and marks that
// path on a grid.
//
// Walk is read-only. Mark and Apply mutate the grid: every cell strictly
// between start and goal becomes grid.Path, while the Start and Goal cells
// keep their own states.
//
// Errors:
//
//   - ErrBrokenPath: the walk reached a coordinate with no predecessor (or
//     looped) before arriving at start. This indicates a defect in whatever
//     produced the map and must not be masked by truncating the path.
//   - ErrNotAdjacent: Mark was given a path whose consecutive coordinates
//     are not neighbors.
//   - ErrNotOpen: Mark was given a path through a Blocked or Path cell.
package route

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/heuristic"
)

var (
	// ErrBrokenPath indicates an inconsistent backpointer map.
	ErrBrokenPath = errors.New("route: broken path")
	// ErrNotAdjacent indicates a path with a gap between two coordinates.
	ErrNotAdjacent = errors.New("route: consecutive path coordinates are not adjacent")
	// ErrNotOpen indicates a path coordinate on a Blocked or already marked cell.
	ErrNotOpen = errors.New("route: path crosses a cell that is not open")
)

// Walk follows cameFrom from goal back to start and returns the path in
// start..goal order. start must map to grid.NoCoordinate or be reached
// before its own lookup. When start == goal the path is [start].
// Complexity: O(L) for a path of L coordinates.
func Walk(cameFrom map[grid.Coordinate]grid.Coordinate, start, goal grid.Coordinate) ([]grid.Coordinate, error) {
	path := []grid.Coordinate{goal}
	limit := len(cameFrom) + 1
	for cur := goal; cur != start; {
		prev, ok := cameFrom[cur]
		if !ok || prev == grid.NoCoordinate {
			return nil, fmt.Errorf("%w: %v has no predecessor (walking %v→%v)", ErrBrokenPath, cur, goal, start)
		}
		if len(path) > limit {
			return nil, fmt.Errorf("%w: cycle detected at %v", ErrBrokenPath, cur)
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Mark writes grid.Path onto every coordinate of path except cells holding
// Start or Goal. Consecutive coordinates must be adjacent under conn and
// every coordinate must be traversable; the whole path is checked before
// any cell is written, so g is left untouched on error.
func Mark(g *grid.Grid, path []grid.Coordinate, conn grid.Connectivity) error {
	for i, c := range path {
		st, ok := g.State(c)
		if !ok {
			return fmt.Errorf("route: mark %v: %w", c, grid.ErrOutOfBounds)
		}
		if st == grid.Blocked || st == grid.Path {
			return fmt.Errorf("%w: %v holds %v", ErrNotOpen, c, st)
		}
		if i > 0 && !heuristic.Adjacent(conn, path[i-1], c) {
			return fmt.Errorf("%w: %v → %v under %v", ErrNotAdjacent, path[i-1], c, conn)
		}
	}
	for _, c := range path {
		if st, _ := g.State(c); st == grid.Start || st == grid.Goal {
			continue
		}
		if err := g.Set(c, grid.Path); err != nil {
			return err
		}
	}
	return nil
}

// Apply walks cameFrom from goal back to start and marks the result on g.
// start and goal are passed explicitly so that maps built with overridden
// endpoints (search.WithStart, search.WithGoal) resolve; for a plain search
// they are g.Start() and g.Goal(). It returns the path it marked.
func Apply(g *grid.Grid, cameFrom map[grid.Coordinate]grid.Coordinate, start, goal grid.Coordinate, conn grid.Connectivity) ([]grid.Coordinate, error) {
	path, err := Walk(cameFrom, start, goal)
	if err != nil {
		return nil, err
	}
	if err = Mark(g, path, conn); err != nil {
		return nil, err
	}
	return path, nil
}
