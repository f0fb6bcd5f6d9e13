package grid

import (
	"fmt"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice of states.
// It deep-copies the input and scans every cell once (row-major) to locate
// Start and Goal.
//
// Returns ErrEmptyGrid, ErrNonRectangular, ErrMissingEndpoint or
// ErrDuplicateEndpoint; all of them wrap ErrMalformedGrid.
// Complexity: O(W×H) time and memory.
func New(cells [][]CellState) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for r, row := range cells {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
	}
	// Deep copy to prevent external mutation
	cp := make([][]CellState, h)
	for r := 0; r < h; r++ {
		cp[r] = make([]CellState, w)
		copy(cp[r], cells[r])
	}
	g := &Grid{rows: h, cols: w, cells: cp}
	if err := g.locateEndpoints(); err != nil {
		return nil, err
	}

	return g, nil
}

// Parse decodes maze text lines (one row per line) into a Grid.
// Each byte must be one of S, G, X or _; anything else, including the
// output-only P, yields ErrUnknownSymbol with the offending row and column.
func Parse(lines []string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]CellState, len(lines))
	for r, line := range lines {
		row := make([]CellState, len(line))
		for c := 0; c < len(line); c++ {
			st, ok := StateOf(line[c])
			if !ok {
				return nil, fmt.Errorf("%w %q at row %d, col %d", ErrUnknownSymbol, line[c], r, c)
			}
			row[c] = st
		}
		cells[r] = row
	}

	return New(cells)
}

// MustParse is like Parse but panics on error. Intended for fixtures.
func MustParse(lines ...string) *Grid {
	g, err := Parse(lines)
	if err != nil {
		panic(err)
	}
	return g
}

// locateEndpoints records the unique Start and Goal coordinates.
func (g *Grid) locateEndpoints() error {
	start, goal := NoCoordinate, NoCoordinate
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			switch g.cells[r][c] {
			case Start:
				if start != NoCoordinate {
					return fmt.Errorf("%w: second start at %v (first at %v)", ErrDuplicateEndpoint, C(r, c), start)
				}
				start = C(r, c)
			case Goal:
				if goal != NoCoordinate {
					return fmt.Errorf("%w: second goal at %v (first at %v)", ErrDuplicateEndpoint, C(r, c), goal)
				}
				goal = C(r, c)
			}
		}
	}
	if start == NoCoordinate {
		return fmt.Errorf("%w: no start cell", ErrMissingEndpoint)
	}
	if goal == NoCoordinate {
		return fmt.Errorf("%w: no goal cell", ErrMissingEndpoint)
	}
	g.start, g.goal = start, goal

	return nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Start returns the start coordinate found at construction.
func (g *Grid) Start() Coordinate { return g.start }

// Goal returns the goal coordinate found at construction.
func (g *Grid) Goal() Coordinate { return g.goal }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// State returns the state at c and false when c is out of bounds.
func (g *Grid) State(c Coordinate) (CellState, bool) {
	if !g.InBounds(c) {
		return Open, false
	}
	return g.cells[c.Row][c.Col], true
}

// IsOpen reports whether c is in bounds and traversable (Open, Start or Goal).
// Path cells are not open: a marked grid is a result, not a search input.
func (g *Grid) IsOpen(c Coordinate) bool {
	st, ok := g.State(c)
	if !ok {
		return false
	}
	return st == Open || st == Start || st == Goal
}

// IsBlocked reports whether c is in bounds and Blocked.
func (g *Grid) IsBlocked(c Coordinate) bool {
	st, ok := g.State(c)
	return ok && st == Blocked
}

// IsGoal reports whether c is in bounds and holds the Goal.
func (g *Grid) IsGoal(c Coordinate) bool {
	st, ok := g.State(c)
	return ok && st == Goal
}

// Set overwrites the state at c. It does not move the recorded endpoints.
func (g *Grid) Set(c Coordinate, st CellState) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.rows, g.cols)
	}
	g.cells[c.Row][c.Col] = st
	return nil
}

// Clone returns an independent deep copy. Concurrent searches that mark
// their result must each work on their own clone.
func (g *Grid) Clone() *Grid {
	cp := make([][]CellState, g.rows)
	for r := range g.cells {
		cp[r] = make([]CellState, g.cols)
		copy(cp[r], g.cells[r])
	}
	return &Grid{rows: g.rows, cols: g.cols, cells: cp, start: g.start, goal: g.goal}
}

// Count returns how many cells hold st.
func (g *Grid) Count(st CellState) int {
	n := 0
	for _, row := range g.cells {
		for _, s := range row {
			if s == st {
				n++
			}
		}
	}
	return n
}

// Lines renders each row as a string of symbols.
func (g *Grid) Lines() []string {
	out := make([]string, g.rows)
	buf := make([]byte, g.cols)
	for r, row := range g.cells {
		for c, st := range row {
			buf[c] = st.Symbol()
		}
		out[r] = string(buf)
	}
	return out
}

// String renders the grid as newline-separated rows without a trailing newline.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}
