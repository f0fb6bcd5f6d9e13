package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and mutation.
var (
	// ErrMalformedGrid is wrapped by every construction error, so callers can
	// treat "this maze is unusable" uniformly.
	ErrMalformedGrid = errors.New("grid: malformed grid")
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrMalformedGrid)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedGrid)
	// ErrUnknownSymbol indicates a character that does not encode a cell state.
	ErrUnknownSymbol = fmt.Errorf("%w: unknown cell symbol", ErrMalformedGrid)
	// ErrMissingEndpoint indicates the grid has no Start or no Goal cell.
	ErrMissingEndpoint = fmt.Errorf("%w: missing start or goal", ErrMalformedGrid)
	// ErrDuplicateEndpoint indicates more than one Start or Goal cell.
	ErrDuplicateEndpoint = fmt.Errorf("%w: duplicate start or goal", ErrMalformedGrid)
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// Connectivity selects the movement model: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 allows moves up, down, left and right.
	Conn4 Connectivity = iota
	// Conn8 additionally allows the four diagonal moves.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "conn4"
	case Conn8:
		return "conn8"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

// ParseConnectivity accepts "conn4"/"4"/"updown" and "conn8"/"8"/"diagonal".
func ParseConnectivity(s string) (Connectivity, error) {
	switch s {
	case "conn4", "4", "updown", "up-down":
		return Conn4, nil
	case "conn8", "8", "diagonal":
		return Conn8, nil
	}
	return Conn4, fmt.Errorf("grid: unknown connectivity %q", s)
}

// CellState is the content of a single cell.
type CellState uint8

const (
	// Open is a free cell.
	Open CellState = iota
	// Blocked is a wall.
	Blocked
	// Start is the unique start cell.
	Start
	// Goal is the unique goal cell.
	Goal
	// Path marks a cell on a reconstructed route.
	Path
)

// Symbol returns the maze text symbol for the state.
func (s CellState) Symbol() byte {
	switch s {
	case Open:
		return '_'
	case Blocked:
		return 'X'
	case Start:
		return 'S'
	case Goal:
		return 'G'
	case Path:
		return 'P'
	default:
		return '?'
	}
}

// String returns the symbol as a one-character string.
func (s CellState) String() string { return string(s.Symbol()) }

// StateOf decodes a maze input symbol. Path is output only, so 'P' is
// not accepted.
func StateOf(b byte) (CellState, bool) {
	switch b {
	case '_':
		return Open, true
	case 'X':
		return Blocked, true
	case 'S':
		return Start, true
	case 'G':
		return Goal, true
	}
	return Open, false
}

// Coordinate identifies a cell by row and column. It is a comparable value
// and is used directly as a map key.
type Coordinate struct {
	Row, Col int
}

// NoCoordinate is the "no predecessor" sentinel stored for the start cell.
var NoCoordinate = Coordinate{Row: -1, Col: -1}

// C is shorthand for Coordinate{Row: row, Col: col}.
func C(row, col int) Coordinate { return Coordinate{Row: row, Col: col} }

// Less orders coordinates row-major.
func (c Coordinate) Less(o Coordinate) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// String formats the coordinate as "(row,col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is a rectangular maze. Its shape never changes after construction;
// cell states change only through Set (used when a route is marked).
// cells[r][c] holds the state of row r, column c.
type Grid struct {
	rows, cols int
	cells      [][]CellState
	start      Coordinate
	goal       Coordinate
}
