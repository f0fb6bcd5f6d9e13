package grid

// Offsets are (row, col) deltas in emission order. The order is fixed so
// search traces are reproducible: the four orthogonal moves first, then
// the diagonals.
var (
	orthogonalOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalOffsets   = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// Neighbors returns the open, in-bounds neighbors of c under conn.
// Complexity: O(d), d = 4 or 8.
func (g *Grid) Neighbors(c Coordinate, conn Connectivity) []Coordinate {
	return g.AppendNeighbors(make([]Coordinate, 0, 8), c, conn)
}

// AppendNeighbors appends the open neighbors of c to dst and returns it.
// Search loops reuse one buffer across expansions.
func (g *Grid) AppendNeighbors(dst []Coordinate, c Coordinate, conn Connectivity) []Coordinate {
	for _, d := range orthogonalOffsets {
		dst = g.appendIfOpen(dst, Coordinate{Row: c.Row + d[0], Col: c.Col + d[1]})
	}
	if conn == Conn8 {
		for _, d := range diagonalOffsets {
			dst = g.appendIfOpen(dst, Coordinate{Row: c.Row + d[0], Col: c.Col + d[1]})
		}
	}
	return dst
}

func (g *Grid) appendIfOpen(dst []Coordinate, n Coordinate) []Coordinate {
	if !g.InBounds(n) {
		return dst
	}
	if g.IsOpen(n) {
		dst = append(dst, n)
	}
	return dst
}
