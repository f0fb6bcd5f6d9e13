// Package regions labels the connected open areas ("regions") of a grid.
//
// A region is a maximal set of traversable cells (Open, Start, Goal) that
// are mutually reachable under a connectivity. Labeling is a single
// breadth-first sweep, so asking whether the goal is reachable costs one
// O(W×H) pass and no priority queue.
package regions

import (
	"github.com/katalvlaran/mazepath/grid"
)

// None is the label of cells that belong to no region (walls, Path marks).
const None = -1

// Map holds the region label of every cell.
type Map struct {
	rows, cols int
	conn       grid.Connectivity
	labels     []int // row-major
	sizes      []int
}

// Label computes the regions of g under conn. Labels are assigned in
// row-major order of each region's first cell, starting at 0.
// Time: O(W·H·d), d = 4 or 8. Memory: O(W·H).
func Label(g *grid.Grid, conn grid.Connectivity) *Map {
	m := &Map{rows: g.Rows(), cols: g.Cols(), conn: conn}
	m.labels = make([]int, m.rows*m.cols)
	for i := range m.labels {
		m.labels[i] = None
	}

	var (
		queue []grid.Coordinate
		nbrs  []grid.Coordinate
	)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			seed := grid.C(r, c)
			if !g.IsOpen(seed) || m.labels[m.index(seed)] != None {
				continue
			}
			id := len(m.sizes)
			size := 0
			queue = append(queue[:0], seed)
			m.labels[m.index(seed)] = id
			for qi := 0; qi < len(queue); qi++ {
				size++
				nbrs = g.AppendNeighbors(nbrs[:0], queue[qi], conn)
				for _, n := range nbrs {
					if m.labels[m.index(n)] == None {
						m.labels[m.index(n)] = id
						queue = append(queue, n)
					}
				}
			}
			m.sizes = append(m.sizes, size)
		}
	}
	return m
}

// Reachable reports whether g's goal lies in the start's region under conn.
func Reachable(g *grid.Grid, conn grid.Connectivity) bool {
	return Label(g, conn).Connected(g.Start(), g.Goal())
}

func (m *Map) index(c grid.Coordinate) int { return c.Row*m.cols + c.Col }

// Connectivity returns the connectivity the map was built with.
func (m *Map) Connectivity() grid.Connectivity { return m.conn }

// Count returns the number of regions.
func (m *Map) Count() int { return len(m.sizes) }

// Of returns the region of c, or None for walls and out-of-bounds cells.
func (m *Map) Of(c grid.Coordinate) int {
	if c.Row < 0 || c.Row >= m.rows || c.Col < 0 || c.Col >= m.cols {
		return None
	}
	return m.labels[m.index(c)]
}

// Size returns the cell count of region id, 0 for unknown ids.
func (m *Map) Size(id int) int {
	if id < 0 || id >= len(m.sizes) {
		return 0
	}
	return m.sizes[id]
}

// Connected reports whether a and b are traversable and share a region.
func (m *Map) Connected(a, b grid.Coordinate) bool {
	ra := m.Of(a)
	return ra != None && ra == m.Of(b)
}

// Largest returns the id of the biggest region (lowest id on ties), or None.
func (m *Map) Largest() int {
	best := None
	for id, s := range m.sizes {
		if best == None || s > m.sizes[best] {
			best = id
		}
	}
	return best
}
