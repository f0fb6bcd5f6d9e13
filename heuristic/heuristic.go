// Package heuristic provides the distance estimates that drive informed
// grid search.
//
// Both functions are admissible and consistent under unit step cost when
// paired with their movement model:
//
//   - Manhattan with grid.Conn4: every move changes exactly one axis by 1.
//   - Chebyshev with grid.Conn8: a diagonal move reduces both axes at once,
//     so the larger axis difference is the lower bound.
package heuristic

import "github.com/katalvlaran/mazepath/grid"

// Func estimates the remaining step count from a to b.
type Func func(a, b grid.Coordinate) int

// Manhattan returns |Δrow| + |Δcol|.
func Manhattan(a, b grid.Coordinate) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// Chebyshev returns max(|Δrow|, |Δcol|).
func Chebyshev(a, b grid.Coordinate) int {
	dr, dc := abs(a.Row-b.Row), abs(a.Col-b.Col)
	if dr > dc {
		return dr
	}
	return dc
}

// ForConnectivity returns the consistent heuristic for the movement model.
func ForConnectivity(conn grid.Connectivity) Func {
	if conn == grid.Conn8 {
		return Chebyshev
	}
	return Manhattan
}

// ToGoal fixes the second argument of f: h(c) = f(c, goal).
func ToGoal(f Func, goal grid.Coordinate) func(grid.Coordinate) int {
	return func(c grid.Coordinate) int { return f(c, goal) }
}

// Adjacent reports whether a and b are one move apart under conn:
// Manhattan distance 1 for Conn4, Chebyshev distance 1 for Conn8.
func Adjacent(conn grid.Connectivity, a, b grid.Coordinate) bool {
	return ForConnectivity(conn)(a, b) == 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
