// Package mazepath finds routes through grid mazes.
//
// A maze is a rectangle of cells: S start, G goal, X wall and _ open.
// Searches move in 4 directions (up, down, left, right) or 8 (diagonals
// included), each move costing one step. Two strategies are provided:
//
//   - Greedy best-first orders the frontier by the heuristic distance to the
//     goal alone. It is fast and usually direct, but not always shortest.
//   - A* orders by steps taken plus heuristic and, with the admissible
//     Manhattan (4-way) or Chebyshev (8-way) heuristic, returns a shortest
//     path.
//
// Packages:
//
//	grid/       maze model, parsing, neighbor generation
//	heuristic/  Manhattan and Chebyshev distances
//	frontier/   min-priority queue with deterministic tie-breaking
//	search/     Greedy and A* search over a grid
//	route/      path reconstruction and marking
//	bfs/        breadth-first traversal, the shortest-path oracle
//	mazegen/    random maze generation
//	mazeio/     maze text format reading and writing
//	batch/      concurrent file batches with metrics and tracing
//	render/     terminal rendering
//	server/     HTTP API
//	config/     YAML configuration
//
// Quick example:
//
//	g, _ := grid.Parse([]string{"S__", "_X_", "__G"})
//	res, _ := search.AStarSearch(g, grid.Conn4)
//	_ = route.Mark(g, res.Path, grid.Conn4)
//	fmt.Println(g)
//	// SPP
//	// _XP
//	// __G
//
// The mazepath command (cmd/mazepath) runs the classic two-file batch,
// generates mazes, renders them and serves the solver over HTTP.
package mazepath
