// Package bfs provides breadth-first search over the open cells of a
// grid.Grid, returning unit-step shortest distances, parent links and visit
// order.
//
// Every move costs 1, so BFS distances are the exact shortest-path lengths
// under a movement model. The search package is checked against them, and
// batch runs can verify A* results with them.
//
// Complexity:
//
//   - Time:  O(W×H×d), d = 4 or 8.
//   - Space: O(W×H).
//
// Errors:
//
//   - ErrGridNil: a nil grid was passed.
//   - ErrStartNotOpen: the start coordinate is blocked or out of bounds.
//   - ErrOptionViolation: an invalid Option was supplied.
//   - ErrNoPath: PathTo / ShortestPath target was not reached.
package bfs
