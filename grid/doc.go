// Package grid models a rectangular maze of cells as the search space for
// informed path finding.
//
// What:
//
//   - Grid wraps a rectangular [][]CellState with exactly one Start and one Goal.
//   - Cells are Open, Blocked, Start, Goal or Path (the last one only after a
//     route has been marked on the grid).
//   - Neighbors enumerates open, in-bounds neighbors of a cell under Conn4
//     (orthogonal moves) or Conn8 (orthogonal plus diagonal moves).
//
// Why:
//
//   - The search packages need cheap, side-effect-free queries (IsOpen,
//     IsGoal, Neighbors) and a single mutation point for marking a path.
//
// Complexity:
//
//   - New / Parse:  O(W×H) time and memory (deep copy + endpoint scan).
//   - Neighbors:    O(d) with d = 4 or 8.
//   - Clone:        O(W×H).
//
// Symbols:
//
//	S start, G goal, X blocked, _ open, P path (output only)
//
// Errors:
//
//   - ErrMalformedGrid: umbrella for every construction failure below.
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownSymbol: a character outside S, G, X and _ (P included).
//   - ErrMissingEndpoint: no Start or no Goal cell.
//   - ErrDuplicateEndpoint: more than one Start or more than one Goal cell.
//   - ErrOutOfBounds: Set was called with a coordinate outside the grid.
package grid
