// Package search finds a route from the start cell to the goal cell of a
// grid.Grid with informed search.
//
// Strategies:
//
//   - Greedy: best-first search ordered purely by the heuristic to the goal.
//     A coordinate enters the frontier at most once (membership in came_from
//     is checked before pushing), so a coordinate is never reopened. This is
//     a deliberate simplification: it always terminates and finds the goal
//     when it is reachable, but the path is not necessarily the shortest.
//   - AStar: ordered by steps-so-far plus heuristic. A neighbor is recorded
//     and pushed whenever a strictly cheaper route to it is found, so a
//     coordinate may be reopened. With the consistent heuristics from package
//     heuristic the returned path has the minimum number of steps.
//
// Every step costs 1, diagonal or not.
//
// Frontier discipline:
//
//	The frontier has no decrease-key. Outdated entries stay in the heap and
//	are recognised on pop by checking them against cost_so_far (A*); greedy
//	never creates duplicates. There is no separate visited set.
//
// Complexity:
//
//   - Time:  O(N log N), N = number of open cells (each pushed O(d) times at most).
//   - Space: O(N) for came_from, cost_so_far and the heap.
//
// Options:
//
//   - WithStrategy, WithConnectivity: algorithm and movement model.
//   - WithHeuristic: replace the heuristic matching the movement model.
//   - WithStart, WithGoal: override the grid's endpoints.
//   - WithContext: cancellation, checked once per pop.
//   - WithMaxExpansions: safety valve on the number of expansions.
//   - OnPush, OnExpand: tracing hooks.
//
// Errors (sentinel):
//
//   - ErrNilGrid          if the grid is nil.
//   - ErrPathNotFound     if the frontier empties before the goal is popped.
//     This is an expected outcome; the returned *Result is still populated.
//   - ErrExpansionLimit   if WithMaxExpansions is exceeded.
//   - ErrOptionViolation  if an option has an invalid value.
//   - ErrEndpointNotOpen  if an overridden start or goal is not an open cell.
package search
