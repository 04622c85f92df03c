// Package astar implements a stepwise A* search over a grid.Grid with unit
// move costs and a pluggable heuristic (Manhattan by default).
//
// Overview:
//
//   - The open set is a github.com/emirpasic/gods priority queue ordered by
//     estimated total f = g + h, ties broken by row then column.
//   - The start is seeded with priority 0; g(start) = 0, f(start) = h(start).
//   - Each Step pops entries until it finds a cell not yet visited (lazy
//     deletion), marks it visited, and relaxes its passable neighbors
//     (up, down, left, right): whenever g(cur)+1 improves the recorded cost
//     the neighbor's predecessor, g and f are updated and it is pushed again.
//   - Stale pops never count as a step; Step.Index advances once per
//     expanded cell.
//   - Exhausted is reported when the queue runs dry inside a Step.
//
// With an admissible heuristic the route returned on Found is shortest.
//
// Complexity:
//
//   - Time:  O(E log E) over the run; a single Step may discard several
//     stale entries but is bounded by the queue size.
//   - Space: O(V + E) for the maps and the queue under lazy deletion.
//
// Errors: search.ErrGridNil, search.ErrStartOutOfBounds,
// search.ErrGoalOutOfBounds.
package astar
