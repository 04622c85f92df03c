// Package grid models the editable board that the pathfinding engine explores.
//
// What:
//
//   - Grid is a fixed-size rectangular array of Cell states:
//     Empty, Wall, Start, Goal, Frontier, Path.
//   - Exactly one Start and one Goal exist at all times; neither is ever a Wall.
//   - Mutations (SetWall, ToggleWall, MoveGoal, Regenerate) silently refuse
//     anything that would break those invariants and report whether they
//     changed the board.
//   - Frontier and Path are transient marks written by the engine while a
//     search runs; ClearTransientMarks wipes them.
//   - Parse and String convert to and from a compact ASCII form.
//
// ASCII form:
//
//	.  Empty    #  Wall     S  Start
//	G  Goal     +  Frontier *  Path
//
// Neighbor order:
//
//	Neighbors always yields passable cells in the order up, down, left, right
//	(row-1, row+1, col-1, col+1). Every search algorithm relies on this order
//	for deterministic tie-breaking.
//
// Complexity:
//
//   - At, InBounds, Passable, SetWall, MoveGoal: O(1).
//   - Regenerate, ClearTransientMarks, Clone, String: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: rows or columns < 1.
//   - ErrTooSmall: fewer than two cells, Start and Goal would collide.
//   - ErrNonRectangular: ASCII rows of differing lengths.
//   - ErrBadCell: unknown ASCII symbol.
//   - ErrMissingStart, ErrMissingGoal, ErrDuplicateStart, ErrDuplicateGoal.
//   - ErrBadProbability: wall probability outside [0,1].
package grid
