// Package dfs implements a stepwise depth-first search over a grid.Grid.
//
// A LIFO stack is seeded with the start, which is marked visited at once.
// Every Step pops one cell; if it is the goal the route is rebuilt from the
// predecessor map and Step reports Found. Otherwise each unseen passable
// neighbor (up, down, left, right) is marked visited, recorded with the
// popped cell as its predecessor, and pushed. The right neighbor, pushed
// last, is therefore expanded first.
//
// Marking at push time means a cell is recorded with the first parent that
// discovered it, so the returned route is valid but generally not the
// shortest, and the exploration order differs from a recursive DFS that
// marks on entry.
//
// Complexity: O(V + E) time, O(V) memory.
//
// Errors: search.ErrGridNil, search.ErrStartOutOfBounds and
// search.ErrGoalOutOfBounds from New.
//
// The stack is github.com/emirpasic/gods/stacks/arraystack.
package dfs
