// Package bfs provides a stepwise breadth-first search over a grid.Grid,
// returning the fewest-cells route from start to goal.
//
// What
//
//   - New(g, start, goal, opts...) snapshots the grid and seeds a FIFO queue
//     with the start, which is marked visited immediately.
//   - Each Step dequeues one cell, reports Found if it is the goal, otherwise
//     enqueues every unseen passable neighbor in the order up, down, left,
//     right. Neighbors are marked visited when discovered, so no cell is
//     queued twice.
//   - When the queue is empty Step reports Exhausted.
//   - Hooks: OnEnqueue (discovery) and OnDequeue (expansion).
//
// Why
//
//   - FIFO level order guarantees the shortest route in an unweighted grid.
//   - One expansion per Step lets a driver animate the search.
//
// Complexity (V = cells, E ≤ 4V)
//
//   - Time:   O(V + E) over the whole run, O(1) amortised per Step.
//   - Memory: O(V) for queue, visited and predecessor maps.
//
// Usage
//
//	s, err := bfs.New(g, g.Start(), g.Goal())
//	if err != nil {
//	    // search.ErrGridNil, search.ErrStartOutOfBounds, search.ErrGoalOutOfBounds
//	}
//	for st := s.Step(); !st.Outcome.Done(); st = s.Step() {
//	    // render st.Current
//	}
//
// The frontier is a github.com/emirpasic/gods linked-list queue.
package bfs
