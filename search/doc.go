// Package search defines the contract shared by the stepwise pathfinders
// in packages bfs, dfs and astar.
//
// What
//
//   - A Stepper owns one run's frontier, visited set and predecessor map.
//   - Each call to Step performs exactly one cycle: pop from the frontier,
//     mark visited, expand up to four orthogonal neighbors (up, down, left,
//     right). That granularity lets a driver pace the search for display.
//   - Step reports an Outcome: Continue, Found (with the reconstructed path)
//     or Exhausted. After Found or Exhausted, Step keeps returning the final
//     result.
//
// Path reconstruction
//
//	Reconstruct walks the predecessor map backwards from the goal until a
//	node with no predecessor, appends the start and reverses, producing the
//	Start→Goal sequence. Its length (cells, inclusive) is the reported path
//	length.
//
// Run drives any Stepper to completion and is what headless callers use.
package search
