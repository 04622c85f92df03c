package search

import "github.com/katalvlaran/mazerunner/grid"

// Reconstruct rebuilds the Start→Goal route from a predecessor map.
// It walks node ← pred[node] from goal until a node has no predecessor,
// then appends start and reverses. With an empty map the result is [start].
func Reconstruct(pred map[grid.Coord]grid.Coord, start, goal grid.Coord) []grid.Coord {
	path := make([]grid.Coord, 0, len(pred)+1)
	node := goal
	for {
		prev, ok := pred[node]
		if !ok {
			break
		}
		path = append(path, node)
		node = prev
	}
	path = append(path, start)

	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// CopyPredecessors returns a shallow copy of m.
func CopyPredecessors(m map[grid.Coord]grid.Coord) map[grid.Coord]grid.Coord {
	c := make(map[grid.Coord]grid.Coord, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
