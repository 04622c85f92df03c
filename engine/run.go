package engine

import (
	"fmt"

	"github.com/katalvlaran/mazerunner/astar"
	"github.com/katalvlaran/mazerunner/bfs"
	"github.com/katalvlaran/mazerunner/dfs"
	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/search"
)

// Run is the per-algorithm search state. Exactly one searcher is set,
// matching algo.
type Run struct {
	algo  Algorithm
	astar *astar.Searcher
	bfs   *bfs.Searcher
	dfs   *dfs.Searcher
}

var _ search.Stepper = (*Run)(nil)

// NewRun builds fresh search state for algo on a snapshot of g, from its
// Start to its Goal.
func NewRun(algo Algorithm, g *grid.Grid, hooks search.Hooks) (*Run, error) {
	if g == nil {
		return nil, search.ErrGridNil
	}
	r := &Run{algo: algo}
	var err error
	switch algo {
	case AStar:
		r.astar, err = astar.New(g, g.Start(), g.Goal(), astar.WithHooks(hooks))
	case BFS:
		r.bfs, err = bfs.New(g, g.Start(), g.Goal(), bfs.WithHooks(hooks))
	case DFS:
		r.dfs, err = dfs.New(g, g.Start(), g.Goal(), dfs.WithHooks(hooks))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, algo)
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Algorithm reports the variant tag.
func (r *Run) Algorithm() Algorithm { return r.algo }

// Stepper exposes the underlying searcher.
func (r *Run) Stepper() search.Stepper {
	switch r.algo {
	case AStar:
		return r.astar
	case BFS:
		return r.bfs
	default:
		return r.dfs
	}
}

// Step advances the active searcher by one expansion.
func (r *Run) Step() search.Step {
	switch r.algo {
	case AStar:
		return r.astar.Step()
	case BFS:
		return r.bfs.Step()
	default:
		return r.dfs.Step()
	}
}

// Visited reports whether the active searcher has marked c visited.
func (r *Run) Visited(c grid.Coord) bool { return r.Stepper().Visited(c) }

// Predecessors returns a copy of the active searcher's predecessor map.
func (r *Run) Predecessors() map[grid.Coord]grid.Coord { return r.Stepper().Predecessors() }

// Frontier returns the active searcher's pending cells.
func (r *Run) Frontier() []grid.Coord { return r.Stepper().Frontier() }

// Reached reports whether c has entered the search at all, queued or
// expanded. For BFS and DFS this is Visited; A* marks cells visited only
// when they are expanded, so its queued cells are counted separately.
func (r *Run) Reached(c grid.Coord) bool {
	if r.algo == AStar {
		return r.astar.Reached(c)
	}
	return r.Stepper().Visited(c)
}
