package dfs

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/search"
)

// Searcher holds the mutable state of one DFS run.
type Searcher struct {
	grid    *grid.Grid
	start   grid.Coord
	goal    grid.Coord
	opts    DFSOptions
	stack   *arraystack.Stack
	visited map[grid.Coord]bool
	pred    map[grid.Coord]grid.Coord
	steps   int
	final   *search.Step
}

var _ search.Stepper = (*Searcher)(nil)

// New prepares a DFS run on a snapshot of g. The start is marked visited
// and pushed.
func New(g *grid.Grid, start, goal grid.Coord, opts ...Option) (*Searcher, error) {
	if err := search.Validate(g, start, goal); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Searcher{
		grid:    g.Clone(),
		start:   start,
		goal:    goal,
		opts:    o,
		stack:   arraystack.New(),
		visited: make(map[grid.Coord]bool),
		pred:    make(map[grid.Coord]grid.Coord),
	}
	s.visited[start] = true
	s.stack.Push(start)
	s.opts.Hooks.Enqueued(start)

	return s, nil
}

// Step pops the most recently pushed cell and pushes its unseen passable
// neighbors in neighbor order, so the last of them is expanded next.
// Cells are marked visited when pushed, not when popped.
func (s *Searcher) Step() search.Step {
	if s.final != nil {
		return *s.final
	}
	v, ok := s.stack.Pop()
	if !ok {
		st := search.Step{Outcome: search.Exhausted, Index: s.steps}
		s.final = &st
		return st
	}
	cur := v.(grid.Coord)
	s.steps++
	s.opts.Hooks.Dequeued(cur)

	if cur == s.goal {
		st := search.Step{
			Outcome:    search.Found,
			Current:    cur,
			HasCurrent: true,
			Path:       search.Reconstruct(s.pred, s.start, s.goal),
			Index:      s.steps,
		}
		s.final = &st
		return st
	}

	for _, nb := range s.grid.Neighbors(cur) {
		if !s.visited[nb] {
			s.visited[nb] = true
			s.pred[nb] = cur
			s.stack.Push(nb)
			s.opts.Hooks.Enqueued(nb)
		}
	}

	return search.Step{Outcome: search.Continue, Current: cur, HasCurrent: true, Index: s.steps}
}

// Visited reports whether c has been pushed at some point.
func (s *Searcher) Visited(c grid.Coord) bool { return s.visited[c] }

// Predecessors returns a copy of the discovery tree.
func (s *Searcher) Predecessors() map[grid.Coord]grid.Coord {
	return search.CopyPredecessors(s.pred)
}

// Frontier returns the stacked cells, top first.
func (s *Searcher) Frontier() []grid.Coord {
	vals := s.stack.Values()
	out := make([]grid.Coord, 0, len(vals))
	for _, v := range vals {
		out = append(out, v.(grid.Coord))
	}
	return out
}
