// Package bfs explores a grid breadth-first, one expansion per Step, returning
// the fewest-cells route once the goal is dequeued.
package bfs

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/search"
)

// Searcher holds the mutable state of one BFS run.
type Searcher struct {
	grid    *grid.Grid // private snapshot taken at construction
	start   grid.Coord
	goal    grid.Coord
	opts    BFSOptions
	queue   *linkedlistqueue.Queue
	visited map[grid.Coord]bool
	pred    map[grid.Coord]grid.Coord
	steps   int
	final   *search.Step
}

var _ search.Stepper = (*Searcher)(nil)

// New prepares a BFS run on a snapshot of g from start toward goal.
// The start is marked visited and queued.
// Returns search.ErrGridNil, search.ErrStartOutOfBounds or search.ErrGoalOutOfBounds.
func New(g *grid.Grid, start, goal grid.Coord, opts ...Option) (*Searcher, error) {
	if err := search.Validate(g, start, goal); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Rows() * g.Cols()
	s := &Searcher{
		grid:    g.Clone(),
		start:   start,
		goal:    goal,
		opts:    o,
		queue:   linkedlistqueue.New(),
		visited: make(map[grid.Coord]bool, n),
		pred:    make(map[grid.Coord]grid.Coord, n),
	}
	s.visited[start] = true
	s.queue.Enqueue(start)
	s.opts.Hooks.Enqueued(start)

	return s, nil
}

// Step dequeues the oldest cell, checks it against the goal and enqueues its
// unseen passable neighbors, marking each visited at discovery so it is
// queued at most once.
func (s *Searcher) Step() search.Step {
	if s.final != nil {
		return *s.final
	}
	v, ok := s.queue.Dequeue()
	if !ok {
		return s.finish(search.Step{Outcome: search.Exhausted, Index: s.steps})
	}
	cur := v.(grid.Coord)
	s.steps++
	s.opts.Hooks.Dequeued(cur)

	if cur == s.goal {
		return s.finish(search.Step{
			Outcome:    search.Found,
			Current:    cur,
			HasCurrent: true,
			Path:       search.Reconstruct(s.pred, s.start, s.goal),
			Index:      s.steps,
		})
	}

	for _, nb := range s.grid.Neighbors(cur) {
		if s.visited[nb] {
			continue
		}
		s.visited[nb] = true
		s.pred[nb] = cur
		s.queue.Enqueue(nb)
		s.opts.Hooks.Enqueued(nb)
	}

	return search.Step{Outcome: search.Continue, Current: cur, HasCurrent: true, Index: s.steps}
}

func (s *Searcher) finish(st search.Step) search.Step {
	s.final = &st
	return st
}

// Visited reports whether c has been discovered.
func (s *Searcher) Visited(c grid.Coord) bool {
	return s.visited[c]
}

// Predecessors returns a copy of the discovery tree.
func (s *Searcher) Predecessors() map[grid.Coord]grid.Coord {
	return search.CopyPredecessors(s.pred)
}

// Frontier returns the queued cells, oldest first.
func (s *Searcher) Frontier() []grid.Coord {
	vals := s.queue.Values()
	out := make([]grid.Coord, len(vals))
	for i, v := range vals {
		out[i] = v.(grid.Coord)
	}
	return out
}
