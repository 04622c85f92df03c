package astar

import (
	"github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/emirpasic/gods/utils"

	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/search"
)

// entry is one priority-queue item. The same cell may be queued several
// times; only the first pop counts.
type entry struct {
	f    int
	cell grid.Coord
}

// byPriority orders entries by f, then row, then column.
func byPriority(a, b interface{}) int {
	x, y := a.(entry), b.(entry)
	switch {
	case x.f != y.f:
		return x.f - y.f
	case x.cell.Row != y.cell.Row:
		return x.cell.Row - y.cell.Row
	default:
		return x.cell.Col - y.cell.Col
	}
}

// Searcher holds the mutable state of one A* run.
type Searcher struct {
	grid    *grid.Grid
	start   grid.Coord
	goal    grid.Coord
	opts    AStarOptions
	open    *priorityqueue.Queue
	visited map[grid.Coord]bool
	pred    map[grid.Coord]grid.Coord
	g       map[grid.Coord]int // cost so far
	f       map[grid.Coord]int // cost so far + heuristic
	steps   int
	final   *search.Step
}

var _ search.Stepper = (*Searcher)(nil)

// New prepares an A* run on a snapshot of g. The start is queued with
// priority 0, g(start)=0 and f(start)=h(start, goal).
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
		open:    priorityqueue.NewWith(byPriority),
		visited: make(map[grid.Coord]bool),
		pred:    make(map[grid.Coord]grid.Coord),
		g:       map[grid.Coord]int{start: 0},
		f:       map[grid.Coord]int{start: o.Heuristic(start, goal)},
	}
	s.push(start, 0)

	return s, nil
}

func (s *Searcher) push(c grid.Coord, f int) {
	s.open.Enqueue(entry{f: f, cell: c})
	s.opts.Hooks.Enqueued(c)
}

// Step pops the lowest-priority entry, discarding stale entries for cells
// already visited within the same call, then marks the cell visited and
// relaxes its passable neighbors.
func (s *Searcher) Step() search.Step {
	if s.final != nil {
		return *s.final
	}

	var cur grid.Coord
	for {
		v, ok := s.open.Dequeue()
		if !ok {
			return s.finish(search.Step{Outcome: search.Exhausted, Index: s.steps})
		}
		cur = v.(entry).cell
		if !s.visited[cur] {
			break
		}
	}
	s.visited[cur] = true
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

	base := s.g[cur] + 1
	for _, nb := range s.grid.Neighbors(cur) {
		if old, seen := s.g[nb]; seen && base >= old {
			continue
		}
		s.pred[nb] = cur
		s.g[nb] = base
		s.f[nb] = base + s.opts.Heuristic(nb, s.goal)
		s.push(nb, s.f[nb])
	}

	return search.Step{Outcome: search.Continue, Current: cur, HasCurrent: true, Index: s.steps}
}

func (s *Searcher) finish(st search.Step) search.Step {
	s.final = &st
	return st
}

// Visited reports whether c has been expanded.
func (s *Searcher) Visited(c grid.Coord) bool { return s.visited[c] }

// Predecessors returns a copy of the best-known parent of every reached cell.
func (s *Searcher) Predecessors() map[grid.Coord]grid.Coord {
	return search.CopyPredecessors(s.pred)
}

// Frontier returns the queued cells in pop order, stale entries excluded.
func (s *Searcher) Frontier() []grid.Coord {
	vals := s.open.Values()
	utils.Sort(vals, byPriority)
	out := make([]grid.Coord, 0, len(vals))
	seen := make(map[grid.Coord]bool, len(vals))
	for _, v := range vals {
		c := v.(entry).cell
		if s.visited[c] || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// Reached reports whether c has been queued at least once, expanded or not.
func (s *Searcher) Reached(c grid.Coord) bool {
	_, ok := s.g[c]
	return ok
}

// Cost returns the best known cost from the start to c.
func (s *Searcher) Cost(c grid.Coord) (int, bool) {
	v, ok := s.g[c]
	return v, ok
}

// Estimate returns the last estimated total for c.
func (s *Searcher) Estimate(c grid.Coord) (int, bool) {
	v, ok := s.f[c]
	return v, ok
}
