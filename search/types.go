package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazerunner/grid"
)

// Sentinel errors shared by every algorithm constructor.
var (
	// ErrGridNil is returned when a nil grid is passed.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrStartOutOfBounds is returned when the start lies outside the grid.
	ErrStartOutOfBounds = errors.New("search: start out of bounds")

	// ErrGoalOutOfBounds is returned when the goal lies outside the grid.
	ErrGoalOutOfBounds = errors.New("search: goal out of bounds")

	// ErrStepLimit is returned by Run when the limit is hit before the search ends.
	ErrStepLimit = errors.New("search: step limit reached")
)

// Outcome is the result of a single Step.
type Outcome int

const (
	// Continue means the frontier still has work.
	Continue Outcome = iota
	// Found means the goal was popped; Step.Path holds the route.
	Found
	// Exhausted means the frontier emptied without reaching the goal.
	Exhausted
)

// String returns the lower-case outcome name.
func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Done reports whether o ends the search.
func (o Outcome) Done() bool {
	return o == Found || o == Exhausted
}

// Step is the per-iteration snapshot returned by Stepper.Step.
type Step struct {
	// Outcome of this step.
	Outcome Outcome

	// Current is the coordinate popped and expanded in this step.
	// Valid only when HasCurrent is true; an exhausting step pops nothing.
	Current    grid.Coord
	HasCurrent bool

	// Path is the Start→Goal route, set only when Outcome == Found.
	Path []grid.Coord

	// Index counts expansions so far (stale pops do not count).
	Index int
}

// Stepper is implemented by bfs.Searcher, dfs.Searcher and astar.Searcher.
type Stepper interface {
	// Step performs one pop/visit/expand cycle.
	Step() Step

	// Visited reports whether c has been marked visited.
	Visited(c grid.Coord) bool

	// Predecessors returns a copy of the predecessor map.
	Predecessors() map[grid.Coord]grid.Coord

	// Frontier returns the coordinates currently waiting in the frontier,
	// in the order they would be popped.
	Frontier() []grid.Coord
}

// Hooks are optional callbacks fired by every algorithm; nil hooks are skipped.
type Hooks struct {
	// OnEnqueue fires when a coordinate is pushed onto the frontier.
	OnEnqueue func(c grid.Coord)

	// OnDequeue fires when a coordinate is popped for expansion.
	OnDequeue func(c grid.Coord)
}

// Enqueued invokes OnEnqueue if set.
func (h Hooks) Enqueued(c grid.Coord) {
	if h.OnEnqueue != nil {
		h.OnEnqueue(c)
	}
}

// Dequeued invokes OnDequeue if set.
func (h Hooks) Dequeued(c grid.Coord) {
	if h.OnDequeue != nil {
		h.OnDequeue(c)
	}
}

// Validate checks the common constructor preconditions.
func Validate(g *grid.Grid, start, goal grid.Coord) error {
	if g == nil {
		return ErrGridNil
	}
	if !g.InBounds(start) {
		return fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}
	if !g.InBounds(goal) {
		return fmt.Errorf("%w: %v", ErrGoalOutOfBounds, goal)
	}
	return nil
}
