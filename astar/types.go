// Package astar defines options for the stepwise A* grid search.
package astar

import (
	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/search"
)

// Heuristic estimates the remaining cost from a to b. It must never
// overestimate for the returned route to be shortest.
type Heuristic func(a, b grid.Coord) int

// Manhattan is the default Heuristic: |Δrow| + |Δcol|.
func Manhattan(a, b grid.Coord) int {
	return a.Manhattan(b)
}

// Option configures a Searcher.
type Option func(*AStarOptions)

// AStarOptions holds the tunables of one run.
type AStarOptions struct {
	// Heuristic estimates the distance to the goal. Default: Manhattan.
	Heuristic Heuristic

	// Hooks fire on push (relaxation) and on each non-stale pop.
	Hooks search.Hooks
}

// DefaultOptions returns the Manhattan heuristic and no hooks.
func DefaultOptions() AStarOptions {
	return AStarOptions{Heuristic: Manhattan}
}

// WithHeuristic replaces the distance estimate; nil keeps the current one.
func WithHeuristic(h Heuristic) Option {
	return func(o *AStarOptions) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithOnPush registers a callback fired whenever a cell is pushed with a new priority.
func WithOnPush(fn func(c grid.Coord)) Option {
	return func(o *AStarOptions) {
		if fn != nil {
			o.Hooks.OnEnqueue = fn
		}
	}
}

// WithOnPop registers a callback fired when a fresh (non-stale) cell is expanded.
func WithOnPop(fn func(c grid.Coord)) Option {
	return func(o *AStarOptions) {
		if fn != nil {
			o.Hooks.OnDequeue = fn
		}
	}
}

// WithHooks installs both callbacks; nil fields are ignored.
func WithHooks(h search.Hooks) Option {
	return func(o *AStarOptions) {
		WithOnPush(h.OnEnqueue)(o)
		WithOnPop(h.OnDequeue)(o)
	}
}
