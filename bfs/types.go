// Package bfs provides options for the stepwise breadth-first grid search.
package bfs

import (
	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/search"
)

// Option configures a Searcher via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds the callbacks fired during the search.
type BFSOptions struct {
	// Hooks fire on enqueue (discovery) and dequeue (expansion).
	Hooks search.Hooks
}

// DefaultOptions returns BFSOptions with no hooks installed.
func DefaultOptions() BFSOptions {
	return BFSOptions{}
}

// WithOnEnqueue registers a callback fired when a cell is discovered and queued.
func WithOnEnqueue(fn func(c grid.Coord)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.Hooks.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback fired immediately before a cell is expanded.
func WithOnDequeue(fn func(c grid.Coord)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.Hooks.OnDequeue = fn
		}
	}
}

// WithHooks installs both callbacks at once; nil fields are ignored.
func WithHooks(h search.Hooks) Option {
	return func(o *BFSOptions) {
		WithOnEnqueue(h.OnEnqueue)(o)
		WithOnDequeue(h.OnDequeue)(o)
	}
}
