// Package dfs provides options for the stepwise depth-first grid search.
package dfs

import (
	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/search"
)

// Option configures a Searcher.
type Option func(*DFSOptions)

// DFSOptions holds the callbacks fired during the search.
type DFSOptions struct {
	// Hooks fire on push (discovery) and pop (expansion).
	Hooks search.Hooks
}

// DefaultOptions returns DFSOptions with no hooks installed.
func DefaultOptions() DFSOptions {
	return DFSOptions{}
}

// WithOnPush registers a callback fired when a cell is discovered and pushed.
func WithOnPush(fn func(c grid.Coord)) Option {
	return func(o *DFSOptions) {
		if fn != nil {
			o.Hooks.OnEnqueue = fn
		}
	}
}

// WithOnPop registers a callback fired immediately before a cell is expanded.
func WithOnPop(fn func(c grid.Coord)) Option {
	return func(o *DFSOptions) {
		if fn != nil {
			o.Hooks.OnDequeue = fn
		}
	}
}

// WithHooks installs both callbacks; nil fields are ignored.
func WithHooks(h search.Hooks) Option {
	return func(o *DFSOptions) {
		WithOnPush(h.OnEnqueue)(o)
		WithOnPop(h.OnDequeue)(o)
	}
}
