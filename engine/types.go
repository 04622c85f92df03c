// Package engine selects and drives one of the grid searches and projects
// its progress onto a display grid.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrUnknownAlgorithm is returned for an algorithm name or value outside
// the supported set.
var ErrUnknownAlgorithm = errors.New("engine: unknown algorithm")

// Algorithm tags the search variant.
type Algorithm int

const (
	// AStar expands the cell with the lowest cost plus Manhattan estimate.
	AStar Algorithm = iota
	// BFS expands cells in discovery order and finds a shortest path.
	BFS
	// DFS expands the most recently discovered cell first.
	DFS
)

var algorithmNames = [...]string{AStar: "A*", BFS: "BFS", DFS: "DFS"}

// String returns the display name: "A*", "BFS" or "DFS".
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// Valid reports whether a names a supported variant.
func (a Algorithm) Valid() bool {
	return a >= 0 && int(a) < len(algorithmNames)
}

// Algorithms lists every variant in selector order.
func Algorithms() []Algorithm {
	return []Algorithm{AStar, BFS, DFS}
}

// ParseAlgorithm maps a case-insensitive name to its Algorithm. Accepted:
// "A*", "astar", "a-star", "bfs", "dfs".
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "a*", "astar", "a-star":
		return AStar, nil
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Option customises a Search.
type Option func(*Options)

// Options configures logging for a Search.
type Options struct {
	Logger *slog.Logger
}

// DefaultOptions logs to slog.Default().
func DefaultOptions() Options {
	return Options{Logger: slog.Default()}
}

// WithLogger routes run lifecycle and per-cell debug records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
