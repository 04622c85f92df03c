package engine

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/search"
)

// Search couples a Run with the bookkeeping a visualiser needs: the last
// step, the highlighted cell and a logger.
type Search struct {
	run       *Run
	log       *slog.Logger
	last      search.Step
	highlight *grid.Coord
}

// NewSearch starts algo on the current contents of g. Transient marks on g
// are ignored by the searchers, which only distinguish walls.
func NewSearch(g *grid.Grid, algo Algorithm, opts ...Option) (*Search, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	lg := o.Logger.With("algo", algo.String())

	hooks := search.Hooks{}
	if lg.Enabled(context.Background(), slog.LevelDebug) {
		hooks.OnEnqueue = func(c grid.Coord) { lg.Debug("frontier push", "cell", c.String()) }
		hooks.OnDequeue = func(c grid.Coord) { lg.Debug("frontier pop", "cell", c.String()) }
	}
	run, err := NewRun(algo, g, hooks)
	if err != nil {
		return nil, err
	}
	lg.Info("search started", "rows", g.Rows(), "cols", g.Cols(),
		"start", g.Start().String(), "goal", g.Goal().String())

	return &Search{run: run, log: lg}, nil
}

// Algorithm reports the running variant.
func (s *Search) Algorithm() Algorithm { return s.run.Algorithm() }

// Stepper exposes the underlying searcher for inspection.
func (s *Search) Stepper() search.Stepper { return s.run.Stepper() }

// Last returns the most recent step.
func (s *Search) Last() search.Step { return s.last }

// Highlight returns the cell processed by the most recent step, or nil.
func (s *Search) Highlight() *grid.Coord { return s.highlight }

// Done reports whether the search has finished.
func (s *Search) Done() bool { return s.last.Outcome.Done() }

// Advance performs one step and projects it onto display: the processed
// cell becomes Frontier and, on Found, every route cell becomes Path.
// Start and Goal keep their classification.
func (s *Search) Advance(display *grid.Grid) search.Step {
	wasDone := s.Done()
	st := s.run.Step()
	s.last = st
	if st.HasCurrent {
		c := st.Current
		s.highlight = &c
	} else {
		s.highlight = nil
	}
	Apply(display, st)

	if !wasDone && st.Outcome.Done() {
		s.log.Info("search finished", "outcome", st.Outcome.String(),
			"expanded", st.Index, "path_len", len(st.Path))
	}
	return st
}

// Apply writes the marks implied by st onto g.
func Apply(g *grid.Grid, st search.Step) {
	if g == nil {
		return
	}
	if st.HasCurrent {
		g.MarkFrontier(st.Current)
	}
	if st.Outcome == search.Found {
		for _, c := range st.Path {
			g.MarkPath(c)
		}
	}
}
