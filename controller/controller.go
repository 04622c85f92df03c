// Package controller turns clicks and control-surface actions into grid
// edits and search runs. It owns the grid and the active search and is
// meant to be driven from a single goroutine (see package driver).
package controller

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/mazerunner/config"
	"github.com/katalvlaran/mazerunner/driver"
	"github.com/katalvlaran/mazerunner/engine"
	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/search"
)

// Controller is the interaction state machine.
type Controller struct {
	grid     *grid.Grid
	rng      *rand.Rand
	log      *slog.Logger
	renderer Renderer
	notifier Notifier

	cellSize int
	wallProb float64
	algo     engine.Algorithm
	speed    int

	editing    bool
	running    bool
	paused     bool
	goalLocked bool

	search *engine.Search
}

var _ driver.Target = (*Controller)(nil)

// New validates cfg, generates the initial maze (unless WithGrid is given)
// and renders it once. r and n may be nil.
func New(cfg config.Config, r Renderer, n Notifier, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	algo, err := cfg.Algo()
	if err != nil {
		return nil, err
	}
	c := &Controller{
		rng:      cfg.Rand(),
		log:      slog.Default(),
		renderer: r,
		notifier: n,
		cellSize: cfg.CellSize,
		wallProb: cfg.WallProbability,
		algo:     algo,
		speed:    driver.ClampSpeed(cfg.Speed),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.grid == nil {
		c.grid, err = grid.Random(cfg.Rows, cfg.Cols, c.rng, cfg.WallProbability)
		if err != nil {
			return nil, fmt.Errorf("controller: initial maze: %w", err)
		}
	}
	c.render(nil)

	return c, nil
}

// Grid returns the live grid. Callers must not mutate it.
func (c *Controller) Grid() *grid.Grid { return c.grid }

// Algorithm returns the selected algorithm.
func (c *Controller) Algorithm() engine.Algorithm { return c.algo }

// Speed returns the animation speed in [1,100].
func (c *Controller) Speed() int { return c.speed }

// Active reports whether ticks should be scheduled.
func (c *Controller) Active() bool { return c.running && !c.paused }

// GoalLocked reports whether goal relocation is currently refused.
func (c *Controller) GoalLocked() bool { return c.goalLocked }

// Mode derives the interaction mode from the flags.
func (c *Controller) Mode() Mode {
	switch {
	case c.running && c.paused:
		return Paused
	case c.running:
		return Running
	case c.editing:
		return EditingObstacles
	}
	return Idle
}

// Status reports a summary for front ends.
func (c *Controller) Status() Status {
	st := Status{
		Mode:       c.Mode(),
		Algorithm:  c.algo,
		Speed:      c.speed,
		GoalLocked: c.goalLocked,
	}
	if c.search != nil {
		st.Steps = c.search.Last().Index
	}
	return st
}

// stop halts the run and drops its state.
func (c *Controller) stop() {
	c.running = false
	c.paused = false
	c.search = nil
}

func (c *Controller) render(highlight *grid.Coord) {
	if c.renderer == nil {
		return
	}
	if err := c.renderer.Render(c.grid, highlight); err != nil {
		c.log.Warn("render failed", "err", err)
	}
}

func (c *Controller) notify(msg string) {
	c.log.Info("notify", "message", msg)
	if c.notifier != nil {
		c.notifier.Notify(msg)
	}
}

// Click handles a press at pixel (px, py). In edit mode it stops any run
// and toggles the wall under the cursor; otherwise it relocates the goal
// unless the goal is locked. Clicks outside the grid are ignored.
func (c *Controller) Click(px, py int) {
	if px < 0 || py < 0 {
		return
	}
	cell := grid.C(py/c.cellSize, px/c.cellSize)
	if !c.grid.InBounds(cell) {
		return
	}
	if c.editing {
		c.stop()
		c.grid.ToggleWall(cell)
	} else if !c.goalLocked {
		c.grid.MoveGoal(cell)
	}
	c.render(nil)
}

// FindPath starts a search with the selected algorithm on the current grid
// and locks the goal. It is a no-op while a search is running.
func (c *Controller) FindPath() {
	if c.running {
		return
	}
	s, err := engine.NewSearch(c.grid, c.algo, engine.WithLogger(c.log))
	if err != nil {
		c.log.Error("cannot start search", "err", err)
		return
	}
	c.search = s
	c.running = true
	c.paused = false
	c.goalLocked = true
}

// Regenerate stops any run, unlocks the goal and draws a fresh random maze
// with Start and Goal back in their corners.
func (c *Controller) Regenerate() {
	c.stop()
	c.goalLocked = false
	if err := c.grid.Regenerate(c.rng, c.wallProb); err != nil {
		c.log.Error("regenerate failed", "err", err)
	}
	c.render(nil)
}

// Restart stops any run, unlocks the goal and clears Frontier and Path marks.
func (c *Controller) Restart() {
	c.stop()
	c.goalLocked = false
	c.grid.ClearTransientMarks()
	c.render(nil)
}

// ToggleEdit stops any run and flips obstacle-editing mode.
func (c *Controller) ToggleEdit() {
	c.stop()
	c.editing = !c.editing
}

// TogglePause flips the paused flag of a running search. Resuming makes the
// controller Active again so the driver schedules the next step.
func (c *Controller) TogglePause() {
	if !c.running {
		return
	}
	c.paused = !c.paused
}

// SetSpeed stores s clamped to [1,100].
func (c *Controller) SetSpeed(s int) {
	c.speed = driver.ClampSpeed(s)
}

// SelectAlgorithm switches algorithm, discards the in-flight search and its
// marks, and immediately starts a new search on the current grid.
func (c *Controller) SelectAlgorithm(a engine.Algorithm) error {
	if !a.Valid() {
		return fmt.Errorf("%w: %s", engine.ErrUnknownAlgorithm, a)
	}
	c.algo = a
	c.stop()
	c.goalLocked = false
	c.grid.ClearTransientMarks()
	c.render(nil)
	c.FindPath()

	return nil
}

// Tick advances the running search by one step and renders the processed
// cell highlighted. It reports whether another tick should follow.
func (c *Controller) Tick() bool {
	if !c.running || c.paused || c.search == nil {
		return false
	}
	st := c.search.Advance(c.grid)
	if st.HasCurrent {
		c.render(c.search.Highlight())
	}

	switch st.Outcome {
	case search.Found:
		for _, p := range st.Path {
			cell := p
			c.render(&cell)
		}
		c.running = false
		c.notify(PathFoundMessage(len(st.Path)))
		return false
	case search.Exhausted:
		c.running = false
		c.notify(MsgNoPath)
		return false
	}
	return true
}
