package controller

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/mazerunner/engine"
	"github.com/katalvlaran/mazerunner/grid"
)

// Messages delivered to the Notifier.
const (
	MsgNoPath        = "No path found!"
	msgPathFoundTmpl = "Path found! Length: %d"
)

// PathFoundMessage formats the success notification for a route of n cells.
func PathFoundMessage(n int) string {
	return fmt.Sprintf(msgPathFoundTmpl, n)
}

// Renderer draws the grid, optionally emphasising one cell.
type Renderer interface {
	Render(g *grid.Grid, highlight *grid.Coord) error
}

// Notifier shows a one-off message to the user.
type Notifier interface {
	Notify(message string)
}

// Mode is the interaction state derived from the controller flags.
type Mode int

const (
	// Idle waits for a click or a control action.
	Idle Mode = iota
	// EditingObstacles turns clicks into wall toggles.
	EditingObstacles
	// Running advances the search on every tick.
	Running
	// Paused keeps the search but stops ticking.
	Paused
)

// String returns the lower-case mode name.
func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case EditingObstacles:
		return "editing"
	case Running:
		return "running"
	case Paused:
		return "paused"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Status summarises the controller for front ends.
type Status struct {
	Mode       Mode
	Algorithm  engine.Algorithm
	Speed      int
	GoalLocked bool
	Steps      int
}

// Option customises a Controller.
type Option func(*Controller)

// WithGrid starts from g instead of a freshly generated maze. The grid's
// dimensions take precedence over the configured ones.
func WithGrid(g *grid.Grid) Option {
	return func(c *Controller) {
		if g != nil {
			c.grid = g
		}
	}
}

// WithRand replaces the configured random source.
func WithRand(r *rand.Rand) Option {
	return func(c *Controller) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithLogger sets the logger for the controller and the searches it starts.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}
