package controller_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mazerunner/config"
	"github.com/katalvlaran/mazerunner/controller"
	"github.com/katalvlaran/mazerunner/driver"
	"github.com/katalvlaran/mazerunner/engine"
	"github.com/katalvlaran/mazerunner/grid"
)

// frame is one recorded Render call.
type frame struct {
	ascii     string
	highlight *grid.Coord
}

// recorder implements Renderer and Notifier.
type recorder struct {
	frames   []frame
	messages []string
	fail     error
}

func (r *recorder) Render(g *grid.Grid, h *grid.Coord) error {
	var hc *grid.Coord
	if h != nil {
		c := *h
		hc = &c
	}
	r.frames = append(r.frames, frame{ascii: g.String(), highlight: hc})
	return r.fail
}

func (r *recorder) Notify(msg string) { r.messages = append(r.messages, msg) }

func (r *recorder) reset() { r.frames, r.messages = nil, nil }

// ControllerSuite drives a controller over hand-built grids.
type ControllerSuite struct {
	suite.Suite
	rec *recorder
	cfg config.Config
}

func (s *ControllerSuite) SetupTest() {
	s.rec = &recorder{}
	s.cfg = config.Default()
	s.cfg.Seed = 1
}

func (s *ControllerSuite) newController(ascii string) *controller.Controller {
	c, err := controller.New(s.cfg, s.rec, s.rec,
		controller.WithGrid(grid.MustParse(ascii)),
		controller.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	s.Require().NoError(err)
	s.rec.reset()
	return c
}

// runToEnd ticks until the controller stops asking for more.
func (s *ControllerSuite) runToEnd(c *controller.Controller) int {
	n := 0
	for c.Tick() {
		n++
		s.Require().Less(n, 1000)
	}
	return n + 1
}

func (s *ControllerSuite) TestNew_InvalidConfig() {
	cfg := config.Default()
	cfg.CellSize = 0
	_, err := controller.New(cfg, nil, nil)
	s.ErrorIs(err, config.ErrBadCellSize)
}

func (s *ControllerSuite) TestNew_GeneratesMaze() {
	c, err := controller.New(s.cfg, s.rec, s.rec, controller.WithRand(rand.New(rand.NewSource(5))))
	s.Require().NoError(err)
	g := c.Grid()
	s.Equal(10, g.Rows())
	s.Equal(grid.Start, g.At(grid.C(0, 0)))
	s.Equal(grid.Goal, g.At(grid.C(9, 9)))
	s.Len(s.rec.frames, 1)
	s.Equal(controller.Idle, c.Mode())
	s.Equal(engine.AStar, c.Algorithm())
}

func (s *ControllerSuite) TestClick_MovesGoal() {
	c := s.newController("S...\n.#..\n...G")
	// pixel (45, 85) -> row 2, col 1
	c.Click(45, 85)
	s.Equal(grid.C(2, 1), c.Grid().Goal())
	s.Equal(grid.Empty, c.Grid().At(grid.C(2, 3)))
	s.Len(s.rec.frames, 1)

	c.Click(45, 45) // wall
	s.Equal(grid.C(2, 1), c.Grid().Goal())
	c.Click(0, 0) // start
	s.Equal(grid.C(2, 1), c.Grid().Goal())
}

func (s *ControllerSuite) TestClick_Ignored() {
	c := s.newController("S...\n.#..\n...G")
	before := c.Grid().String()

	c.Click(-1, 10)
	c.Click(10, -40)
	c.Click(160, 0)
	c.Click(0, 120)
	s.Equal(before, c.Grid().String())
	s.Empty(s.rec.frames)
}

func (s *ControllerSuite) TestClick_EditToggles() {
	c := s.newController("S..\n...\n..G")
	c.ToggleEdit()
	s.Equal(controller.EditingObstacles, c.Mode())

	c.Click(50, 10)
	s.Equal(grid.Wall, c.Grid().At(grid.C(0, 1)))
	c.Click(50, 10)
	s.Equal(grid.Empty, c.Grid().At(grid.C(0, 1)))

	c.Click(10, 10)
	c.Click(90, 90)
	s.Equal("S..\n...\n..G", c.Grid().String())

	c.ToggleEdit()
	s.Equal(controller.Idle, c.Mode())
}

func (s *ControllerSuite) TestFindPath_Found() {
	c := s.newController("S..\n...\n..G")
	c.FindPath()
	s.True(c.Active())
	s.True(c.GoalLocked())
	s.Equal(controller.Running, c.Mode())

	c.Click(50, 50)
	s.Equal(grid.C(2, 2), c.Grid().Goal(), "goal is locked while running")
	s.rec.reset()

	ticks := s.runToEnd(c)
	s.Equal(9, ticks)
	s.Equal([]string{"Path found! Length: 5"}, s.rec.messages)
	s.Equal("S**\n++*\n++G", c.Grid().String())
	s.False(c.Active())
	s.Equal(controller.Idle, c.Mode())
	s.Equal(9, c.Status().Steps)

	// 9 step frames, then one per route cell
	s.Require().Len(s.rec.frames, 9+5)
	for i, want := range []grid.Coord{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}} {
		s.Equal(want, *s.rec.frames[9+i].highlight)
	}

	s.True(c.GoalLocked(), "goal stays locked until restart")
	c.Click(50, 50)
	s.Equal(grid.C(2, 2), c.Grid().Goal())

	c.Restart()
	s.False(c.GoalLocked())
	s.Equal("S..\n...\n..G", c.Grid().String())
	c.Click(50, 50)
	s.Equal(grid.C(1, 1), c.Grid().Goal())
}

func (s *ControllerSuite) TestFindPath_Exhausted() {
	c := s.newController("S##\n###\n##G")
	s.Require().NoError(c.SelectAlgorithm(engine.BFS))
	s.True(c.Tick())
	s.False(c.Tick())
	s.Equal([]string{controller.MsgNoPath}, s.rec.messages)
	s.Zero(c.Grid().Count(grid.Path))
	s.False(c.Tick())
}

func (s *ControllerSuite) TestFindPath_NoOpWhileRunning() {
	c := s.newController("S..\n...\n..G")
	c.FindPath()
	c.Tick()
	c.Tick()
	c.FindPath()
	s.Equal(2, c.Status().Steps)
}

func (s *ControllerSuite) TestTogglePause() {
	c := s.newController("S..\n...\n..G")
	c.TogglePause()
	s.Equal(controller.Idle, c.Mode(), "pause ignored when idle")

	c.FindPath()
	c.Tick()
	c.TogglePause()
	s.Equal(controller.Paused, c.Mode())
	s.False(c.Active())
	s.False(c.Tick())
	s.Equal(1, c.Status().Steps)

	c.TogglePause()
	s.True(c.Active())
	s.True(c.Tick())
	s.Equal(2, c.Status().Steps)
}

func (s *ControllerSuite) TestSetSpeed() {
	c := s.newController("SG")
	c.SetSpeed(0)
	s.Equal(1, c.Speed())
	c.SetSpeed(250)
	s.Equal(100, c.Speed())
	c.SetSpeed(33)
	s.Equal(33, c.Status().Speed)
}

func (s *ControllerSuite) TestSelectAlgorithm_RestartsCleanly() {
	c := s.newController("S..\n...\n..G")
	s.Require().NoError(c.SelectAlgorithm(engine.BFS))
	for i := 0; i < 4; i++ {
		c.Tick()
	}
	s.Positive(c.Grid().Count(grid.Frontier))

	s.Require().NoError(c.SelectAlgorithm(engine.DFS))
	s.Zero(c.Grid().Count(grid.Frontier))
	s.Zero(c.Grid().Count(grid.Path))
	s.Equal(engine.DFS, c.Algorithm())
	s.True(c.Active())
	s.True(c.GoalLocked())
	s.Zero(c.Status().Steps)

	s.True(c.Tick())
	s.Equal(grid.C(0, 0), *s.rec.frames[len(s.rec.frames)-1].highlight)
	s.runToEnd(c)
	s.Equal([]string{"Path found! Length: 5"}, s.rec.messages)

	s.ErrorIs(c.SelectAlgorithm(engine.Algorithm(42)), engine.ErrUnknownAlgorithm)
}

func (s *ControllerSuite) TestRegenerate() {
	c := s.newController("S...\n....\n....\n...G")
	c.Click(10, 50) // goal -> (1,0)
	c.FindPath()
	c.Tick()

	c.Regenerate()
	g := c.Grid()
	s.False(c.Active())
	s.False(c.GoalLocked())
	s.Equal(grid.C(0, 0), g.Start())
	s.Equal(grid.C(3, 3), g.Goal())
	s.Equal(grid.Goal, g.At(grid.C(3, 3)))
	s.Zero(g.Count(grid.Frontier))
}

func (s *ControllerSuite) TestToggleEdit_StopsRun() {
	c := s.newController("S..\n...\n..G")
	c.FindPath()
	c.Tick()
	c.ToggleEdit()
	s.False(c.Active())
	s.False(c.Tick())
	s.Equal(controller.EditingObstacles, c.Mode())
}

func (s *ControllerSuite) TestRenderErrorIsLogged() {
	c := s.newController("SG")
	s.rec.fail = errors.New("boom")
	c.FindPath()
	s.runToEnd(c)
	s.Equal([]string{"Path found! Length: 2"}, s.rec.messages)
}

// TestDriven runs the controller through the driver with an instant clock.
func (s *ControllerSuite) TestDriven() {
	c := s.newController("S.#\n...\n#.G")
	cmds := make(chan func(), 2)
	cmds <- func() { c.SetSpeed(100) }
	cmds <- c.FindPath
	close(cmds)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := driver.New(c, driver.WithClock(driver.InstantClock())).Run(ctx, cmds)
	s.Require().NoError(err)
	s.Equal([]string{"Path found! Length: 5"}, s.rec.messages)
}

func (s *ControllerSuite) TestModeString() {
	s.Equal("idle", controller.Idle.String())
	s.Equal("editing", controller.EditingObstacles.String())
	s.Equal("running", controller.Running.String())
	s.Equal("paused", controller.Paused.String())
	s.Equal("mode(9)", controller.Mode(9).String())
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}
