package script_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazerunner/engine"
	"github.com/katalvlaran/mazerunner/script"
)

// calls records every control invocation as text.
type calls struct{ log []string }

func (c *calls) Click(x, y int) { c.log = append(c.log, fmt.Sprintf("click %d %d", x, y)) }
func (c *calls) FindPath()      { c.log = append(c.log, "find") }
func (c *calls) Regenerate()    { c.log = append(c.log, "regen") }
func (c *calls) ToggleEdit()    { c.log = append(c.log, "edit") }
func (c *calls) Restart()       { c.log = append(c.log, "restart") }
func (c *calls) TogglePause()   { c.log = append(c.log, "pause") }
func (c *calls) SetSpeed(s int) { c.log = append(c.log, fmt.Sprintf("speed %d", s)) }
func (c *calls) SelectAlgorithm(a engine.Algorithm) error {
	c.log = append(c.log, "algo "+a.String())
	return nil
}

func TestParse_AllCommands(t *testing.T) {
	src := `
// set up
click 45 85
click -3 10   /* ignored later */
find regen edit restart
pause resume
speed 80
algo bfs
algo "A*"
wait 250
quit
`
	ops, err := script.Parse(src)
	require.NoError(t, err)

	kinds := make([]script.Kind, len(ops))
	for i, op := range ops {
		kinds[i] = op.Kind
	}
	assert.Equal(t, []script.Kind{
		script.KindClick, script.KindClick, script.KindFind, script.KindRegen,
		script.KindEdit, script.KindRestart, script.KindPause, script.KindPause,
		script.KindSpeed, script.KindAlgo, script.KindAlgo, script.KindWait, script.KindQuit,
	}, kinds)

	assert.Equal(t, 45, ops[0].X)
	assert.Equal(t, 85, ops[0].Y)
	assert.Equal(t, 3, ops[0].Line)
	assert.Equal(t, -3, ops[1].X)
	assert.Equal(t, 80, ops[8].N)
	assert.Equal(t, engine.BFS, ops[9].Algo)
	assert.Equal(t, engine.AStar, ops[10].Algo)
	assert.Equal(t, 250, ops[11].N)
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"UnknownWord":  "jump",
		"MissingArg":   "click 10",
		"BadAlgorithm": "algo dijkstra",
		"Unquoted":     "algo A*",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := script.Parse(src)
			assert.Error(t, err)
		})
	}

	_, err := script.Parse("find\nalgo greedy")
	assert.ErrorIs(t, err, engine.ErrUnknownAlgorithm)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParse_Empty(t *testing.T) {
	ops, err := script.Parse("  // nothing\n")
	require.NoError(t, err)
	assert.Empty(t, ops)
}

func TestOp_Apply(t *testing.T) {
	ops, err := script.Parse("click 1 2 find speed 5 algo dfs pause regen edit restart wait 10 quit")
	require.NoError(t, err)
	c := &calls{}
	for _, op := range ops {
		op.Apply(c)
	}
	assert.Equal(t, []string{
		"click 1 2", "find", "speed 5", "algo DFS", "pause", "regen", "edit", "restart",
	}, c.log)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "click", script.KindClick.String())
	assert.Equal(t, "quit", script.KindQuit.String())
	assert.Equal(t, "kind(99)", script.Kind(99).String())
}

// TestFeed forwards ops as closures and stops at quit.
func TestFeed(t *testing.T) {
	c := &calls{}
	cmds := make(chan func(), 16)
	in := strings.NewReader("find\nwait 1\nspeed 70 // faster\nquit\nregen\n")

	quit, err := script.Feed(context.Background(), in, c, cmds)
	require.NoError(t, err)
	assert.True(t, quit)
	close(cmds)
	for fn := range cmds {
		fn()
	}
	assert.Equal(t, []string{"find", "speed 70"}, c.log)
}

func TestFeed_EOFAndErrors(t *testing.T) {
	c := &calls{}
	cmds := make(chan func(), 4)

	quit, err := script.Feed(context.Background(), strings.NewReader("edit\n"), c, cmds)
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Len(t, cmds, 1)

	_, err = script.Feed(context.Background(), strings.NewReader("edit\nbogus\n"), c, cmds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input line 2")
}

func TestFeed_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := script.Feed(ctx, strings.NewReader("wait 10000\n"), &calls{}, make(chan func()))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = script.Feed(ctx, strings.NewReader("find\n"), &calls{}, make(chan func()))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSleep(t *testing.T) {
	start := time.Now()
	require.NoError(t, script.Sleep(context.Background(), 5*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)
}
