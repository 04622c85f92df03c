package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/search"
)

// TestReconstruct_Chain rebuilds a three-hop route.
func TestReconstruct_Chain(t *testing.T) {
	pred := map[grid.Coord]grid.Coord{
		{0, 1}: {0, 0},
		{0, 2}: {0, 1},
		{1, 2}: {0, 2},
	}
	got := search.Reconstruct(pred, grid.C(0, 0), grid.C(1, 2))
	want := []grid.Coord{{0, 0}, {0, 1}, {0, 2}, {1, 2}}
	assert.Equal(t, want, got)
}

// TestReconstruct_Adjacent covers the two-cell route.
func TestReconstruct_Adjacent(t *testing.T) {
	pred := map[grid.Coord]grid.Coord{{0, 1}: {0, 0}}
	got := search.Reconstruct(pred, grid.C(0, 0), grid.C(0, 1))
	assert.Len(t, got, 2)
}

// TestReconstruct_NoPredecessor degenerates to the start alone.
func TestReconstruct_NoPredecessor(t *testing.T) {
	got := search.Reconstruct(nil, grid.C(0, 0), grid.C(3, 3))
	assert.Equal(t, []grid.Coord{{0, 0}}, got)
}

// TestOutcome_String covers names and Done.
func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "continue", search.Continue.String())
	assert.Equal(t, "found", search.Found.String())
	assert.Equal(t, "exhausted", search.Exhausted.String())
	assert.Equal(t, "outcome(9)", search.Outcome(9).String())

	assert.False(t, search.Continue.Done())
	assert.True(t, search.Found.Done())
	assert.True(t, search.Exhausted.Done())
}

// TestValidate checks the shared constructor guards.
func TestValidate(t *testing.T) {
	g, _ := grid.New(2, 2)

	assert.ErrorIs(t, search.Validate(nil, grid.C(0, 0), grid.C(1, 1)), search.ErrGridNil)
	assert.ErrorIs(t, search.Validate(g, grid.C(-1, 0), grid.C(1, 1)), search.ErrStartOutOfBounds)
	assert.ErrorIs(t, search.Validate(g, grid.C(0, 0), grid.C(2, 1)), search.ErrGoalOutOfBounds)
	assert.NoError(t, search.Validate(g, grid.C(0, 0), grid.C(1, 1)))
}

// countdown is a Stepper that finishes after n steps.
type countdown struct{ n, calls int }

func (c *countdown) Step() search.Step {
	c.calls++
	if c.calls >= c.n {
		return search.Step{Outcome: search.Exhausted, Index: c.calls}
	}
	return search.Step{Outcome: search.Continue, Index: c.calls}
}
func (c *countdown) Visited(grid.Coord) bool                 { return false }
func (c *countdown) Predecessors() map[grid.Coord]grid.Coord { return nil }
func (c *countdown) Frontier() []grid.Coord                  { return nil }

// TestRun covers completion and the step limit.
func TestRun(t *testing.T) {
	st, err := search.Run(&countdown{n: 5}, 0)
	assert.NoError(t, err)
	assert.Equal(t, search.Exhausted, st.Outcome)
	assert.Equal(t, 5, st.Index)

	st, err = search.Run(&countdown{n: 5}, 3)
	assert.ErrorIs(t, err, search.ErrStepLimit)
	assert.Equal(t, search.Continue, st.Outcome)
	assert.Equal(t, 3, st.Index)
}
