package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazerunner/bfs"
	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/search"
)

// drain steps s to completion, collecting every expanded cell.
func drain(t *testing.T, s *bfs.Searcher) ([]grid.Coord, search.Step) {
	t.Helper()
	var order []grid.Coord
	for i := 0; i < 1000; i++ {
		st := s.Step()
		if st.HasCurrent {
			order = append(order, st.Current)
		}
		if st.Outcome.Done() {
			return order, st
		}
	}
	t.Fatal("search did not terminate")
	return nil, search.Step{}
}

// TestBFS_Errors verifies constructor guards.
func TestBFS_Errors(t *testing.T) {
	g, _ := grid.New(3, 3)

	_, err := bfs.New(nil, grid.C(0, 0), grid.C(2, 2))
	assert.ErrorIs(t, err, search.ErrGridNil)

	_, err = bfs.New(g, grid.C(3, 0), grid.C(2, 2))
	assert.ErrorIs(t, err, search.ErrStartOutOfBounds)

	_, err = bfs.New(g, grid.C(0, 0), grid.C(0, -1))
	assert.ErrorIs(t, err, search.ErrGoalOutOfBounds)
}

// TestBFS_OpenGrid checks level-order expansion and the shortest route.
func TestBFS_OpenGrid(t *testing.T) {
	g := grid.MustParse("S..\n...\n..G")
	s, err := bfs.New(g, g.Start(), g.Goal())
	require.NoError(t, err)

	order, last := drain(t, s)
	wantOrder := []grid.Coord{
		{0, 0}, {1, 0}, {0, 1}, {2, 0}, {1, 1}, {0, 2}, {2, 1}, {1, 2}, {2, 2},
	}
	assert.Equal(t, wantOrder, order)
	assert.Equal(t, search.Found, last.Outcome)
	assert.Equal(t, 9, last.Index)
	assert.Equal(t, []grid.Coord{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}}, last.Path)
}

// TestBFS_Adjacent finds a two-cell route on the second step.
func TestBFS_Adjacent(t *testing.T) {
	g := grid.MustParse("SG")
	s, err := bfs.New(g, g.Start(), g.Goal())
	require.NoError(t, err)

	st := s.Step()
	assert.Equal(t, search.Continue, st.Outcome)
	assert.Equal(t, grid.C(0, 0), st.Current)

	st = s.Step()
	assert.Equal(t, search.Found, st.Outcome)
	assert.Equal(t, 2, st.Index)
	assert.Len(t, st.Path, 2)
}

// TestBFS_Walled reports Exhausted on the step that finds the queue empty.
func TestBFS_Walled(t *testing.T) {
	g := grid.MustParse("S##\n###\n##G")
	s, err := bfs.New(g, g.Start(), g.Goal())
	require.NoError(t, err)

	st := s.Step()
	assert.Equal(t, search.Continue, st.Outcome)
	assert.Equal(t, grid.C(0, 0), st.Current)

	st = s.Step()
	assert.Equal(t, search.Exhausted, st.Outcome)
	assert.False(t, st.HasCurrent)
	assert.Nil(t, st.Path)

	// terminal steps repeat
	assert.Equal(t, st, s.Step())
}

// TestBFS_Detour routes around a wall column.
func TestBFS_Detour(t *testing.T) {
	g := grid.MustParse("S#.\n.#.\n..G")
	s, err := bfs.New(g, g.Start(), g.Goal())
	require.NoError(t, err)

	_, last := drain(t, s)
	require.Equal(t, search.Found, last.Outcome)
	assert.Equal(t, []grid.Coord{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}}, last.Path)
	for _, c := range last.Path {
		assert.True(t, g.Passable(c), "path crosses wall at %v", c)
	}
}

// TestBFS_VisitedAtDiscovery confirms neighbors are marked as soon as queued.
func TestBFS_VisitedAtDiscovery(t *testing.T) {
	g := grid.MustParse("S..\n...\n..G")
	s, err := bfs.New(g, g.Start(), g.Goal())
	require.NoError(t, err)

	assert.True(t, s.Visited(grid.C(0, 0)))
	assert.False(t, s.Visited(grid.C(1, 0)))

	s.Step()
	assert.True(t, s.Visited(grid.C(1, 0)))
	assert.True(t, s.Visited(grid.C(0, 1)))
	assert.Equal(t, []grid.Coord{{1, 0}, {0, 1}}, s.Frontier())

	pred := s.Predecessors()
	assert.Equal(t, grid.C(0, 0), pred[grid.C(1, 0)])
	pred[grid.C(1, 0)] = grid.C(9, 9)
	assert.Equal(t, grid.C(0, 0), s.Predecessors()[grid.C(1, 0)], "Predecessors must return a copy")
}

// TestBFS_Snapshot ignores edits made to the source grid after New.
func TestBFS_Snapshot(t *testing.T) {
	g := grid.MustParse("S.G")
	s, err := bfs.New(g, g.Start(), g.Goal())
	require.NoError(t, err)

	g.SetWall(grid.C(0, 1), true)
	_, last := drain(t, s)
	assert.Equal(t, search.Found, last.Outcome)
}

// TestBFS_Hooks counts enqueue and dequeue callbacks.
func TestBFS_Hooks(t *testing.T) {
	g := grid.MustParse("S.\n.G")
	var enq, deq []grid.Coord
	s, err := bfs.New(g, g.Start(), g.Goal(),
		bfs.WithOnEnqueue(func(c grid.Coord) { enq = append(enq, c) }),
		bfs.WithOnDequeue(func(c grid.Coord) { deq = append(deq, c) }),
		bfs.WithOnEnqueue(nil),
	)
	require.NoError(t, err)

	_, last := drain(t, s)
	require.Equal(t, search.Found, last.Outcome)
	assert.Equal(t, []grid.Coord{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, enq)
	assert.Equal(t, []grid.Coord{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, deq)
}

// TestBFS_Run drives the searcher through search.Run.
func TestBFS_Run(t *testing.T) {
	g := grid.MustParse("S...\n.##.\n...G")
	s, err := bfs.New(g, g.Start(), g.Goal())
	require.NoError(t, err)

	st, err := search.Run(s, 0)
	require.NoError(t, err)
	assert.Equal(t, search.Found, st.Outcome)
	assert.Len(t, st.Path, 6)
}
