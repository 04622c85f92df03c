package grid

import "fmt"

// Grid is a rows×cols board of cells with exactly one Start and one Goal.
// The zero value is not usable; build one with New or Parse.
// A Grid is not safe for concurrent mutation.
type Grid struct {
	rows, cols int
	cells      []Cell // row-major
	start      Coord
	goal       Coord
}

// New returns an all-Empty rows×cols grid with Start at the top-left cell and
// Goal at the bottom-right cell.
// Returns ErrEmptyGrid if rows or cols < 1, ErrTooSmall for a 1×1 grid.
// Complexity: O(W×H).
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, rows, cols)
	}
	if rows*cols < 2 {
		return nil, ErrTooSmall
	}
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	g.resetEndpoints()

	return g, nil
}

// resetEndpoints puts Start and Goal back into their corner positions.
func (g *Grid) resetEndpoints() {
	g.start = Coord{0, 0}
	g.goal = Coord{g.rows - 1, g.cols - 1}
	g.cells[g.index(g.start)] = Start
	g.cells[g.index(g.goal)] = Goal
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Start returns the start coordinate.
func (g *Grid) Start() Coord { return g.start }

// Goal returns the goal coordinate.
func (g *Grid) Goal() Coord { return g.goal }

// index maps c to its row-major slot. Callers must check InBounds first.
func (g *Grid) index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a Coord.
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// InBounds reports whether c lies within the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the cell at c, or Wall when c is out of bounds.
func (g *Grid) At(c Coord) Cell {
	if !g.InBounds(c) {
		return Wall
	}
	return g.cells[g.index(c)]
}

// Passable reports whether a search may step onto c.
func (g *Grid) Passable(c Coord) bool {
	return g.At(c) != Wall
}

// Neighbors returns the passable orthogonal neighbors of c in the fixed
// order up, down, left, right.
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(offsets))
	for _, d := range offsets {
		n := c.Add(d)
		if g.Passable(n) {
			out = append(out, n)
		}
	}
	return out
}

// isEndpoint reports whether c is the current Start or Goal.
func (g *Grid) isEndpoint(c Coord) bool {
	return c == g.start || c == g.goal
}

// SetWall makes c a Wall (isWall) or Empty (!isWall). It is a no-op for
// Start, Goal, and out-of-bounds coordinates. Reports whether the cell changed.
func (g *Grid) SetWall(c Coord, isWall bool) bool {
	if !g.InBounds(c) || g.isEndpoint(c) {
		return false
	}
	want := Empty
	if isWall {
		want = Wall
	}
	i := g.index(c)
	if g.cells[i] == want {
		return false
	}
	g.cells[i] = want

	return true
}

// ToggleWall turns an Empty cell into a Wall and any other non-endpoint cell
// (Wall, Frontier, Path) into Empty. Same no-op rules as SetWall.
func (g *Grid) ToggleWall(c Coord) bool {
	if !g.InBounds(c) || g.isEndpoint(c) {
		return false
	}
	return g.SetWall(c, g.cells[g.index(c)] == Empty)
}

// MoveGoal relocates the Goal to c, reverting the old goal cell to Empty.
// Refused (returns false) when c is out of bounds, a Wall, or the Start.
// Moving the goal onto itself succeeds without change.
func (g *Grid) MoveGoal(c Coord) bool {
	if !g.InBounds(c) || c == g.start || g.cells[g.index(c)] == Wall {
		return false
	}
	g.cells[g.index(g.goal)] = Empty
	g.goal = c
	g.cells[g.index(c)] = Goal

	return true
}

// MarkFrontier marks c as explored. Start and Goal keep their state.
func (g *Grid) MarkFrontier(c Coord) {
	g.mark(c, Frontier)
}

// MarkPath marks c as part of the final route. Start and Goal keep their state.
func (g *Grid) MarkPath(c Coord) {
	g.mark(c, Path)
}

func (g *Grid) mark(c Coord, as Cell) {
	if !g.InBounds(c) || g.isEndpoint(c) {
		return
	}
	i := g.index(c)
	if g.cells[i] == Wall {
		return
	}
	g.cells[i] = as
}

// ClearTransientMarks resets every Frontier and Path cell to Empty and
// re-asserts the Start and Goal cells.
func (g *Grid) ClearTransientMarks() {
	for i, c := range g.cells {
		if c.Transient() {
			g.cells[i] = Empty
		}
	}
	g.cells[g.index(g.start)] = Start
	g.cells[g.index(g.goal)] = Goal
}

// Count returns how many cells are in state c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, v := range g.cells {
		if v == c {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		rows:  g.rows,
		cols:  g.cols,
		cells: cells,
		start: g.start,
		goal:  g.goal,
	}
}

// Equal reports whether g and o have identical dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.rows != o.rows || g.cols != o.cols || g.start != o.start || g.goal != o.goal {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}
