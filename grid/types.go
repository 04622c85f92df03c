package grid

import "fmt"

// Cell classifies a single grid square.
type Cell uint8

const (
	// Empty is a passable, unmarked cell.
	Empty Cell = iota
	// Wall is impassable.
	Wall
	// Start is where every search begins.
	Start
	// Goal is the search target.
	Goal
	// Frontier marks a cell already explored by the running search.
	Frontier
	// Path marks a cell on the reconstructed route.
	Path
)

var cellNames = [...]string{"empty", "wall", "start", "goal", "frontier", "path"}

var cellRunes = [...]rune{'.', '#', 'S', 'G', '+', '*'}

// String returns a lower-case name for c.
func (c Cell) String() string {
	if int(c) < len(cellNames) {
		return cellNames[c]
	}
	return fmt.Sprintf("cell(%d)", uint8(c))
}

// Rune returns the ASCII symbol used by Parse and Grid.String.
func (c Cell) Rune() rune {
	if int(c) < len(cellRunes) {
		return cellRunes[c]
	}
	return '?'
}

// Transient reports whether c is a mark written by a search (Frontier or Path).
func (c Cell) Transient() bool {
	return c == Frontier || c == Path
}

// cellFromRune is the inverse of Cell.Rune.
func cellFromRune(r rune) (Cell, bool) {
	for i, cr := range cellRunes {
		if cr == r {
			return Cell(i), true
		}
	}
	return Empty, false
}

// Coord addresses a cell by row and column. It is comparable and used as a
// map key throughout the search packages.
type Coord struct {
	Row, Col int
}

// C is shorthand for Coord{Row: row, Col: col}.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String formats c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns the component-wise sum of c and d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Manhattan returns |Δrow| + |Δcol| between c and o.
func (c Coord) Manhattan(o Coord) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// offsets lists orthogonal moves in expansion order: up, down, left, right.
var offsets = [4]Coord{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Offsets returns a copy of the neighbor offsets in expansion order.
func Offsets() [4]Coord {
	return offsets
}
