package grid

import (
	"fmt"
	"strings"
)

// Parse builds a Grid from its ASCII form, one row per line. Blank lines and
// surrounding whitespace are ignored. The layout must contain exactly one
// 'S' and one 'G'.
//
// Returns ErrEmptyGrid, ErrNonRectangular, ErrBadCell, ErrMissingStart,
// ErrMissingGoal, ErrDuplicateStart or ErrDuplicateGoal.
func Parse(text string) (*Grid, error) {
	var lines []string
	for _, ln := range strings.Split(text, "\n") {
		ln = strings.TrimSpace(ln)
		if ln != "" {
			lines = append(lines, ln)
		}
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(lines), len([]rune(lines[0]))
	g := &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}

	var haveStart, haveGoal bool
	for r, ln := range lines {
		runes := []rune(ln)
		if len(runes) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(runes), cols)
		}
		for c, ch := range runes {
			cell, ok := cellFromRune(ch)
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadCell, ch, r, c)
			}
			switch cell {
			case Start:
				if haveStart {
					return nil, ErrDuplicateStart
				}
				haveStart = true
				g.start = Coord{r, c}
			case Goal:
				if haveGoal {
					return nil, ErrDuplicateGoal
				}
				haveGoal = true
				g.goal = Coord{r, c}
			}
			g.cells[r*cols+c] = cell
		}
	}
	if !haveStart {
		return nil, ErrMissingStart
	}
	if !haveGoal {
		return nil, ErrMissingGoal
	}

	return g, nil
}

// MustParse is like Parse but panics on error. Intended for tests and examples.
func MustParse(text string) *Grid {
	g, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return g
}

// String renders g in ASCII form, rows separated by '\n', no trailing newline.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			sb.WriteRune(g.cells[r*g.cols+c].Rune())
		}
	}
	return sb.String()
}
