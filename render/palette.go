// Package render provides headless front ends for the controller: an ANSI
// terminal view, a JSON frame stream and PNG frame files.
package render

import (
	"fmt"
	"image/color"

	"github.com/katalvlaran/mazerunner/grid"
)

// Cell colours.
var (
	ColorEmpty     = color.RGBA{255, 255, 255, 255}
	ColorWall      = color.RGBA{0, 0, 0, 255}
	ColorStart     = color.RGBA{0, 128, 0, 255}
	ColorGoal      = color.RGBA{255, 0, 0, 255}
	ColorFrontier  = color.RGBA{173, 216, 230, 255}
	ColorPath      = color.RGBA{255, 255, 0, 255}
	ColorHighlight = color.RGBA{255, 165, 0, 255}
	ColorOutline   = color.RGBA{190, 190, 190, 255}
)

// CellColor maps a classification to its fill colour.
func CellColor(c grid.Cell) color.RGBA {
	switch c {
	case grid.Wall:
		return ColorWall
	case grid.Start:
		return ColorStart
	case grid.Goal:
		return ColorGoal
	case grid.Frontier:
		return ColorFrontier
	case grid.Path:
		return ColorPath
	}
	return ColorEmpty
}

// ansiBackground returns the 24-bit escape selecting c as background.
func ansiBackground(c color.RGBA) string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", c.R, c.G, c.B)
}

const (
	ansiReset       = "\x1b[0m"
	ansiBlackFG     = "\x1b[30m"
	ansiClearScreen = "\x1b[H\x1b[2J"
)
