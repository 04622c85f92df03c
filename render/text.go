package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/mazerunner/grid"
)

// HighlightRune marks the highlighted cell in plain output.
const HighlightRune = '@'

// TextOption configures a Text renderer.
type TextOption func(*Text)

// WithColor enables ANSI 24-bit colour output.
func WithColor(on bool) TextOption {
	return func(t *Text) { t.color = on }
}

// WithClear homes the cursor and clears the screen before every frame.
func WithClear(on bool) TextOption {
	return func(t *Text) { t.clear = on }
}

// Text draws frames to a terminal or any io.Writer. In plain mode each
// cell is its ASCII rune and frames are separated by a blank line.
type Text struct {
	w      io.Writer
	color  bool
	clear  bool
	frames int
}

// NewText returns a plain Text renderer writing to w.
func NewText(w io.Writer, opts ...TextOption) *Text {
	t := &Text{w: w}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Frames reports how many frames have been written.
func (t *Text) Frames() int { return t.frames }

// Render writes one frame.
func (t *Text) Render(g *grid.Grid, highlight *grid.Coord) error {
	bw := bufio.NewWriter(t.w)
	if t.clear {
		bw.WriteString(ansiClearScreen)
	} else if t.frames > 0 {
		bw.WriteByte('\n')
	}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			at := grid.C(r, c)
			lit := highlight != nil && *highlight == at
			if t.color {
				bw.WriteString(colorCell(g.At(at), lit))
			} else if lit {
				bw.WriteRune(HighlightRune)
			} else {
				bw.WriteRune(g.At(at).Rune())
			}
		}
		if t.color {
			bw.WriteString(ansiReset)
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "render text frame")
	}
	t.frames++
	return nil
}

func colorCell(cell grid.Cell, lit bool) string {
	bg := CellColor(cell)
	if lit {
		bg = ColorHighlight
	}
	label := "  "
	if cell == grid.Start || cell == grid.Goal {
		label = string(cell.Rune()) + " "
	}
	return ansiBackground(bg) + ansiBlackFG + label
}

// Notify prints the message on its own line.
func (t *Text) Notify(message string) {
	fmt.Fprintf(t.w, ">> %s\n", strings.TrimSpace(message))
}
