package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/yalue/image_utils"

	"github.com/katalvlaran/mazerunner/grid"
)

// gridImage draws a grid as an image.Image, cellPx pixels per cell with a
// one-pixel outline on the top and left edge of every cell.
type gridImage struct {
	g      *grid.Grid
	cellPx int
}

func (m *gridImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (m *gridImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.g.Cols()*m.cellPx, m.g.Rows()*m.cellPx)
}

func (m *gridImage) At(x, y int) color.Color {
	if !image.Pt(x, y).In(m.Bounds()) {
		return color.Transparent
	}
	if x%m.cellPx == 0 || y%m.cellPx == 0 {
		return ColorOutline
	}
	return CellColor(m.g.At(grid.C(y/m.cellPx, x/m.cellPx)))
}

// tile returns a solid size×size square.
func tile(size int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// Image rasterises g with cellPx pixels per cell, painting highlight orange.
func Image(g *grid.Grid, highlight *grid.Coord, cellPx int) (*image.RGBA, error) {
	if cellPx < 2 {
		return nil, errors.Errorf("cell size %d too small", cellPx)
	}
	pic := image_utils.NewCompositeImage()
	if err := pic.AddImage(&gridImage{g: g, cellPx: cellPx}, image.Pt(0, 0)); err != nil {
		return nil, errors.Wrap(err, "add grid layer")
	}
	if highlight != nil && g.InBounds(*highlight) {
		pt := image.Pt(highlight.Col*cellPx+1, highlight.Row*cellPx+1)
		if err := pic.AddImage(tile(cellPx-1, ColorHighlight), pt); err != nil {
			return nil, errors.Wrap(err, "add highlight layer")
		}
	}
	return image_utils.ToRGBA(pic), nil
}

// PNG writes each frame to dir as frame-00001.png, frame-00002.png, ... and
// appends notifications to dir/messages.txt.
type PNG struct {
	dir    string
	cellPx int
	frames int
	err    error
}

// NewPNG creates dir if needed.
func NewPNG(dir string, cellPx int) (*PNG, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create frame dir %s", dir)
	}
	return &PNG{dir: dir, cellPx: cellPx}, nil
}

// Frames reports how many files have been written.
func (p *PNG) Frames() int { return p.frames }

// Err returns the first error hit by Notify.
func (p *PNG) Err() error { return p.err }

// Render writes the next frame file.
func (p *PNG) Render(g *grid.Grid, highlight *grid.Coord) error {
	pic, err := Image(g, highlight, p.cellPx)
	if err != nil {
		return err
	}
	name := filepath.Join(p.dir, fmt.Sprintf("frame-%05d.png", p.frames+1))
	f, err := os.Create(name)
	if err != nil {
		return errors.Wrapf(err, "create %s", name)
	}
	defer f.Close()
	if err := png.Encode(f, pic); err != nil {
		return errors.Wrapf(err, "encode %s", name)
	}
	p.frames++
	return nil
}

// Notify appends message to messages.txt.
func (p *PNG) Notify(message string) {
	name := filepath.Join(p.dir, "messages.txt")
	f, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		p.keep(errors.Wrapf(err, "open %s", name))
		return
	}
	defer f.Close()
	if _, err := fmt.Fprintf(f, "frame %d: %s\n", p.frames, message); err != nil {
		p.keep(errors.Wrapf(err, "write %s", name))
	}
}

func (p *PNG) keep(err error) {
	if p.err == nil {
		p.err = err
	}
}
