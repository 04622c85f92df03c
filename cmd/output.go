package cmd

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/mazerunner/controller"
	"github.com/katalvlaran/mazerunner/render"
)

// Output formats accepted by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatPNG  = "png"
)

// outputFlags selects where frames and messages go.
type outputFlags struct {
	format string
	dir    string
	color  bool
	clear  bool
}

func (o *outputFlags) bind(fs *pflag.FlagSet) {
	fs.StringVar(&o.format, "format", FormatText, "Output format: text, json, png")
	fs.StringVar(&o.dir, "out", "frames", "Directory for png frames")
	fs.BoolVar(&o.color, "color", false, "Colour text output with ANSI escapes")
	fs.BoolVar(&o.clear, "clear", false, "Clear the terminal before each text frame")
}

// sink is a Renderer and Notifier pair with an optional deferred error.
type sink interface {
	controller.Renderer
	controller.Notifier
}

// open builds the sink. status feeds the JSON frame header and may be nil.
func (o *outputFlags) open(w io.Writer, cellPx int, status func() controller.Status) (sink, error) {
	switch o.format {
	case FormatText:
		return render.NewText(w, render.WithColor(o.color), render.WithClear(o.clear)), nil
	case FormatJSON:
		j := render.NewJSON(w)
		j.SetStatus(status)
		return j, nil
	case FormatPNG:
		p, err := render.NewPNG(o.dir, cellPx)
		if err != nil {
			return nil, errors.Wrap(err, "png output")
		}
		return p, nil
	default:
		return nil, errors.Errorf("unknown format: %s (must be text, json, or png)", o.format)
	}
}

// sinkErr surfaces errors a sink kept back from Notify or Render.
func sinkErr(s sink) error {
	if e, ok := s.(interface{ Err() error }); ok {
		return e.Err()
	}
	return nil
}
