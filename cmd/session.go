package cmd

import (
	"io"

	"github.com/katalvlaran/mazerunner/controller"
	"github.com/katalvlaran/mazerunner/driver"
)

// newSession builds a controller that draws into the sink chosen by o.
// The initial frame is rendered before newSession returns.
func (a *app) newSession(w io.Writer, o *outputFlags) (*controller.Controller, sink, error) {
	g, err := a.loadGrid()
	if err != nil {
		return nil, nil, err
	}

	var ctl *controller.Controller
	out, err := o.open(w, a.cfg.CellSize, func() controller.Status {
		if ctl == nil {
			return controller.Status{}
		}
		return ctl.Status()
	})
	if err != nil {
		return nil, nil, err
	}

	opts := []controller.Option{controller.WithLogger(a.log)}
	if g != nil {
		opts = append(opts, controller.WithGrid(g))
	}
	ctl, err = controller.New(a.cfg, out, out, opts...)
	if err != nil {
		return nil, nil, err
	}
	return ctl, out, nil
}

func clockFor(instant bool) driver.Clock {
	if instant {
		return driver.InstantClock()
	}
	return driver.RealClock()
}
