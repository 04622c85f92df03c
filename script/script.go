// Package script parses the textual control language used by the play and
// serve front ends and applies it to a controller.
//
//	click 45 85     // press at pixel (45,85)
//	find            // start the selected algorithm
//	speed 80
//	algo bfs        // or astar, dfs, "A*"
//	pause           // pause or resume
//	wait 500        // sleep 500 ms before the next command
//	regen | edit | restart | quit
package script

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/mazerunner/engine"
)

// Kind identifies an Op.
type Kind int

const (
	KindClick   Kind = iota // click X Y
	KindFind                // find
	KindRegen               // regen
	KindEdit                // edit
	KindRestart             // restart
	KindPause               // pause or resume
	KindSpeed               // speed N
	KindAlgo                // algo NAME
	KindWait                // wait MS
	KindQuit                // quit
)

var kindNames = [...]string{
	KindClick: "click", KindFind: "find", KindRegen: "regen", KindEdit: "edit",
	KindRestart: "restart", KindPause: "pause", KindSpeed: "speed",
	KindAlgo: "algo", KindWait: "wait", KindQuit: "quit",
}

// String returns the command keyword.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Op is a compiled command.
type Op struct {
	Kind Kind
	X, Y int              // click
	N    int              // speed, or wait in milliseconds
	Algo engine.Algorithm // algo
	Line int
}

// Controls is the surface an Op acts on.
type Controls interface {
	Click(px, py int)
	FindPath()
	Regenerate()
	ToggleEdit()
	Restart()
	TogglePause()
	SetSpeed(s int)
	SelectAlgorithm(a engine.Algorithm) error
}

// Parse compiles src into ops.
func Parse(src string) ([]Op, error) {
	s, err := parser.ParseString("", src)
	if err != nil {
		return nil, errors.Wrap(err, "parse script")
	}
	ops := make([]Op, 0, len(s.Commands))
	for _, c := range s.Commands {
		op, err := compile(c)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", c.Pos.Line)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func compile(c *Command) (Op, error) {
	op := Op{Line: c.Pos.Line}
	var err error
	switch {
	case c.Click != nil:
		op.Kind = KindClick
		if op.X, err = strconv.Atoi(c.Click.X); err != nil {
			return op, errors.Wrap(err, "click x")
		}
		if op.Y, err = strconv.Atoi(c.Click.Y); err != nil {
			return op, errors.Wrap(err, "click y")
		}
	case c.Find:
		op.Kind = KindFind
	case c.Regen:
		op.Kind = KindRegen
	case c.Edit:
		op.Kind = KindEdit
	case c.Restart:
		op.Kind = KindRestart
	case c.Pause:
		op.Kind = KindPause
	case c.Speed != nil:
		op.Kind = KindSpeed
		if op.N, err = strconv.Atoi(*c.Speed); err != nil {
			return op, errors.Wrap(err, "speed")
		}
	case c.Algo != nil:
		op.Kind = KindAlgo
		if op.Algo, err = engine.ParseAlgorithm(*c.Algo); err != nil {
			return op, err
		}
	case c.Wait != nil:
		op.Kind = KindWait
		if op.N, err = strconv.Atoi(*c.Wait); err != nil {
			return op, errors.Wrap(err, "wait")
		}
	case c.Quit:
		op.Kind = KindQuit
	}
	return op, nil
}

// Apply performs op on ctl. Wait and Quit are handled by the caller and do
// nothing here.
func (op Op) Apply(ctl Controls) {
	switch op.Kind {
	case KindClick:
		ctl.Click(op.X, op.Y)
	case KindFind:
		ctl.FindPath()
	case KindRegen:
		ctl.Regenerate()
	case KindEdit:
		ctl.ToggleEdit()
	case KindRestart:
		ctl.Restart()
	case KindPause:
		ctl.TogglePause()
	case KindSpeed:
		ctl.SetSpeed(op.N)
	case KindAlgo:
		_ = ctl.SelectAlgorithm(op.Algo)
	}
}
