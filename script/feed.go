package script

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/pkg/errors"
)

// Send queues op for ctl on cmds, giving up if ctx ends first.
func Send(ctx context.Context, cmds chan<- func(), ctl Controls, op Op) error {
	select {
	case cmds <- func() { op.Apply(ctl) }:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Sleep waits d or until ctx ends.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Feed reads r line by line, parses each line and forwards the resulting
// ops to cmds. It honours wait in place and stops at quit, reporting
// quit=true. Parse errors are returned with the line number.
func Feed(ctx context.Context, r io.Reader, ctl Controls, cmds chan<- func()) (quit bool, err error) {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		ops, err := Parse(sc.Text())
		if err != nil {
			return false, errors.Wrapf(err, "input line %d", line)
		}
		for _, op := range ops {
			switch op.Kind {
			case KindQuit:
				return true, nil
			case KindWait:
				if err := Sleep(ctx, time.Duration(op.N)*time.Millisecond); err != nil {
					return false, err
				}
			default:
				if err := Send(ctx, cmds, ctl, op); err != nil {
					return false, err
				}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return false, errors.Wrap(err, "read script")
	}
	return false, nil
}
