// Package driver paces a stepwise search in real time. A single goroutine
// owns the target: it applies queued commands and fires ticks, keeping at
// most one tick pending.
package driver

import (
	"context"
	"log/slog"
	"time"
)

// Clock abstracts timer creation.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// RealClock is backed by time.After.
func RealClock() Clock { return realClock{} }

type instantClock struct{}

func (instantClock) After(time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- time.Now()
	return ch
}

// InstantClock fires every timer at once, running a search as fast as the
// target allows.
func InstantClock() Clock { return instantClock{} }

// Target is the state machine being animated.
type Target interface {
	// Tick performs one scheduled step and reports whether another should follow.
	Tick() bool
	// Active reports whether ticks are wanted (running and not paused).
	Active() bool
	// Speed returns the current speed setting in [1,100].
	Speed() int
}

// Option configures a Driver.
type Option func(*Driver)

// WithClock replaces the real clock, mainly for tests.
func WithClock(c Clock) Option {
	return func(d *Driver) {
		if c != nil {
			d.clock = c
		}
	}
}

// WithLogger sets the logger used for lifecycle records.
func WithLogger(l *slog.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.log = l
		}
	}
}

// Driver schedules Target ticks. It is not safe to call Run twice concurrently.
type Driver struct {
	target Target
	clock  Clock
	log    *slog.Logger
}

// New returns a Driver for t using the real clock and slog.Default().
func New(t Target, opts ...Option) *Driver {
	d := &Driver{target: t, clock: RealClock(), log: slog.Default()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run applies commands from cmds and fires ticks until ctx is cancelled or
// cmds is closed and no tick is pending. A command that makes the target
// active arms an immediate tick, replacing any pending one; a command that
// leaves it inactive drops the pending tick.
func (d *Driver) Run(ctx context.Context, cmds <-chan func()) error {
	d.log.Debug("driver started")
	defer d.log.Debug("driver stopped")

	var tick <-chan time.Time
	if d.target.Active() {
		tick = d.clock.After(0)
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case cmd, ok := <-cmds:
			if !ok {
				cmds = nil
				if tick == nil {
					return nil
				}
				continue
			}
			was := d.target.Active()
			cmd()
			switch now := d.target.Active(); {
			case now && !was:
				tick = d.clock.After(0)
			case !now:
				tick = nil
			}

		case <-tick:
			tick = nil
			if d.target.Tick() {
				tick = d.clock.After(Delay(d.target.Speed()))
			}
			if cmds == nil && tick == nil {
				return nil
			}
		}
	}
}
