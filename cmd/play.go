package cmd

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazerunner/driver"
	"github.com/katalvlaran/mazerunner/script"
)

func newPlayCommand(a *app) *cobra.Command {
	var (
		out        outputFlags
		instant    bool
		scriptFile string
	)
	c := &cobra.Command{
		Use:   "play",
		Short: "Drive the controller with commands read from a script or stdin",
		Long: `play reads one command per line and applies it to a live session:

  click X Y      press at pixel (X, Y)
  find           start the search
  regen          new random maze
  edit           toggle obstacle editing
  restart        clear marks and unlock the goal
  pause|resume   toggle pause
  speed N        set speed 1-100
  algo NAME      switch to A*, BFS or DFS and search again
  wait MS        sleep MS milliseconds
  quit           end the session

A search still running at end of input is animated to completion.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in io.Reader = cmd.InOrStdin()
			if scriptFile != "" {
				f, err := os.Open(scriptFile)
				if err != nil {
					return errors.Wrap(err, "open script")
				}
				defer f.Close()
				in = f
			}

			ctl, s, err := a.newSession(cmd.OutOrStdout(), &out)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			cmds := make(chan func())
			feedErr := make(chan error, 1)
			go func() {
				defer close(cmds)
				quit, err := script.Feed(ctx, in, ctl, cmds)
				if quit || err != nil {
					cancel()
				}
				feedErr <- err
			}()

			d := driver.New(ctl, driver.WithClock(clockFor(instant)), driver.WithLogger(a.log))
			runErr := d.Run(ctx, cmds)

			// Run only stops on its own once the feeder has closed cmds or
			// cancelled ctx, so its result is on the way. After an outside
			// cancel the feeder may still be blocked reading input.
			var ferr error
			if cmd.Context().Err() == nil {
				ferr = <-feedErr
			} else {
				select {
				case ferr = <-feedErr:
				default:
				}
			}
			if ferr != nil && !errors.Is(ferr, context.Canceled) {
				return ferr
			}
			if runErr != nil && !errors.Is(runErr, context.Canceled) {
				return errors.Wrap(runErr, "drive session")
			}
			return sinkErr(s)
		},
	}
	out.bind(c.Flags())
	c.Flags().BoolVar(&instant, "instant", false, "Skip the delay between steps")
	c.Flags().StringVar(&scriptFile, "script", "", "Read commands from FILE instead of stdin")
	return c
}
