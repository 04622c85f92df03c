package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazerunner/driver"
)

func newRunCommand(a *app) *cobra.Command {
	var (
		out     outputFlags
		instant bool
	)
	c := &cobra.Command{
		Use:   "run",
		Short: "Animate one search from start to goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctl, s, err := a.newSession(cmd.OutOrStdout(), &out)
			if err != nil {
				return err
			}
			a.log.Info("starting search",
				"algo", ctl.Algorithm(),
				"rows", ctl.Grid().Rows(),
				"cols", ctl.Grid().Cols(),
				"speed", ctl.Speed())

			ctl.FindPath()
			cmds := make(chan func())
			close(cmds)
			d := driver.New(ctl, driver.WithClock(clockFor(instant)), driver.WithLogger(a.log))
			if err := d.Run(cmd.Context(), cmds); err != nil {
				return errors.Wrap(err, "animate search")
			}

			a.log.Info("search complete", "steps", ctl.Status().Steps)
			return sinkErr(s)
		},
	}
	out.bind(c.Flags())
	c.Flags().BoolVar(&instant, "instant", false, "Skip the delay between steps")
	return c
}
