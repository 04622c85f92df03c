package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazerunner/server"
)

func newServeCommand(a *app) *cobra.Command {
	var addr string
	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve interactive sessions over websocket",
		Long: `serve listens on --addr. Each websocket connection to /ws gets its own
maze and controller; client messages are parsed as play commands and the
server replies with JSON frame and message objects. /healthz answers "ok".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv, err := server.New(a.cfg, server.WithLogger(a.log))
			if err != nil {
				return err
			}
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}
	c.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	return c
}
