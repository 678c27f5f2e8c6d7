package commands

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sqlshift-labs/sqlshift/internal/server"
)

// NewServeCommand creates the serve command.
func NewServeCommand(deps Deps) *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the SQL operations over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("port") {
				port = deps.Config().Port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := server.New(server.Config{
				Engine: deps.Engine(),
				Port:   port,
				Logger: slog.Default(),
			})
			return srv.Serve(ctx)
		},
	}
	cmd.Flags().IntVar(&port, "port", 8080, "port to listen on")
	return cmd
}
