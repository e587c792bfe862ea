package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func NewServeCommand(globalOptions *GlobalOptions) *cobra.Command {

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long:  "Start the HTTP server. It serves /api/v1/info, /health, /ready and /swagger/ until SIGINT or SIGTERM.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, globalOptions.Conf, globalOptions.Logger)
		},
	}

	// override flags
	registerServerFlags(serveCmd)
	registerInfoFlags(serveCmd)

	return serveCmd
}
