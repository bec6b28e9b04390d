package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oxyfarm/aercomp/internal/server"
)

// newServeCmd creates the "serve" subcommand: the HTTP adapter in front of
// the comparison engine. Settings come from AERCOMP_* environment variables;
// --address overrides the listen address.
func newServeCmd() *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the comparison API over HTTP",
		Long: `Serve the comparison engine over HTTP:

  POST /api/v1/compare  run a comparison
  GET  /healthz         liveness probe
  GET  /metrics         prometheus metrics

Configuration comes from AERCOMP_* environment variables
(AERCOMP_ADDRESS, AERCOMP_READ_TIMEOUT, AERCOMP_MAX_BODY_BYTES, ...).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := server.ConfigFromEnv()
			if err != nil {
				return err
			}
			if address != "" {
				cfg.Address = address
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, cfg)
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "listen address (overrides AERCOMP_ADDRESS)")
	return cmd
}

// runServer blocks until the context is canceled or the server fails.
func runServer(ctx context.Context, cfg server.Config) error {
	srv := server.New(cfg, logger)
	return srv.ListenAndServe(ctx)
}
