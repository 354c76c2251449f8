package main

import (
	"os/signal"
	"syscall"

	"github.com/rgehrsitz/nettogo/internal/config"
	"github.com/rgehrsitz/nettogo/internal/server"
	"github.com/spf13/cobra"
)

func serveCmd(opts *options) *cobra.Command {
	var listenAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator over HTTP",
		Long: `Start an HTTP API:

  POST /v1/evaluate          evaluate {"scenarios": [...]}
  GET  /v1/constants/{year}  constants of one year
  GET  /healthz              liveness and supported years
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := opts.settings.ListenAddr
			if cmd.Flags().Changed("listen") {
				addr = listenAddr
			}

			table, err := opts.settings.ConstantsTable()
			if err != nil {
				return err
			}
			engine := opts.engine(config.NewInputParser(table))

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.New(engine, opts.logger).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&listenAddr, "listen", ":8080", "Listen address (overrides NETTO_LISTEN_ADDR)")
	return cmd
}
