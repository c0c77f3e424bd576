package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Iron-Ham/pitwall/internal/api"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard data API over HTTP",
	Long: `Serve the aerodynamic and telemetry data over HTTP.

Endpoints:
  GET /api/aerodynamic_data   performance series and flagged components
  GET /api/telemetry_data     anomaly events
  GET /healthz                liveness check

The served data comes from the configured source, so 'pitwall serve' in
front of the simulation gives other dashboards a realistic backend:

  pitwall serve --addr :8080
  pitwall --source http --url http://localhost:8080`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default \":8080\")")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Logging, false)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	src, err := newSource(cfg.Source, logger)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := api.NewServer(src, cfg.Server, cfg.Source.RequestTimeout(), logger)
	return server.ListenAndServe(ctx)
}
