package cmd

import (
	"context"
	"fmt"

	"github.com/Iron-Ham/pitwall/internal/tui"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the performance dashboard",
	Long: `Open the interactive performance dashboard.

The aerodynamic and telemetry panels load independently. A panel whose load
fails can be retried with 'r'; '?' toggles the key help and 'q' quits.

When stdout is not a terminal a single snapshot is printed instead.`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	interactive := isTerminal(out)

	logger, err := newLogger(cfg.Logging, interactive)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	src, err := newSource(cfg.Source, logger)
	if err != nil {
		return err
	}

	opts := []tui.Option{
		tui.WithLogger(logger),
		tui.WithTheme(cfg.TUI.Theme),
		tui.WithChartHeight(cfg.TUI.ChartHeight),
		tui.WithWidth(terminalWidth(out)),
	}

	if !interactive {
		return printSnapshot(cmd.Context(), out, src, terminalWidth(out), opts...)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger.Info("starting dashboard", "source", cfg.Source.Kind, "theme", cfg.TUI.Theme)
	if err := tui.New(ctx, src, opts...).Run(); err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}
	return nil
}
