package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/Iron-Ham/pitwall/internal/source"
	"github.com/Iron-Ham/pitwall/internal/tui"
	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print the dashboard once both panels have loaded",
	Long: `Load both panels, print the rendered dashboard and exit.

Failed panels are printed in their failed state. Use --no-color for plain
text suitable for files and diffs.`,
	Args: cobra.NoArgs,
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().IntP("width", "w", 0, "render width in columns (default: terminal width)")
	snapshotCmd.Flags().Bool("no-color", false, "strip colors and styling")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
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

	out := cmd.OutOrStdout()
	width, _ := cmd.Flags().GetInt("width")
	if width <= 0 {
		width = terminalWidth(out)
	}

	opts := []tui.Option{
		tui.WithLogger(logger),
		tui.WithTheme(cfg.TUI.Theme),
		tui.WithChartHeight(cfg.TUI.ChartHeight),
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		opts = append(opts, tui.WithPlainText())
	}
	return printSnapshot(cmd.Context(), out, src, width, opts...)
}

func printSnapshot(ctx context.Context, out io.Writer, src source.Source, width int, opts ...tui.Option) error {
	if ctx == nil {
		ctx = context.Background()
	}
	rendered, err := tui.RenderSnapshot(ctx, src, width, opts...)
	if err != nil {
		return fmt.Errorf("failed to render snapshot: %w", err)
	}
	_, err = fmt.Fprintln(out, rendered)
	return err
}
