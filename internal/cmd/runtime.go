package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/Iron-Ham/pitwall/internal/config"
	"github.com/Iron-Ham/pitwall/internal/logging"
	"github.com/Iron-Ham/pitwall/internal/source"
	"golang.org/x/term"
)

// defaultTerminalWidth is used when stdout is not a terminal.
const defaultTerminalWidth = 100

// loadConfig reads and validates the effective configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newLogger builds the logger for a command. When no log directory is
// configured, commands that own the terminal get a no-op logger and the
// others log to stderr.
func newLogger(cfg config.LoggingConfig, ownsTerminal bool) (*logging.Logger, error) {
	if !cfg.Enabled || (cfg.Dir == "" && ownsTerminal) {
		return logging.NopLogger(), nil
	}
	return logging.NewLogger(cfg.Dir, cfg.Level)
}

// newSource builds the configured data source.
func newSource(cfg config.SourceConfig, logger *logging.Logger) (source.Source, error) {
	src, err := source.New(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s source: %w", cfg.Kind, err)
	}
	return src, nil
}

// isTerminal reports whether w is attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the width of w, or defaultTerminalWidth when w is
// not a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultTerminalWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultTerminalWidth
	}
	return width
}
