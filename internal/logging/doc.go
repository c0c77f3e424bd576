// Package logging provides structured logging for pitwall.
//
// It wraps Go's log/slog to emit JSON lines with persistent attributes
// (component, slice) so that background loads and API requests can be
// correlated after the fact.
//
// # Output
//
// The dashboard owns the terminal, so it only ever logs to a file
// ({dir}/pitwall.log) or to nowhere. The API server logs to stderr when no
// directory is configured.
//
// # Usage
//
//	logger, err := logging.NewLogger(dir, logging.LevelInfo)
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.WithSlice("telemetry").Info("slice loaded", "count", 2)
package logging
