// Package source provides the data-access capability behind the dashboard.
//
// A [Source] returns the aerodynamic and telemetry payloads. The dashboard
// depends only on this interface; the payload literals, fixture files and
// HTTP endpoints all live behind it. Every implementation honours context
// cancellation and returns ctx.Err() promptly once the caller goes away.
package source

import (
	"context"
	"fmt"
	"time"

	"github.com/Iron-Ham/pitwall/internal/config"
	"github.com/Iron-Ham/pitwall/internal/logging"
	"github.com/Iron-Ham/pitwall/internal/telemetry"
)

// Source loads the two dashboard slices. Implementations must be safe for
// concurrent use: both slices are fetched at the same time.
type Source interface {
	// Aerodynamic returns the performance series together with the flagged
	// components.
	Aerodynamic(ctx context.Context) (telemetry.AerodynamicData, error)
	// Telemetry returns the recent anomaly events.
	Telemetry(ctx context.Context) (telemetry.TelemetryData, error)
}

// New builds the Source selected by cfg.Kind.
func New(cfg config.SourceConfig, logger *logging.Logger) (Source, error) {
	if logger == nil {
		logger = logging.NopLogger()
	}
	logger = logger.WithComponent("source").With("kind", cfg.Kind)

	switch cfg.Kind {
	case config.SourceSimulated, "":
		return NewSimulated(cfg.AerodynamicDelay(), cfg.TelemetryDelay()), nil
	case config.SourceFile:
		return NewFile(cfg.FixtureFile, logger), nil
	case config.SourceHTTP:
		return NewHTTP(cfg.BaseURL, cfg.RequestTimeout(), logger)
	default:
		return nil, fmt.Errorf("unknown source kind %q", cfg.Kind)
	}
}

// sleep waits for d or until ctx is done, whichever comes first.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
