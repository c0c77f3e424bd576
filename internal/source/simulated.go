package source

import (
	"context"
	"time"

	"github.com/Iron-Ham/pitwall/internal/telemetry"
)

// Default simulated latencies.
const (
	DefaultAerodynamicDelay = 1500 * time.Millisecond
	DefaultTelemetryDelay   = 1000 * time.Millisecond
)

// Simulated serves the built-in payloads after a fixed delay per slice.
type Simulated struct {
	aerodynamicDelay time.Duration
	telemetryDelay   time.Duration
}

// NewSimulated creates a Simulated source with the given per-slice delays.
func NewSimulated(aerodynamicDelay, telemetryDelay time.Duration) *Simulated {
	return &Simulated{
		aerodynamicDelay: aerodynamicDelay,
		telemetryDelay:   telemetryDelay,
	}
}

// Aerodynamic returns the seven-race series and two flagged components.
func (s *Simulated) Aerodynamic(ctx context.Context) (telemetry.AerodynamicData, error) {
	if err := sleep(ctx, s.aerodynamicDelay); err != nil {
		return telemetry.AerodynamicData{}, err
	}
	return telemetry.SimulatedAerodynamic(), nil
}

// Telemetry returns the two built-in anomaly events.
func (s *Simulated) Telemetry(ctx context.Context) (telemetry.TelemetryData, error) {
	if err := sleep(ctx, s.telemetryDelay); err != nil {
		return telemetry.TelemetryData{}, err
	}
	return telemetry.SimulatedTelemetry(), nil
}
