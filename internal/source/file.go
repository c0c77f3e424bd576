package source

import (
	"context"
	"os"

	"github.com/Iron-Ham/pitwall/internal/errors"
	"github.com/Iron-Ham/pitwall/internal/logging"
	"github.com/Iron-Ham/pitwall/internal/telemetry"
	"gopkg.in/yaml.v3"
)

// File serves a snapshot fixture from disk. The file is re-read on every
// call so edits show up on the next retry. JSON fixtures work too, since
// YAML is a superset of JSON.
type File struct {
	path   string
	logger *logging.Logger
}

// NewFile creates a File source reading path.
func NewFile(path string, logger *logging.Logger) *File {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &File{path: path, logger: logger}
}

// Aerodynamic returns the fixture's aerodynamic payload.
func (f *File) Aerodynamic(ctx context.Context) (telemetry.AerodynamicData, error) {
	snap, err := f.read(ctx)
	if err != nil {
		return telemetry.AerodynamicData{}, err
	}
	if err := snap.Aerodynamic.Validate(); err != nil {
		return telemetry.AerodynamicData{}, err
	}
	return snap.Aerodynamic, nil
}

// Telemetry returns the fixture's telemetry payload.
func (f *File) Telemetry(ctx context.Context) (telemetry.TelemetryData, error) {
	snap, err := f.read(ctx)
	if err != nil {
		return telemetry.TelemetryData{}, err
	}
	if err := snap.Telemetry.Validate(); err != nil {
		return telemetry.TelemetryData{}, err
	}
	return snap.Telemetry, nil
}

func (f *File) read(ctx context.Context) (telemetry.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return telemetry.Snapshot{}, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return telemetry.Snapshot{}, errors.NewSourceError("read fixture", err).
			WithSource("file").
			WithEndpoint(f.path)
	}

	var snap telemetry.Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return telemetry.Snapshot{}, errors.NewValidationError("fixture is not valid YAML or JSON").
			WithField(f.path).
			WithCause(err)
	}

	// Each slice still validates on its own so one bad section leaves the
	// other slice loadable.
	if err := snap.Validate(); err != nil {
		f.logger.Warn("fixture has an invalid section", "path", f.path, "error", err)
	} else {
		f.logger.Debug("fixture read", "path", f.path, "bytes", len(data))
	}
	return snap, nil
}
