package msg

import (
	"context"

	"github.com/Iron-Ham/pitwall/internal/errors"
	"github.com/Iron-Ham/pitwall/internal/source"
	"github.com/Iron-Ham/pitwall/internal/telemetry"
	tea "github.com/charmbracelet/bubbletea"
)

// LoadAerodynamic returns a command that fetches the aerodynamic slice.
// ctx is the view's lifetime context.
func LoadAerodynamic(ctx context.Context, src source.Source, gen Generation) tea.Cmd {
	return func() tea.Msg {
		data, err := src.Aerodynamic(ctx)
		return AerodynamicLoadedMsg{
			Generation: gen,
			Data:       data,
			Err:        loadFailure(telemetry.SliceAerodynamic, err),
		}
	}
}

// LoadTelemetry returns a command that fetches the telemetry slice.
func LoadTelemetry(ctx context.Context, src source.Source, gen Generation) tea.Cmd {
	return func() tea.Msg {
		data, err := src.Telemetry(ctx)
		return TelemetryLoadedMsg{
			Generation: gen,
			Data:       data,
			Err:        loadFailure(telemetry.SliceTelemetry, err),
		}
	}
}

// loadFailure wraps a source error as a LoadError. Cancellation passes
// through unwrapped; it is teardown, not a failure.
func loadFailure(slice telemetry.Slice, err error) error {
	if err == nil || errors.IsCanceled(err) {
		return err
	}
	return errors.NewLoadError(string(slice), err)
}
