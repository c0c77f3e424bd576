package msg

import "github.com/Iron-Ham/pitwall/internal/telemetry"

// Generation identifies one load attempt of one slice. It increases every
// time the slice is (re)loaded.
type Generation uint64

// AerodynamicLoadedMsg reports the outcome of an aerodynamic slice load.
// Err is nil on success; otherwise it is a *errors.LoadError, or the bare
// context error when the load was canceled.
type AerodynamicLoadedMsg struct {
	Generation Generation
	Data       telemetry.AerodynamicData
	Err        error
}

// TelemetryLoadedMsg reports the outcome of a telemetry slice load.
type TelemetryLoadedMsg struct {
	Generation Generation
	Data       telemetry.TelemetryData
	Err        error
}
