// Package telemetry defines the data shown on the dashboard: the aerodynamic
// performance series, flagged components and telemetry anomaly events.
//
// The JSON field names match the data API payloads served by internal/api.
package telemetry

// Slice names one independently loaded collection on the dashboard.
// Flagged components travel with the aerodynamic slice.
type Slice string

const (
	SliceAerodynamic Slice = "aerodynamic"
	SliceTelemetry   Slice = "telemetry"
)

// PerformanceSample is one race in the downforce/drag series.
// Units and measurement method are left to the producing backend.
type PerformanceSample struct {
	Label     string  `json:"name" yaml:"name"`
	Downforce float64 `json:"downforce" yaml:"downforce"`
	Drag      float64 `json:"drag" yaml:"drag"`
}

// FlaggedComponent is a mechanical part annotated with a degradation status
// and a recommendation.
type FlaggedComponent struct {
	Identifier     string `json:"id" yaml:"id"`
	Status         string `json:"status" yaml:"status"`
	Loss           string `json:"loss" yaml:"loss"`
	Recommendation string `json:"recommendation" yaml:"recommendation"`
}

// TelemetryEvent is an anomaly reported by the telemetry pipeline.
// Timestamp is display text and is never parsed.
type TelemetryEvent struct {
	ID        int    `json:"id" yaml:"id"`
	Event     string `json:"event" yaml:"event"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
	Details   string `json:"details" yaml:"details"`
}

// AerodynamicData is the payload of the aerodynamic slice.
type AerodynamicData struct {
	Performance []PerformanceSample `json:"performance" yaml:"performance"`
	Flagged     []FlaggedComponent  `json:"flagged" yaml:"flagged"`
}

// TelemetryData is the payload of the telemetry slice.
type TelemetryData struct {
	Events []TelemetryEvent `json:"events" yaml:"events"`
}

// Snapshot bundles both payloads; it is the shape of a fixture file.
type Snapshot struct {
	Aerodynamic AerodynamicData `json:"aerodynamic" yaml:"aerodynamic"`
	Telemetry   TelemetryData   `json:"telemetry" yaml:"telemetry"`
}
