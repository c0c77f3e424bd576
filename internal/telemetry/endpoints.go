package telemetry

// Data API routes. The server in internal/api serves them and the HTTP
// source consumes them.
const (
	AerodynamicEndpoint = "/api/aerodynamic_data"
	TelemetryEndpoint   = "/api/telemetry_data"
	HealthEndpoint      = "/healthz"
)

// Endpoint returns the data API route serving a slice.
func (s Slice) Endpoint() string {
	switch s {
	case SliceAerodynamic:
		return AerodynamicEndpoint
	case SliceTelemetry:
		return TelemetryEndpoint
	default:
		return ""
	}
}

// ErrorBody is the JSON body the data API returns with a non-2xx status.
type ErrorBody struct {
	Error string `json:"error"`
}
