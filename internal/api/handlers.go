package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Iron-Ham/pitwall/internal/errors"
	"github.com/Iron-Ham/pitwall/internal/telemetry"
)

// HealthEndpoint is the liveness route.
const HealthEndpoint = telemetry.HealthEndpoint

type healthResponse struct {
	Status string `json:"status"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

func (s *Server) aerodynamic(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.sourceContext(r)
	defer cancel()

	data, err := s.src.Aerodynamic(ctx)
	if err != nil {
		s.sourceFailure(w, r, telemetry.SliceAerodynamic, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (s *Server) telemetry(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.sourceContext(r)
	defer cancel()

	data, err := s.src.Telemetry(ctx)
	if err != nil {
		s.sourceFailure(w, r, telemetry.SliceTelemetry, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (s *Server) sourceContext(r *http.Request) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), s.timeout)
}

// sourceFailure maps a source error to a response. A client that went away
// gets nothing written back.
func (s *Server) sourceFailure(w http.ResponseWriter, r *http.Request, slice telemetry.Slice, err error) {
	logger := s.logger.WithSlice(string(slice))

	if r.Context().Err() != nil {
		logger.Debug("client went away", "error", err)
		return
	}

	status := http.StatusBadGateway
	if errors.Is(err, errors.ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
		status = http.StatusGatewayTimeout
	}

	logger.Warn("source failed", "status", status, "error", err)
	writeError(w, status, errors.NewLoadError(string(slice), err).Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, telemetry.ErrorBody{Error: message})
}
