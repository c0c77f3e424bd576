// Package api serves the dashboard's data API over any source.Source.
//
// Routes:
//
//	GET /api/aerodynamic_data  -> telemetry.AerodynamicData
//	GET /api/telemetry_data    -> telemetry.TelemetryData
//	GET /healthz               -> {"status":"ok"}
//
// Source failures are reported as {"error": "..."} with 502, or 504 when
// the source timed out.
package api

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/Iron-Ham/pitwall/internal/config"
	"github.com/Iron-Ham/pitwall/internal/errors"
	"github.com/Iron-Ham/pitwall/internal/logging"
	"github.com/Iron-Ham/pitwall/internal/source"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"
)

// Server is the data API HTTP server.
type Server struct {
	src     source.Source
	cfg     config.ServerConfig
	timeout time.Duration
	logger  *logging.Logger
	handler http.Handler
}

// NewServer creates a Server exposing src. timeout bounds each source call;
// zero leaves it to the client.
func NewServer(src source.Source, cfg config.ServerConfig, timeout time.Duration, logger *logging.Logger) *Server {
	if logger == nil {
		logger = logging.NopLogger()
	}
	s := &Server{
		src:     src,
		cfg:     cfg,
		timeout: timeout,
		logger:  logger.WithComponent("api"),
	}
	s.handler = s.routes()
	return s
}

// Handler returns the root http.Handler, CORS included.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get(HealthEndpoint, s.health)
	r.Route("/api", func(r chi.Router) {
		r.Get("/aerodynamic_data", s.aerodynamic)
		r.Get("/telemetry_data", s.telemetry)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return newCORS(s.cfg.AllowedOrigins).Handler(r)
}

// ListenAndServe listens on cfg.Addr and serves until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return errors.Wrapf(err, "listen on %s", s.cfg.Addr)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is canceled, then shuts down
// gracefully within cfg.ShutdownTimeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ErrorLog:          slogErrorLog(s.logger),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("data API listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout())
		defer cancel()

		s.logger.Info("shutting down data API")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
