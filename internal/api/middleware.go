package api

import (
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/Iron-Ham/pitwall/internal/logging"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// requestLogger logs one line per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// newCORS builds the CORS handler. A "*" entry allows every origin.
func newCORS(origins []string) *cors.Cors {
	opts := cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         int((2 * time.Hour).Seconds()),
	}
	for _, o := range origins {
		if o == "*" {
			opts.AllowOriginFunc = func(string) bool { return true }
			return cors.New(opts)
		}
	}
	opts.AllowedOrigins = origins
	return cors.New(opts)
}

func slogErrorLog(logger *logging.Logger) *log.Logger {
	return slog.NewLogLogger(logger.Slog().Handler(), slog.LevelError)
}
