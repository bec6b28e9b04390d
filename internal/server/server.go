// Package server exposes the comparison engine over HTTP. It is a thin
// adapter: JSON in, sanitized comparison document or structured error out,
// with request-scoped logging and prometheus metrics.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/oxyfarm/aercomp/internal/logging"
)

// Server serves the comparison API:
//   - POST /api/v1/compare runs a comparison
//   - GET  /healthz reports liveness
//   - GET  /metrics exposes prometheus metrics
type Server struct {
	cfg    Config
	logger zerolog.Logger
	http   *http.Server
}

// New builds a server from cfg. The logger is attached to every request
// context together with a per-request trace ID.
func New(cfg Config, logger zerolog.Logger) *Server {
	initMetrics()

	s := &Server{cfg: cfg, logger: logging.ComponentLogger(logger, "server")}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(s.requestLogger)

	router.Post("/api/v1/compare", s.handleCompare)
	router.Get("/healthz", s.handleHealthz)
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	s.http = &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

// Handler returns the routed handler, used directly by tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// requestLogger attaches a trace-scoped logger to the request context and
// logs request completion.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		traceID := logging.GetOrGenerateTraceID(ctx)
		ctx = logging.ContextWithTraceID(ctx, traceID)

		reqLogger := s.logger.With().
			Str("trace_id", traceID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Logger()
		ctx = reqLogger.WithContext(ctx)

		reqLogger.Debug().Msg("request received")
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ListenAndServe runs the server until the context is canceled, then shuts
// down gracefully within the configured timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("address", s.cfg.Address).Msg("server listening")
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		s.logger.Error().Err(err).Msg("graceful shutdown failed")
		return err
	}
	s.logger.Info().Msg("server stopped")
	return <-errCh
}
