// Package server serves the cached person graph over HTTP.
//
// All endpoints are read-only JSON views over one [genealogy.Cache]; the
// cache is filled by the serve command before the listener starts and may be
// replaced at any time.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/gedgraph/pkg/genealogy"
	"github.com/matzehuels/gedgraph/pkg/observability"
)

const shutdownTimeout = 10 * time.Second

// Options configures the HTTP listener.
type Options struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server routes requests to handlers over a person cache.
type Server struct {
	people  *genealogy.Cache
	logger  *log.Logger
	metrics *Metrics
	router  chi.Router
}

// New creates a server reading from people.
func New(people *genealogy.Cache, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{people: people, logger: logger, metrics: NewMetrics(people)}
	s.router = s.routes()
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// Metrics returns the server's Prometheus metrics.
func (s *Server) Metrics() *Metrics { return s.metrics }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/genealogy/data", s.handleData)
		r.Get("/statistics", s.handleStatistics)
		r.Get("/distance", s.handleDistance)

		r.Route("/people", func(r chi.Router) {
			r.Get("/", s.handleListPeople)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handlePerson)
				r.Get("/relatives", s.handleRelatives)
				r.Get("/ancestors", s.handleAncestors)
				r.Get("/descendants", s.handleDescendants)
				r.Get("/generation/{level}", s.handleGeneration)
			})
		})
	})
	return r
}

// unmatchedRoute labels requests no route pattern matched, so arbitrary
// paths do not become metric series.
const unmatchedRoute = "unmatched"

// requestLogger logs every request with its matched route and reports it
// to the HTTP hooks.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		duration := time.Since(start)

		fields := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"duration", duration,
			"request_id", middleware.GetReqID(r.Context()),
		}
		if status >= http.StatusInternalServerError {
			s.logger.Error("http request", fields...)
		} else {
			s.logger.Debug("http request", fields...)
		}
		observability.HTTP().OnRequest(r.Context(), r.Method, route, status, duration)
	})
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, opts Options) error {
	srv := &http.Server{
		Addr:         opts.Addr,
		Handler:      s.router,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", opts.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen %s: %w", opts.Addr, err)
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return ctx.Err()
	}
}
