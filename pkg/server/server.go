// Package server exposes the solver over HTTP.
//
// # Endpoints
//
//	POST /v1/solve   find every dictionary word in a grid
//	POST /v1/trace   find the path of one word in a grid
//	GET  /healthz    liveness and dictionary size
//	GET  /version    build information
//
// Every response carries an X-Request-ID header, echoed from the request or
// generated. Errors are returned as [ErrorResponse] with the error code from
// package errors.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/gridwords/pkg/solver"
)

const (
	defaultTimeout  = 30 * time.Second
	defaultMaxBytes = 1 << 20
	shutdownTimeout = 10 * time.Second
)

// Options configures a Server.
type Options struct {
	Logger   *log.Logger
	Timeout  time.Duration // per request solve timeout; 0 = 30s
	MaxBytes int64         // request body limit; 0 = 1 MiB
}

// Server serves solve requests against one loaded dictionary.
type Server struct {
	solver   *solver.Solver
	words    []string
	logger   *log.Logger
	timeout  time.Duration
	maxBytes int64
	router   chi.Router
}

// New creates a Server that solves against words.
func New(s *solver.Solver, words []string, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = defaultMaxBytes
	}

	srv := &Server{
		solver:   s,
		words:    words,
		logger:   opts.Logger,
		timeout:  opts.Timeout,
		maxBytes: opts.MaxBytes,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestID)
	r.Use(srv.logRequests)

	r.Get("/healthz", srv.handleHealth)
	r.Get("/version", srv.handleVersion)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/solve", srv.handleSolve)
		r.Post("/trace", srv.handleTrace)
	})
	srv.router = r
	return srv
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	hs := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Listening", "addr", addr, "words", len(s.words))
		errCh <- hs.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("Shutting down")
	if err := hs.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
