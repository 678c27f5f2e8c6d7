// Package server exposes the engine operations over HTTP with a JSON API.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/sqlshift-labs/sqlshift/pkg/engine"
)

// Server serves the SQL API.
type Server struct {
	engine *engine.Engine
	port   int
	logger *slog.Logger
}

// Config holds configuration for the server.
type Config struct {
	Engine *engine.Engine
	Port   int
	Logger *slog.Logger
}

// New creates a server instance.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		engine: cfg.Engine,
		port:   cfg.Port,
		logger: logger,
	}
}

// Routes builds the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewMux()
	r.Use(
		middleware.RequestID,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	r.Get("/healthz", s.handleHealth)
	r.Get("/dialects", s.handleDialects)

	r.Route("/sql", func(r chi.Router) {
		r.Post("/validate", s.handleValidate)
		r.Post("/manipulate", s.handleManipulate)
		r.Post("/transpile", s.handleTranspile)
		r.Post("/columns", s.handleColumns)
		r.Post("/parse", s.handleParse)
	})
	return r
}

// Serve starts the server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting server", "addr", addr)

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    addr,
		Handler: s.Routes(),
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down server")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
