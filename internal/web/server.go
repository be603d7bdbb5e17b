// Package web serves the JSON API over HTTP.
package web

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// DefaultAddr is the default server address.
const DefaultAddr = "127.0.0.1:8080"

// ServerConfig holds server configuration.
type ServerConfig struct {
	Addr string
}

// Server is the HTTP server for the API.
type Server struct {
	router   chi.Router
	server   *http.Server
	handlers *Handlers
	log      *slog.Logger
}

// NewServer creates a new API server.
func NewServer(cfg ServerConfig, handlers *Handlers, log *slog.Logger) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if log == nil {
		log = slog.Default()
	}

	router := chi.NewRouter()

	s := &Server{
		router:   router,
		handlers: handlers,
		log:      log,
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware for the router.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
}

// setupRoutes configures routes for the API.
func (s *Server) setupRoutes() {
	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Route not found")
	})

	s.router.Get("/", s.handlers.Banner)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handlers.Health)
		r.Post("/analyze", s.handlers.Analyze)
		r.Post("/responses", s.handlers.ComposeResponses)

		r.Route("/snippets", func(r chi.Router) {
			r.Get("/", s.handlers.ListSnippets)
			r.Post("/", s.handlers.CreateSnippet)
			r.Get("/moods/list", s.handlers.ListMoods)
			r.Get("/mood/{mood}", s.handlers.SnippetsByMood)
			r.Get("/random", s.handlers.RandomSnippet)
			r.Get("/{id}", s.handlers.SnippetByID)
			r.Get("/{id}/active-line", s.handlers.ActiveLine)
		})

		r.Route("/spotify", func(r chi.Router) {
			r.Get("/search/{mood}", s.handlers.SpotifySearch)
			r.Get("/recommendations/{mood}", s.handlers.SpotifyRecommendations)
			r.Get("/track/{id}", s.handlers.SpotifyTrack)
			r.Get("/health", s.handlers.SpotifyHealth)
			r.Get("/moods", s.handlers.SpotifyMoods)
		})
	})
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.log.Info("starting server", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Run starts the server and handles graceful shutdown on interrupt
// signals.
func (s *Server) Run() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-stop:
		s.log.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	s.log.Info("server stopped")
	return nil
}
