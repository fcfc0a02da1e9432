// Package server provides the HTTP edge server for chat relay traffic.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"chatrelay/pkg/config"
	"chatrelay/pkg/providers"
	"chatrelay/pkg/relay"
	"chatrelay/pkg/relay/middleware"
	"chatrelay/pkg/telemetry/metrics"
)

// Server is the HTTP edge server. It wires the router, the chat relay,
// the static-asset collaborator, and the operational endpoints.
type Server struct {
	config       *config.Config
	provider     providers.Provider
	collector    *metrics.Collector
	httpServer   *http.Server
	shutdownChan chan struct{}
	shutdownOnce sync.Once
	mu           sync.RWMutex
	isRunning    bool
}

// NewServer creates a new edge server. The metrics collector may be nil
// when metrics are disabled.
func NewServer(cfg *config.Config, provider providers.Provider, collector *metrics.Collector) *Server {
	return &Server{
		config:       cfg,
		provider:     provider,
		collector:    collector,
		shutdownChan: make(chan struct{}),
	}
}

// Start starts the HTTP server and blocks until shutdown.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return fmt.Errorf("server is already running")
	}
	s.isRunning = true
	s.mu.Unlock()

	handler := s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:           s.config.Server.ListenAddress,
		Handler:        handler,
		ReadTimeout:    s.config.Server.ReadTimeout,
		WriteTimeout:   s.config.Server.WriteTimeout,
		IdleTimeout:    s.config.Server.IdleTimeout,
		MaxHeaderBytes: s.config.Server.MaxHeaderBytes,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("starting relay server",
			"address", s.config.Server.ListenAddress,
			"static_dir", s.config.Static.Dir,
			"provider", s.provider.GetName(),
		)

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-ctx.Done():
		slog.Info("context cancelled, initiating shutdown")
		return s.Shutdown(context.Background())
	case sig := <-sigChan:
		slog.Info("received shutdown signal", "signal", sig.String())
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	case <-s.shutdownChan:
		slog.Info("shutdown requested")
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.mu.Lock()
		if !s.isRunning {
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		slog.Info("initiating graceful shutdown", "timeout", s.config.Server.ShutdownTimeout.String())

		shutdownCtx, cancel := context.WithTimeout(ctx, s.config.Server.ShutdownTimeout)
		defer cancel()

		if s.httpServer != nil {
			if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
				slog.Error("error during server shutdown", "error", err)
				shutdownErr = fmt.Errorf("server shutdown error: %w", err)
			}
		}

		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()

		slog.Info("relay server stopped")
	})

	return shutdownErr
}

// setupRoutes configures HTTP routes and the middleware chain.
//
// The operational endpoints (/healthz and the metrics path) are registered
// on the mux ahead of the catch-all router, so they take precedence over
// static-asset pass-through.
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	assets := http.FileServer(http.Dir(s.config.Static.Dir))
	chat := relay.NewChatHandler(s.provider, s.gatewayOptions(), s.collector.Relay())
	router := relay.NewRouter(assets, chat)

	mux.Handle("/healthz", http.HandlerFunc(handleHealthz))
	if s.collector != nil && s.config.Telemetry.Metrics.Enabled {
		mux.Handle(s.config.Telemetry.Metrics.Path, s.collector.Handler())
	}
	mux.Handle("/", router)

	// Apply middleware chain
	var handler http.Handler = mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.RequestIDMiddleware(handler)
	handler = middleware.RecoveryMiddleware(handler)

	return handler
}

// gatewayOptions converts the configured gateway hook into the provider
// payload form. Returns nil when unset, which is the default.
func (s *Server) gatewayOptions() *providers.GatewayOptions {
	gw := s.config.Provider.Gateway
	if gw.IsZero() {
		return nil
	}
	return &providers.GatewayOptions{
		Order: gw.Order,
		Only:  gw.Only,
	}
}

// handleHealthz serves liveness checks.
func handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":    "ok",
		"timestamp": time.Now().Unix(),
	})
}

// Handler returns the configured HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.setupRoutes()
}

// IsRunning returns true if the server is running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}
