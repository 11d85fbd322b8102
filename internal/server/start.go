package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// shutdownTimeout bounds module and HTTP shutdown after a signal.
const shutdownTimeout = 10 * time.Second

// Start boots the modules, runs the HTTP server and blocks until an
// interrupt or terminate signal, then shuts everything down gracefully.
func (s *Server) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := s.BootModules(ctx); err != nil {
		slog.Error("Failed to boot modules", "error", err)
		os.Exit(1)
	}

	if s.Cfg.GetContentWatch() {
		if err := s.Content.Watch(ctx); err != nil {
			slog.Warn("Content hot reload disabled", "error", err)
		}
	}

	serverErr := make(chan error, 1)
	go func() {
		addr := s.Cfg.GetServerAddr()
		slog.Info("Starting server", "addr", addr)
		serverErr <- s.E.Start(addr)
	}()

	signals, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	exitCode := 0
	select {
	case <-signals.Done():
		slog.Info("Shutting down server...")
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server stopped unexpectedly", "error", err)
			exitCode = 1
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	// Live sessions hold hijacked connections that echo's Shutdown does not
	// wait for, so modules stop first.
	s.shutdownModules(shutdownCtx)
	if err := s.E.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
	cancel()
	if err := s.Bus.Close(); err != nil {
		slog.Error("Message bus shutdown failed", "error", err)
	}
	if err := s.stopTracing(shutdownCtx); err != nil {
		slog.Error("Tracing shutdown failed", "error", err)
	}

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
