package main

import (
	"log/slog"
	"os"

	"github.com/gridgarden/landing/internal/config"
	"github.com/gridgarden/landing/internal/logging"
	"github.com/gridgarden/landing/internal/server"
)

func main() {
	cfg := config.New()
	logging.New(cfg.GetLogFormat())

	// Create a new server instance.
	s, err := server.New(cfg)
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	// Register all application routes.
	s.RegisterRoutes()

	// Start the server.
	s.Start()
}
