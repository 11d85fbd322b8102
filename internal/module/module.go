package module

import (
	"context"

	"github.com/gridgarden/landing/internal/registry"
	"github.com/labstack/echo/v4"
)

// Module is a feature of the site with its own routes and background work.
// The server drives every module through three phases: Register for all
// modules, then Boot for all modules, and Shutdown in reverse order on exit.
type Module interface {
	// Name identifies the module in logs and errors.
	Name() string

	// Register publishes the services this module shares. Other modules'
	// services may not be available yet.
	Register(reg *registry.Registry) error

	// Boot mounts routes on router and starts subscribers. ctx lives as long
	// as the server runs.
	Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error

	// Shutdown releases connections and goroutines started by Boot.
	Shutdown(ctx context.Context) error
}

// BaseModule implements the optional phases as no-ops for embedding.
type BaseModule struct{}

// Register implements Module.
func (*BaseModule) Register(*registry.Registry) error { return nil }

// Boot implements Module.
func (*BaseModule) Boot(context.Context, *echo.Group, *registry.Registry) error { return nil }

// Shutdown implements Module.
func (*BaseModule) Shutdown(context.Context) error { return nil }
