package live

import (
	"context"
	"log/slog"

	"github.com/gridgarden/landing/internal/content"
	"github.com/gridgarden/landing/internal/module"
	"github.com/gridgarden/landing/internal/registry"
	"github.com/gridgarden/landing/internal/rendering"
	"github.com/gridgarden/landing/web/src/templates/sections"
	"github.com/labstack/echo/v4"
)

// LiveModule serves the websocket that animates the landing page.
type LiveModule struct {
	module.BaseModule
	deps   Dependencies
	cancel context.CancelFunc
}

// Dependencies holds all the services that the LiveModule requires to operate.
type Dependencies struct {
	// Content falls back to the registry's content store when nil.
	Content  *content.Store
	Renderer rendering.Renderer
	Settings Settings
	BaseURL  string
	// Frames overrides the ticker frame source, mainly for tests.
	Frames FrameSource
}

// New creates a new instance of the LiveModule, injecting its dependencies.
func New(deps Dependencies) *LiveModule {
	return &LiveModule{deps: deps}
}

// Name returns the module name.
func (m *LiveModule) Name() string {
	return "live"
}

// Boot registers the websocket route. Sessions are bound to a context that
// Shutdown cancels.
func (m *LiveModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	if m.deps.Content == nil {
		m.deps.Content = registry.MustGet(reg, registry.ContentStoreKey)
	}

	base, cancel := context.WithCancel(context.WithoutCancel(ctx))
	m.cancel = cancel

	handler := NewHandler(base, m.deps)
	g.GET(sections.LivePath, handler.LiveGet)

	slog.Info("Booting LiveModule", "path", sections.LivePath, "fps", m.deps.Settings.FPS)
	return nil
}

// Shutdown closes all live sessions.
func (m *LiveModule) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down LiveModule...")
	if m.cancel != nil {
		m.cancel()
	}
	return nil
}
