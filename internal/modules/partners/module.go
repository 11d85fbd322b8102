package partners

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gridgarden/landing/internal/content"
	"github.com/gridgarden/landing/internal/domain"
	"github.com/gridgarden/landing/internal/middleware"
	"github.com/gridgarden/landing/internal/module"
	"github.com/gridgarden/landing/internal/pubsub"
	"github.com/gridgarden/landing/internal/registry"
	"github.com/gridgarden/landing/web/src/templates/sections"
	"github.com/labstack/echo/v4"
)

// PartnersModule implements the affiliate program inquiry flow.
type PartnersModule struct {
	module.BaseModule
	deps Dependencies
}

// Dependencies holds all the services that the PartnersModule requires to operate.
type Dependencies struct {
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
	Repository domain.InquiryRepository
	// Content falls back to the registry's content store when nil.
	Content *content.Store
	// RateLimit is the number of submissions per minute allowed per client IP.
	RateLimit int
	// Mailer and Inbox enable email notifications; both are optional.
	Mailer domain.EmailSender
	Inbox  string
}

// New creates a new instance of the PartnersModule, injecting its dependencies.
func New(deps Dependencies) *PartnersModule {
	return &PartnersModule{deps: deps}
}

// Name returns the module name.
func (m *PartnersModule) Name() string {
	return "partners"
}

// Register shares the inquiry repository with other modules.
func (m *PartnersModule) Register(reg *registry.Registry) error {
	if m.deps.Repository == nil {
		return fmt.Errorf("partners: inquiry repository is required")
	}
	registry.Set(reg, registry.InquiryRepositoryKey, m.deps.Repository)
	return nil
}

// Boot starts the inquiry subscriber and registers the form endpoint.
func (m *PartnersModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	if m.deps.Content == nil {
		m.deps.Content = registry.MustGet(reg, registry.ContentStoreKey)
	}

	subscriber := NewInquirySubscriber(m.deps.Subscriber, m.deps.Repository)
	if err := subscriber.Start(ctx); err != nil {
		return fmt.Errorf("start inquiry subscriber: %w", err)
	}

	if m.deps.Mailer != nil && m.deps.Inbox != "" {
		notifier := NewInquiryNotifier(m.deps.Subscriber, m.deps.Mailer, m.deps.Inbox, m.deps.Content)
		if err := notifier.Start(ctx); err != nil {
			return fmt.Errorf("start inquiry notifier: %w", err)
		}
	}

	slog.Info("Booting PartnersModule: Setting up routes...")
	handler := NewHandler(NewService(m.deps.Publisher, m.deps.Content))
	g.POST(sections.InquiryPath, handler.InquiryPost, middleware.RateLimiter(m.deps.RateLimit))
	return nil
}

// Shutdown is called on application termination.
func (m *PartnersModule) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down PartnersModule...")
	return nil
}
