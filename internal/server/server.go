package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/gridgarden/landing/internal/app"
	"github.com/gridgarden/landing/internal/config"
	"github.com/gridgarden/landing/internal/content"
	"github.com/gridgarden/landing/internal/email"
	"github.com/gridgarden/landing/internal/handlers"
	appmw "github.com/gridgarden/landing/internal/middleware"
	"github.com/gridgarden/landing/internal/module"
	"github.com/gridgarden/landing/internal/pubsub"
	"github.com/gridgarden/landing/internal/registry"
	"github.com/gridgarden/landing/internal/rendering"
	"github.com/gridgarden/landing/internal/storage"
	"github.com/gridgarden/landing/web"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/afero"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	Content  *content.Store
	Bus      *pubsub.WatermillBridge
	Registry *registry.Registry
	modules  []module.Module

	stopTracing func(context.Context) error

	homeHandler         *handlers.HomeHandler
	testimonialsHandler *handlers.TestimonialsHandler
}

// New creates a new Server instance from cfg. Routes are added by
// RegisterRoutes and modules are booted by Start.
func New(cfg config.Provider) (*Server, error) {
	store, err := content.Open(afero.NewOsFs(), cfg.GetContentPath())
	if err != nil {
		return nil, fmt.Errorf("load site content: %w", err)
	}

	disk, err := storage.NewDiskStore(cfg.GetDataDir())
	if err != nil {
		return nil, err
	}

	mailer, err := email.NewEmailService(cfg)
	if err != nil {
		return nil, fmt.Errorf("configure email: %w", err)
	}

	tracer, stopTracing, err := pubsub.SetupTracing(context.Background(), pubsub.TracingConfig{
		Enabled:     cfg.IsTracingEnabled(),
		ServiceName: cfg.GetTracingServiceName(),
		ZipkinURL:   cfg.GetTracingZipkinURL(),
	})
	if err != nil {
		return nil, fmt.Errorf("configure tracing: %w", err)
	}

	bus := pubsub.NewWatermillBridge(false, pubsub.WithTracer(tracer))
	renderer := rendering.NewUniversalRenderer()

	reg := registry.New(cfg)
	registry.Set(reg, registry.ContentStoreKey, store)

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(appmw.Logger)
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			appmw.FromContext(c.Request().Context()).Info("request",
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	// Configure and use session middleware
	sessionStore := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   !cfg.IsDevelopment(),
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(sessionStore))

	// Serve the embedded static assets.
	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	modules := app.NewModules(app.Dependencies{
		Config:     cfg,
		Publisher:  bus,
		Subscriber: bus,
		Renderer:   renderer,
		Content:    store,
		Inquiries:  storage.NewInquiryStore(disk),
		Mailer:     mailer,
	})

	slog.Info("Server configured",
		"content", contentSource(store),
		"data_dir", cfg.GetDataDir(),
		"modules", len(modules),
		"tracing", cfg.IsTracingEnabled(),
	)

	return &Server{
		E:                   e,
		Cfg:                 cfg,
		Content:             store,
		Bus:                 bus,
		Registry:            reg,
		modules:             modules,
		stopTracing:         stopTracing,
		homeHandler:         handlers.NewHomeHandler(store, cfg.GetLocale()),
		testimonialsHandler: handlers.NewTestimonialsHandler(store),
	}, nil
}

func contentSource(store *content.Store) string {
	if store.Path() == "" {
		return "embedded"
	}
	return store.Path()
}
