package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const devSessionSecret = "gridgarden-development-session-secret"

// Provider exposes configuration to the rest of the application. Handlers and
// modules depend on this interface rather than on the concrete struct.
type Provider interface {
	GetServerAddr() string
	GetAppBaseURL() string
	GetSessionSecret() string
	IsDevelopment() bool
	GetLogFormat() string
	GetContentPath() string
	GetContentWatch() bool
	GetDataDir() string
	GetLocale() string
	GetCounterFPS() int
	GetHeaderScrollThreshold() float64
	GetFloatingCTAThreshold() float64
	GetVisibilityThreshold() float64
	GetVisibilityRootMargin() float64
	GetInquiryRateLimit() int
	GetEmailProvider() string
	GetEmailSender() string
	GetEmailAPIKey() string
	GetPartnerInbox() string
	IsTracingEnabled() bool
	GetTracingServiceName() string
	GetTracingZipkinURL() string
}

// Config holds all configuration for the application.
type Config struct {
	ServerAddr    string `validate:"required"`
	AppBaseURL    string `validate:"omitempty,url"`
	SessionSecret string `validate:"required,min=16"`
	AppEnv        string `validate:"oneof=development production test"`
	LogFormat     string `validate:"oneof=text json"`

	ContentPath  string
	ContentWatch bool
	DataDir      string `validate:"required"`
	Locale       string `validate:"required,bcp47_language_tag"`

	CounterFPS            int     `validate:"min=1,max=120"`
	HeaderScrollThreshold float64 `validate:"gte=0"`
	FloatingCTAThreshold  float64 `validate:"gte=0"`
	VisibilityThreshold   float64 `validate:"gte=0,lte=1"`
	VisibilityRootMargin  float64
	InquiryRateLimit      int `validate:"min=1"`

	EmailProvider string `validate:"oneof=log resend"`
	EmailSender   string `validate:"required"`
	EmailAPIKey   string
	PartnerInbox  string `validate:"omitempty,email"`

	TracingEnabled     bool
	TracingServiceName string `validate:"required_if=TracingEnabled true"`
	TracingZipkinURL   string `validate:"omitempty,url"`
}

// New loads configuration from the environment (and a .env file when
// present) and exits the process if it is invalid.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg, err := Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

// Load reads configuration from environment variables, applying defaults,
// and validates the result.
func Load() (*Config, error) {
	var errs []error

	cfg := &Config{
		ServerAddr:    getString("SERVER_ADDR", ":8080"),
		AppBaseURL:    os.Getenv("APP_BASE_URL"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		AppEnv:        getString("APP_ENV", "development"),
		LogFormat:     getString("LOG_FORMAT", "text"),
		ContentPath:   os.Getenv("CONTENT_PATH"),
		DataDir:       getString("DATA_DIR", "data"),
		Locale:        getString("SITE_LOCALE", "en"),
		EmailProvider: getString("EMAIL_PROVIDER", "log"),
		EmailSender:   getString("EMAIL_SENDER", "GridGarden <partners@gridgarden.sk>"),
		EmailAPIKey:   os.Getenv("EMAIL_API_KEY"),
		PartnerInbox:  os.Getenv("PARTNER_INBOX"),

		TracingServiceName: getString("PUBSUB_TRACING_SERVICE_NAME", "gridgarden-landing"),
		TracingZipkinURL:   getString("PUBSUB_TRACING_ZIPKIN_URL", "http://localhost:9411/api/v2/spans"),
	}

	cfg.ContentWatch = getBool("CONTENT_WATCH", false, &errs)
	cfg.TracingEnabled = getBool("PUBSUB_TRACING_ENABLED", false, &errs)
	cfg.CounterFPS = getInt("COUNTER_FPS", 30, &errs)
	cfg.HeaderScrollThreshold = getFloat("HEADER_SCROLL_THRESHOLD", 50, &errs)
	cfg.FloatingCTAThreshold = getFloat("FLOATING_CTA_THRESHOLD", 600, &errs)
	cfg.VisibilityThreshold = getFloat("VISIBILITY_THRESHOLD", 0.5, &errs)
	cfg.VisibilityRootMargin = getFloat("VISIBILITY_ROOT_MARGIN", -100, &errs)
	cfg.InquiryRateLimit = getInt("INQUIRY_RATE_LIMIT", 10, &errs)

	if cfg.SessionSecret == "" && cfg.AppEnv != "production" {
		cfg.SessionSecret = devSessionSecret
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func getString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool, errs *[]error) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return b
}

func getInt(key string, fallback int, errs *[]error) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return n
}

func getFloat(key string, fallback float64, errs *[]error) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return f
}

func (c *Config) GetServerAddr() string             { return c.ServerAddr }
func (c *Config) GetAppBaseURL() string             { return c.AppBaseURL }
func (c *Config) GetSessionSecret() string          { return c.SessionSecret }
func (c *Config) IsDevelopment() bool               { return c.AppEnv == "development" }
func (c *Config) GetLogFormat() string              { return c.LogFormat }
func (c *Config) GetContentPath() string            { return c.ContentPath }
func (c *Config) GetContentWatch() bool             { return c.ContentWatch }
func (c *Config) GetDataDir() string                { return c.DataDir }
func (c *Config) GetLocale() string                 { return c.Locale }
func (c *Config) GetCounterFPS() int                { return c.CounterFPS }
func (c *Config) GetHeaderScrollThreshold() float64 { return c.HeaderScrollThreshold }
func (c *Config) GetFloatingCTAThreshold() float64  { return c.FloatingCTAThreshold }
func (c *Config) GetVisibilityThreshold() float64   { return c.VisibilityThreshold }
func (c *Config) GetVisibilityRootMargin() float64  { return c.VisibilityRootMargin }
func (c *Config) GetInquiryRateLimit() int          { return c.InquiryRateLimit }
func (c *Config) GetEmailProvider() string          { return c.EmailProvider }
func (c *Config) GetEmailSender() string            { return c.EmailSender }
func (c *Config) GetEmailAPIKey() string            { return c.EmailAPIKey }
func (c *Config) GetPartnerInbox() string           { return c.PartnerInbox }
func (c *Config) IsTracingEnabled() bool            { return c.TracingEnabled }
func (c *Config) GetTracingServiceName() string     { return c.TracingServiceName }
func (c *Config) GetTracingZipkinURL() string       { return c.TracingZipkinURL }
