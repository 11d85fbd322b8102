package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// DefaultRateLimit is the number of requests per minute allowed when the
// caller passes a non-positive limit.
const DefaultRateLimit = 10

// RateLimiter limits each client IP to perMinute requests per minute on the
// routes it is applied to. A full minute's allowance may be spent in a burst.
func RateLimiter(perMinute int) echo.MiddlewareFunc {
	if perMinute <= 0 {
		perMinute = DefaultRateLimit
	}
	config := middleware.RateLimiterConfig{
		// In-memory store, suitable for single-instance deployments.
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(float64(perMinute) / 60),
			Burst:     perMinute,
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			FromContext(c.Request().Context()).Warn("rate limit exceeded", "client", identifier)
			return c.String(http.StatusTooManyRequests, "Too many requests. Please try again later.")
		},
	}
	return middleware.RateLimiterWithConfig(config)
}
