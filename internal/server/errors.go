package server

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/gridgarden/landing/internal/domain"
	"github.com/gridgarden/landing/internal/handlers"
	"github.com/gridgarden/landing/internal/middleware"
	"github.com/labstack/echo/v4"
)

// setupErrorHandling installs the HTTP error handler. HTTP errors keep their
// code; anything else is logged with a stack trace and answered with 500.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		switch {
		case errors.As(err, &he):
			code = he.Code
			message = fmt.Sprint(he.Message)
		case errors.Is(err, domain.ErrNotFound):
			code = http.StatusNotFound
			message = http.StatusText(code)
		default:
			middleware.FromContext(c.Request().Context()).Error("Internal Server Error (Unhandled)",
				"error", err,
				"stack_trace", string(debug.Stack()),
			)
		}

		var respErr error
		switch {
		case c.Request().Method == http.MethodHead:
			respErr = c.NoContent(code)
		case strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON):
			respErr = c.JSON(code, handlers.ErrorResponse{Code: strconv.Itoa(code), Message: message})
		default:
			respErr = c.String(code, message)
		}
		if respErr != nil {
			middleware.FromContext(c.Request().Context()).Warn("failed to write error response", "error", respErr)
		}
	}
}
