package view_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/gridgarden/landing/internal/view"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFlashServer serves a POST that sets flashes and redirects, and a GET
// that reports what it read, mirroring the plain form post flow.
func newFlashServer(set func(echo.Context), got *view.FlashData) *echo.Echo {
	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("flash-test-secret-0123456789abcdef"))))
	e.POST("/submit", func(c echo.Context) error {
		set(c)
		return c.Redirect(http.StatusSeeOther, "/")
	})
	e.GET("/", func(c echo.Context) error {
		*got = view.GetFlashData(c)
		return c.NoContent(http.StatusOK)
	})
	return e
}

func follow(t *testing.T, e *echo.Echo, cookies []*http.Cookie) []*http.Cookie {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Result().Cookies()
}

func TestFlashMessages(t *testing.T) {
	tests := []struct {
		name        string
		set         func(echo.Context)
		wantSuccess []string
		wantError   []string
	}{
		{
			name:        "success survives the redirect",
			set:         func(c echo.Context) { view.SetFlashSuccess(c, "Ďakujeme! Ozveme sa vám do 24 hodín.") },
			wantSuccess: []string{"Ďakujeme! Ozveme sa vám do 24 hodín."},
		},
		{
			name:      "error survives the redirect",
			set:       func(c echo.Context) { view.SetFlashError(c, "Please check the highlighted fields.") },
			wantError: []string{"Please check the highlighted fields."},
		},
		{
			name: "both kinds keep their order",
			set: func(c echo.Context) {
				view.SetFlashError(c, "Email is invalid.")
				view.SetFlashError(c, "Message is required.")
				view.SetFlashSuccess(c, "Draft kept.")
			},
			wantSuccess: []string{"Draft kept."},
			wantError:   []string{"Email is invalid.", "Message is required."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got view.FlashData
			e := newFlashServer(tt.set, &got)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/submit", nil))
			require.Equal(t, http.StatusSeeOther, rec.Code)
			cookies := rec.Result().Cookies()
			require.Len(t, cookies, 1, "all flashes of a request share one cookie")

			cleared := follow(t, e, cookies)
			assert.ElementsMatch(t, tt.wantSuccess, got.Success)
			if tt.wantError == nil {
				assert.Empty(t, got.Error)
			} else {
				assert.Equal(t, tt.wantError, got.Error)
			}
			assert.False(t, got.Empty())

			follow(t, e, cleared)
			assert.True(t, got.Empty(), "flashes are shown once")
		})
	}

	t.Run("nothing set", func(t *testing.T) {
		var got view.FlashData
		e := newFlashServer(func(echo.Context) {}, &got)
		follow(t, e, nil)
		assert.True(t, got.Empty())
	})
}
