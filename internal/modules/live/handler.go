package live

import (
	"context"
	"net/url"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/gridgarden/landing/internal/content"
	"github.com/gridgarden/landing/internal/middleware"
	"github.com/gridgarden/landing/internal/rendering"
	"github.com/labstack/echo/v4"
)

// Handler upgrades page views to live sessions.
type Handler struct {
	content  *content.Store
	renderer rendering.Renderer
	settings Settings
	frames   FrameSource
	origins  []string
	base     context.Context
}

// NewHandler creates a handler. Sessions end when base is done.
func NewHandler(base context.Context, deps Dependencies) *Handler {
	frames := deps.Frames
	if frames == nil {
		frames = TickerSource
	}
	return &Handler{
		content:  deps.Content,
		renderer: deps.Renderer,
		settings: deps.Settings,
		frames:   frames,
		origins:  originPatterns(deps.BaseURL),
		base:     base,
	}
}

// originPatterns allows the public host in addition to same-origin requests,
// for deployments behind a proxy that rewrites Host.
func originPatterns(baseURL string) []string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return nil
	}
	return []string{u.Host}
}

// LiveGet handles GET /ws/live.
func (h *Handler) LiveGet(c echo.Context) error {
	logger := middleware.FromContext(c.Request().Context())

	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		OriginPatterns: h.origins,
	})
	if err != nil {
		logger.Warn("failed to upgrade live connection", "error", err)
		// Accept has already written the response.
		return nil
	}
	defer conn.CloseNow()

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()
	stop := context.AfterFunc(h.base, cancel)
	defer stop()

	sess := newSession(uuid.NewString(), h.content.Site(), h.settings, h.renderer, h.frames, logger)
	logger.Debug("live session opened", "session_id", sess.id)
	if err := sess.Run(ctx, conn); err != nil {
		logger.Debug("live session ended", "session_id", sess.id, "error", err)
		return nil
	}
	conn.Close(websocket.StatusNormalClosure, "")
	return nil
}
