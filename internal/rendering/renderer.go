package rendering

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Renderer defines the contract for rendering any supported component (templ, gomponents).
type Renderer interface {
	// RenderComponent renders a component to a slice of bytes. Used for htmx
	// fragments pushed over websockets.
	RenderComponent(ctx context.Context, component any) ([]byte, error)

	// RenderPage writes a full HTTP response for a component.
	RenderPage(c echo.Context, status int, component any) error
}

// UniversalRenderer is the concrete implementation that handles rendering for multiple component types.
// It also satisfies echo.Renderer, so handlers can call c.Render(status, "", component).
type UniversalRenderer struct{}

var (
	_ Renderer      = (*UniversalRenderer)(nil)
	_ echo.Renderer = (*UniversalRenderer)(nil)
)

// NewUniversalRenderer creates a new UniversalRenderer instance.
func NewUniversalRenderer() *UniversalRenderer {
	return &UniversalRenderer{}
}

// gomponentNode is the structural interface of gomponents.Node.
type gomponentNode interface {
	Render(w io.Writer) error
}

// render inspects the component type and calls the appropriate render method.
func (r *UniversalRenderer) render(ctx context.Context, component any, w io.Writer) error {
	switch c := component.(type) {
	case templ.Component:
		return c.Render(ctx, w)
	case gomponentNode:
		return c.Render(w)
	default:
		return fmt.Errorf("unsupported component type: %T", component)
	}
}

// RenderComponent implements the Renderer interface.
func (r *UniversalRenderer) RenderComponent(ctx context.Context, component any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.render(ctx, component, &buf); err != nil {
		return nil, fmt.Errorf("failed to render component to bytes: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPage implements the Renderer interface for full HTTP responses. The
// component is buffered first so a render error can still become a 500.
func (r *UniversalRenderer) RenderPage(c echo.Context, status int, component any) error {
	body, err := r.RenderComponent(c.Request().Context(), component)
	if err != nil {
		return err
	}
	return c.HTMLBlob(status, body)
}

// Render implements the echo.Renderer interface for use with c.Render(status, name, component).
// The name is ignored; the component travels in data.
func (r *UniversalRenderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	}
	return r.render(c.Request().Context(), data, w)
}
