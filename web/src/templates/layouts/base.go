package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/gridgarden/landing/internal/view"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

const (
	htmxSrc    = "https://unpkg.com/htmx.org@2.0.4"
	htmxWSSrc  = "https://unpkg.com/htmx-ext-ws@2.0.2"
	iconifySrc = "https://code.iconify.design/3/3.1.1/iconify.min.js"

	// htmxConfig lets htmx swap 422 validation fragments instead of treating
	// them as errors.
	htmxConfig = `{"responseHandling":[` +
		`{"code":"204","swap":false},` +
		`{"code":"[23]..","swap":true},` +
		`{"code":"422","swap":true},` +
		`{"code":"[45]..","swap":false,"error":true}]}`
)

// Base wraps body in the HTML document shell with the flash messages on top.
func Base(title string, flash view.FlashData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return document(ctx, title, flash, body).Render(w)
	})
}

func document(ctx context.Context, title string, flash view.FlashData, body templ.Component) g.Node {
	return components.HTML5(components.HTML5Props{
		Title:       CalculateTitle(title),
		Description: "Premium modular garden beds built to last 25+ years.",
		Language:    "en",
		Head: []g.Node{
			h.Meta(h.Name("htmx-config"), h.Content(htmxConfig)),
			h.Link(h.Rel("stylesheet"), h.Href("/static/site.css")),
			h.Link(h.Rel("icon"), h.Href("/static/favicon.svg"), h.Type("image/svg+xml")),
			h.Script(h.Src(htmxSrc), h.Defer()),
			h.Script(h.Src(htmxWSSrc), h.Defer()),
			h.Script(h.Src(iconifySrc), h.Defer()),
		},
		Body: []g.Node{
			flashMessages(flash),
			view.AdaptTemplToGomponent(ctx, body),
		},
	})
}

func flashMessages(flash view.FlashData) g.Node {
	if flash.Empty() {
		return nil
	}
	return h.Div(h.Class("flash-messages"),
		g.Map(flash.Success, func(m string) g.Node {
			return h.Div(h.Class("alert alert-success"), h.Role("status"), g.Text(m))
		}),
		g.Map(flash.Error, func(m string) g.Node {
			return h.Div(h.Class("alert alert-error"), h.Role("alert"), g.Text(m))
		}),
	)
}
