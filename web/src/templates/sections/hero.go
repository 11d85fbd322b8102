package sections

import (
	"github.com/gridgarden/landing/internal/content"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// HeroSection renders the full-screen banner.
func HeroSection(site *content.Site) g.Node {
	h := site.Hero
	return sectionRoot("hero",
		Class("hero"),
		g.If(h.Image != "", Img(Class("hero-image"), Src(h.Image), Alt(h.ImageAlt))),
		Div(Class("hero-content"),
			badgeRow(h.Badges),
			g.If(h.Lines != "", P(Class("hero-lines"), g.Text(h.Lines))),
			H1(
				g.Text(h.Headline),
				g.If(h.Highlight != "", g.Group{Br(), Span(Class("text-highlight"), g.Text(h.Highlight))}),
			),
			P(Class("hero-text"), g.Text(h.Text)),
			Div(Class("hero-actions"),
				A(Href(site.Configurator.Href), Class("btn btn-primary"), icon("boxes", ""), g.Text(site.Configurator.Button)),
				A(Href("#products"), Class("btn btn-ghost"), g.Text("View Products"), icon("arrow-down", "")),
			),
			highlights(h.Highlights),
		),
	)
}
