package sections

import (
	"github.com/gridgarden/landing/internal/content"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

// FinalCTASection renders the closing call-to-action.
func FinalCTASection(site *content.Site) g.Node {
	f := site.FinalCTA
	return sectionRoot("final-cta",
		Class("final-cta"),
		heading(f.Title, f.Text),
		Div(Class("cta-actions"),
			A(Href(site.Configurator.Href), Class("btn btn-primary btn-lg"), icon("boxes", ""), g.Text(f.Primary)),
			A(Href("#products"), Class("btn btn-ghost btn-lg"), g.Text(f.Secondary)),
		),
		badgeRow(f.Badges),
	)
}

// FloatingCTA renders the overlay button that appears once the visitor has
// scrolled past the floating CTA threshold.
func FloatingCTA(site *content.Site, visible bool) g.Node {
	return floatingCTA(site, visible)
}

// FloatingCTAOOB is the out-of-band replacement for the floating CTA.
func FloatingCTAOOB(site *content.Site, visible bool) g.Node {
	return floatingCTA(site, visible, hx.SwapOOB("true"))
}

func floatingCTA(site *content.Site, visible bool, extra ...g.Node) g.Node {
	return Div(
		ID(FloatingCTAID),
		Data("section", "floating-cta"),
		components.Classes{"floating-cta": true, "floating-cta-visible": visible},
		g.If(!visible, Aria("hidden", "true")),
		g.Group(extra),
		A(Href(site.Configurator.Href), Class("btn btn-primary"), icon("boxes", ""), g.Text(site.Configurator.Button)),
	)
}
