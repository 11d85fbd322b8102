package sections

import (
	"github.com/gridgarden/landing/internal/content"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// AssemblySection renders the numbered assembly steps.
func AssemblySection(site *content.Site) g.Node {
	a := site.Assembly
	return sectionRoot("assembly",
		ID("assembly"),
		Class("assembly"),
		badge(a.Badge),
		H2(g.Text(a.Title)),
		P(Class("lead"), g.Text(a.Lead)),
		P(g.Text(a.Text)),
		Ol(Class("assembly-steps"),
			g.Map(a.Steps, func(s content.Item) g.Node {
				return Li(
					icon(s.Icon, "step-icon"),
					H3(g.Text(s.Title)),
					P(g.Text(s.Description)),
				)
			}),
		),
		g.If(a.TimeBadge.Value != "", Div(Class("time-badge"),
			Strong(g.Text(a.TimeBadge.Value)),
			Span(g.Text(a.TimeBadge.Label)),
		)),
	)
}

// ConfiguratorSection renders the 3D configurator call-to-action.
func ConfiguratorSection(site *content.Site) g.Node {
	c := site.Configurator
	return sectionRoot("configurator",
		Class("configurator"),
		badge(c.Badge),
		heading(c.Title, c.Text),
		itemCards("configurator-features", c.Features),
		A(Href(c.Href), Class("btn btn-primary btn-lg"), icon("boxes", ""), g.Text(c.Button)),
		g.If(c.Note != "", P(Class("note"), g.Text(c.Note))),
	)
}
