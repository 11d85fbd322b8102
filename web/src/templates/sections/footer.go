package sections

import (
	"github.com/gridgarden/landing/internal/content"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// SiteFooter renders the page footer.
func SiteFooter(site *content.Site) g.Node {
	f := site.Footer
	return Footer(
		Data("section", "footer"),
		Class("site-footer"),
		Div(Class("footer-grid"),
			Div(
				A(Href("/"), Class("brand"), icon("sprout", "brand-icon"), Span(g.Text(site.Brand))),
				P(g.Text(f.About)),
			),
			g.Map(f.Groups, func(grp content.LinkGroup) g.Node {
				return Nav(Aria("label", grp.Title),
					H4(g.Text(grp.Title)),
					Ul(g.Map(grp.Links, func(l content.NavLink) g.Node {
						return Li(A(Href(l.Href), g.Text(l.Label)))
					})),
				)
			}),
			Address(
				g.If(f.Email != "", P(icon("mail", ""), A(Href("mailto:"+f.Email), g.Text(f.Email)))),
				g.If(f.Phone != "", P(icon("phone", ""), A(Href("tel:"+f.Phone), g.Text(f.Phone)))),
				g.If(f.Address != "", P(icon("map-pin", ""), g.Text(f.Address))),
			),
		),
		Div(Class("footer-bottom"),
			P(g.Text(f.Copyright)),
			badgeRow(f.Badges),
		),
	)
}
