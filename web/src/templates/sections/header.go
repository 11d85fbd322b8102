package sections

import (
	"strconv"

	"github.com/gridgarden/landing/internal/content"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

// SiteHeader renders the fixed page header. scrolled selects the compact,
// opaque style used once the page has scrolled past the header threshold.
func SiteHeader(site *content.Site, scrolled bool) g.Node {
	return g.Group{
		siteHeaderBar(site, scrolled),
		MobileMenu(site, false),
	}
}

// HeaderOOB is the out-of-band replacement for the header bar.
func HeaderOOB(site *content.Site, scrolled bool) g.Node {
	return siteHeaderBar(site, scrolled, hx.SwapOOB("true"))
}

func siteHeaderBar(site *content.Site, scrolled bool, extra ...g.Node) g.Node {
	return Header(
		ID(HeaderID),
		Data("section", "header"),
		components.Classes{
			"site-header":          true,
			"site-header-scrolled": scrolled,
		},
		g.Group(extra),
		Div(Class("header-inner"),
			A(Href("/"), Class("brand"), icon("sprout", "brand-icon"), Span(g.Text(site.Brand))),
			Nav(Class("desktop-nav"), Aria("label", "Main"),
				g.Map(site.Nav, func(l content.NavLink) g.Node {
					return A(Href(l.Href), g.Text(l.Label))
				}),
			),
			A(Href(site.Configurator.Href), Class("btn btn-primary header-cta"), g.Text(site.Configurator.Button)),
			menuToggle(true),
		),
	)
}

func menuToggle(open bool) g.Node {
	label, name := "Open menu", "menu"
	if !open {
		label, name = "Close menu", "x"
	}
	return Button(
		Type("button"),
		Class("menu-toggle"),
		Aria("label", label),
		Aria("controls", MobileMenuID),
		hx.Get("/partials/menu?open="+strconv.FormatBool(open)),
		hx.Target("#"+MobileMenuID),
		hx.Swap("outerHTML"),
		icon(name, ""),
	)
}

// MobileMenu renders the collapsible navigation for narrow screens.
func MobileMenu(site *content.Site, open bool) g.Node {
	return Div(
		ID(MobileMenuID),
		components.Classes{"mobile-menu": true, "mobile-menu-open": open},
		Aria("expanded", strconv.FormatBool(open)),
		g.If(open, g.Group{
			menuToggle(false),
			Nav(
				g.Map(site.Nav, func(l content.NavLink) g.Node {
					return A(Href(l.Href), g.Text(l.Label))
				}),
				A(Href(site.Configurator.Href), Class("btn btn-primary"), g.Text(site.Configurator.Button)),
			),
		}),
	)
}
