package sections

import (
	"github.com/gridgarden/landing/internal/content"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

// ProductsSection renders the product catalog cards.
func ProductsSection(site *content.Site) g.Node {
	return sectionRoot("products",
		ID("products"),
		Class("products"),
		heading("Our Products", "From budget-friendly starters to lifetime premium beds"),
		Div(Class("product-grid"),
			g.Map(site.Products, productCard),
		),
	)
}

func productCard(p content.Product) g.Node {
	return Article(
		components.Classes{"product-card": true, "product-card-featured": p.Featured},
		Data("product", p.ID),
		g.If(p.Image != "", Img(Src(p.Image), Alt(p.Name), Loading("lazy"))),
		g.If(p.Badge != "", Span(Class("badge badge-"+p.BadgeStyle), g.Text(p.Badge))),
		H3(g.Text(p.Name)),
		P(Class("product-price"), g.Text(p.Price)),
		Dl(Class("product-specs"),
			Dt(g.Text("Material")), Dd(g.Text(p.Material)),
			Dt(g.Text("Lifespan")), Dd(g.Text(p.Lifespan)),
		),
		g.If(p.Description != "", P(g.Text(p.Description))),
		Ul(Class("product-features"),
			g.Map(p.Features, func(f string) g.Node {
				return Li(icon("check", ""), g.Text(f))
			}),
		),
		A(Href(p.Link), Class("btn btn-outline"), g.Text("View Details")),
	)
}
