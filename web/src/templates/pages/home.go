package pages

import (
	"github.com/gridgarden/landing/internal/content"
	"github.com/gridgarden/landing/web/src/templates/sections"
	"golang.org/x/text/message"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// HomeProps carries the per-request state of the landing page.
type HomeProps struct {
	// CarouselIndex is the testimonial shown first. Callers validate it
	// against the catalog.
	CarouselIndex int
	// PartnerType preselects the inquiry form's partner type.
	PartnerType string
	// Printer formats the stat values.
	Printer *message.Printer
}

// Home composes the landing page sections in their fixed order, followed by
// the hidden live connection element.
func Home(site *content.Site, props HomeProps) g.Node {
	p := props.Printer
	if p == nil {
		p = sections.NumberPrinter("en")
	}
	return g.Group{
		sections.SiteHeader(site, false),
		Main(
			sections.HeroSection(site),
			sections.StatsSection(site, p),
			sections.ProductsSection(site),
			sections.AssemblySection(site),
			sections.ConfiguratorSection(site),
			sections.TestimonialsSection(site.Testimonials, props.CarouselIndex),
			sections.StorySection(site),
			sections.PartnersSection(site, props.PartnerType),
			sections.FinalCTASection(site),
		),
		sections.SiteFooter(site),
		sections.FloatingCTA(site, false),
		sections.LiveConnection(),
	}
}

// SectionOrder lists the data-section names in the order Home renders them.
var SectionOrder = []string{
	"header",
	"hero",
	"stats",
	"products",
	"assembly",
	"configurator",
	"testimonials",
	"story",
	"partners",
	"final-cta",
	"footer",
	"floating-cta",
}
