// Package sections holds the gomponents building blocks of the landing page.
//
// Every section root carries a data-section attribute naming it. Elements that
// the live session updates out of band (header, floating CTA, stat values)
// have stable ids, exported below, so fragments pushed over the websocket
// replace them in place.
package sections

const (
	HeaderID        = "site-header"
	MobileMenuID    = "mobile-menu"
	StatsID         = "stats"
	CarouselID      = "testimonials-carousel"
	InquiryResultID = "partner-inquiry-result"
	FloatingCTAID   = "floating-cta"
	LiveID          = "live"

	// LivePath is the websocket endpoint the live element connects to.
	LivePath = "/ws/live"
)
