package handlers

import (
	"github.com/gorilla/sessions"
	"github.com/gridgarden/landing/internal/content"
	"github.com/gridgarden/landing/internal/middleware"
	"github.com/gridgarden/landing/internal/motion"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	visitorSessionName = "visitor"
	carouselIndexKey   = "testimonial_index"
)

// loadCarousel rebuilds the testimonial carousel from the visitor session. A
// missing session or a stored index that no longer fits the catalog starts
// at the first testimonial.
func loadCarousel(c echo.Context, items []content.Testimonial) (*motion.Carousel[content.Testimonial], *sessions.Session, error) {
	carousel, err := motion.NewCarousel(items)
	if err != nil {
		return nil, nil, err
	}
	sess, err := session.Get(visitorSessionName, c)
	if err != nil {
		middleware.FromContext(c.Request().Context()).Debug("visitor session unavailable", "error", err)
		return carousel, nil, nil
	}
	if idx, ok := sess.Values[carouselIndexKey].(int); ok {
		_ = carousel.JumpTo(idx)
	}
	return carousel, sess, nil
}

// saveCarousel stores the carousel index in the visitor session.
func saveCarousel(c echo.Context, sess *sessions.Session, index int) {
	if sess == nil {
		return
	}
	sess.Values[carouselIndexKey] = index
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		middleware.FromContext(c.Request().Context()).Warn("failed to save visitor session", "error", err)
	}
}
