package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gridgarden/landing/internal/content"
	"github.com/gridgarden/landing/internal/motion"
	"github.com/gridgarden/landing/web/src/templates/sections"
	"github.com/labstack/echo/v4"
)

// TestimonialsHandler serves the carousel navigation endpoints. The carousel
// is rebuilt per request from the index stored in the visitor session.
type TestimonialsHandler struct {
	content *content.Store
}

// NewTestimonialsHandler creates a new TestimonialsHandler.
func NewTestimonialsHandler(store *content.Store) *TestimonialsHandler {
	return &TestimonialsHandler{content: store}
}

// NextPost advances to the next testimonial.
func (h *TestimonialsHandler) NextPost(c echo.Context) error {
	return h.navigate(c, func(cr *motion.Carousel[content.Testimonial]) error {
		cr.Next()
		return nil
	})
}

// PrevPost steps back to the previous testimonial.
func (h *TestimonialsHandler) PrevPost(c echo.Context) error {
	return h.navigate(c, func(cr *motion.Carousel[content.Testimonial]) error {
		cr.Previous()
		return nil
	})
}

// JumpPost selects the testimonial given by the :index path parameter.
func (h *TestimonialsHandler) JumpPost(c echo.Context) error {
	i, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "index must be an integer")
	}
	return h.navigate(c, func(cr *motion.Carousel[content.Testimonial]) error {
		return cr.JumpTo(i)
	})
}

func (h *TestimonialsHandler) navigate(c echo.Context, move func(*motion.Carousel[content.Testimonial]) error) error {
	site := h.content.Site()
	carousel, sess, err := loadCarousel(c, site.Testimonials)
	if err != nil {
		return fmt.Errorf("load testimonials: %w", err)
	}
	if err := move(carousel); err != nil {
		if errors.Is(err, motion.ErrIndexOutOfRange) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return err
	}
	saveCarousel(c, sess, carousel.Index())
	return c.Render(http.StatusOK, "", sections.TestimonialsCarousel(carousel.Items(), carousel.Index()))
}
