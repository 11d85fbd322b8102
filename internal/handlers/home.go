package handlers

import (
	"fmt"
	"net/http"

	"github.com/gridgarden/landing/internal/content"
	"github.com/gridgarden/landing/internal/view"
	"github.com/gridgarden/landing/web/src/templates/layouts"
	"github.com/gridgarden/landing/web/src/templates/pages"
	"github.com/gridgarden/landing/web/src/templates/sections"
	"github.com/labstack/echo/v4"
)

// HomeHandler renders the landing page.
type HomeHandler struct {
	content *content.Store
	locale  string
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(store *content.Store, locale string) *HomeHandler {
	return &HomeHandler{content: store, locale: locale}
}

// HomeGet handles the GET request for the home page.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	var req HomeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	site := h.content.Site()
	carousel, _, err := loadCarousel(c, site.Testimonials)
	if err != nil {
		return fmt.Errorf("load testimonials: %w", err)
	}

	// 1. Build the gomponents page and adapt it for the templ layout.
	pageContent := view.AdaptGomponentToTempl(pages.Home(site, pages.HomeProps{
		CarouselIndex: carousel.Index(),
		PartnerType:   req.PartnerType,
		Printer:       sections.NumberPrinter(h.locale),
	}))

	// 2. Wrap it in the Base layout with any pending flash messages.
	finalComponent := layouts.Base(site.Brand, view.GetFlashData(c), pageContent)

	// 3. Render through the universal renderer.
	return c.Render(http.StatusOK, "", finalComponent)
}

// HealthGet reports liveness and the size of the loaded catalog.
func (h *HomeHandler) HealthGet(c echo.Context) error {
	site := h.content.Site()
	return c.JSON(http.StatusOK, HealthResponse{
		Status:       "ok",
		Brand:        site.Brand,
		Testimonials: len(site.Testimonials),
		Products:     len(site.Products),
	})
}

// MenuGet returns the mobile menu fragment in the requested state.
func (h *HomeHandler) MenuGet(c echo.Context) error {
	var req MenuRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "open must be true or false")
	}
	return c.Render(http.StatusOK, "", sections.MobileMenu(h.content.Site(), req.Open))
}
