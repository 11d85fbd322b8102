package partners

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gridgarden/landing/internal/middleware"
	"github.com/gridgarden/landing/internal/view"
	"github.com/gridgarden/landing/web/src/templates/sections"
	"github.com/labstack/echo/v4"
)

// Handler serves the partner inquiry form.
type Handler struct {
	service *Service
}

// NewHandler creates a new Handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// InquiryPost accepts a partner inquiry. htmx requests get a result fragment,
// 422 when invalid; plain form posts get a flash message and a redirect back
// to the partners section.
func (h *Handler) InquiryPost(c echo.Context) error {
	var req InquiryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	logger := middleware.FromContext(c.Request().Context())
	isHTMX := c.Request().Header.Get("HX-Request") == "true"
	success := h.service.content.Site().Partners.FormSuccess

	inquiry, err := h.service.Submit(c.Request().Context(), req)
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		logger.Info("Rejected partner inquiry", "fields", len(verr.Fields))
		if isHTMX {
			return c.Render(http.StatusUnprocessableEntity, "", sections.InquiryResult(success, verr.Messages()))
		}
		view.SetFlashError(c, strings.Join(verr.Messages(), ". "))
		return c.Redirect(http.StatusSeeOther, "/?partner_type="+url.QueryEscape(req.PartnerType)+"#partners")
	case err != nil:
		return fmt.Errorf("submit partner inquiry: %w", err)
	}

	logger.Info("Accepted partner inquiry", "inquiry_id", inquiry.ID)
	if isHTMX {
		return c.Render(http.StatusOK, "", sections.InquiryResult(success, nil))
	}
	view.SetFlashSuccess(c, success)
	return c.Redirect(http.StatusSeeOther, "/#partners")
}
