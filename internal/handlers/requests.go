package handlers

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// MenuRequest is the query of the mobile menu partial.
type MenuRequest struct {
	Open bool `query:"open"`
}

// HomeRequest is the optional query of the landing page.
type HomeRequest struct {
	PartnerType string `query:"partner_type" validate:"omitempty,max=64"`
}
