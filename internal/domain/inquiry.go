package domain

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// validatorInstance is a package-level validator instance.
// Using a single instance is more efficient as it caches struct information.
var validatorInstance = validator.New()

func init() {
	_ = validatorInstance.RegisterValidation("notblank", validateNotBlank)
}

// validateNotBlank rejects strings made only of whitespace.
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// Inquiry is a contact request sent through the partner program form.
type Inquiry struct {
	ID          string    `json:"id" validate:"required,uuid4"`
	Name        string    `json:"name" validate:"required,notblank,max=120"`
	Email       string    `json:"email" validate:"required,email,max=254"`
	Company     string    `json:"company,omitempty" validate:"max=160"`
	PartnerType string    `json:"partner_type" validate:"required"` // Must match a partner type id from the site content.
	Message     string    `json:"message" validate:"required,notblank,max=4000"`
	ReceivedAt  time.Time `json:"received_at" validate:"required"`
}

// Validate runs validation checks on the Inquiry using the defined tags.
func (i *Inquiry) Validate() error {
	return validatorInstance.Struct(i)
}

// InquiryRepository persists partner inquiries.
type InquiryRepository interface {
	Save(ctx context.Context, inquiry *Inquiry) error
	FindByID(ctx context.Context, id string) (*Inquiry, error)
	List(ctx context.Context) ([]*Inquiry, error)
}
