package partners

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gridgarden/landing/internal/content"
	"github.com/gridgarden/landing/internal/domain"
	"github.com/gridgarden/landing/internal/pubsub"
)

// InquiryRequest is the partner form as posted by the browser.
type InquiryRequest struct {
	Name        string `form:"name"`
	Email       string `form:"email"`
	Company     string `form:"company"`
	PartnerType string `form:"partner_type"`
	Message     string `form:"message"`
}

// ValidationError lists the problems of a rejected inquiry, keyed by form field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", domain.ErrInvalidInquiry, strings.Join(e.Messages(), "; "))
}

// Unwrap makes errors.Is(err, domain.ErrInvalidInquiry) hold.
func (e *ValidationError) Unwrap() error { return domain.ErrInvalidInquiry }

// Messages returns the problems in form order.
func (e *ValidationError) Messages() []string {
	var out []string
	for _, f := range formFields {
		if msg, ok := e.Fields[f.key]; ok {
			out = append(out, msg)
		}
	}
	return out
}

var formFields = []struct{ key, field, label string }{
	{"name", "Name", "Name"},
	{"email", "Email", "Email"},
	{"company", "Company", "Company"},
	{"partner_type", "PartnerType", "Partner type"},
	{"message", "Message", "Message"},
}

// Service accepts partner inquiries and hands them to the message bus.
type Service struct {
	publisher pubsub.Publisher
	content   *content.Store
	now       func() time.Time
}

// NewService creates a new inquiry service.
func NewService(publisher pubsub.Publisher, store *content.Store) *Service {
	return &Service{publisher: publisher, content: store, now: time.Now}
}

// Submit validates req, assigns it an ID and publishes it. Invalid input
// returns a *ValidationError.
func (s *Service) Submit(ctx context.Context, req InquiryRequest) (*domain.Inquiry, error) {
	inquiry := &domain.Inquiry{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Company:     strings.TrimSpace(req.Company),
		PartnerType: strings.TrimSpace(req.PartnerType),
		Message:     strings.TrimSpace(req.Message),
		ReceivedAt:  s.now().UTC(),
	}

	fields := map[string]string{}
	var verrs validator.ValidationErrors
	if err := inquiry.Validate(); err != nil {
		if !errors.As(err, &verrs) {
			return nil, fmt.Errorf("validate inquiry: %w", err)
		}
		for _, fe := range verrs {
			addFieldError(fields, fe)
		}
	}
	if _, ok := fields["partner_type"]; !ok {
		if _, known := s.content.Site().Partners.PartnerType(inquiry.PartnerType); !known {
			fields["partner_type"] = "Partner type must be one of the listed programs"
		}
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	if err := InquiryReceived.Publish(ctx, s.publisher, *inquiry, map[string]string{"inquiry_id": inquiry.ID}); err != nil {
		return nil, fmt.Errorf("publish inquiry %s: %w", inquiry.ID, err)
	}
	return inquiry, nil
}

func addFieldError(fields map[string]string, fe validator.FieldError) {
	for _, f := range formFields {
		if f.field != fe.Field() {
			continue
		}
		if _, seen := fields[f.key]; seen {
			return
		}
		switch fe.Tag() {
		case "required", "notblank":
			fields[f.key] = f.label + " is required"
		case "email":
			fields[f.key] = f.label + " must be a valid email address"
		case "max":
			fields[f.key] = f.label + " is too long"
		default:
			fields[f.key] = f.label + " is invalid"
		}
		return
	}
}
