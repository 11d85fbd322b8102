package partners

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gridgarden/landing/internal/domain"
	"github.com/gridgarden/landing/internal/pubsub"
)

// InquirySubscriber persists every published inquiry.
type InquirySubscriber struct {
	subscriber pubsub.Subscriber
	repo       domain.InquiryRepository
}

// NewInquirySubscriber creates the subscriber.
func NewInquirySubscriber(sub pubsub.Subscriber, repo domain.InquiryRepository) *InquirySubscriber {
	return &InquirySubscriber{subscriber: sub, repo: repo}
}

// Start subscribes to InquiryReceived. Messages are handled in the
// background until ctx is canceled.
func (s *InquirySubscriber) Start(ctx context.Context) error {
	slog.Info("Starting partners inquiry subscriber", "topic", InquiryReceived.Name())
	return InquiryReceived.Subscribe(ctx, s.subscriber, s.handleInquiry)
}

func (s *InquirySubscriber) handleInquiry(ctx context.Context, inquiry domain.Inquiry) error {
	if err := s.repo.Save(ctx, &inquiry); err != nil {
		return fmt.Errorf("store inquiry %s: %w", inquiry.ID, err)
	}
	slog.Info("Partner inquiry stored", "inquiry_id", inquiry.ID, "partner_type", inquiry.PartnerType)
	return nil
}
