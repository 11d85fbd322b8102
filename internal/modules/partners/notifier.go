package partners

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gridgarden/landing/internal/content"
	"github.com/gridgarden/landing/internal/domain"
	"github.com/gridgarden/landing/internal/pubsub"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// InquiryNotifier emails every published inquiry to the partner inbox.
type InquiryNotifier struct {
	subscriber pubsub.Subscriber
	mailer     domain.EmailSender
	inbox      string
	content    *content.Store
}

// NewInquiryNotifier creates the notifier.
func NewInquiryNotifier(sub pubsub.Subscriber, mailer domain.EmailSender, inbox string, store *content.Store) *InquiryNotifier {
	return &InquiryNotifier{subscriber: sub, mailer: mailer, inbox: inbox, content: store}
}

// Start subscribes to InquiryReceived alongside the storing subscriber.
func (n *InquiryNotifier) Start(ctx context.Context) error {
	slog.Info("Starting partners inquiry notifier", "topic", InquiryReceived.Name(), "inbox", n.inbox)
	return InquiryReceived.Subscribe(ctx, n.subscriber, n.handleInquiry)
}

func (n *InquiryNotifier) handleInquiry(ctx context.Context, inquiry domain.Inquiry) error {
	program := inquiry.PartnerType
	if pt, ok := n.content.Site().Partners.PartnerType(inquiry.PartnerType); ok {
		program = pt.Title
	}

	var body strings.Builder
	if err := inquiryEmail(inquiry, program).Render(&body); err != nil {
		return fmt.Errorf("render inquiry email: %w", err)
	}

	subject := fmt.Sprintf("New partner inquiry: %s (%s)", inquiry.Name, program)
	if err := n.mailer.Send(ctx, n.inbox, subject, body.String()); err != nil {
		return fmt.Errorf("notify inquiry %s: %w", inquiry.ID, err)
	}
	slog.Info("Partner inquiry notification sent", "inquiry_id", inquiry.ID, "inbox", n.inbox)
	return nil
}

func inquiryEmail(inquiry domain.Inquiry, program string) g.Node {
	company := inquiry.Company
	if company == "" {
		company = "-"
	}
	row := func(label, value string) g.Node {
		return Tr(Th(Style("text-align:left;padding-right:12px"), g.Text(label)), Td(g.Text(value)))
	}
	return Div(
		H2(g.Text("New partner inquiry")),
		Table(
			row("Program", program),
			row("Name", inquiry.Name),
			row("Email", inquiry.Email),
			row("Company", company),
			row("Received", inquiry.ReceivedAt.Format(time.RFC1123)),
		),
		P(Style("white-space:pre-wrap"), g.Text(inquiry.Message)),
		P(Style("color:#888"), g.Textf("Inquiry %s", inquiry.ID)),
	)
}
