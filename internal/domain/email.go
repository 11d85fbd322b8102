package domain

import "context"

// EmailSender defines the interface for sending emails. This allows for
// different implementations (e.g., for logging, Resend).
type EmailSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
