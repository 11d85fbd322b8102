package email

import (
	"fmt"

	"github.com/gridgarden/landing/internal/config"
	"github.com/gridgarden/landing/internal/domain"
)

// Providers accepted in EMAIL_PROVIDER.
const (
	ProviderLog    = "log"
	ProviderResend = "resend"
)

// NewEmailService returns the sender selected by the configuration.
func NewEmailService(cfg config.Provider) (domain.EmailSender, error) {
	provider := cfg.GetEmailProvider()
	switch provider {
	case ProviderLog:
		return &LogSender{senderAddress: cfg.GetEmailSender()}, nil
	case ProviderResend:
		if cfg.GetEmailAPIKey() == "" {
			return nil, fmt.Errorf("email provider %q requires EMAIL_API_KEY", provider)
		}
		return NewResendSender(cfg.GetEmailAPIKey(), cfg.GetEmailSender()), nil
	}
	return nil, fmt.Errorf("unknown email provider: %s", provider)
}
