package app

import (
	"github.com/gridgarden/landing/internal/config"
	"github.com/gridgarden/landing/internal/content"
	"github.com/gridgarden/landing/internal/domain"
	"github.com/gridgarden/landing/internal/modules/live"
	"github.com/gridgarden/landing/internal/modules/partners"
	"github.com/gridgarden/landing/internal/pubsub"
	"github.com/gridgarden/landing/internal/rendering"
)

// Dependencies holds the core services that are required by the application's modules.
// This struct is passed from the server to wire up the modules.
type Dependencies struct {
	Config     config.Provider
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
	Renderer   rendering.Renderer
	Content    *content.Store
	Inquiries  domain.InquiryRepository
	Mailer     domain.EmailSender
}

// liveDeps creates the dependency struct for the live module.
func liveDeps(deps Dependencies) live.Dependencies {
	return live.Dependencies{
		Content:  deps.Content,
		Renderer: deps.Renderer,
		Settings: live.SettingsFromConfig(deps.Config),
		BaseURL:  deps.Config.GetAppBaseURL(),
	}
}

// partnersDeps creates the dependency struct for the partners module.
func partnersDeps(deps Dependencies) partners.Dependencies {
	return partners.Dependencies{
		Publisher:  deps.Publisher,
		Subscriber: deps.Subscriber,
		Repository: deps.Inquiries,
		Content:    deps.Content,
		RateLimit:  deps.Config.GetInquiryRateLimit(),
		Mailer:     deps.Mailer,
		Inbox:      deps.Config.GetPartnerInbox(),
	}
}
