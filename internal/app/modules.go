package app

import (
	"github.com/gridgarden/landing/internal/module"
	"github.com/gridgarden/landing/internal/modules/live"
	"github.com/gridgarden/landing/internal/modules/partners"
)

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		// Add new application modules here.
		live.New(liveDeps(deps)),
		partners.New(partnersDeps(deps)),
	}
}
