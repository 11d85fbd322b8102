package server

import (
	"context"
	"fmt"
	"log/slog"
)

// BootModules runs the register phase of every module, then the boot phase.
// Modules mount their routes on the root group.
func (s *Server) BootModules(ctx context.Context) error {
	for _, m := range s.modules {
		if err := m.Register(s.Registry); err != nil {
			return fmt.Errorf("register module %s: %w", m.Name(), err)
		}
	}

	root := s.E.Group("")
	for _, m := range s.modules {
		if err := m.Boot(ctx, root, s.Registry); err != nil {
			return fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
		slog.Debug("Module booted", "module", m.Name())
	}
	return nil
}

// shutdownModules stops modules in reverse boot order.
func (s *Server) shutdownModules(ctx context.Context) {
	for i := len(s.modules) - 1; i >= 0; i-- {
		m := s.modules[i]
		if err := m.Shutdown(ctx); err != nil {
			slog.Error("Module shutdown failed", "module", m.Name(), "error", err)
		}
	}
}
