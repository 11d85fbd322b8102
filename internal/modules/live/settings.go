package live

import (
	"context"
	"iter"
	"time"

	"github.com/gridgarden/landing/internal/config"
	"github.com/gridgarden/landing/internal/motion"
)

// Settings tunes the toggles, the stats trigger and the counter frame rate of
// every live session.
type Settings struct {
	HeaderThreshold     float64
	FloatingThreshold   float64
	VisibilityThreshold float64
	RootMargin          float64
	FPS                 int
	Locale              string
}

// DefaultSettings mirrors the configuration defaults.
func DefaultSettings() Settings {
	return Settings{
		HeaderThreshold:     50,
		FloatingThreshold:   600,
		VisibilityThreshold: 0.5,
		RootMargin:          -100,
		FPS:                 30,
		Locale:              "en",
	}
}

// SettingsFromConfig reads the live session settings from cfg.
func SettingsFromConfig(cfg config.Provider) Settings {
	return Settings{
		HeaderThreshold:     cfg.GetHeaderScrollThreshold(),
		FloatingThreshold:   cfg.GetFloatingCTAThreshold(),
		VisibilityThreshold: cfg.GetVisibilityThreshold(),
		RootMargin:          cfg.GetVisibilityRootMargin(),
		FPS:                 cfg.GetCounterFPS(),
		Locale:              cfg.GetLocale(),
	}
}

// FrameSource produces the frame times of one count-up run. It must stop when
// ctx is done.
type FrameSource func(ctx context.Context, interval time.Duration) iter.Seq[time.Time]

// TickerSource is the production frame source.
var TickerSource FrameSource = motion.TickerFrames
