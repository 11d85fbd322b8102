package motion

import (
	"fmt"
	"strconv"
)

// Rect is the vertical extent of an element relative to the top of the viewport.
type Rect struct {
	Top    float64
	Height float64
}

// VisibleFraction reports how much of target lies inside a viewport of the
// given height. The viewport is grown by margin on both edges (shrunk when
// margin is negative), mirroring an IntersectionObserver root margin.
func VisibleFraction(target Rect, viewportHeight, margin float64) float64 {
	if target.Height <= 0 {
		return 0
	}
	return overlap(target, viewportHeight, margin) / target.Height
}

// observedBand returns the top and bottom edge of the margin-adjusted
// viewport.
func observedBand(viewportHeight, margin float64) (top, bottom float64) {
	return -margin, viewportHeight + margin
}

// overlap returns the visible height of target in px.
func overlap(target Rect, viewportHeight, margin float64) float64 {
	top, bottom := observedBand(viewportHeight, margin)
	if target.Height <= 0 || bottom <= top {
		return 0
	}
	return max(min(target.Top+target.Height, bottom)-max(target.Top, top), 0)
}

// TriggerOption configures a Trigger.
type TriggerOption func(*Trigger)

// WithRootMargin grows (or, when negative, shrinks) the observed viewport by
// px on both edges.
func WithRootMargin(px float64) TriggerOption {
	return func(t *Trigger) {
		t.rootMargin = px
	}
}

// Trigger is a one-shot visibility signal. It fires the first time an
// observed element's visible fraction reaches the threshold and never resets.
// An element taller than the observed viewport can never reach a large
// threshold, so for it filling the whole observed viewport is enough.
type Trigger struct {
	threshold  float64
	rootMargin float64
	fired      bool
	released   bool
	listeners  []func()
}

// NewTrigger creates a trigger for the given threshold fraction, clamped to [0, 1].
// A zero threshold fires on any overlap.
func NewTrigger(threshold float64, opts ...TriggerOption) *Trigger {
	t := &Trigger{threshold: min(max(threshold, 0), 1)}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Threshold returns the configured fraction.
func (t *Trigger) Threshold() float64 { return t.threshold }

// RootMargin returns the configured root margin in px.
func (t *Trigger) RootMargin() float64 { return t.rootMargin }

// Fired reports whether the trigger has fired.
func (t *Trigger) Fired() bool { return t.fired }

// OnFire registers fn to run once when the trigger fires. Registering on a
// trigger that already fired runs fn immediately.
func (t *Trigger) OnFire(fn func()) {
	if fn == nil || t.released {
		return
	}
	if t.fired {
		fn()
		return
	}
	t.listeners = append(t.listeners, fn)
}

// Observe feeds one observation of target in a viewport of the given height
// and returns whether the trigger has fired. A nil target is a no-op.
func (t *Trigger) Observe(target *Rect, viewportHeight float64) bool {
	if target == nil || t.released || t.fired {
		return t.fired
	}

	if !t.crossed(*target, viewportHeight) {
		return false
	}

	t.fired = true
	listeners := t.listeners
	t.listeners = nil
	for _, fn := range listeners {
		fn()
	}
	return true
}

func (t *Trigger) crossed(target Rect, viewportHeight float64) bool {
	visible := overlap(target, viewportHeight, t.rootMargin)
	if visible <= 0 {
		return false
	}
	if t.threshold == 0 {
		return true
	}
	top, bottom := observedBand(viewportHeight, t.rootMargin)
	return visible >= min(t.threshold*target.Height, bottom-top)
}

// Release detaches the trigger. Later observations are ignored and listeners
// that have not run yet are dropped. The fired state is kept.
func (t *Trigger) Release() {
	t.released = true
	t.listeners = nil
}

// HTMXTrigger renders the trigger as an htmx intersect trigger specification.
func (t *Trigger) HTMXTrigger() string {
	return fmt.Sprintf("intersect once threshold:%s", strconv.FormatFloat(t.threshold, 'f', -1, 64))
}
