package motion

// ScrollToggle tracks whether the vertical scroll offset has passed a threshold.
type ScrollToggle struct {
	threshold float64
	active    bool
}

// NewScrollToggle creates an inactive toggle.
func NewScrollToggle(threshold float64) *ScrollToggle {
	return &ScrollToggle{threshold: threshold}
}

// Update recomputes the toggle for offset. active is true iff offset is
// strictly greater than the threshold; changed reports a flip.
func (s *ScrollToggle) Update(offset float64) (active, changed bool) {
	next := offset > s.threshold
	changed = next != s.active
	s.active = next
	return next, changed
}

// Active returns the current state.
func (s *ScrollToggle) Active() bool { return s.active }

// Threshold returns the configured offset in px.
func (s *ScrollToggle) Threshold() float64 { return s.threshold }
