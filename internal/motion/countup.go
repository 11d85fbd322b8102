package motion

import (
	"iter"
	"math"
	"time"
)

// Eased returns the displayed value of a count-up towards target after
// elapsed out of duration, following a cubic ease-out:
//
//	floor(target * (1 - (1 - elapsed/duration)^3))
//
// The result is clamped to [0, target]. A non-positive duration completes
// immediately.
func Eased(target int, elapsed, duration time.Duration) int {
	if target <= 0 || (elapsed <= 0 && duration > 0) {
		return 0
	}
	if duration <= 0 || elapsed >= duration {
		return target
	}

	// Integer nanoseconds keep exact ratios such as 600ms/1200ms exact.
	progress := float64(elapsed) / float64(duration)
	rest := 1 - progress
	v := int(math.Floor(float64(target) * (1 - rest*rest*rest)))
	return min(max(v, 0), target)
}

// CountUp animates a displayed integer from 0 to a target once.
//
// Start arms the animation; the timestamp of the first frame after that is
// the animation's origin. Once armed it can never be armed again, and once
// the target is reached the value stays frozen.
type CountUp struct {
	target   int
	suffix   string
	duration time.Duration

	started bool
	origin  time.Time
	hasTime bool
	value   int
	done    bool
}

// NewCountUp creates an idle count-up. Negative targets are treated as 0.
func NewCountUp(target int, suffix string, duration time.Duration) *CountUp {
	return &CountUp{
		target:   max(target, 0),
		suffix:   suffix,
		duration: duration,
	}
}

// Start arms the animation. It reports false if it was already armed.
func (c *CountUp) Start() bool {
	if c.started {
		return false
	}
	c.started = true
	return true
}

// Advance moves the animation to the frame at now and returns the displayed
// value and whether the animation has completed. Frames before Start leave
// the value at 0.
func (c *CountUp) Advance(now time.Time) (int, bool) {
	if !c.started || c.done {
		return c.value, c.done
	}
	if !c.hasTime {
		c.origin = now
		c.hasTime = true
	}

	elapsed := now.Sub(c.origin)
	// Frames may arrive out of order; the displayed value never goes back.
	c.value = max(c.value, Eased(c.target, elapsed, c.duration))
	if elapsed >= c.duration || c.value == c.target {
		c.value = c.target
		c.done = true
	}
	return c.value, c.done
}

// Sequence returns the lazy sequence of displayed values, one per frame of
// frames, ending with the target. It yields nothing before Start and
// nothing once the animation has completed, so a finished sequence cannot
// be replayed.
func (c *CountUp) Sequence(frames iter.Seq[time.Time]) iter.Seq[int] {
	return func(yield func(int) bool) {
		if !c.started || c.done {
			return
		}
		for now := range frames {
			v, done := c.Advance(now)
			if !yield(v) || done {
				return
			}
		}
	}
}

// Started reports whether the animation has been armed.
func (c *CountUp) Started() bool { return c.started }

// Done reports whether the target has been reached.
func (c *CountUp) Done() bool { return c.done }

// Value returns the last displayed value.
func (c *CountUp) Value() int { return c.value }

// Target returns the final value.
func (c *CountUp) Target() int { return c.target }

// Suffix returns the unit appended to displayed values.
func (c *CountUp) Suffix() string { return c.suffix }

// Duration returns the animation length.
func (c *CountUp) Duration() time.Duration { return c.duration }
