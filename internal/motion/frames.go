package motion

import (
	"context"
	"iter"
	"time"
)

// TickerFrames yields the time of every tick at the given interval until ctx
// is done or the consumer stops.
func TickerFrames(ctx context.Context, interval time.Duration) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if !yield(now) {
					return
				}
			}
		}
	}
}

// UniformFrames yields n synthetic frame times starting at start, spaced by
// interval. It stands in for a rendering loop where no real clock is wanted.
func UniformFrames(start time.Time, interval time.Duration, n int) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for i := range n {
			if !yield(start.Add(time.Duration(i) * interval)) {
				return
			}
		}
	}
}

// FramesAt yields start shifted by each offset, in order.
func FramesAt(start time.Time, offsets ...time.Duration) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for _, off := range offsets {
			if !yield(start.Add(off)) {
				return
			}
		}
	}
}

// FPS converts frames per second into a frame interval. Non-positive values
// fall back to 60 frames per second.
func FPS(n int) time.Duration {
	if n <= 0 {
		n = 60
	}
	return time.Second / time.Duration(n)
}
