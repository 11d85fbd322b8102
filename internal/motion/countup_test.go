package motion

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestEased(t *testing.T) {
	t.Run("midpoint of a 1.2s count to 500", func(t *testing.T) {
		assert.Equal(t, 437, Eased(500, 600*time.Millisecond, 1200*time.Millisecond))
	})

	t.Run("starts at zero and clamps at the target", func(t *testing.T) {
		d := 2 * time.Second
		assert.Equal(t, 0, Eased(60, 0, d))
		assert.Equal(t, 60, Eased(60, d, d))
		assert.Equal(t, 60, Eased(60, 10*d, d))
	})

	t.Run("zero target stays zero", func(t *testing.T) {
		for _, el := range []time.Duration{0, time.Second, time.Hour} {
			assert.Equal(t, 0, Eased(0, el, time.Second))
		}
	})

	t.Run("non-positive duration completes immediately", func(t *testing.T) {
		assert.Equal(t, 25, Eased(25, 0, 0))
	})

	t.Run("non-decreasing for every target", func(t *testing.T) {
		d := 1200 * time.Millisecond
		for _, target := range []int{0, 1, 7, 25, 60, 500, 10000} {
			prev := 0
			for el := time.Duration(0); el <= d+50*time.Millisecond; el += 7 * time.Millisecond {
				v := Eased(target, el, d)
				require.GreaterOrEqual(t, v, prev, "target %d at %s", target, el)
				require.LessOrEqual(t, v, target)
				prev = v
			}
			assert.Equal(t, target, Eased(target, d, d))
		}
	})
}

func TestCountUp_Sequence(t *testing.T) {
	t.Run("idle counter yields nothing", func(t *testing.T) {
		c := NewCountUp(500, "+", time.Second)
		values := slices.Collect(c.Sequence(UniformFrames(epoch, 16*time.Millisecond, 10)))
		assert.Empty(t, values)
		assert.Equal(t, 0, c.Value())
	})

	t.Run("counts from zero to the target", func(t *testing.T) {
		c := NewCountUp(500, "+", 1200*time.Millisecond)
		require.True(t, c.Start())

		values := slices.Collect(c.Sequence(FramesAt(epoch, 0, 300*time.Millisecond, 600*time.Millisecond, 900*time.Millisecond, 1200*time.Millisecond, 1500*time.Millisecond)))

		assert.Equal(t, []int{0, 289, 437, 492, 500}, values, "sequence ends at the target frame")
		assert.True(t, c.Done())
		assert.Equal(t, "+", c.Suffix())
	})

	t.Run("is finite on an unbounded frame source", func(t *testing.T) {
		c := NewCountUp(60, "mm", time.Second)
		c.Start()

		values := slices.Collect(c.Sequence(UniformFrames(epoch, 16*time.Millisecond, 1_000_000)))
		require.NotEmpty(t, values)
		assert.Equal(t, 60, values[len(values)-1])
		assert.True(t, slices.IsSorted(values))
		assert.Less(t, len(values), 100)
	})

	t.Run("cannot restart once started", func(t *testing.T) {
		c := NewCountUp(25, "+", time.Second)
		require.True(t, c.Start())
		assert.False(t, c.Start())

		first := slices.Collect(c.Sequence(UniformFrames(epoch, 100*time.Millisecond, 20)))
		require.Equal(t, 25, first[len(first)-1])

		assert.False(t, c.Start())
		again := slices.Collect(c.Sequence(UniformFrames(epoch.Add(time.Hour), 100*time.Millisecond, 20)))
		assert.Empty(t, again, "a completed sequence is not replayed")
		assert.Equal(t, 25, c.Value())
	})

	t.Run("zero target is trivial", func(t *testing.T) {
		c := NewCountUp(0, "", 2*time.Second)
		c.Start()
		values := slices.Collect(c.Sequence(UniformFrames(epoch, 16*time.Millisecond, 500)))
		assert.Equal(t, []int{0}, values)
		assert.True(t, c.Done())
	})

	t.Run("out of order frames never decrease the value", func(t *testing.T) {
		c := NewCountUp(500, "", time.Second)
		c.Start()
		values := slices.Collect(c.Sequence(FramesAt(epoch, 0, 500*time.Millisecond, 200*time.Millisecond, time.Second)))
		assert.True(t, slices.IsSorted(values))
	})

	t.Run("stopping early keeps progress", func(t *testing.T) {
		c := NewCountUp(100, "", time.Second)
		c.Start()
		for v := range c.Sequence(FramesAt(epoch, 0, 500*time.Millisecond, time.Second)) {
			if v > 0 {
				break
			}
		}
		assert.False(t, c.Done())
		rest := slices.Collect(c.Sequence(FramesAt(epoch, time.Second)))
		assert.Equal(t, []int{100}, rest)
	})
}

func TestCountUp_GatedByTrigger(t *testing.T) {
	trigger := NewTrigger(0.5)
	c := NewCountUp(500, "+", 1200*time.Millisecond)
	starts := 0
	trigger.OnFire(func() {
		if c.Start() {
			starts++
		}
	})

	vh := 800.0
	assert.False(t, trigger.Observe(&Rect{Top: 1200, Height: 400}, vh))
	assert.False(t, c.Started())

	assert.True(t, trigger.Observe(&Rect{Top: 500, Height: 400}, vh))
	assert.True(t, trigger.Observe(&Rect{Top: 100, Height: 400}, vh))
	assert.Equal(t, 1, starts)

	values := slices.Collect(c.Sequence(UniformFrames(epoch, 16*time.Millisecond, 200)))
	require.NotEmpty(t, values)
	assert.Equal(t, 500, values[len(values)-1])

	trigger.OnFire(func() { c.Start() })
	assert.Empty(t, slices.Collect(c.Sequence(UniformFrames(epoch, 16*time.Millisecond, 200))))
}

func TestTickerFrames(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var got []time.Time
	for now := range TickerFrames(ctx, time.Millisecond) {
		got = append(got, now)
		if len(got) == 3 {
			cancel()
		}
	}
	assert.GreaterOrEqual(t, len(got), 3)
	assert.Equal(t, 16666666*time.Nanosecond, FPS(60))
	assert.Equal(t, FPS(60), FPS(0))
}
