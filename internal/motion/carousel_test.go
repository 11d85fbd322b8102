package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarousel(t *testing.T) {
	t.Run("rejects empty list", func(t *testing.T) {
		_, err := NewCarousel([]string{})
		assert.ErrorIs(t, err, ErrEmptyCarousel)
	})

	t.Run("four testimonials wrap after the last", func(t *testing.T) {
		c, err := NewCarousel([]string{"Jana", "Martin", "Eva", "Tomáš"})
		require.NoError(t, err)

		c.Next()
		c.Next()
		assert.Equal(t, 3, c.Next())
		assert.Equal(t, "Tomáš", c.Current())
		assert.Equal(t, 0, c.Next())
	})

	t.Run("next cycles back to start for every size", func(t *testing.T) {
		for n := 1; n <= 9; n++ {
			c, err := NewCarousel(make([]int, n))
			require.NoError(t, err)
			for start := range n {
				require.NoError(t, c.JumpTo(start))
				for range n {
					c.Next()
				}
				assert.Equal(t, start, c.Index(), "n=%d start=%d", n, start)
			}
		}
	})

	t.Run("previous inverts next", func(t *testing.T) {
		for n := 1; n <= 6; n++ {
			c, _ := NewCarousel(make([]int, n))
			for start := range n {
				_ = c.JumpTo(start)
				c.Next()
				assert.Equal(t, start, c.Previous())
				c.Previous()
				assert.Equal(t, start, c.Next())
			}
		}
	})

	t.Run("previous wraps to the end", func(t *testing.T) {
		c, _ := NewCarousel([]int{1, 2, 3})
		assert.Equal(t, 2, c.Previous())
	})

	t.Run("single item navigation is identity", func(t *testing.T) {
		c, _ := NewCarousel([]string{"only"})
		assert.Equal(t, 0, c.Next())
		assert.Equal(t, 0, c.Previous())
		assert.Equal(t, 1, c.Len())
	})

	t.Run("jump to", func(t *testing.T) {
		c, _ := NewCarousel([]int{10, 20, 30, 40})
		for i := range c.Len() {
			require.NoError(t, c.JumpTo(i))
			assert.Equal(t, i, c.Index())
			assert.Equal(t, c.Items()[i], c.Current())
		}

		require.NoError(t, c.JumpTo(2))
		assert.ErrorIs(t, c.JumpTo(4), ErrIndexOutOfRange)
		assert.ErrorIs(t, c.JumpTo(-1), ErrIndexOutOfRange)
		assert.Equal(t, 2, c.Index(), "invalid jump leaves the index untouched")
	})
}
