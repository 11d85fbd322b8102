package motion

// Carousel holds a current position in a fixed, non-empty, ordered list.
type Carousel[T any] struct {
	items []T
	index int
}

// NewCarousel creates a carousel positioned on the first item.
func NewCarousel[T any](items []T) (*Carousel[T], error) {
	if len(items) == 0 {
		return nil, ErrEmptyCarousel
	}
	return &Carousel[T]{items: items}, nil
}

// Next advances one item, wrapping to the start, and returns the new index.
func (c *Carousel[T]) Next() int {
	c.index = (c.index + 1) % len(c.items)
	return c.index
}

// Previous steps back one item, wrapping to the end, and returns the new index.
func (c *Carousel[T]) Previous() int {
	n := len(c.items)
	c.index = (c.index - 1 + n) % n
	return c.index
}

// JumpTo moves directly to i.
func (c *Carousel[T]) JumpTo(i int) error {
	if i < 0 || i >= len(c.items) {
		return ErrIndexOutOfRange
	}
	c.index = i
	return nil
}

// Index returns the current position.
func (c *Carousel[T]) Index() int { return c.index }

// Len returns the number of items.
func (c *Carousel[T]) Len() int { return len(c.items) }

// Current returns the item at the current position.
func (c *Carousel[T]) Current() T { return c.items[c.index] }

// Items returns the underlying items in order.
func (c *Carousel[T]) Items() []T { return c.items }
