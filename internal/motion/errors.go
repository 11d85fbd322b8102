package motion

import "errors"

var (
	// ErrEmptyCarousel is returned when a carousel is built without items.
	ErrEmptyCarousel = errors.New("carousel requires at least one item")
	// ErrIndexOutOfRange is returned by JumpTo for an index outside [0, N).
	ErrIndexOutOfRange = errors.New("carousel index out of range")
)
