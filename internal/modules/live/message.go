package live

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gridgarden/landing/internal/motion"
)

// KindViewport is the only message kind a page sends.
const KindViewport = "viewport"

var validate = validator.New()

// number accepts JSON numbers and numeric strings; htmx may send either
// depending on how hx-vals were evaluated.
type number float64

func (n *number) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", s, err)
	}
	*n = number(f)
	return nil
}

// ViewportMessage reports the scroll position, the viewport height and the
// bounding rect of the stats section relative to the viewport.
type ViewportMessage struct {
	Kind        string  `json:"kind" validate:"required,eq=viewport"`
	Y           number  `json:"y"`
	VH          number  `json:"vh" validate:"gte=0"`
	StatsTop    *number `json:"stats_top"`
	StatsHeight *number `json:"stats_height" validate:"omitempty,gte=0"`
}

// ParseViewport decodes and validates a websocket payload. Unknown fields,
// such as the HEADERS object the htmx websocket extension adds, are ignored.
func ParseViewport(data []byte) (ViewportMessage, error) {
	var msg ViewportMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return msg, fmt.Errorf("decode viewport message: %w", err)
	}
	if err := validate.Struct(msg); err != nil {
		return msg, fmt.Errorf("invalid viewport message: %w", err)
	}
	return msg, nil
}

// StatsRect returns the observed stats element, or nil when the page did not
// report it.
func (m ViewportMessage) StatsRect() *motion.Rect {
	if m.StatsTop == nil || m.StatsHeight == nil {
		return nil
	}
	return &motion.Rect{Top: float64(*m.StatsTop), Height: float64(*m.StatsHeight)}
}
