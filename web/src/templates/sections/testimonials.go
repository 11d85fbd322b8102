package sections

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gridgarden/landing/internal/content"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

// TestimonialsSection renders the customer carousel showing items[index].
func TestimonialsSection(items []content.Testimonial, index int) g.Node {
	return sectionRoot("testimonials",
		Class("testimonials"),
		heading("What Our Customers Say", "Real gardeners, real results"),
		TestimonialsCarousel(items, index),
	)
}

// TestimonialsCarousel is the swappable carousel fragment returned by the
// navigation endpoints. index must be within [0, len(items)).
func TestimonialsCarousel(items []content.Testimonial, index int) g.Node {
	if len(items) == 0 {
		return Div(ID(CarouselID))
	}
	t := items[index]
	return Div(
		ID(CarouselID),
		Class("carousel"),
		Data("index", strconv.Itoa(index)),
		Aria("live", "polite"),
		BlockQuote(Class("testimonial"),
			Div(Class("rating"), Aria("label", fmt.Sprintf("%d out of 5 stars", t.Rating)),
				g.Text(strings.Repeat("★", t.Rating)),
			),
			P(g.Text(t.Text)),
			Footer(
				Span(Class("avatar"), g.Text(t.Initial())),
				Strong(g.Text(t.Name)),
				g.If(t.Location != "", Span(Class("location"), g.Text(t.Location))),
			),
		),
		g.If(len(items) > 1, Div(Class("carousel-controls"),
			carouselButton("/testimonials/prev", "Previous testimonial", icon("chevron-left", "")),
			Div(Class("carousel-dots"),
				g.Map(dotIndexes(len(items)), func(i int) g.Node {
					return carouselButton("/testimonials/"+strconv.Itoa(i),
						fmt.Sprintf("Show testimonial %d", i+1),
						components.Classes{"dot": true, "dot-active": i == index},
						g.If(i == index, Aria("current", "true")),
					)
				}),
			),
			carouselButton("/testimonials/next", "Next testimonial", icon("chevron-right", "")),
		)),
	)
}

func carouselButton(path, label string, children ...g.Node) g.Node {
	return Button(
		Type("button"),
		Aria("label", label),
		hx.Post(path),
		hx.Target("#"+CarouselID),
		hx.Swap("outerHTML"),
		g.Group(children),
	)
}

func dotIndexes(n int) []int {
	out := make([]int, n)
	for i := range n {
		out[i] = i
	}
	return out
}
