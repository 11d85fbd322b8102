package sections

import (
	"github.com/gridgarden/landing/internal/content"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// StorySection renders the company story.
func StorySection(site *content.Site) g.Node {
	s := site.Story
	return sectionRoot("story",
		ID("about"),
		Class("story"),
		Div(Class("story-intro"),
			g.If(s.Image != "", Img(Src(s.Image), Alt(s.ImageAlt), Loading("lazy"))),
			Div(
				badge(s.Badge),
				H2(g.Text(s.Title), g.If(s.Highlight != "", g.Group{Br(), Span(Class("text-highlight"), g.Text(s.Highlight))})),
				P(g.Text(s.Text)),
				highlights(s.Highlights),
			),
		),
		itemCards("story-values", s.Values),
	)
}
