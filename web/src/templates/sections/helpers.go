package sections

import (
	"fmt"
	"strings"

	"github.com/gridgarden/landing/internal/content"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// NumberPrinter returns a printer formatting numbers for locale. An unparsable
// locale falls back to English.
func NumberPrinter(locale string) *message.Printer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag)
}

// FormatStat renders a counter value with digit grouping followed by its suffix.
func FormatStat(p *message.Printer, value int, suffix string) string {
	return p.Sprintf("%d", value) + suffix
}

// StatElementID is the id of the span showing the i-th stat value.
func StatElementID(i int) string {
	return fmt.Sprintf("stat-%d", i)
}

func icon(name, class string) g.Node {
	return Span(Class(strings.TrimSpace("iconify "+class)), Aria("hidden", "true"), g.Attr("data-icon", "lucide:"+name))
}

func badge(text string) g.Node {
	return g.If(text != "", Span(Class("badge"), g.Text(text)))
}

func sectionRoot(name string, children ...g.Node) g.Node {
	return Section(append([]g.Node{Data("section", name)}, children...)...)
}

func heading(title, text string) g.Node {
	return Div(Class("section-heading"),
		H2(g.Text(title)),
		g.If(text != "", P(g.Text(text))),
	)
}

func itemCards(class string, items []content.Item) g.Node {
	return Div(Class(class),
		g.Map(items, func(it content.Item) g.Node {
			return Div(Class("item-card"),
				g.If(it.Icon != "", icon(it.Icon, "item-icon")),
				H3(g.Text(it.Title)),
				g.If(it.Description != "", P(g.Text(it.Description))),
			)
		}),
	)
}

func highlights(items []content.Highlight) g.Node {
	return Div(Class("highlights"),
		g.Map(items, func(h content.Highlight) g.Node {
			return Div(Class("highlight"),
				Strong(g.Text(h.Value)),
				Span(g.Text(h.Label)),
			)
		}),
	)
}

func badgeRow(items []string) g.Node {
	return Div(Class("badge-row"), g.Map(items, func(s string) g.Node { return Span(g.Text(s)) }))
}
