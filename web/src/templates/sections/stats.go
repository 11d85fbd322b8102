package sections

import (
	"github.com/gridgarden/landing/internal/content"
	"golang.org/x/text/message"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// StatsSection renders the animated figures at their final values. The live
// session resets them to zero and counts them up once the section becomes
// visible, so visitors without JavaScript still see the real numbers.
func StatsSection(site *content.Site, p *message.Printer) g.Node {
	items := site.Stats.Items
	return sectionRoot("stats",
		ID(StatsID),
		Class("stats"),
		heading(site.Stats.Title, site.Stats.Text),
		Div(Class("stats-grid"),
			g.Map(indexed(items), func(e indexedStat) g.Node {
				return Div(Class("stat-card"),
					statValue(e.index, FormatStat(p, e.stat.Number, e.stat.Suffix)),
					H3(g.Text(e.stat.Label)),
					P(g.Text(e.stat.Description)),
				)
			}),
		),
	)
}

// StatValues renders one out-of-band span per stat showing values[i]. It is
// the frame payload of the count-up animation.
func StatValues(items []content.Stat, values []int, p *message.Printer) g.Node {
	nodes := make(g.Group, 0, len(items))
	for i, st := range items {
		v := 0
		if i < len(values) {
			v = values[i]
		}
		nodes = append(nodes, statValue(i, FormatStat(p, v, st.Suffix), hx.SwapOOB("true")))
	}
	return nodes
}

func statValue(i int, text string, extra ...g.Node) g.Node {
	return Span(ID(StatElementID(i)), Class("stat-value"), g.Group(extra), g.Text(text))
}

type indexedStat struct {
	index int
	stat  content.Stat
}

func indexed(items []content.Stat) []indexedStat {
	out := make([]indexedStat, len(items))
	for i, st := range items {
		out[i] = indexedStat{index: i, stat: st}
	}
	return out
}
