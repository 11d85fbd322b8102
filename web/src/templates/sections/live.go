package sections

import (
	"fmt"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// viewportVals is evaluated by htmx in the browser each time the live element
// sends. Rect values are relative to the viewport.
var viewportVals = fmt.Sprintf(`js:{kind: "viewport", y: window.scrollY, vh: window.innerHeight, `+
	`stats_top: document.getElementById(%q).getBoundingClientRect().top, `+
	`stats_height: document.getElementById(%q).getBoundingClientRect().height}`, StatsID, StatsID)

// LiveConnection renders the hidden element that opens the page's websocket
// and reports the viewport on load and on throttled window scroll.
func LiveConnection() g.Node {
	return Div(
		ID(LiveID),
		Class("hidden"),
		g.Attr("hx-ext", "ws"),
		g.Attr("ws-connect", LivePath),
		Div(
			g.Attr("ws-send"),
			hx.Trigger("load delay:50ms, scroll from:window throttle:100ms, resize from:window throttle:250ms"),
			hx.Vals(viewportVals),
		),
	)
}
