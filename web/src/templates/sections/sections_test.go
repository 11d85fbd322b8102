package sections

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gridgarden/landing/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

func TestFormatStat(t *testing.T) {
	en := NumberPrinter("en")
	assert.Equal(t, "1,500+", FormatStat(en, 1500, "+"))
	assert.Equal(t, "60mm", FormatStat(en, 60, "mm"))
	assert.Equal(t, "0", FormatStat(en, 0, ""))

	// An invalid locale falls back to English grouping.
	assert.Equal(t, "12,000", FormatStat(NumberPrinter("!!"), 12000, ""))
}

func TestStatValues(t *testing.T) {
	site := content.MustDefault()
	html := render(t, StatValues(site.Stats.Items, []int{30, 12}, NumberPrinter("en")))

	assert.Equal(t, len(site.Stats.Items), strings.Count(html, `hx-swap-oob="true"`))
	assert.Contains(t, html, `id="stat-0"`)
	assert.Contains(t, html, ">30mm<")
	assert.Contains(t, html, ">12+<")
	// Missing values render as zero.
	assert.Contains(t, html, `id="stat-2" class="stat-value" hx-swap-oob="true">0+<`)
}

func TestHeaderOOB(t *testing.T) {
	site := content.MustDefault()

	plain := render(t, SiteHeader(site, false))
	assert.NotContains(t, plain, "site-header-scrolled")
	assert.NotContains(t, plain, "hx-swap-oob")
	assert.Contains(t, plain, `id="`+MobileMenuID+`"`)

	oob := render(t, HeaderOOB(site, true))
	assert.Contains(t, oob, "site-header-scrolled")
	assert.Contains(t, oob, `hx-swap-oob="true"`)
	assert.NotContains(t, oob, MobileMenuID+`" class`)
}

func TestFloatingCTA(t *testing.T) {
	site := content.MustDefault()

	hidden := render(t, FloatingCTA(site, false))
	assert.NotContains(t, hidden, "floating-cta-visible")
	assert.Contains(t, hidden, `aria-hidden="true"`)

	shown := render(t, FloatingCTAOOB(site, true))
	assert.Contains(t, shown, "floating-cta-visible")
	assert.Contains(t, shown, `hx-swap-oob="true"`)
}

func TestMobileMenu(t *testing.T) {
	site := content.MustDefault()

	closed := render(t, MobileMenu(site, false))
	assert.Contains(t, closed, `aria-expanded="false"`)
	assert.NotContains(t, closed, site.Nav[0].Label)

	open := render(t, MobileMenu(site, true))
	assert.Contains(t, open, `aria-expanded="true"`)
	assert.Contains(t, open, "mobile-menu-open")
	assert.Contains(t, open, site.Nav[0].Label)
	assert.Contains(t, open, `hx-get="/partials/menu?open=false"`)
}

func TestTestimonialsCarousel(t *testing.T) {
	site := content.MustDefault()
	html := render(t, TestimonialsCarousel(site.Testimonials, 1))

	assert.Contains(t, html, `data-index="1"`)
	assert.Contains(t, html, `<blockquote class="testimonial">`)
	assert.Contains(t, html, site.Testimonials[1].Name)
	assert.Contains(t, html, `hx-post="/testimonials/next"`)
	assert.Contains(t, html, `hx-post="/testimonials/prev"`)
	assert.Contains(t, html, `hx-post="/testimonials/3"`)
	assert.Contains(t, html, "★★★★★")

	single := render(t, TestimonialsCarousel(site.Testimonials[:1], 0))
	assert.NotContains(t, single, "/testimonials/next")
}

func TestInquiryResult(t *testing.T) {
	ok := render(t, InquiryResult("Thanks", nil))
	assert.Contains(t, ok, "alert-success")
	assert.Contains(t, ok, "Thanks")

	bad := render(t, InquiryResult("Thanks", []string{"email is invalid"}))
	assert.Contains(t, bad, "alert-error")
	assert.Contains(t, bad, "<li>email is invalid</li>")
	assert.NotContains(t, bad, "Thanks")
}
