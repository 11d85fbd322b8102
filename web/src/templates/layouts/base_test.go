package layouts

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/gridgarden/landing/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateTitle(t *testing.T) {
	assert.Equal(t, "GridGarden", CalculateTitle(""))
	assert.Equal(t, "GridGarden", CalculateTitle("GridGarden"))
	assert.Equal(t, "Partners - GridGarden", CalculateTitle("Partners"))
}

func TestBase(t *testing.T) {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<main>garden</main>")
		return err
	})
	flash := view.FlashData{Success: []string{"Thanks!"}, Error: []string{"Oops"}}

	var buf bytes.Buffer
	require.NoError(t, Base("", flash, body).Render(context.Background(), &buf))
	html := buf.String()

	assert.Contains(t, html, "<!doctype html>")
	assert.Contains(t, html, "<title>GridGarden</title>")
	assert.Contains(t, html, "htmx.org@2")
	assert.Contains(t, html, "htmx-ext-ws")
	assert.Contains(t, html, `name="htmx-config"`)
	assert.Contains(t, html, "Thanks!")
	assert.Contains(t, html, "Oops")
	assert.Contains(t, html, "<main>garden</main>")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Thanks!")), bytes.Index(buf.Bytes(), []byte("<main>")))
}

func TestBase_NoFlash(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Base("FAQ", view.FlashData{}, templ.NopComponent).Render(context.Background(), &buf))

	assert.Contains(t, buf.String(), "<title>FAQ - GridGarden</title>")
	assert.NotContains(t, buf.String(), "flash-messages")
}
