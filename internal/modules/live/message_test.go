package live

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseViewport(t *testing.T) {
	msg, err := ParseViewport([]byte(`{"kind":"viewport","y":120.5,"vh":800,"stats_top":300,"stats_height":420,"HEADERS":{"HX-Request":"true"}}`))
	require.NoError(t, err)

	assert.InDelta(t, 120.5, float64(msg.Y), 1e-9)
	assert.InDelta(t, 800, float64(msg.VH), 1e-9)
	rect := msg.StatsRect()
	require.NotNil(t, rect)
	assert.InDelta(t, 300, rect.Top, 1e-9)
	assert.InDelta(t, 420, rect.Height, 1e-9)
}

func TestParseViewport_NumericStrings(t *testing.T) {
	msg, err := ParseViewport([]byte(`{"kind":"viewport","y":"75","vh":"900","stats_top":"-40","stats_height":"300"}`))
	require.NoError(t, err)

	assert.InDelta(t, 75, float64(msg.Y), 1e-9)
	assert.InDelta(t, -40, msg.StatsRect().Top, 1e-9)
}

func TestParseViewport_MissingStats(t *testing.T) {
	msg, err := ParseViewport([]byte(`{"kind":"viewport","y":0,"vh":800}`))
	require.NoError(t, err)
	assert.Nil(t, msg.StatsRect())
}

func TestParseViewport_Rejects(t *testing.T) {
	cases := map[string]string{
		"not json":       `hello`,
		"wrong kind":     `{"kind":"click","y":0,"vh":800}`,
		"missing kind":   `{"y":0,"vh":800}`,
		"negative vh":    `{"kind":"viewport","y":0,"vh":-1}`,
		"bad number":     `{"kind":"viewport","y":"abc","vh":800}`,
		"negative stats": `{"kind":"viewport","y":0,"vh":800,"stats_top":0,"stats_height":-5}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseViewport([]byte(payload))
			assert.Error(t, err)
		})
	}
}
