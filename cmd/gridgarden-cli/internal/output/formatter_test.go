package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() Table {
	return Table{
		Headers: []string{"ID", "Name"},
		Rows: [][]string{
			{"basic", "BASIC Line"},
			{"premium", "PREMIUM Line"},
		},
		Empty: "No products found",
	}
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintTable(&buf, sampleTable()))

	out := buf.String()
	assert.Contains(t, out, "ID       Name")
	assert.Contains(t, out, "--       ----")
	assert.Contains(t, out, "premium  PREMIUM Line")
}

func TestPrintTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	tbl := sampleTable()
	tbl.Rows = nil
	require.NoError(t, PrintTable(&buf, tbl))
	assert.Equal(t, "No products found\n", buf.String())
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, FormatJSON, sampleTable()))

	var decoded struct {
		Items []map[string]string `json:"items"`
		Count int                 `json:"count"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 2, decoded.Count)
	assert.Equal(t, "premium", decoded.Items[1]["id"])
	assert.Equal(t, "BASIC Line", decoded.Items[0]["name"])
}

func TestPrint_UnknownFormat(t *testing.T) {
	err := Print(&bytes.Buffer{}, "yaml", sampleTable())
	assert.ErrorContains(t, err, `unsupported output format "yaml"`)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "Tomá...", Truncate("Tomáš Bartoš", 7))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
}
