package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Formats accepted by the --format flags.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Table describes rows for the table and JSON printers.
type Table struct {
	Headers []string
	Rows    [][]string
	// Empty is printed instead of the rows when there are none.
	Empty string
}

// Print writes t in the given format.
func Print(w io.Writer, format string, t Table) error {
	switch format {
	case FormatTable:
		return PrintTable(w, t)
	case FormatJSON:
		return PrintJSON(w, t)
	default:
		return fmt.Errorf("unsupported output format %q, use %q or %q", format, FormatTable, FormatJSON)
	}
}

// PrintTable displays t as aligned columns with a dashed header line.
func PrintTable(w io.Writer, t Table) error {
	if len(t.Rows) == 0 && t.Empty != "" {
		_, err := fmt.Fprintln(w, t.Empty)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	underline := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		underline[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(tw, strings.Join(t.Headers, "\t"))
	fmt.Fprintln(tw, strings.Join(underline, "\t"))
	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// PrintJSON displays t as a list of objects keyed by the lower-cased headers.
func PrintJSON(w io.Writer, t Table) error {
	items := make([]map[string]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		item := make(map[string]string, len(t.Headers))
		for i, h := range t.Headers {
			if i < len(row) {
				item[strings.ToLower(h)] = row[i]
			}
		}
		items = append(items, item)
	}

	out := struct {
		Items []map[string]string `json:"items"`
		Count int                 `json:"count"`
	}{
		Items: items,
		Count: len(items),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// Truncate shortens s to at most n runes, marking the cut with "...".
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
