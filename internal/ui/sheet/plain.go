package sheet

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/imgajeed76/gridsheet/internal/grid"
	"github.com/imgajeed76/gridsheet/internal/source"
	"github.com/mattn/go-runewidth"
)

// PrintRaw writes every record as a tab-separated line (for piping).
func PrintRaw(w io.Writer, s *source.Sheet) {
	_, rows := s.Strings()
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
}

// PrintJSON writes the records as a JSON array of objects keyed by column
// label. Values keep their types; absent values are null.
func PrintJSON(w io.Writer, s *source.Sheet) error {
	names := jsonNames(s.Columns)

	results := make([]map[string]any, len(s.Records))
	for i, rec := range s.Records {
		obj := make(map[string]any, len(s.Columns))
		for j, c := range s.Columns {
			obj[names[j]] = rec[c.Key]
		}
		results[i] = obj
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// jsonNames picks one object key per column: the label, then the column
// key, then the key with a numeric suffix, whichever is still free.
func jsonNames(cols []grid.Column) []string {
	names := make([]string, len(cols))
	used := make(map[string]bool, len(cols))
	for i, c := range cols {
		name := c.Label
		if used[name] {
			name = c.Key
		}
		for n := 2; used[name]; n++ {
			name = c.Key + "_" + strconv.Itoa(n)
		}
		used[name] = true
		names[i] = name
	}
	return names
}

// PrintPlainTable prints an aligned table for non-TTY output. Cells are
// formatted like the interactive view but never truncated.
func PrintPlainTable(w io.Writer, s *source.Sheet) {
	if len(s.Columns) == 0 {
		fmt.Fprintln(w, "(0 rows)")
		return
	}

	colWidths := make([]int, len(s.Columns))
	rows := make([][]string, len(s.Records))
	for i, c := range s.Columns {
		colWidths[i] = runewidth.StringWidth(c.Label)
	}
	for r, rec := range s.Records {
		row := make([]string, len(s.Columns))
		for i, c := range s.Columns {
			row[i] = CellText(c.Kind, rec[c.Key])
			colWidths[i] = max(colWidths[i], runewidth.StringWidth(row[i]))
		}
		rows[r] = row
	}

	// Print header
	for i, c := range s.Columns {
		if i > 0 {
			fmt.Fprint(w, "  ")
		}
		fmt.Fprint(w, runewidth.FillRight(c.Label, colWidths[i]))
	}
	fmt.Fprintln(w)

	// Print separator
	for i, width := range colWidths {
		if i > 0 {
			fmt.Fprint(w, "  ")
		}
		fmt.Fprint(w, strings.Repeat("─", width))
	}
	fmt.Fprintln(w)

	// Print rows (full content, no truncation)
	for _, row := range rows {
		for i, val := range row {
			if i > 0 {
				fmt.Fprint(w, "  ")
			}
			if rightAligned(s.Columns[i].Kind) {
				fmt.Fprint(w, runewidth.FillLeft(val, colWidths[i]))
			} else {
				fmt.Fprint(w, runewidth.FillRight(val, colWidths[i]))
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "(%d rows)\n", len(rows))
}
