package sheet

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/imgajeed76/gridsheet/internal/grid"
	"github.com/imgajeed76/gridsheet/internal/source"
	"github.com/imgajeed76/gridsheet/internal/ui/styles"
	"github.com/mattn/go-runewidth"
)

const (
	minColWidth = 3
	ellipsis    = "…"
)

// CellText formats a value for display in a column of the given kind.
// Absent values render as the empty string.
func CellText(kind grid.ColumnKind, v any) string {
	if v == nil {
		return ""
	}
	if kind == grid.KindCurrency {
		if f, ok := toFloat(v); ok {
			return formatCurrency(f)
		}
	}
	return source.FormatValue(v)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

// formatCurrency renders f as dollars with thousands separators. Cents are
// shown only when present.
func formatCurrency(f float64) string {
	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}
	whole, cents, _ := strings.Cut(strconv.FormatFloat(f, 'f', 2, 64), ".")
	out := sign + "$" + groupThousands(whole)
	if cents != "00" {
		out += "." + cents
	}
	return out
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var sb strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		sb.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}

// rightAligned reports whether a column kind is right aligned.
func rightAligned(kind grid.ColumnKind) bool {
	return kind == grid.KindNumber || kind == grid.KindCurrency
}

// fit pads or truncates s to exactly width terminal cells.
func fit(s string, width int, right bool) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, ellipsis)
	}
	if right {
		return runewidth.FillLeft(s, width)
	}
	return runewidth.FillRight(s, width)
}

// columnWidths computes display widths: at least the column's min width and
// header, grown to fit content, capped at max(maxWidth, min width).
func columnWidths(m *grid.Model, maxWidth int) []int {
	cols := m.Columns()
	widths := make([]int, len(cols))
	for i, c := range cols {
		w := max(c.MinWidth, runewidth.StringWidth(c.Label), minColWidth)
		for row := 0; row < m.Bounds().Rows; row++ {
			w = max(w, runewidth.StringWidth(CellText(c.Kind, m.Record(row)[c.Key])))
		}
		widths[i] = min(w, max(maxWidth, c.MinWidth, minColWidth))
	}
	return widths
}

// kindStyle returns the style a value gets in an unselected cell.
func kindStyle(kind grid.ColumnKind, text string) lipgloss.Style {
	switch kind {
	case grid.KindStatus:
		return styles.StatusStyle(strings.TrimSpace(text))
	case grid.KindPriority:
		return styles.PriorityStyle(strings.TrimSpace(text))
	case grid.KindURL:
		return styles.LinkStyle
	case grid.KindOrdinal:
		return styles.Bold
	}
	return lipgloss.NewStyle()
}
