package sheet

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/imgajeed76/gridsheet/internal/grid"
	"github.com/imgajeed76/gridsheet/internal/ui/styles"
)

// ═══════════════════════════════════════════════════════════════════════════
// View
// ═══════════════════════════════════════════════════════════════════════════

func (m sheetModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	m.reg.reset()

	var sb strings.Builder
	sb.WriteString(m.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(m.renderToolbar())
	sb.WriteString("\n")
	sb.WriteString(m.renderGrid())
	sb.WriteString(m.renderTabs())
	sb.WriteString("\n")
	sb.WriteString(m.renderStatus())

	return m.reg.scan(sb.String())
}

// spread lays left and right out on one line of the terminal width.
func (m sheetModel) spread(left, right string) string {
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// ═══════════════════════════════════════════════════════════════════════════
// Chrome
// ═══════════════════════════════════════════════════════════════════════════

func (m sheetModel) renderHeader() string {
	parts := strings.Split(m.opts.Breadcrumb, " / ")
	for i, p := range parts {
		if i == len(parts)-1 {
			parts[i] = styles.Render(styles.TitleStyle, p)
		} else {
			parts[i] = styles.Render(styles.BreadcrumbDim, p)
		}
	}
	left := strings.Join(parts, styles.MutedMsg(" "+styles.SymbolChevron+" "))

	search := styles.MutedMsg("/ ") + m.search.View()
	right := m.reg.button("search", "search", search)
	if m.opts.UserName != "" {
		profile := styles.Render(styles.Bold, m.opts.UserName)
		if m.opts.UserEmail != "" {
			profile += " " + styles.MutedMsg(m.opts.UserEmail)
		}
		right += "  " + m.reg.button("profile", m.opts.UserName, profile)
	}

	return m.spread(left, right)
}

func (m sheetModel) renderToolbar() string {
	title := styles.Render(styles.TitleStyle, m.sheet.Title)

	buttons := make([]string, len(toolbarButtons))
	for i, label := range toolbarButtons {
		style := styles.ButtonStyle
		if label == "New Action" {
			style = styles.PrimaryButton
		}
		buttons[i] = m.reg.button("toolbar", label, styles.Render(style, label))
	}

	return m.spread(title, strings.Join(buttons, " "))
}

func (m sheetModel) renderTabs() string {
	var sb strings.Builder
	for i, tab := range m.opts.Tabs {
		style := styles.TabStyle
		if i == m.activeTab {
			style = styles.ActiveTabStyle
		}
		text := styles.Render(style, tab)
		if styles.NoColor() && i == m.activeTab {
			text = "[" + tab + "]"
		}
		sb.WriteString(m.reg.button("tab", tab, text))
		sb.WriteString(" ")
	}
	sb.WriteString(m.reg.button("newtab", "+", styles.Render(styles.ButtonStyle, styles.SymbolPlus)))
	return sb.String()
}

var statusHints = [][2]string{
	{"←↓↑→/hjkl", "move"},
	{"tab", "next"},
	{"enter", "open"},
	{"/", "search"},
	{"[ ]", "tabs"},
	{"y", "copy"},
	{"J R P", "export"},
	{"q", "quit"},
}

func (m sheetModel) renderStatus() string {
	var left string
	if c, ok := m.engine.ActiveCell(); ok {
		left = styles.Render(styles.HelpKey, c.A1())
		if r, ok := m.engine.SelectionRect(); ok && r.Size() > 1 {
			left += styles.MutedMsg(fmt.Sprintf("  %d×%d (%d cells)", r.Rows(), r.Cols(), r.Size()))
		}
	} else {
		left = styles.MutedMsg("no cell selected")
	}

	var right string
	switch {
	case m.statusMsg != "" && time.Now().Before(m.statusUntil):
		if m.statusErr {
			right = styles.Errorf("%s", m.statusMsg)
		} else {
			right = styles.SuccessMsg(m.statusMsg)
		}
	case m.mode == modeSearch:
		right = styles.InfoMsg("enter submit  esc cancel")
	default:
		hints := make([]string, len(statusHints))
		for i, h := range statusHints {
			hints[i] = styles.HelpLine(h[0], h[1])
		}
		right = strings.Join(hints, "  ")
	}

	return m.spread(left, right)
}

// ═══════════════════════════════════════════════════════════════════════════
// Render Grid
// ═══════════════════════════════════════════════════════════════════════════

func (m sheetModel) renderGrid() string {
	var sb strings.Builder

	model := m.engine.Model()
	if len(model.Columns()) == 0 {
		return "No columns\n"
	}

	gw := m.gutterWidth()
	end := m.visibleColEnd()
	gap := strings.Repeat(" ", colGap)

	// Column headers
	sb.WriteString(strings.Repeat(" ", gw))
	for col := m.scrollX; col < end; col++ {
		c := grid.At(grid.LabelIndex, col)
		text := fit(model.Column(col).Label, m.colWidth(col), false)
		sb.WriteString(gap)
		sb.WriteString(m.reg.cell(c, styles.Render(m.cellStyle(c, styles.HeaderCell), text)))
	}
	sb.WriteString("\n")

	// Rule
	sb.WriteString(styles.MutedMsg(strings.Repeat("─", gw)))
	for col := m.scrollX; col < end; col++ {
		sb.WriteString(gap)
		sb.WriteString(styles.MutedMsg(strings.Repeat("─", m.colWidth(col))))
	}
	sb.WriteString("\n")

	visible := m.visibleRowCount()
	last := min(m.scrollY+visible, m.renderedRows())
	for row := m.scrollY; row < last; row++ {
		g := grid.At(row, grid.LabelIndex)
		num := fit(strconv.Itoa(row+1), gw-1, true) + " "
		sb.WriteString(m.reg.cell(g, styles.Render(m.cellStyle(g, styles.GutterCell), num)))

		for col := m.scrollX; col < end; col++ {
			c := grid.At(row, col)
			sb.WriteString(gap)
			sb.WriteString(m.reg.cell(c, m.renderCell(c)))
		}
		sb.WriteString("\n")
	}
	for row := last - m.scrollY; row < visible; row++ {
		sb.WriteString("\n")
	}

	return sb.String()
}

// colWidth is the drawn width of col; a single column wider than the
// viewport is cut to fit.
func (m sheetModel) colWidth(col int) int {
	return min(m.colWidths[col], m.gridWidth()-colGap)
}

func (m sheetModel) renderCell(c grid.Coordinate) string {
	col := m.engine.Model().Column(c.Col)
	var text string
	// Padding rows have no value; they are drawn blank.
	if !m.engine.Model().IsPadding(c.Row) {
		text = m.cellText(c)
	}
	text = fit(text, m.colWidth(c.Col), rightAligned(col.Kind))
	return styles.Render(m.cellStyle(c, kindStyle(col.Kind, text)), text)
}

// cellStyle overrides base for the active and selected cells.
func (m sheetModel) cellStyle(c grid.Coordinate, base lipgloss.Style) lipgloss.Style {
	if a, ok := m.engine.ActiveCell(); ok && a == c {
		return styles.ActiveCell
	}
	if m.engine.Selected(c) {
		return styles.SelectedCell
	}
	return base
}
