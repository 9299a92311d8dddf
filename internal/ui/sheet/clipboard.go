package sheet

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/imgajeed76/gridsheet/internal/grid"
	"github.com/mattn/go-runewidth"
)

// ═══════════════════════════════════════════════════════════════════════════
// Clipboard (yank)
// ═══════════════════════════════════════════════════════════════════════════

// selectionTSV renders the selected data cells as tab-separated rows. With
// an empty selection the active cell is used. Label cells are skipped.
func selectionTSV(e *grid.Engine) (string, int) {
	cells := e.Selection()
	if len(cells) == 0 {
		if c, ok := e.ActiveCell(); ok {
			cells = []grid.Coordinate{c}
		}
	}

	model := e.Model()
	rb := model.RenderBounds()

	var lines []string
	var line []string
	row, n := grid.LabelIndex, 0
	for _, c := range cells {
		if c.IsLabel() || !rb.Contains(c) {
			continue
		}
		if c.Row != row && len(line) > 0 {
			lines = append(lines, strings.Join(line, "\t"))
			line = nil
		}
		row = c.Row
		v, _ := model.ValueAt(c.Row, c.Col)
		line = append(line, CellText(model.Column(c.Col).Kind, v))
		n++
	}
	if len(line) > 0 {
		lines = append(lines, strings.Join(line, "\t"))
	}
	return strings.Join(lines, "\n"), n
}

// rowTSV renders every column of row as one tab-separated line.
func rowTSV(model *grid.Model, row int) (string, bool) {
	rec := model.Record(row)
	if rec == nil {
		return "", false
	}
	vals := make([]string, len(model.Columns()))
	for i, c := range model.Columns() {
		vals[i] = CellText(c.Kind, rec[c.Key])
	}
	return strings.Join(vals, "\t"), true
}

// yankSelection copies the selection to the system clipboard.
func (m *sheetModel) yankSelection() tea.Cmd {
	text, n := selectionTSV(m.engine)
	if n == 0 {
		return nil
	}
	if err := clipboard.WriteAll(text); err != nil {
		m.log.Warn().Err(err).Msg("clipboard write failed")
		return m.setError(fmt.Sprintf("clipboard error: %s", err))
	}
	m.log.Debug().Int("cells", n).Msg("selection copied")
	if n == 1 {
		return m.setStatus(fmt.Sprintf("Copied: %s", runewidth.Truncate(text, 40, "...")))
	}
	return m.setStatus(fmt.Sprintf("Copied %d cells", n))
}

// yankRow copies the active cell's row (tab-separated) to the clipboard.
func (m *sheetModel) yankRow() tea.Cmd {
	c, ok := m.engine.ActiveCell()
	if !ok {
		return nil
	}
	text, ok := rowTSV(m.engine.Model(), c.Row)
	if !ok {
		return nil
	}
	if err := clipboard.WriteAll(text); err != nil {
		m.log.Warn().Err(err).Msg("clipboard write failed")
		return m.setError(fmt.Sprintf("clipboard error: %s", err))
	}
	return m.setStatus(fmt.Sprintf("Copied row %d (%d columns)", c.Row+1, len(m.engine.Model().Columns())))
}
