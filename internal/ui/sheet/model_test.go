package sheet

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/imgajeed76/gridsheet/internal/data"
	"github.com/imgajeed76/gridsheet/internal/grid"
	"github.com/imgajeed76/gridsheet/internal/source"
	"github.com/imgajeed76/gridsheet/internal/ui/styles"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jobSheet() *source.Sheet {
	return &source.Sheet{Title: data.Title, Columns: data.Columns(), Records: data.JobRecords()}
}

func newTestModel(t *testing.T, width, height int) sheetModel {
	t.Helper()
	nop := zerolog.Nop()
	m := newSheetModel(jobSheet(), Options{
		Breadcrumb: "Workspace / Folder 2 / Spreadsheet 3",
		Tabs:       []string{"All Orders", "Pending", "Reviewed", "Arrived"},
		UserName:   "Ada",
		UserEmail:  "ada@example.com",
		Logger:     &nop,
	}, nil)
	return update(t, m, tea.WindowSizeMsg{Width: width, Height: height})
}

func update(t *testing.T, m sheetModel, msgs ...tea.Msg) sheetModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(sheetModel)
		require.True(t, ok)
	}
	return m
}

func keyMsg(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func runeMsg(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func activeCell(t *testing.T, m sheetModel) grid.Coordinate {
	t.Helper()
	c, ok := m.engine.ActiveCell()
	require.True(t, ok, "expected an active cell")
	return c
}

func TestPaddingFillsViewport(t *testing.T) {
	m := newTestModel(t, 200, 20)
	assert.Equal(t, 14, m.renderedRows())
	assert.Equal(t, 8, m.engine.Model().Bounds().Rows)

	m.opts.PaddingRows = 30
	m = update(t, m, tea.WindowSizeMsg{Width: 200, Height: 20})
	assert.Equal(t, 30, m.renderedRows())
}

func TestFirstNavigationKeyFocusesOrigin(t *testing.T) {
	m := newTestModel(t, 200, 20)
	_, ok := m.engine.ActiveCell()
	require.False(t, ok)

	m = update(t, m, keyMsg(tea.KeyDown))
	assert.Equal(t, grid.At(0, 0), activeCell(t, m))
}

func TestClaimedKeysMoveActiveCell(t *testing.T) {
	m := newTestModel(t, 200, 20)
	m.engine.SelectSingle(grid.At(0, 0))

	m = update(t, m, keyMsg(tea.KeyDown), keyMsg(tea.KeyRight), runeMsg("l"), runeMsg("j"))
	assert.Equal(t, grid.At(2, 2), activeCell(t, m))

	m = update(t, m, runeMsg("k"), runeMsg("h"), keyMsg(tea.KeyUp), keyMsg(tea.KeyUp))
	assert.Equal(t, grid.At(0, 1), activeCell(t, m), "up clamps at the top row")
	assert.Empty(t, m.events.events, "events are drained each update")
}

func TestTabWrapsAcrossRows(t *testing.T) {
	m := newTestModel(t, 200, 20)
	last := len(data.JobColumns) - 1
	m.engine.SelectSingle(grid.At(0, last))

	m = update(t, m, keyMsg(tea.KeyTab))
	assert.Equal(t, grid.At(1, 0), activeCell(t, m))

	m = update(t, m, keyMsg(tea.KeyShiftTab))
	assert.Equal(t, grid.At(0, last), activeCell(t, m))
}

func TestUnclaimedKeyIsIgnored(t *testing.T) {
	m := newTestModel(t, 200, 20)
	m.engine.SelectSingle(grid.At(3, 3))

	m = update(t, m, runeMsg("x"))
	assert.Equal(t, grid.At(3, 3), activeCell(t, m))
	assert.Empty(t, m.statusMsg)
}

func TestEnterRequestsEdit(t *testing.T) {
	m := newTestModel(t, 200, 20)
	m.engine.SelectSingle(grid.At(0, 1))

	m = update(t, m, keyMsg(tea.KeyEnter))
	assert.Equal(t, grid.At(0, 1), activeCell(t, m))
	assert.Contains(t, m.statusMsg, "B1")
	assert.Contains(t, m.statusMsg, "Launch social media campaign")
}

func TestShrinkingViewportClampsActiveCell(t *testing.T) {
	m := newTestModel(t, 200, 20)
	require.Equal(t, 14, m.renderedRows())
	m.engine.SelectSingle(grid.At(12, 1))

	m = update(t, m, tea.WindowSizeMsg{Width: 200, Height: 10})
	require.Equal(t, 8, m.renderedRows())
	assert.Equal(t, grid.At(7, 1), activeCell(t, m))

	m = update(t, m, keyMsg(tea.KeyEnter))
	assert.Equal(t, grid.At(7, 1), activeCell(t, m))
	assert.Contains(t, m.statusMsg, "B8")
}

func TestNavigationKeepsSelection(t *testing.T) {
	m := newTestModel(t, 200, 20)
	m.pointerDown(grid.At(0, 0))
	m.pointerMove(grid.At(1, 1))
	m.pointerUp()

	m = update(t, m, keyMsg(tea.KeyDown))
	assert.Equal(t, grid.At(1, 0), activeCell(t, m))
	assert.Len(t, m.engine.Selection(), 4)
}

func TestPointerDragSelectsRectangle(t *testing.T) {
	m := newTestModel(t, 200, 20)
	m.pointerDown(grid.At(1, 1))
	assert.True(t, m.engine.Dragging())

	m.pointerMove(grid.At(2, 3))
	m.pointerUp()
	m.handleEvents()

	assert.False(t, m.engine.Dragging())
	assert.Equal(t, grid.At(1, 1), activeCell(t, m))
	r, ok := m.engine.SelectionRect()
	require.True(t, ok)
	assert.Equal(t, "B2:D3", r.String())
	assert.Len(t, m.engine.Selection(), 6)
}

func TestScrollFollowsActiveCell(t *testing.T) {
	t.Setenv("GRIDSHEET_ACCESSIBLE", "1")

	m := newTestModel(t, 200, 10)
	require.Equal(t, 4, m.visibleRowCount())
	m.engine.SelectSingle(grid.At(0, 0))

	m = update(t, m, keyMsg(tea.KeyDown), keyMsg(tea.KeyDown))
	assert.Equal(t, 0, m.scrollY, "visible cells do not scroll")

	for range 3 {
		m = update(t, m, keyMsg(tea.KeyDown))
	}
	assert.Equal(t, grid.At(5, 0), activeCell(t, m))
	assert.Equal(t, 2, m.scrollY)

	m = update(t, m, keyMsg(tea.KeyUp), keyMsg(tea.KeyUp), keyMsg(tea.KeyUp), keyMsg(tea.KeyUp))
	assert.Equal(t, 1, m.scrollY)
}

func TestScrollAnimatesTowardTarget(t *testing.T) {
	m := newTestModel(t, 200, 10)
	m.engine.SelectSingle(grid.At(0, 0))
	for range 7 {
		m = update(t, m, keyMsg(tea.KeyDown))
	}
	assert.Equal(t, 4, m.animTargetY)
	assert.True(t, m.animating)

	for m.animating {
		m = update(t, m, animTickMsg{})
	}
	assert.Equal(t, 4, m.scrollY)
}

func TestSearchModeCapturesKeys(t *testing.T) {
	m := newTestModel(t, 200, 20)
	m.engine.SelectSingle(grid.At(0, 0))

	m = update(t, m, runeMsg("/"))
	require.Equal(t, modeSearch, m.mode)

	m = update(t, m, runeMsg("j"))
	assert.Equal(t, grid.At(0, 0), activeCell(t, m))
	assert.Equal(t, "j", m.search.Value())

	m = update(t, m, keyMsg(tea.KeyEsc))
	assert.Equal(t, modeNormal, m.mode)

	m = update(t, m, runeMsg("j"))
	assert.Equal(t, grid.At(1, 0), activeCell(t, m))
}

func TestTabSwitching(t *testing.T) {
	m := newTestModel(t, 200, 20)

	m = update(t, m, runeMsg("]"))
	assert.Equal(t, 1, m.activeTab)

	m = update(t, m, runeMsg("["), runeMsg("["))
	assert.Equal(t, 3, m.activeTab, "tabs wrap around")

	m.clickChrome("tab:Reviewed")
	assert.Equal(t, 2, m.activeTab)
}

func TestClickSearchFocusesInput(t *testing.T) {
	m := newTestModel(t, 200, 20)
	m.clickChrome("search:search")
	assert.Equal(t, modeSearch, m.mode)

	m.pointerDown(grid.At(0, 0))
	assert.Equal(t, modeNormal, m.mode)
}

func TestViewRendersChromeAndGrid(t *testing.T) {
	styles.SetNoColor(true)
	defer styles.SetNoColor(false)

	m := newTestModel(t, 200, 20)
	view := m.View()

	for _, want := range []string{
		"Spreadsheet 3", "Ada", "Job Requests", "Hide fields", "New Action",
		"Job Request", "Est. Value", "$6,200,000", "[All Orders]", "Pending",
		"no cell selected",
	} {
		assert.Contains(t, view, want)
	}
	assert.Contains(t, view, "14 ", "padding rows get a gutter label")

	m.engine.SelectSingle(grid.At(1, 2))
	assert.Contains(t, m.View(), "C2")
}

func TestViewBeforeResize(t *testing.T) {
	nop := zerolog.Nop()
	m := newSheetModel(jobSheet(), Options{Logger: &nop}, nil)
	assert.Equal(t, "Loading...", m.View())
}
