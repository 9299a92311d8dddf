package sheet

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/imgajeed76/gridsheet/internal/grid"
	"github.com/imgajeed76/gridsheet/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newZoneModel mounts the job sheet with a live zone manager and renders it
// once so that every visible cell has a zone.
func newZoneModel(t *testing.T, logs *bytes.Buffer) (sheetModel, *zone.Manager) {
	t.Helper()
	styles.SetNoColor(true)
	t.Cleanup(func() { styles.SetNoColor(false) })

	z := zone.New()
	t.Cleanup(z.Close)

	lg := zerolog.New(logs)
	m := newSheetModel(jobSheet(), Options{
		Breadcrumb: "Workspace / Folder 2 / Spreadsheet 3",
		Tabs:       []string{"All Orders", "Pending", "Reviewed", "Arrived"},
		Logger:     &lg,
	}, z)
	m = update(t, m, tea.WindowSizeMsg{Width: 200, Height: 20})
	m.View()
	return m, z
}

// zoneOf waits for the zone manager to record id; zones are stored
// asynchronously after Scan.
func zoneOf(t *testing.T, z *zone.Manager, id string) *zone.ZoneInfo {
	t.Helper()
	var info *zone.ZoneInfo
	require.Eventually(t, func() bool {
		info = z.Get(id)
		return !info.IsZero()
	}, 2*time.Second, 5*time.Millisecond, "zone %s never recorded", id)
	return info
}

func mouse(info *zone.ZoneInfo, action tea.MouseAction) tea.MouseMsg {
	return tea.MouseMsg{X: info.StartX, Y: info.StartY, Action: action, Button: tea.MouseButtonLeft}
}

func TestMouseDragSelectsRectangle(t *testing.T) {
	m, z := newZoneModel(t, &bytes.Buffer{})

	b2 := zoneOf(t, z, m.reg.cellID(grid.At(1, 1)))
	c4 := zoneOf(t, z, m.reg.cellID(grid.At(3, 2)))
	header := zoneOf(t, z, m.reg.cellID(grid.At(grid.LabelIndex, 1)))

	m = update(t, m, mouse(b2, tea.MouseActionPress))
	assert.True(t, m.engine.Dragging())
	assert.Equal(t, grid.At(1, 1), activeCell(t, m))

	m = update(t, m, mouse(c4, tea.MouseActionMotion))
	r, ok := m.engine.SelectionRect()
	require.True(t, ok)
	assert.Equal(t, "B2:C4", r.String())

	// The rule under the column headers belongs to no cell.
	rule := tea.MouseMsg{X: header.StartX, Y: header.StartY + 1, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
	m = update(t, m, rule)
	r, _ = m.engine.SelectionRect()
	assert.Equal(t, "B2:C4", r.String(), "motion outside any cell keeps the rectangle")
	assert.True(t, m.engine.Dragging())

	m = update(t, m, tea.MouseMsg{X: c4.StartX, Y: c4.StartY, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.False(t, m.engine.Dragging())
	assert.Equal(t, grid.At(1, 1), activeCell(t, m))
	assert.Len(t, m.engine.Selection(), 6)

	// Motion after release extends nothing.
	m = update(t, m, mouse(b2, tea.MouseActionMotion))
	r, _ = m.engine.SelectionRect()
	assert.Equal(t, "B2:C4", r.String())
}

func TestMouseClickOnGutterSelectsLabelCell(t *testing.T) {
	m, z := newZoneModel(t, &bytes.Buffer{})

	gutter := zoneOf(t, z, m.reg.cellID(grid.At(2, grid.LabelIndex)))
	m = update(t, m, mouse(gutter, tea.MouseActionPress), mouse(gutter, tea.MouseActionRelease))
	assert.Equal(t, grid.At(2, grid.LabelIndex), activeCell(t, m))
}

func TestMouseClicksOnChrome(t *testing.T) {
	var logs bytes.Buffer
	m, z := newZoneModel(t, &logs)

	pending := zoneOf(t, z, m.reg.chromeID("tab", "Pending"))
	m = update(t, m, mouse(pending, tea.MouseActionPress))
	assert.Equal(t, 1, m.activeTab)

	sort := zoneOf(t, z, m.reg.chromeID("toolbar", "Sort"))
	m = update(t, m, mouse(sort, tea.MouseActionPress))
	assert.Contains(t, logs.String(), "Sort clicked")

	plus := zoneOf(t, z, m.reg.chromeID("newtab", "+"))
	m = update(t, m, mouse(plus, tea.MouseActionPress))
	assert.Contains(t, logs.String(), "New Tab (+) clicked")

	_, ok := m.engine.ActiveCell()
	assert.False(t, ok, "chrome clicks never touch the grid")
}

func TestMouseWheelScrolls(t *testing.T) {
	m := newTestModel(t, 200, 10)
	require.Equal(t, 4, m.getMaxScrollY())

	m = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.True(t, m.animating)
	assert.Equal(t, wheelStep, m.animTargetY)

	for m.animating {
		m = update(t, m, animTickMsg{})
	}
	assert.Equal(t, wheelStep, m.scrollY)

	m = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.Equal(t, 4, m.animTargetY, "wheel stops at the last row")
	for m.animating {
		m = update(t, m, animTickMsg{})
	}

	m = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	assert.Equal(t, 1, m.animTargetY)
}
