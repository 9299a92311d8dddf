package sheet

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/imgajeed76/gridsheet/internal/grid"
)

// ═══════════════════════════════════════════════════════════════════════════
// Key Bindings
// ═══════════════════════════════════════════════════════════════════════════

type sheetKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Tab         key.Binding
	ShiftTab    key.Binding
	Enter       key.Binding
	Search      key.Binding
	PrevTab     key.Binding
	NextTab     key.Binding
	YankCells   key.Binding
	YankRow     key.Binding
	ExportJSON  key.Binding
	ExportRaw   key.Binding
	ExportPlain key.Binding
	Quit        key.Binding
}

var sheetKeys = sheetKeyMap{
	Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
	Right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
	Tab:         key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next cell")),
	ShiftTab:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("⇧tab", "prev cell")),
	Enter:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open cell")),
	Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	PrevTab:     key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev tab")),
	NextTab:     key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next tab")),
	YankCells:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy selection")),
	YankRow:     key.NewBinding(key.WithKeys("Y"), key.WithHelp("Y", "copy row")),
	ExportJSON:  key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "print as JSON")),
	ExportRaw:   key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "print raw")),
	ExportPlain: key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "print table")),
	Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// gridKey maps a key press to a navigation key. Anything that is not a
// navigation key maps to grid.KeyNone.
func gridKey(msg tea.KeyMsg) grid.Key {
	switch {
	case key.Matches(msg, sheetKeys.Up):
		return grid.KeyUp
	case key.Matches(msg, sheetKeys.Down):
		return grid.KeyDown
	case key.Matches(msg, sheetKeys.Left):
		return grid.KeyLeft
	case key.Matches(msg, sheetKeys.Right):
		return grid.KeyRight
	case key.Matches(msg, sheetKeys.Tab):
		return grid.KeyTab
	case key.Matches(msg, sheetKeys.ShiftTab):
		return grid.KeyShiftTab
	case key.Matches(msg, sheetKeys.Enter):
		return grid.KeyEnter
	}
	return grid.KeyNone
}
