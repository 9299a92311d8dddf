package sheet

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/imgajeed76/gridsheet/internal/grid"
	"github.com/imgajeed76/gridsheet/internal/source"
	"github.com/imgajeed76/gridsheet/internal/util"
	zone "github.com/lrstanley/bubblezone"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ═══════════════════════════════════════════════════════════════════════════
// Constants
// ═══════════════════════════════════════════════════════════════════════════

const (
	defaultMaxColWidth = 24
	colGap             = 1 // space between columns
	chromeLines        = 6 // header, toolbar, column header, rule, tabs, status
	wheelStep          = 3
)

// Toolbar buttons in display order. They only log.
var toolbarButtons = []string{"Hide fields", "Sort", "Filter", "Cell view", "Import", "Export", "Share", "New Action"}

type sheetMode int

const (
	modeNormal sheetMode = iota
	modeSearch
)

// Exit mode: what to print after the TUI quits
type exitMode int

const (
	exitNormal exitMode = iota
	exitJSON
	exitRaw
	exitPlain
)

// Options configures the interactive sheet view.
type Options struct {
	// Breadcrumb is the header title, segments separated by " / ".
	Breadcrumb string
	Tabs       []string
	UserName   string
	UserEmail  string
	// MaxColWidth caps column widths (a column's min width wins if larger).
	MaxColWidth int
	// PaddingRows is the minimum number of rendered rows. Zero fills the
	// viewport.
	PaddingRows int
	// Logger defaults to the global zerolog logger.
	Logger *zerolog.Logger
}

// eventQueue collects engine events during one Update so they can be
// handled against the current model value.
type eventQueue struct {
	events []grid.Event
}

func (q *eventQueue) Notify(e grid.Event) {
	q.events = append(q.events, e)
}

func (q *eventQueue) drain() []grid.Event {
	ev := q.events
	q.events = nil
	return ev
}

// ═══════════════════════════════════════════════════════════════════════════
// Model
// ═══════════════════════════════════════════════════════════════════════════

type sheetModel struct {
	sheet     *source.Sheet
	opts      Options
	engine    *grid.Engine
	events    *eventQueue
	reg       *registry
	log       zerolog.Logger
	colWidths []int
	scrollX   int // first visible column
	scrollY   int // first visible row
	width     int // terminal width
	height    int // terminal height
	ready     bool
	mode      sheetMode
	search    textinput.Model
	activeTab int
	exitMode  exitMode

	// Animation state for smooth scrolling
	animating   bool
	animTargetX int
	animTargetY int

	// Status message (flash notification, e.g. after yank)
	statusMsg   string
	statusErr   bool
	statusUntil time.Time
}

func newSheetModel(s *source.Sheet, opts Options, z *zone.Manager) sheetModel {
	if opts.MaxColWidth <= 0 {
		opts.MaxColWidth = defaultMaxColWidth
	}
	base := log.Logger
	if opts.Logger != nil {
		base = *opts.Logger
	}
	lg := base.With().
		Str("session", util.NewULID()).
		Str("sheet", s.Title).
		Logger()

	events := &eventQueue{}
	model := s.Model()

	ti := textinput.New()
	ti.Placeholder = "Search within sheet"
	ti.CharLimit = 100
	ti.Width = 24
	ti.Prompt = ""

	lg.Debug().
		Int("rows", model.Bounds().Rows).
		Int("cols", model.Bounds().Cols).
		Msg("sheet mounted")

	return sheetModel{
		sheet:     s,
		opts:      opts,
		engine:    grid.NewEngine(model, events),
		events:    events,
		reg:       newRegistry(z),
		log:       lg,
		colWidths: columnWidths(model, opts.MaxColWidth),
		search:    ti,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Bubble Tea Interface
// ═══════════════════════════════════════════════════════════════════════════

func (m sheetModel) Init() tea.Cmd {
	return nil
}

func (m sheetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.applyPadding()
		m.clampScroll()
		return m, m.handleEvents()

	case animTickMsg:
		cmd := m.updateAnimation()
		return m, cmd

	case statusClearMsg:
		if !m.statusUntil.IsZero() && time.Now().After(m.statusUntil) {
			m.statusMsg = ""
			m.statusErr = false
			m.statusUntil = time.Time{}
		}
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		// Cancel any ongoing animation when user presses a key
		m.cancelAnimation()

		if m.mode == modeSearch {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m sheetModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if k := gridKey(msg); k != grid.KeyNone {
		if out := m.engine.Navigate(k); out.Claimed {
			return m, m.handleEvents()
		}
		// Keyboard-only terminals have no click to focus a first cell, so
		// the first navigation key focuses A1 instead of being dropped.
		if _, ok := m.engine.ActiveCell(); !ok && !m.engine.Model().RenderBounds().Empty() {
			m.engine.SelectSingle(grid.At(0, 0))
			return m, m.handleEvents()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, sheetKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, sheetKeys.Search):
		return m, m.focusSearch()

	case key.Matches(msg, sheetKeys.PrevTab):
		m.switchTab(m.activeTab - 1)

	case key.Matches(msg, sheetKeys.NextTab):
		m.switchTab(m.activeTab + 1)

	case key.Matches(msg, sheetKeys.YankCells):
		return m, m.yankSelection()

	case key.Matches(msg, sheetKeys.YankRow):
		return m, m.yankRow()

	case key.Matches(msg, sheetKeys.ExportJSON):
		m.exitMode = exitJSON
		return m, tea.Quit

	case key.Matches(msg, sheetKeys.ExportRaw):
		m.exitMode = exitRaw
		return m, tea.Quit

	case key.Matches(msg, sheetKeys.ExportPlain):
		m.exitMode = exitPlain
		return m, tea.Quit
	}

	return m, nil
}

// ═══════════════════════════════════════════════════════════════════════════
// Search box
// ═══════════════════════════════════════════════════════════════════════════

func (m *sheetModel) focusSearch() tea.Cmd {
	m.mode = modeSearch
	m.log.Info().Msg("Search focused")
	return m.search.Focus()
}

func (m sheetModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.mode = modeNormal
		m.search.Blur()
		return m, nil
	case tea.KeyEnter:
		m.mode = modeNormal
		m.search.Blur()
		m.log.Info().Str("query", m.search.Value()).Msg("Search submitted")
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// ═══════════════════════════════════════════════════════════════════════════
// Pointer input
// ═══════════════════════════════════════════════════════════════════════════

func (m sheetModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return m, m.startAnimation(m.scrollX, m.scrollY-wheelStep)
		case tea.MouseButtonWheelDown:
			return m, m.startAnimation(m.scrollX, m.scrollY+wheelStep)
		case tea.MouseButtonLeft:
			if c, ok := m.reg.hitCell(msg); ok {
				m.pointerDown(c)
				return m, m.handleEvents()
			}
			if name, ok := m.reg.hitChrome(msg); ok {
				return m, m.clickChrome(name)
			}
		}

	case tea.MouseActionMotion:
		// Motion outside any cell keeps the last rectangle.
		if m.engine.Dragging() {
			if c, ok := m.reg.hitCell(msg); ok {
				m.pointerMove(c)
				return m, m.handleEvents()
			}
		}

	case tea.MouseActionRelease:
		m.pointerUp()
	}

	return m, nil
}

func (m *sheetModel) pointerDown(c grid.Coordinate) {
	if m.mode == modeSearch {
		m.mode = modeNormal
		m.search.Blur()
	}
	m.engine.BeginDrag(c)
}

func (m *sheetModel) pointerMove(c grid.Coordinate) {
	m.engine.ExtendDrag(c)
}

func (m *sheetModel) pointerUp() {
	m.engine.EndDrag()
}

// clickChrome handles a click on a header, toolbar or footer element.
func (m *sheetModel) clickChrome(name string) tea.Cmd {
	kind, label, _ := strings.Cut(name, ":")
	switch kind {
	case "toolbar":
		m.log.Info().Str("button", label).Msg(label + " clicked")
	case "tab":
		for i, t := range m.opts.Tabs {
			if t == label {
				m.activeTab = i
			}
		}
		m.log.Info().Str("tab", label).Msg(label + " tab clicked")
	case "newtab":
		m.log.Info().Msg("New Tab (+) clicked")
	case "profile":
		m.log.Info().Str("user", label).Msg("Profile clicked")
	case "search":
		m.log.Info().Msg("Search clicked")
		return m.focusSearch()
	}
	return nil
}

func (m *sheetModel) switchTab(i int) {
	n := len(m.opts.Tabs)
	if n == 0 {
		return
	}
	m.activeTab = ((i % n) + n) % n
	tab := m.opts.Tabs[m.activeTab]
	m.log.Info().Str("tab", tab).Msg(tab + " tab selected")
}

// ═══════════════════════════════════════════════════════════════════════════
// Engine events
// ═══════════════════════════════════════════════════════════════════════════

// handleEvents logs the events the last engine call emitted and fulfils
// scroll and edit requests.
func (m *sheetModel) handleEvents() tea.Cmd {
	var cmds []tea.Cmd
	for _, ev := range m.events.drain() {
		switch ev := ev.(type) {
		case grid.ActiveCellChanged:
			e := m.log.Debug().Str("to", ev.To.A1())
			if ev.From != nil {
				e = e.Str("from", ev.From.A1())
			}
			e.Msg("active cell changed")

		case grid.SelectionChanged:
			m.log.Debug().
				Str("rect", ev.Rect.String()).
				Int("cells", ev.Cells).
				Msg("selection changed")

		case grid.ScrollRequest:
			cmds = append(cmds, m.scrollTo(ev.Target))

		case grid.EditRequest:
			text := m.cellText(ev.At)
			m.log.Info().
				Str("cell", ev.At.A1()).
				Str("value", text).
				Msg("edit requested")
			cmds = append(cmds, m.setStatus(fmt.Sprintf("%s: %s (read-only)", ev.At.A1(), text)))
		}
	}
	return tea.Batch(cmds...)
}

// cellText returns the display text of c. Label cells yield their label,
// anything outside the rendered range yields "".
func (m sheetModel) cellText(c grid.Coordinate) string {
	model := m.engine.Model()
	rb := model.RenderBounds()
	switch {
	case c.Row == grid.LabelIndex && c.Col >= 0 && c.Col < rb.Cols:
		return model.Column(c.Col).Label
	case c.Col == grid.LabelIndex && c.Row >= 0 && c.Row < rb.Rows:
		return fmt.Sprintf("%d", c.Row+1)
	case !rb.Contains(c):
		return ""
	}
	v, err := model.ValueAt(c.Row, c.Col)
	if err != nil {
		return ""
	}
	return CellText(model.Column(c.Col).Kind, v)
}

// ═══════════════════════════════════════════════════════════════════════════
// Status Message (flash notification)
// ═══════════════════════════════════════════════════════════════════════════

type statusClearMsg struct{}

const statusDuration = 2 * time.Second

// setStatus sets a temporary status message that auto-clears.
func (m *sheetModel) setStatus(msg string) tea.Cmd {
	m.statusMsg = msg
	m.statusErr = false
	m.statusUntil = time.Now().Add(statusDuration)
	return tea.Tick(statusDuration, func(t time.Time) tea.Msg {
		return statusClearMsg{}
	})
}

func (m *sheetModel) setError(msg string) tea.Cmd {
	cmd := m.setStatus(msg)
	m.statusErr = true
	return cmd
}
