package sheet

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/imgajeed76/gridsheet/internal/grid"
	zone "github.com/lrstanley/bubblezone"
)

// registry maps rendered cells and chrome buttons to bubblezone ids. The
// view rebuilds it on every render, so only what is on screen can be hit.
type registry struct {
	zones  *zone.Manager
	prefix string
	cells  map[string]grid.Coordinate
	chrome map[string]string // zone id -> label
}

func newRegistry(z *zone.Manager) *registry {
	r := &registry{zones: z}
	if z != nil {
		r.prefix = z.NewPrefix()
	}
	r.reset()
	return r
}

func (r *registry) reset() {
	r.cells = make(map[string]grid.Coordinate)
	r.chrome = make(map[string]string)
}

func (r *registry) cellID(c grid.Coordinate) string {
	return r.prefix + "cell-" + strconv.Itoa(c.Row) + "-" + strconv.Itoa(c.Col)
}

func (r *registry) chromeID(kind, label string) string {
	return r.prefix + kind + "-" + label
}

// cell registers c and wraps its rendered text in a zone marker.
func (r *registry) cell(c grid.Coordinate, text string) string {
	id := r.cellID(c)
	r.cells[id] = c
	if r.zones == nil {
		return text
	}
	return r.zones.Mark(id, text)
}

// button registers a clickable chrome element.
func (r *registry) button(kind, label, text string) string {
	id := r.chromeID(kind, label)
	r.chrome[id] = kind + ":" + label
	if r.zones == nil {
		return text
	}
	return r.zones.Mark(id, text)
}

// scan strips zone markers from the final view and records their
// positions.
func (r *registry) scan(view string) string {
	if r.zones == nil {
		return view
	}
	return r.zones.Scan(view)
}

// hitCell returns the coordinate of the cell under the pointer.
func (r *registry) hitCell(msg tea.MouseMsg) (grid.Coordinate, bool) {
	if r.zones == nil {
		return grid.Coordinate{}, false
	}
	for id, c := range r.cells {
		if info := r.zones.Get(id); info != nil && info.InBounds(msg) {
			return c, true
		}
	}
	return grid.Coordinate{}, false
}

// hitChrome returns the "kind:label" key of the chrome element under the
// pointer.
func (r *registry) hitChrome(msg tea.MouseMsg) (string, bool) {
	if r.zones == nil {
		return "", false
	}
	for id, name := range r.chrome {
		if info := r.zones.Get(id); info != nil && info.InBounds(msg) {
			return name, true
		}
	}
	return "", false
}
