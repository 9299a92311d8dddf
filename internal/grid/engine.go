package grid

// Event is emitted by the Engine after a state change or when the render
// adapter has work to do.
type Event interface {
	event()
}

// ActiveCellChanged reports a new active cell. From is nil when no cell
// was active before.
type ActiveCellChanged struct {
	From *Coordinate
	To   Coordinate
}

// SelectionChanged reports a new selection rectangle.
type SelectionChanged struct {
	Rect  Rect
	Cells int
}

// ScrollRequest asks the render adapter to bring Target into the visible
// viewport. Nothing should scroll when Target is already visible.
type ScrollRequest struct {
	Target Coordinate
}

// EditRequest signals an edit/open intent on a cell. The engine does not
// interpret it further.
type EditRequest struct {
	At Coordinate
}

func (ActiveCellChanged) event() {}
func (SelectionChanged) event()  {}
func (ScrollRequest) event()     {}
func (EditRequest) event()       {}

// Listener receives engine events synchronously.
type Listener interface {
	Notify(Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Event)

// Notify calls f(e).
func (f ListenerFunc) Notify(e Event) { f(e) }

// Outcome is the result of a navigation key.
type Outcome struct {
	// Claimed is false when the key was ignored. A claimed key must not
	// trigger any default behavior in the caller.
	Claimed bool
	From    Coordinate
	To      Coordinate
	// Edit is set for Enter.
	Edit bool
}

// Moved reports whether the active cell changed.
func (o Outcome) Moved() bool {
	return o.Claimed && o.From != o.To
}

// Engine is the selection and navigation state of one mounted grid view.
// It is not safe for concurrent use; a render adapter owns it and drives it
// from its single event loop.
type Engine struct {
	model    *Model
	sel      Selection
	listener Listener
}

// NewEngine returns an engine over model. listener may be nil.
func NewEngine(model *Model, listener Listener) *Engine {
	return &Engine{model: model, listener: listener}
}

// Model returns the grid model the engine navigates.
func (e *Engine) Model() *Model {
	return e.model
}

// ActiveCell returns the active cell, if any.
func (e *Engine) ActiveCell() (Coordinate, bool) {
	return e.sel.ActiveCell()
}

// Selected reports whether c is selected.
func (e *Engine) Selected(c Coordinate) bool {
	return e.sel.Selected(c)
}

// Selection returns the selected cells in row-major order.
func (e *Engine) Selection() []Coordinate {
	return e.sel.Selection()
}

// SelectionRect returns the rectangle covered by the selection.
func (e *Engine) SelectionRect() (Rect, bool) {
	return e.sel.Rect()
}

// Dragging reports whether a drag session is open.
func (e *Engine) Dragging() bool {
	return e.sel.Dragging()
}

// SelectSingle activates and selects c alone.
func (e *Engine) SelectSingle(c Coordinate) {
	prev, had := e.sel.ActiveCell()
	e.sel.SelectSingle(c)
	e.emitActive(prev, had, c)
	e.emitSelection()
}

// BeginDrag opens a drag session at c.
func (e *Engine) BeginDrag(c Coordinate) {
	prev, had := e.sel.ActiveCell()
	e.sel.BeginDrag(c)
	e.emitActive(prev, had, c)
	e.emitSelection()
}

// ExtendDrag grows the selection to the rectangle between the drag anchor
// and c. It is a no-op without an open session.
func (e *Engine) ExtendDrag(c Coordinate) {
	before, _ := e.sel.Rect()
	if !e.sel.ExtendDrag(c) {
		return
	}
	if after, _ := e.sel.Rect(); after != before {
		e.emitSelection()
	}
}

// EndDrag closes the drag session. It is idempotent.
func (e *Engine) EndDrag() {
	e.sel.EndDrag()
}

// Reset clears all selection state.
func (e *Engine) Reset() {
	e.sel.Reset()
}

// Navigate applies key k to the active cell, clamping against the model's
// rendered bounds. Without an active cell every key is ignored.
func (e *Engine) Navigate(k Key) Outcome {
	from, ok := e.sel.ActiveCell()
	if !ok {
		return Outcome{}
	}
	to, claimed := Step(k, from, e.model.RenderBounds())
	if !claimed {
		return Outcome{From: from, To: from}
	}

	out := Outcome{Claimed: true, From: from, To: to, Edit: k == KeyEnter}

	// The selection set is left alone; only focus moves.
	e.sel.moveActive(to)
	e.emitActive(from, true, to)
	e.emit(ScrollRequest{Target: to})
	if out.Edit {
		e.emit(EditRequest{At: to})
	}
	return out
}

// ClampActive pulls the active cell back inside the rendered bounds after
// they shrank. It reports whether the active cell moved.
func (e *Engine) ClampActive() bool {
	from, ok := e.sel.ActiveCell()
	if !ok {
		return false
	}
	to := Clamp(from, e.model.RenderBounds())
	if to == from {
		return false
	}
	e.sel.moveActive(to)
	e.emitActive(from, true, to)
	return true
}

func (e *Engine) emitActive(prev Coordinate, had bool, to Coordinate) {
	ev := ActiveCellChanged{To: to}
	if had {
		if prev == to {
			return
		}
		ev.From = &prev
	}
	e.emit(ev)
}

func (e *Engine) emitSelection() {
	r, ok := e.sel.Rect()
	if !ok {
		return
	}
	e.emit(SelectionChanged{Rect: r, Cells: e.sel.Len()})
}

func (e *Engine) emit(ev Event) {
	if e.listener != nil {
		e.listener.Notify(ev)
	}
}
