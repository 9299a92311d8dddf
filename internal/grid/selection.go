package grid

import "sort"

// DragSession is the transient state of a pointer drag. It exists only
// between BeginDrag and EndDrag.
type DragSession struct {
	Anchor Coordinate
}

// Selection owns the active cell and the set of selected cells. The zero
// value is ready to use: no active cell, empty selection.
//
// It performs no bounds checking; callers only hand it coordinates they
// rendered.
type Selection struct {
	active    Coordinate
	hasActive bool
	cells     map[Coordinate]struct{}
	rect      Rect
	hasRect   bool
	drag      *DragSession
}

// ActiveCell returns the active cell, if any.
func (s *Selection) ActiveCell() (Coordinate, bool) {
	return s.active, s.hasActive
}

// SelectSingle makes c the active cell and the only selected cell.
func (s *Selection) SelectSingle(c Coordinate) {
	s.active = c
	s.hasActive = true
	s.setRect(RectBetween(c, c))
}

func (s *Selection) moveActive(c Coordinate) {
	s.active = c
	s.hasActive = true
}

// BeginDrag opens a drag session anchored at c. It selects c exactly like
// SelectSingle. An already open session is replaced.
func (s *Selection) BeginDrag(c Coordinate) {
	s.SelectSingle(c)
	s.drag = &DragSession{Anchor: c}
}

// ExtendDrag replaces the selection with the rectangle between the drag
// anchor and c, inclusive. The active cell stays on the anchor. It reports
// false and does nothing when no session is open.
func (s *Selection) ExtendDrag(c Coordinate) bool {
	if s.drag == nil {
		return false
	}
	s.setRect(RectBetween(s.drag.Anchor, c))
	return true
}

// EndDrag closes the drag session, keeping the last rectangle selected.
// Calling it with no open session is a no-op.
func (s *Selection) EndDrag() {
	s.drag = nil
}

// Dragging reports whether a drag session is open.
func (s *Selection) Dragging() bool {
	return s.drag != nil
}

// Reset clears the active cell, the selection and any drag session.
func (s *Selection) Reset() {
	s.active = Coordinate{}
	s.hasActive = false
	s.cells = nil
	s.rect = Rect{}
	s.hasRect = false
	s.drag = nil
}

// Selected reports whether c is in the selection.
func (s *Selection) Selected(c Coordinate) bool {
	_, ok := s.cells[c]
	return ok
}

// Len returns the number of selected cells.
func (s *Selection) Len() int {
	return len(s.cells)
}

// Selection returns the selected cells in row-major order.
func (s *Selection) Selection() []Coordinate {
	out := make([]Coordinate, 0, len(s.cells))
	for c := range s.cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// Rect returns the rectangle the selection covers. It is false when nothing
// is selected.
func (s *Selection) Rect() (Rect, bool) {
	return s.rect, s.hasRect
}

func (s *Selection) setRect(r Rect) {
	cells := make(map[Coordinate]struct{}, r.Size())
	for _, c := range r.Cells() {
		cells[c] = struct{}{}
	}
	s.cells = cells
	s.rect = r
	s.hasRect = true
}
