package grid

// Key is a navigation input.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyTab
	KeyShiftTab
	KeyEnter
)

var keyNames = [...]string{
	KeyNone:     "none",
	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyTab:      "tab",
	KeyShiftTab: "shift+tab",
	KeyEnter:    "enter",
}

func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return "unknown"
	}
	return keyNames[k]
}

// Step computes the cell reached from `from` by key k inside b.
//
// Arrows clamp at the edges. Tab moves right and wraps to column 0 of the
// next row; Shift+Tab moves left and wraps to the last column of the
// previous row; both clamp at the first and last rows instead of wrapping
// past them. Enter keeps the coordinate, pulled back inside b if it lies
// outside. Every returned coordinate is inside b.
//
// ok is false for KeyNone, unknown keys and empty bounds: the input is not
// claimed.
func Step(k Key, from Coordinate, b Bounds) (to Coordinate, ok bool) {
	if b.Empty() {
		return from, false
	}
	r, c := from.Row, from.Col
	lastRow, lastCol := b.Rows-1, b.Cols-1

	switch k {
	case KeyUp:
		r = max(0, r-1)
	case KeyDown:
		r = min(lastRow, r+1)
	case KeyLeft:
		c = max(0, c-1)
	case KeyRight:
		c = min(lastCol, c+1)
	case KeyTab:
		c++
		if c > lastCol {
			c = 0
			r = min(lastRow, r+1)
		}
	case KeyShiftTab:
		c--
		if c < 0 {
			c = lastCol
			r = max(0, r-1)
		}
	case KeyEnter:
	default:
		return from, false
	}

	// The starting cell may lie outside b when the rendered row count shrank
	// since it was selected.
	return Coordinate{Row: clamp(r, 0, lastRow), Col: clamp(c, 0, lastCol)}, true
}

// Clamp pulls c into b. Label coordinates keep their label axis.
func Clamp(c Coordinate, b Bounds) Coordinate {
	if b.Empty() {
		return c
	}
	if c.Row != LabelIndex {
		c.Row = clamp(c.Row, 0, b.Rows-1)
	}
	if c.Col != LabelIndex {
		c.Col = clamp(c.Col, 0, b.Cols-1)
	}
	return c
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
