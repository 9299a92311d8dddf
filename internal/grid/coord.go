// Package grid implements cell addressing, selection and keyboard
// navigation for a spreadsheet-style table. It holds no rendering code: a
// render adapter reads the Model and the Engine state between input events
// and feeds pointer and key input back in.
package grid

import "fmt"

// LabelIndex addresses the label cell outside the data range. A Coordinate
// with Col == LabelIndex is a row's ordinal cell (the gutter); one with
// Row == LabelIndex is a column header.
const LabelIndex = -1

// Coordinate addresses a single cell by zero-based row and column.
type Coordinate struct {
	Row int
	Col int
}

// At is shorthand for Coordinate{Row: row, Col: col}.
func At(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// IsLabel reports whether c addresses a row label or a column header.
func (c Coordinate) IsLabel() bool {
	return c.Row == LabelIndex || c.Col == LabelIndex
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// A1 returns the coordinate in spreadsheet notation ("A1", "AB12").
// Label cells render as "#<row>" or "<col>#".
func (c Coordinate) A1() string {
	switch {
	case c.Col == LabelIndex && c.Row >= 0:
		return fmt.Sprintf("#%d", c.Row+1)
	case c.Row == LabelIndex && c.Col >= 0:
		return ColumnName(c.Col) + "#"
	case c.Row < 0 || c.Col < 0:
		return c.String()
	}
	return fmt.Sprintf("%s%d", ColumnName(c.Col), c.Row+1)
}

// ColumnName converts a zero-based column index to its letter name
// (0 -> A, 25 -> Z, 26 -> AA).
func ColumnName(col int) string {
	if col < 0 {
		return ""
	}
	var buf [8]byte
	i := len(buf)
	for n := col + 1; n > 0; n = (n - 1) / 26 {
		i--
		buf[i] = byte('A' + (n-1)%26)
	}
	return string(buf[i:])
}

// Bounds is the size of an addressable grid.
type Bounds struct {
	Rows int
	Cols int
}

// Empty reports whether the grid has no addressable cell.
func (b Bounds) Empty() bool {
	return b.Rows <= 0 || b.Cols <= 0
}

// Contains reports whether c lies inside the data range.
func (b Bounds) Contains(c Coordinate) bool {
	return c.Row >= 0 && c.Row < b.Rows && c.Col >= 0 && c.Col < b.Cols
}

// Rect is an inclusive, axis-aligned block of cells.
type Rect struct {
	Min Coordinate
	Max Coordinate
}

// RectBetween returns the rectangle spanned by two corners, whatever their
// order.
func RectBetween(a, b Coordinate) Rect {
	return Rect{
		Min: Coordinate{Row: min(a.Row, b.Row), Col: min(a.Col, b.Col)},
		Max: Coordinate{Row: max(a.Row, b.Row), Col: max(a.Col, b.Col)},
	}
}

// Contains reports whether c lies inside r.
func (r Rect) Contains(c Coordinate) bool {
	return c.Row >= r.Min.Row && c.Row <= r.Max.Row &&
		c.Col >= r.Min.Col && c.Col <= r.Max.Col
}

// Rows returns the number of rows covered by r.
func (r Rect) Rows() int { return r.Max.Row - r.Min.Row + 1 }

// Cols returns the number of columns covered by r.
func (r Rect) Cols() int { return r.Max.Col - r.Min.Col + 1 }

// Size returns the number of cells covered by r.
func (r Rect) Size() int { return r.Rows() * r.Cols() }

// Cells lists every coordinate in r in row-major order.
func (r Rect) Cells() []Coordinate {
	cells := make([]Coordinate, 0, r.Size())
	for row := r.Min.Row; row <= r.Max.Row; row++ {
		for col := r.Min.Col; col <= r.Max.Col; col++ {
			cells = append(cells, Coordinate{Row: row, Col: col})
		}
	}
	return cells
}

func (r Rect) String() string {
	if r.Min == r.Max {
		return r.Min.A1()
	}
	return r.Min.A1() + ":" + r.Max.A1()
}
