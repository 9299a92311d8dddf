package grid

// ColumnKind tells a render adapter how to format a column's values.
type ColumnKind string

const (
	KindText     ColumnKind = "text"
	KindOrdinal  ColumnKind = "ordinal"
	KindNumber   ColumnKind = "number"
	KindCurrency ColumnKind = "currency"
	KindStatus   ColumnKind = "status"
	KindPriority ColumnKind = "priority"
	KindURL      ColumnKind = "url"
)

// Column describes one data column. MinWidth is a render hint in terminal
// cells.
type Column struct {
	Key      string
	Label    string
	MinWidth int
	Kind     ColumnKind
}

// Record is one row of data, keyed by Column.Key.
type Record map[string]any

// Model is the read-only grid over a record sequence and a column schema.
// Its data bounds are fixed at construction. The rendered row count may be
// larger when a render adapter pads the viewport with empty rows; padding
// rows are addressable but carry no value.
type Model struct {
	columns  []Column
	records  []Record
	rendered int
}

// NewModel builds a model over records. Neither slice is copied; callers
// must not mutate them afterwards.
func NewModel(columns []Column, records []Record) *Model {
	return &Model{
		columns:  columns,
		records:  records,
		rendered: len(records),
	}
}

// Bounds returns the data bounds: record count by column count.
func (m *Model) Bounds() Bounds {
	return Bounds{Rows: len(m.records), Cols: len(m.columns)}
}

// SetPadding makes at least minRows rows addressable. It never hides data
// rows.
func (m *Model) SetPadding(minRows int) {
	m.rendered = max(len(m.records), minRows)
}

// RenderBounds returns the rendered bounds, padding rows included. This is
// what navigation clamps against.
func (m *Model) RenderBounds() Bounds {
	return Bounds{Rows: m.rendered, Cols: len(m.columns)}
}

// IsPadding reports whether row is a padding row.
func (m *Model) IsPadding(row int) bool {
	return row >= len(m.records) && row < m.rendered
}

// ValueAt returns the value at (row, col). Padding rows yield a nil value.
// Anything outside the rendered bounds fails with ErrOutOfBounds.
func (m *Model) ValueAt(row, col int) (any, error) {
	rb := m.RenderBounds()
	at := Coordinate{Row: row, Col: col}
	if !rb.Contains(at) {
		return nil, &OutOfBoundsError{At: at, Bounds: rb}
	}
	if row >= len(m.records) {
		return nil, nil
	}
	return m.records[row][m.columns[col].Key], nil
}

// Columns returns the column schema.
func (m *Model) Columns() []Column {
	return m.columns
}

// Column returns the column at index i.
func (m *Model) Column(i int) Column {
	return m.columns[i]
}

// Record returns the record at row, or nil for padding rows and rows out of
// range.
func (m *Model) Record(row int) Record {
	if row < 0 || row >= len(m.records) {
		return nil
	}
	return m.records[row]
}
