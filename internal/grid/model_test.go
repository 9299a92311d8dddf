package grid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModel() *Model {
	cols := []Column{
		{Key: "id", Label: "#", Kind: KindOrdinal},
		{Key: "name", Label: "Name"},
		{Key: "qty", Label: "Qty", Kind: KindNumber},
	}
	recs := []Record{
		{"id": 1, "name": "alpha", "qty": 10},
		{"id": 2, "name": "beta", "qty": 20},
	}
	return NewModel(cols, recs)
}

func TestModel_Bounds(t *testing.T) {
	m := testModel()
	assert.Equal(t, Bounds{Rows: 2, Cols: 3}, m.Bounds())
	assert.Equal(t, m.Bounds(), m.RenderBounds())
}

func TestModel_ValueAt(t *testing.T) {
	m := testModel()

	v, err := m.ValueAt(1, 1)
	require.NoError(t, err)
	assert.Equal(t, "beta", v)

	v, err = m.ValueAt(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 10, v)
}

func TestModel_ValueAtOutOfBounds(t *testing.T) {
	m := testModel()

	tests := []struct {
		name     string
		row, col int
	}{
		{name: "row past end", row: 2, col: 0},
		{name: "negative row", row: -1, col: 0},
		{name: "col past end", row: 0, col: 3},
		{name: "label col", row: 0, col: LabelIndex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.ValueAt(tt.row, tt.col)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrOutOfBounds))

			var oob *OutOfBoundsError
			require.True(t, errors.As(err, &oob))
			assert.Equal(t, At(tt.row, tt.col), oob.At)
		})
	}
}

func TestModel_Padding(t *testing.T) {
	m := testModel()
	m.SetPadding(5)

	assert.Equal(t, Bounds{Rows: 2, Cols: 3}, m.Bounds(), "data bounds never change")
	assert.Equal(t, Bounds{Rows: 5, Cols: 3}, m.RenderBounds())
	assert.False(t, m.IsPadding(1))
	assert.True(t, m.IsPadding(2))
	assert.True(t, m.IsPadding(4))
	assert.False(t, m.IsPadding(5))

	v, err := m.ValueAt(4, 1)
	require.NoError(t, err, "padding rows are addressable")
	assert.Nil(t, v)
	assert.Nil(t, m.Record(4))

	_, err = m.ValueAt(5, 1)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestModel_PaddingNeverHidesData(t *testing.T) {
	m := testModel()
	m.SetPadding(1)
	assert.Equal(t, 2, m.RenderBounds().Rows)
}

func TestColumnName(t *testing.T) {
	tests := map[int]string{
		0:   "A",
		1:   "B",
		25:  "Z",
		26:  "AA",
		27:  "AB",
		51:  "AZ",
		52:  "BA",
		701: "ZZ",
		702: "AAA",
		-1:  "",
	}
	for col, want := range tests {
		assert.Equal(t, want, ColumnName(col), "col %d", col)
	}
}

func TestCoordinate_A1(t *testing.T) {
	assert.Equal(t, "A1", At(0, 0).A1())
	assert.Equal(t, "C12", At(11, 2).A1())
	assert.Equal(t, "#4", At(3, LabelIndex).A1())
	assert.Equal(t, "B#", At(LabelIndex, 1).A1())
	assert.True(t, At(3, LabelIndex).IsLabel())
	assert.False(t, At(3, 0).IsLabel())
}

func TestRectBetween(t *testing.T) {
	r := RectBetween(At(3, 2), At(1, 1))
	assert.Equal(t, At(1, 1), r.Min)
	assert.Equal(t, At(3, 2), r.Max)
	assert.Equal(t, 6, r.Size())
	assert.Equal(t, "B2:C4", r.String())
	assert.True(t, r.Contains(At(2, 1)))
	assert.False(t, r.Contains(At(0, 1)))
}
