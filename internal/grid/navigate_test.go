package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKeys = []Key{KeyUp, KeyDown, KeyLeft, KeyRight, KeyTab, KeyShiftTab, KeyEnter}

func TestStep_TransitionTable(t *testing.T) {
	b := Bounds{Rows: 5, Cols: 3}

	tests := []struct {
		name string
		key  Key
		from Coordinate
		want Coordinate
	}{
		{name: "up", key: KeyUp, from: At(2, 1), want: At(1, 1)},
		{name: "up clamps at top", key: KeyUp, from: At(0, 1), want: At(0, 1)},
		{name: "down", key: KeyDown, from: At(2, 1), want: At(3, 1)},
		{name: "down clamps at bottom", key: KeyDown, from: At(4, 1), want: At(4, 1)},
		{name: "left", key: KeyLeft, from: At(2, 1), want: At(2, 0)},
		{name: "left clamps", key: KeyLeft, from: At(2, 0), want: At(2, 0)},
		{name: "right", key: KeyRight, from: At(2, 1), want: At(2, 2)},
		{name: "right clamps", key: KeyRight, from: At(2, 2), want: At(2, 2)},
		{name: "tab", key: KeyTab, from: At(2, 0), want: At(2, 1)},
		{name: "tab wraps to next row", key: KeyTab, from: At(2, 2), want: At(3, 0)},
		{name: "tab on last cell clamps row", key: KeyTab, from: At(4, 2), want: At(4, 0)},
		{name: "shift+tab", key: KeyShiftTab, from: At(2, 2), want: At(2, 1)},
		{name: "shift+tab wraps to previous row", key: KeyShiftTab, from: At(2, 0), want: At(1, 2)},
		{name: "shift+tab on first cell clamps row", key: KeyShiftTab, from: At(0, 0), want: At(0, 2)},
		{name: "enter keeps cell", key: KeyEnter, from: At(3, 1), want: At(3, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Step(tt.key, tt.from, b)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStep_Unclaimed(t *testing.T) {
	_, ok := Step(KeyNone, At(0, 0), Bounds{Rows: 2, Cols: 2})
	assert.False(t, ok)

	_, ok = Step(Key(99), At(0, 0), Bounds{Rows: 2, Cols: 2})
	assert.False(t, ok)

	_, ok = Step(KeyDown, At(0, 0), Bounds{Rows: 0, Cols: 2})
	assert.False(t, ok, "empty grid claims nothing")
}

func TestStep_AlwaysInBounds(t *testing.T) {
	for _, b := range []Bounds{{1, 1}, {1, 4}, {4, 1}, {5, 3}} {
		for r := 0; r < b.Rows; r++ {
			for c := 0; c < b.Cols; c++ {
				for _, k := range allKeys {
					got, ok := Step(k, At(r, c), b)
					require.True(t, ok)
					assert.True(t, b.Contains(got), "%s from %s in %v gave %s", k, At(r, c), b, got)
				}
			}
		}
	}
}

func TestStep_TabWrapProperties(t *testing.T) {
	const R, C = 6, 4
	b := Bounds{Rows: R, Cols: C}
	for r := 0; r < R; r++ {
		got, _ := Step(KeyTab, At(r, C-1), b)
		assert.Equal(t, At(min(R-1, r+1), 0), got)

		got, _ = Step(KeyShiftTab, At(r, 0), b)
		assert.Equal(t, At(max(0, r-1), C-1), got)
	}
}

func TestStep_CornersStay(t *testing.T) {
	b := Bounds{Rows: 3, Cols: 3}
	cases := []struct {
		from Coordinate
		keys []Key
	}{
		{At(0, 0), []Key{KeyUp, KeyLeft}},
		{At(0, 2), []Key{KeyUp, KeyRight}},
		{At(2, 0), []Key{KeyDown, KeyLeft}},
		{At(2, 2), []Key{KeyDown, KeyRight}},
	}
	for _, tc := range cases {
		for _, k := range tc.keys {
			got, _ := Step(k, tc.from, b)
			assert.Equal(t, tc.from, got, "%s at %s", k, tc.from)
		}
	}
}

func TestStep_FromOutsideShrunkBounds(t *testing.T) {
	b := Bounds{Rows: 3, Cols: 3}
	got, ok := Step(KeyUp, At(10, 1), b)
	require.True(t, ok)
	assert.Equal(t, At(2, 1), got)
}

func TestStep_EnterFromOutsideShrunkBounds(t *testing.T) {
	b := Bounds{Rows: 3, Cols: 3}
	got, ok := Step(KeyEnter, At(8, 1), b)
	require.True(t, ok)
	assert.Equal(t, At(2, 1), got)
	assert.True(t, b.Contains(got))
}

func TestClamp(t *testing.T) {
	b := Bounds{Rows: 3, Cols: 4}
	tests := []struct {
		name string
		in   Coordinate
		want Coordinate
	}{
		{name: "inside", in: At(1, 2), want: At(1, 2)},
		{name: "below", in: At(9, 2), want: At(2, 2)},
		{name: "right", in: At(1, 7), want: At(1, 3)},
		{name: "gutter keeps label", in: At(5, LabelIndex), want: At(2, LabelIndex)},
		{name: "header keeps label", in: At(LabelIndex, 6), want: At(LabelIndex, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clamp(tt.in, b))
		})
	}
	assert.Equal(t, At(4, 4), Clamp(At(4, 4), Bounds{}), "empty bounds leave c alone")
}

func TestStep_FromLabelCell(t *testing.T) {
	b := Bounds{Rows: 3, Cols: 3}

	got, _ := Step(KeyRight, At(1, LabelIndex), b)
	assert.Equal(t, At(1, 0), got)

	got, _ = Step(KeyTab, At(1, LabelIndex), b)
	assert.Equal(t, At(1, 0), got)

	got, _ = Step(KeyShiftTab, At(1, LabelIndex), b)
	assert.Equal(t, At(0, 2), got)
}

func TestKey_String(t *testing.T) {
	assert.Equal(t, "shift+tab", KeyShiftTab.String())
	assert.Equal(t, "unknown", Key(42).String())
}
