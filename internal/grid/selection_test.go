package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelection_ZeroValue(t *testing.T) {
	var s Selection
	_, ok := s.ActiveCell()
	assert.False(t, ok)
	assert.Empty(t, s.Selection())
	assert.False(t, s.Dragging())
	_, ok = s.Rect()
	assert.False(t, ok)
}

func TestSelection_SelectSingleResets(t *testing.T) {
	var s Selection
	s.BeginDrag(At(0, 0))
	s.ExtendDrag(At(4, 4))
	s.EndDrag()
	require.Equal(t, 25, s.Len())

	s.SelectSingle(At(2, 3))

	active, ok := s.ActiveCell()
	require.True(t, ok)
	assert.Equal(t, At(2, 3), active)
	assert.Equal(t, []Coordinate{At(2, 3)}, s.Selection())
}

func TestSelection_SelectSingleNoBoundsCheck(t *testing.T) {
	var s Selection
	s.SelectSingle(At(999, LabelIndex))
	active, ok := s.ActiveCell()
	require.True(t, ok)
	assert.Equal(t, At(999, LabelIndex), active)
}

func TestSelection_DragRectangle(t *testing.T) {
	var s Selection
	s.BeginDrag(At(1, 1))
	require.True(t, s.ExtendDrag(At(3, 2)))

	want := []Coordinate{
		At(1, 1), At(1, 2),
		At(2, 1), At(2, 2),
		At(3, 1), At(3, 2),
	}
	assert.Equal(t, want, s.Selection())

	active, _ := s.ActiveCell()
	assert.Equal(t, At(1, 1), active, "extending does not move the active cell")
}

func TestSelection_DragRectangleReverseDirection(t *testing.T) {
	var s Selection
	s.BeginDrag(At(2, 0))
	s.ExtendDrag(At(0, 1))

	want := []Coordinate{
		At(0, 0), At(0, 1),
		At(1, 0), At(1, 1),
		At(2, 0), At(2, 1),
	}
	assert.Equal(t, want, s.Selection())
}

func TestSelection_ExtendShrinks(t *testing.T) {
	var s Selection
	s.BeginDrag(At(0, 0))
	s.ExtendDrag(At(5, 5))
	s.ExtendDrag(At(1, 0))
	assert.Equal(t, []Coordinate{At(0, 0), At(1, 0)}, s.Selection())
}

func TestSelection_RectangleInvariant(t *testing.T) {
	var s Selection
	s.BeginDrag(At(4, 1))
	s.ExtendDrag(At(1, 3))

	cells := s.Selection()
	for _, a := range cells {
		for _, b := range cells {
			for _, c := range RectBetween(a, b).Cells() {
				assert.True(t, s.Selected(c), "%s between %s and %s must be selected", c, a, b)
			}
		}
	}
}

func TestSelection_ExtendWithoutSession(t *testing.T) {
	var s Selection
	s.SelectSingle(At(1, 1))
	assert.False(t, s.ExtendDrag(At(3, 3)))
	assert.Equal(t, []Coordinate{At(1, 1)}, s.Selection())
}

func TestSelection_EndDragIdempotent(t *testing.T) {
	var s Selection
	s.BeginDrag(At(0, 0))
	s.ExtendDrag(At(1, 1))

	s.EndDrag()
	once := s.Selection()
	s.EndDrag()
	assert.Equal(t, once, s.Selection())
	assert.False(t, s.Dragging())

	assert.False(t, s.ExtendDrag(At(3, 3)), "session is closed")
	assert.Equal(t, once, s.Selection())
}

func TestSelection_EndDragWithoutSession(t *testing.T) {
	var s Selection
	s.EndDrag()
	assert.Empty(t, s.Selection())
}

func TestSelection_Reset(t *testing.T) {
	var s Selection
	s.BeginDrag(At(0, 0))
	s.ExtendDrag(At(2, 2))
	s.Reset()

	_, ok := s.ActiveCell()
	assert.False(t, ok)
	assert.Zero(t, s.Len())
	assert.False(t, s.Dragging())
}
