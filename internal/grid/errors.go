package grid

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned by Model.ValueAt for a coordinate outside the
// rendered range. It is a contract violation by the caller, not a
// recoverable condition.
var ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

// OutOfBoundsError carries the offending coordinate and the bounds it was
// checked against. It matches ErrOutOfBounds with errors.Is.
type OutOfBoundsError struct {
	At     Coordinate
	Bounds Bounds
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("grid: coordinate %s outside %dx%d", e.At, e.Bounds.Rows, e.Bounds.Cols)
}

func (e *OutOfBoundsError) Unwrap() error {
	return ErrOutOfBounds
}
