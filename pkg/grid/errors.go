package grid

import "errors"

var (
	// ErrOutOfBounds indicates a coordinate outside a dense grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrInvalidRange indicates a range whose end is before its start, or one
	// that does not fit the grid it slices.
	ErrInvalidRange = errors.New("grid: invalid range")

	// ErrReadOnly indicates a write through a handle that cannot mutate its store.
	ErrReadOnly = errors.New("grid: view is read-only")

	// ErrDimensionMismatch indicates a copy between views of different size.
	ErrDimensionMismatch = errors.New("grid: view dimensions differ")
)
