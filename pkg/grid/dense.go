package grid

import "fmt"

// Grid is a fixed-size two-dimensional grid stored in row-major order.
type Grid[T any] struct {
	w, h int
	data []T
}

// New returns a w×h grid with every cell set to fill.
func New[T any](w, h int, fill T) *Grid[T] {
	g := NewDefault[T](w, h)
	for i := range g.data {
		g.data[i] = fill
	}
	return g
}

// NewDefault returns a w×h grid of zero values. Negative dimensions are
// treated as zero.
func NewDefault[T any](w, h int) *Grid[T] {
	w, h = max(w, 0), max(h, 0)
	return &Grid[T]{w: w, h: h, data: make([]T, w*h)}
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.h }

// Dims returns width and height.
func (g *Grid[T]) Dims() (int, int) { return g.w, g.h }

// XRange returns the full column range [0, width).
func (g *Grid[T]) XRange() Range[int] { return Span(0, g.w) }

// YRange returns the full row range [0, height).
func (g *Grid[T]) YRange() Range[int] { return Span(0, g.h) }

func (g *Grid[T]) offset(x, y int) int {
	if debugChecks && (x < 0 || x >= g.w || y < 0 || y >= g.h) {
		panic(fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds, x, y, g.w, g.h))
	}
	return x + y*g.w
}

// At returns the value at (x, y).
func (g *Grid[T]) At(x, y int) T { return g.data[g.offset(x, y)] }

// Ptr returns a pointer to the cell at (x, y).
func (g *Grid[T]) Ptr(x, y int) *T { return &g.data[g.offset(x, y)] }

// Set stores v at (x, y).
func (g *Grid[T]) Set(x, y int, v T) { g.data[g.offset(x, y)] = v }

func (g *Grid[T]) checkWindow(x, y Range[int]) {
	if debugChecks && (x.End > g.w || y.End > g.h || x.Start < 0 || y.Start < 0) {
		panic(fmt.Errorf("%w: window %v x %v in %dx%d", ErrInvalidRange, x, y, g.w, g.h))
	}
}

// Slice returns a read-only view of the window x × y.
func (g *Grid[T]) Slice(x, y Range[int]) View[int, T] {
	g.checkWindow(x, y)
	return NewView(Borrow[int, T](g), x, y)
}

// SliceMut returns a writable view of the window x × y.
func (g *Grid[T]) SliceMut(x, y Range[int]) View[int, T] {
	g.checkWindow(x, y)
	return NewView(BorrowMut[int, T](g), x, y)
}

// AsView returns a read-only view of the whole grid.
func (g *Grid[T]) AsView() View[int, T] {
	return NewView(Borrow[int, T](g), g.XRange(), g.YRange())
}

// AsViewMut returns a writable view of the whole grid.
func (g *Grid[T]) AsViewMut() View[int, T] {
	return NewView(BorrowMut[int, T](g), g.XRange(), g.YRange())
}

// IntoView returns a view of the whole grid that takes ownership of it. The
// caller should not keep using g directly afterwards.
func (g *Grid[T]) IntoView() View[int, T] {
	return NewView(Own[int, T](g), g.XRange(), g.YRange())
}
