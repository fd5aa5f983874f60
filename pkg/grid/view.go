package grid

import (
	"fmt"
	"iter"
	"strings"
)

// Range is the half-open interval [Start, End).
type Range[K Coord] struct {
	Start, End K
}

// Span returns the range [start, end).
func Span[K Coord](start, end K) Range[K] {
	return Range[K]{Start: start, End: end}
}

// Len returns End - Start, or 0 for an inverted range.
func (r Range[K]) Len() int {
	n := int64(r.End) - int64(r.Start)
	if n < 0 {
		return 0
	}
	return int(n)
}

// Contains reports whether Start <= v < End.
func (r Range[K]) Contains(v K) bool { return r.Start <= v && v < r.End }

func (r Range[K]) String() string { return fmt.Sprintf("[%d, %d)", r.Start, r.End) }

// Point is an absolute grid coordinate.
type Point[K Coord] struct {
	X, Y K
}

// Source is anything that yields a width×height block of values in
// row-major order. Every View is a Source.
type Source[T any] interface {
	Width() int
	Height() int
	All() iter.Seq[T]
}

// View is a rectangular window onto a store. It holds no cell data of its
// own: local coordinates are translated by the window origin and forwarded to
// the store. Views are cheap values and are meant to be created per use.
//
// Local coordinates outside the window are not checked here. A dense grid
// catches them in debug builds; an infinite grid simply answers them.
type View[K Coord, T any] struct {
	h    Handle[K, T]
	x, y Range[K]
}

// NewView returns a view of the window x × y over the store behind h.
func NewView[K Coord, T any](h Handle[K, T], x, y Range[K]) View[K, T] {
	if debugChecks && (x.End < x.Start || y.End < y.Start) {
		panic(fmt.Errorf("%w: %v x %v", ErrInvalidRange, x, y))
	}
	return View[K, T]{h: h, x: x, y: y}
}

// XRange returns the absolute column range of the window.
func (v View[K, T]) XRange() Range[K] { return v.x }

// YRange returns the absolute row range of the window.
func (v View[K, T]) YRange() Range[K] { return v.y }

// Width returns the number of columns in the window.
func (v View[K, T]) Width() int { return v.x.Len() }

// Height returns the number of rows in the window.
func (v View[K, T]) Height() int { return v.y.Len() }

// Mode reports how the view holds its store.
func (v View[K, T]) Mode() Mode { return v.h.Mode() }

// Mutable reports whether the view can write to its store.
func (v View[K, T]) Mutable() bool { return v.h.Mutable() }

// At returns the value at local coordinates (x, y).
func (v View[K, T]) At(x, y K) T { return v.h.At(v.x.Start+x, v.y.Start+y) }

// Ptr returns a pointer to the cell at local coordinates (x, y). It panics
// with ErrReadOnly on a read-only view.
func (v View[K, T]) Ptr(x, y K) *T { return v.h.Ptr(v.x.Start+x, v.y.Start+y) }

// Set stores val at local coordinates (x, y).
func (v View[K, T]) Set(x, y K, val T) { *v.Ptr(x, y) = val }

// Sub returns the window x × y given in this view's local coordinates.
func (v View[K, T]) Sub(x, y Range[K]) View[K, T] {
	return NewView(v.h,
		Span(v.x.Start+x.Start, v.x.Start+x.End),
		Span(v.y.Start+y.Start, v.y.Start+y.End))
}

// All yields every value in the window, row by row.
func (v View[K, T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for y := v.y.Start; y < v.y.End; y++ {
			for x := v.x.Start; x < v.x.End; x++ {
				if !yield(v.h.At(x, y)) {
					return
				}
			}
		}
	}
}

// Cells yields every value in the window together with its absolute
// coordinates, in the same order as All.
func (v View[K, T]) Cells() iter.Seq2[Point[K], T] {
	return func(yield func(Point[K], T) bool) {
		for y := v.y.Start; y < v.y.End; y++ {
			for x := v.x.Start; x < v.x.End; x++ {
				if !yield(Point[K]{X: x, Y: y}, v.h.At(x, y)) {
					return
				}
			}
		}
	}
}

// Ptrs yields a pointer to every cell in the window, in the same order as
// All. Over an InfiniteGrid this allocates every chunk the window touches.
func (v View[K, T]) Ptrs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for y := v.y.Start; y < v.y.End; y++ {
			for x := v.x.Start; x < v.x.End; x++ {
				if !yield(v.h.Ptr(x, y)) {
					return
				}
			}
		}
	}
}

// Materialize copies the window into a new dense grid of the same size.
func (v View[K, T]) Materialize() *Grid[T] {
	g := NewDefault[T](v.Width(), v.Height())
	i := 0
	for val := range v.All() {
		g.data[i] = val
		i++
	}
	return g
}

// MaterializeInfinite copies the window into a new infinite grid with the
// given default, placing the window's top-left cell at (0, 0).
func (v View[K, T]) MaterializeInfinite(def T) *InfiniteGrid[T] {
	g := NewInfiniteWithDefault(def)
	for p, val := range v.Cells() {
		g.Set(int32(p.X-v.x.Start), int32(p.Y-v.y.Start), val)
	}
	return g
}

// CopyFrom overwrites the window with the values of src, matching cells in
// row-major order. src must have the same width and height and must not
// overlap the window in the same store; materialize it first if it does.
func (v View[K, T]) CopyFrom(src Source[T]) {
	if !v.h.Mutable() {
		panic(fmt.Errorf("%w: copy into %s view", ErrReadOnly, v.h.Mode()))
	}
	if src.Width() != v.Width() || src.Height() != v.Height() {
		panic(fmt.Errorf("%w: %dx%d into %dx%d", ErrDimensionMismatch,
			src.Width(), src.Height(), v.Width(), v.Height()))
	}
	next, stop := iter.Pull(src.All())
	defer stop()
	for p := range v.Ptrs() {
		val, _ := next()
		*p = val
	}
}

// String renders the window one row per line with comma-separated cells.
func (v View[K, T]) String() string {
	var b strings.Builder
	for y := v.y.Start; y < v.y.End; y++ {
		for x := v.x.Start; x < v.x.End; x++ {
			if x != v.x.Start {
				b.WriteString(", ")
			}
			fmt.Fprint(&b, v.h.At(x, y))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
