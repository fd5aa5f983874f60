package grid

import "fmt"

// Coord is the set of integer types usable as grid coordinates.
type Coord interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Store is a container with coordinate-indexed reads.
type Store[K Coord, T any] interface {
	At(x, y K) T
}

// MutableStore is a Store that can also hand out pointers to its cells.
type MutableStore[K Coord, T any] interface {
	Store[K, T]
	Ptr(x, y K) *T
}

// Mode records how a Handle holds its store.
type Mode uint8

const (
	// Owned means the handle is the only holder of the store.
	Owned Mode = iota
	// Borrowed means the store belongs to someone else and is read-only here.
	Borrowed
	// BorrowedMut means the store belongs to someone else and may be mutated here.
	BorrowedMut
)

func (m Mode) String() string {
	switch m {
	case Owned:
		return "owned"
	case Borrowed:
		return "borrowed"
	case BorrowedMut:
		return "borrowed-mut"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Handle forwards indexed access to a store regardless of how it is held.
// The zero Handle has no store and panics on use.
type Handle[K Coord, T any] struct {
	store Store[K, T]
	mut   MutableStore[K, T]
	mode  Mode
}

// Own wraps a store the handle takes ownership of. The handle is mutable when
// the store implements MutableStore.
func Own[K Coord, T any](s Store[K, T]) Handle[K, T] {
	h := Handle[K, T]{store: s, mode: Owned}
	if ms, ok := s.(MutableStore[K, T]); ok {
		h.mut = ms
	}
	return h
}

// Borrow wraps a store for read-only access.
func Borrow[K Coord, T any](s Store[K, T]) Handle[K, T] {
	return Handle[K, T]{store: s, mode: Borrowed}
}

// BorrowMut wraps a store for read-write access.
func BorrowMut[K Coord, T any](s MutableStore[K, T]) Handle[K, T] {
	return Handle[K, T]{store: s, mut: s, mode: BorrowedMut}
}

// Mode reports how the store is held.
func (h Handle[K, T]) Mode() Mode { return h.mode }

// Mutable reports whether Ptr is allowed.
func (h Handle[K, T]) Mutable() bool { return h.mut != nil }

// At reads the cell at absolute coordinates (x, y).
func (h Handle[K, T]) At(x, y K) T { return h.store.At(x, y) }

// Ptr returns a pointer to the cell at absolute coordinates (x, y).
func (h Handle[K, T]) Ptr(x, y K) *T {
	if h.mut == nil {
		panic(fmt.Errorf("%w: %s handle", ErrReadOnly, h.mode))
	}
	return h.mut.Ptr(x, y)
}
