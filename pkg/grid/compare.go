package grid

import (
	"encoding/binary"
	"iter"

	"github.com/cespare/xxhash/v2"
)

// Integer is the set of element types Hash can digest directly.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Equal reports whether a and b have the same dimensions and the same values
// in row-major order. Where the windows sit, and what they are windows of,
// does not matter.
func Equal[T comparable](a, b Source[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b Source[T], eq func(T, T) bool) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false
	}
	next, stop := iter.Pull(b.All())
	defer stop()
	for x := range a.All() {
		y, ok := next()
		if !ok || !eq(x, y) {
			return false
		}
	}
	return true
}

// Hash digests the values of s in row-major order. Sources that are Equal
// hash the same.
func Hash[T Integer](s Source[T]) uint64 {
	return HashFunc(s, func(v T) uint64 { return uint64(v) })
}

// HashFunc digests per-element hashes produced by elem, in row-major order.
// Only content contributes, never the position of a window.
func HashFunc[T any](s Source[T], elem func(T) uint64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for v := range s.All() {
		binary.LittleEndian.PutUint64(buf[:], elem(v))
		d.Write(buf[:])
	}
	return d.Sum64()
}
