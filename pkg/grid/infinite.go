package grid

import (
	"iter"
	"math"
)

const (
	// ChunkShift is log2 of ChunkSide.
	ChunkShift = 6
	// ChunkSide is the width and height of one chunk in cells.
	ChunkSide = 1 << ChunkShift

	chunkMask  = ChunkSide - 1
	chunkCells = ChunkSide * ChunkSide
)

// ChunkID is the position of a chunk in chunk space.
type ChunkID struct {
	X, Y int32
}

type chunk[T any] [chunkCells]T

// Split breaks world coordinates into a chunk-local offset in [0, ChunkSide)
// and the id of the chunk holding them. Chunk ids round toward negative
// infinity, so (-1, -1) lands at offset (63, 63) of chunk (-1, -1).
func Split(x, y int32) (lx, ly int32, id ChunkID) {
	return x & chunkMask, y & chunkMask, ChunkID{X: x >> ChunkShift, Y: y >> ChunkShift}
}

// Origin returns the world coordinates of the chunk's (0, 0) cell.
func (id ChunkID) Origin() (x, y int32) {
	return id.X << ChunkShift, id.Y << ChunkShift
}

func chunkOffset(lx, ly int32) int {
	if debugChecks && (lx < 0 || lx >= ChunkSide || ly < 0 || ly >= ChunkSide) {
		panic(ErrOutOfBounds)
	}
	return int(lx + ly*ChunkSide)
}

// InfiniteGrid is an unbounded sparse grid addressed by signed coordinates.
// Storage is allocated one chunk at a time on first write and never freed.
// Cells that were never written read as the grid's default value.
//
// Reads reorganize the chunk cache, so an InfiniteGrid must not be shared
// between goroutines without external locking, even for reading.
type InfiniteGrid[T any] struct {
	chunks *ChunkStore[ChunkID, chunk[T]]
	def    T
}

// NewInfinite returns an empty grid whose default is T's zero value.
func NewInfinite[T any]() *InfiniteGrid[T] {
	var zero T
	return NewInfiniteWithDefault(zero)
}

// NewInfiniteWithDefault returns an empty grid reading def for unwritten cells.
func NewInfiniteWithDefault[T any](def T) *InfiniteGrid[T] {
	return &InfiniteGrid[T]{chunks: NewChunkStore[ChunkID, chunk[T]](), def: def}
}

// Default returns the value read from cells that were never written.
func (g *InfiniteGrid[T]) Default() T { return g.def }

// At returns the value at (x, y).
func (g *InfiniteGrid[T]) At(x, y int32) T {
	lx, ly, id := Split(x, y)
	c := g.chunks.Lookup(id)
	if c == nil {
		return g.def
	}
	return c[chunkOffset(lx, ly)]
}

// Ptr returns a pointer to the cell at (x, y), allocating its chunk when
// needed. The pointer stays valid for the lifetime of the grid.
func (g *InfiniteGrid[T]) Ptr(x, y int32) *T {
	lx, ly, id := Split(x, y)
	c := g.chunks.GetOrCreate(id, g.newChunk)
	return &c[chunkOffset(lx, ly)]
}

// Set stores v at (x, y).
func (g *InfiniteGrid[T]) Set(x, y int32, v T) { *g.Ptr(x, y) = v }

func (g *InfiniteGrid[T]) newChunk() *chunk[T] {
	c := new(chunk[T])
	for i := range c {
		c[i] = g.def
	}
	return c
}

// ChunkCount returns the number of allocated chunks.
func (g *InfiniteGrid[T]) ChunkCount() int { return g.chunks.Len() }

// Chunks yields the ids of all allocated chunks in no particular order.
func (g *InfiniteGrid[T]) Chunks() iter.Seq[ChunkID] { return g.chunks.Keys() }

// Stats reports chunk cache usage.
func (g *InfiniteGrid[T]) Stats() CacheStats { return g.chunks.Stats() }

// Extent returns the world-space rectangle covering every allocated chunk.
// ok is false when nothing has been written yet. The exclusive end is clamped
// to math.MaxInt32 for chunks touching the top of the coordinate space.
func (g *InfiniteGrid[T]) Extent() (x, y Range[int32], ok bool) {
	var minX, minY, maxX, maxY int32
	for id := range g.chunks.Keys() {
		if !ok {
			minX, maxX, minY, maxY = id.X, id.X, id.Y, id.Y
			ok = true
			continue
		}
		minX, maxX = min(minX, id.X), max(maxX, id.X)
		minY, maxY = min(minY, id.Y), max(maxY, id.Y)
	}
	if !ok {
		return Range[int32]{}, Range[int32]{}, false
	}
	return chunkSpan(minX, maxX), chunkSpan(minY, maxY), true
}

func chunkSpan(lo, hi int32) Range[int32] {
	end := (int64(hi) + 1) << ChunkShift
	if end > math.MaxInt32 {
		end = math.MaxInt32
	}
	return Range[int32]{Start: lo << ChunkShift, End: int32(end)}
}

// Slice returns a read-only view of the window x × y.
func (g *InfiniteGrid[T]) Slice(x, y Range[int32]) View[int32, T] {
	return NewView(Borrow[int32, T](g), x, y)
}

// SliceMut returns a writable view of the window x × y.
func (g *InfiniteGrid[T]) SliceMut(x, y Range[int32]) View[int32, T] {
	return NewView(BorrowMut[int32, T](g), x, y)
}
