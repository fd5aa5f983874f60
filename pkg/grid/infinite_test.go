package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	cases := []struct {
		x, y   int32
		lx, ly int32
		id     ChunkID
	}{
		{0, 0, 0, 0, ChunkID{0, 0}},
		{63, 64, 63, 0, ChunkID{0, 1}},
		{-1, -1, 63, 63, ChunkID{-1, -1}},
		{-64, -65, 0, 63, ChunkID{-1, -2}},
		{130, -130, 2, 62, ChunkID{2, -3}},
		{math.MaxInt32, math.MinInt32, 63, 0, ChunkID{math.MaxInt32 >> 6, math.MinInt32 >> 6}},
	}
	for _, c := range cases {
		lx, ly, id := Split(c.x, c.y)
		assert.Equal(t, c.lx, lx, "lx for (%d,%d)", c.x, c.y)
		assert.Equal(t, c.ly, ly, "ly for (%d,%d)", c.x, c.y)
		assert.Equal(t, c.id, id, "id for (%d,%d)", c.x, c.y)

		ox, oy := id.Origin()
		assert.Equal(t, c.x, ox+lx)
		assert.Equal(t, c.y, oy+ly)
	}
}

func TestInfiniteUnwrittenReadsDefault(t *testing.T) {
	g := NewInfinite[int]()
	for _, p := range [][2]int32{{0, 0}, {-1, -1}, {1 << 20, -(1 << 20)}, {math.MinInt32, math.MaxInt32}} {
		assert.Zero(t, g.At(p[0], p[1]))
	}
	assert.Zero(t, g.ChunkCount())

	d := NewInfiniteWithDefault(-5)
	assert.Equal(t, -5, d.At(12, 12))
	assert.Equal(t, -5, d.Default())
}

func TestInfiniteWriteThenRead(t *testing.T) {
	g := NewInfinite[int]()
	g.Set(130, 130, 7)
	assert.Equal(t, 7, g.At(130, 130))
	assert.Equal(t, 0, g.At(129, 130), "same chunk, untouched cell")
	assert.Equal(t, 1, g.ChunkCount())

	g.Set(-1, -1, 9)
	assert.Equal(t, 9, g.At(-1, -1))
	assert.Equal(t, 0, g.At(0, 0))
	assert.Equal(t, 0, g.At(-1, 0))
	assert.Equal(t, 2, g.ChunkCount())
	assert.Equal(t, 7, g.At(130, 130))

	var ids []ChunkID
	for id := range g.Chunks() {
		ids = append(ids, id)
	}
	assert.ElementsMatch(t, []ChunkID{{2, 2}, {-1, -1}}, ids)
}

func TestInfiniteNewChunkFilledWithDefault(t *testing.T) {
	g := NewInfiniteWithDefault[byte]('.')
	g.Set(0, 0, '#')
	for x := int32(0); x < ChunkSide; x++ {
		for y := int32(0); y < ChunkSide; y++ {
			if x == 0 && y == 0 {
				continue
			}
			require.Equal(t, byte('.'), g.At(x, y))
		}
	}
}

func TestInfinitePtrStable(t *testing.T) {
	g := NewInfinite[int]()
	p := g.Ptr(-200, 5)
	for i := int32(0); i < 20; i++ {
		g.Set(i*ChunkSide, i*ChunkSide, int(i))
	}
	*p = 11
	assert.Equal(t, 11, g.At(-200, 5))
}

func TestInfiniteExtent(t *testing.T) {
	g := NewInfinite[int]()
	_, _, ok := g.Extent()
	assert.False(t, ok)

	g.Set(-1, 10, 1)
	g.Set(130, -70, 1)
	x, y, ok := g.Extent()
	require.True(t, ok)
	assert.Equal(t, Span[int32](-64, 192), x)
	assert.Equal(t, Span[int32](-128, 64), y)

	g.Set(math.MaxInt32, 0, 1)
	x, _, _ = g.Extent()
	assert.Equal(t, int32(math.MaxInt32), x.End)
}

func TestInfiniteSlice(t *testing.T) {
	g := NewInfinite[int]()
	g.Set(-2, -2, 1)
	g.Set(-1, -2, 2)
	g.Set(-2, -1, 3)
	g.Set(-1, -1, 4)

	v := g.Slice(Span[int32](-2, 0), Span[int32](-2, 0))
	assert.Equal(t, 4, v.At(1, 1))
	assert.Equal(t, []int{1, 2, 3, 4}, collect(v.All()))
	assert.False(t, v.Mutable())

	m := g.SliceMut(Span[int32](-1, 1), Span[int32](-1, 1))
	m.Set(1, 1, 8)
	assert.Equal(t, 8, g.At(0, 0))
	assert.Equal(t, []int{4, 0, 0, 8}, collect(m.All()))
}
