package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"infigrid/pkg/grid"
)

func TestFillRGBABinary(t *testing.T) {
	g := grid.NewInfinite[uint8]()
	g.Set(-1, 0, 1)
	cells := g.Slice(grid.Span[int32](-1, 1), grid.Span[int32](0, 1))

	buf := make([]byte, 8)
	ok := FillRGBA(buf, cells, nil, color.White, color.Black)
	assert.True(t, ok)
	assert.Equal(t, []byte{255, 255, 255, 255, 0, 0, 0, 255}, buf)
}

func TestFillRGBAPalette(t *testing.T) {
	g := grid.NewDefault[uint8](3, 1)
	g.Set(1, 0, 1)
	g.Set(2, 0, 9)
	pal := []color.RGBA{{R: 1, A: 255}, {G: 2, A: 255}}

	buf := make([]byte, 12)
	assert.True(t, FillRGBA(buf, g.AsView(), pal, nil, nil))
	assert.Equal(t, []byte{1, 0, 0, 255, 0, 2, 0, 255, 0, 2, 0, 255}, buf)

	for i := range buf {
		buf[i] = 7
	}
	assert.True(t, FillRGBA(buf, g.AsView(), []color.RGBA{}, nil, nil))
	assert.Equal(t, make([]byte, 12), buf)
}

func TestFillRGBARejectsShortBuffer(t *testing.T) {
	g := grid.NewDefault[uint8](2, 2)
	assert.False(t, FillRGBA(make([]byte, 15), g.AsView(), nil, color.White, color.Black))
}

func TestASCII(t *testing.T) {
	g := grid.NewDefault[uint8](3, 2)
	g.Set(0, 0, 1)
	g.Set(2, 1, 2)
	g.Set(1, 1, 7)
	assert.Equal(t, "#..\n.++\n", ASCII(g.AsView(), ""))
	assert.Equal(t, "X__\n_XX\n", ASCII(g.AsView(), "_X"))
}
