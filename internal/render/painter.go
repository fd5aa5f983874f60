//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"infigrid/pkg/grid"
)

// GridPainter uploads a window of cells into a single RGBA image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a window of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads cells into the painter image and draws it scaled onto dst.
// Windows of the wrong size are ignored.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells grid.Source[uint8], palette []color.RGBA, on, off color.Color, scale int) {
	if cells.Width() != gp.w || cells.Height() != gp.h {
		return
	}
	if !FillRGBA(gp.buf, cells, palette, on, off) {
		return
	}
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
