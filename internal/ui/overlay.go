//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"infigrid/internal/core"
)

// Overlay draws chunk boundaries over sims backed by an unbounded grid.
type Overlay struct {
	sim        core.Sim
	scale      int
	showChunks bool
	pixel      *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the chunk grid with the 1 key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showChunks = !o.showChunks
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showChunks {
		return
	}
	p, ok := o.sim.(core.Panner)
	if !ok {
		return
	}
	scale := max(o.scale, 1)
	size := o.sim.Size()
	ox, oy := p.Origin()
	col := color.RGBA{R: 90, G: 130, B: 170, A: 140}
	for _, x := range ChunkLines(ox, size.W) {
		o.fillRect(screen, float64(x*scale), 0, 1, float64(size.H*scale), col)
	}
	for _, y := range ChunkLines(oy, size.H) {
		o.fillRect(screen, 0, float64(y*scale), float64(size.W*scale), 1, col)
	}
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
