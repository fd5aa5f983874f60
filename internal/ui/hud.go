//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"infigrid/internal/core"
)

const (
	panelPadding = 8
	lineHeight   = 16
)

// HUD renders a statistics panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	lines      []string
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the text lines from the simulation.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	var origin *[2]int32
	if p, ok := h.sim.(core.Panner); ok {
		x, y := p.Origin()
		origin = &[2]int32{x, y}
	}
	var stats *core.Stats
	if p, ok := h.sim.(core.StatsProvider); ok {
		s := p.Stats()
		stats = &s
	}
	h.lines = StatusLines(h.sim.Name(), origin, stats)
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	face := basicfont.Face7x13
	for i, line := range h.lines {
		text.Draw(h.panel, line, face, panelPadding, panelPadding+lineHeight*(i+1), color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
