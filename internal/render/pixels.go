package render

import (
	"image/color"

	"infigrid/pkg/grid"
)

// fillBinaryRGBA converts binary cells (zero or not) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells grid.Source[uint8], on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	i := 0
	for c := range cells.All() {
		base := i * 4
		i++
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black. Values
// past the end of the palette use its last colour.
func fillPaletteRGBA(buf []byte, cells grid.Source[uint8], palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*cells.Width()*cells.Height()])
		return
	}

	last := len(palette) - 1
	i := 0
	for c := range cells.All() {
		idx := min(int(c), last)
		base := i * 4
		i++
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// FillRGBA writes one RGBA pixel per cell of cells into buf, which must hold
// at least 4*Width*Height bytes. A non-nil palette takes precedence over the
// on/off colours.
func FillRGBA(buf []byte, cells grid.Source[uint8], palette []color.RGBA, on, off color.Color) bool {
	if len(buf) < 4*cells.Width()*cells.Height() {
		return false
	}
	if palette != nil {
		fillPaletteRGBA(buf, cells, palette)
		return true
	}
	fillBinaryRGBA(buf, cells, on, off)
	return true
}
