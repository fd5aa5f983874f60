package render

import (
	"strings"

	"infigrid/pkg/grid"
)

// DefaultGlyphs renders dead cells as '.', live cells as '#' and a third
// state as '+'.
const DefaultGlyphs = ".#+"

// ASCII renders cells one row per line, mapping each value to the glyph at
// that index. Values past the end of glyphs use the last glyph.
func ASCII(cells grid.Source[uint8], glyphs string) string {
	if glyphs == "" {
		glyphs = DefaultGlyphs
	}
	runes := []rune(glyphs)
	w := cells.Width()
	var b strings.Builder
	b.Grow((w + 1) * cells.Height())
	i := 0
	for c := range cells.All() {
		b.WriteRune(runes[min(int(c), len(runes)-1)])
		i++
		if i%w == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
