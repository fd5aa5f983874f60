package core

import "infigrid/pkg/grid"

// Wrap applies toroidal wrapping to (x, y) for a w×h board.
func Wrap(x, y, w, h int) (int, int) {
	x = (x%w + w) % w
	y = (y%h + h) % h
	return x, y
}

// CountNeighbors returns the number of the eight Moore neighbours of (x, y)
// on the torus g whose value equals state.
func CountNeighbors(g *grid.Grid[uint8], x, y int, state uint8) int {
	w, h := g.Dims()
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := Wrap(x+dx, y+dy, w, h)
			if g.At(nx, ny) == state {
				n++
			}
		}
	}
	return n
}

// Clear resets every cell of v to zero.
func Clear[K grid.Coord](v grid.View[K, uint8]) {
	for p := range v.Ptrs() {
		*p = 0
	}
}
