package ui

import "infigrid/pkg/grid"

// ChunkLines returns the window-local offsets of chunk boundaries inside a
// window of n cells starting at world coordinate origin.
func ChunkLines(origin int32, n int) []int {
	var out []int
	first := int((grid.ChunkSide - int64(origin)&(grid.ChunkSide-1)) & (grid.ChunkSide - 1))
	for i := first; i < n; i += grid.ChunkSide {
		out = append(out, i)
	}
	return out
}
