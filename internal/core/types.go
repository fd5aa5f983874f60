package core

import (
	"image/color"

	"infigrid/pkg/grid"
)

// Size describes the dimensions of the visible part of a simulation.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	// Frame returns the visible window of cells, Size().W by Size().H,
	// in row-major order.
	Frame() grid.Source[uint8]
}

// Panner is implemented by sims whose visible window can move over an
// unbounded world.
type Panner interface {
	Pan(dx, dy int)
	Origin() (x, y int32)
}

// PaletteProvider is implemented by sims with more than two cell states.
type PaletteProvider interface {
	Palette() []color.RGBA
}

// StatsProvider exposes storage statistics for display.
type StatsProvider interface {
	Stats() Stats
}

// Stats summarises the storage behind a simulation.
type Stats struct {
	Generation int
	Chunks     int
	Cache      grid.CacheStats
}

// HitRatio returns the fraction of chunk accesses served by the cache slot.
func (s Stats) HitRatio() float64 {
	total := s.Cache.Hits + s.Cache.Swaps
	if total == 0 {
		return 0
	}
	return float64(s.Cache.Hits) / float64(total)
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
