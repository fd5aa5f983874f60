package briansbrain

import (
	"image/color"
	"strconv"

	"infigrid/internal/core"
	prng "infigrid/pkg/core"
	"infigrid/pkg/grid"
)

const (
	stateDead  = 0
	stateOn    = 1
	stateDying = 2
)

var palette = []color.RGBA{
	stateDead:  {A: 255},
	stateOn:    {R: 255, G: 255, B: 255, A: 255},
	stateDying: {R: 40, G: 90, B: 220, A: 255},
}

// Brain implements Brian's Brain cellular automaton on a torus.
type Brain struct {
	cur *grid.Grid[uint8]
	nxt *grid.Grid[uint8]
}

// New creates a Brain simulation with the provided dimensions.
func New(w, h int) *Brain {
	return &Brain{cur: grid.NewDefault[uint8](w, h), nxt: grid.NewDefault[uint8](w, h)}
}

// Name identifies the simulation.
func (b *Brain) Name() string { return "briansbrain" }

// Size returns the grid dimensions.
func (b *Brain) Size() core.Size {
	w, h := b.cur.Dims()
	return core.Size{W: w, H: h}
}

// Frame exposes the current state buffer.
func (b *Brain) Frame() grid.Source[uint8] { return b.cur.AsView() }

// Palette maps cell states to colours.
func (b *Brain) Palette() []color.RGBA { return palette }

// Reset randomizes cells into dead or firing states.
func (b *Brain) Reset(seed int64) {
	prng.FillSparse(prng.NewRNG(seed).Source(), b.cur.AsViewMut(), 8, stateOn)
}

// Step advances the automaton by one tick.
func (b *Brain) Step() {
	w, h := b.cur.Dims()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			switch b.cur.At(x, y) {
			case stateOn:
				b.nxt.Set(x, y, stateDying)
			case stateDying:
				b.nxt.Set(x, y, stateDead)
			default:
				if core.CountNeighbors(b.cur, x, y, stateOn) == 2 {
					b.nxt.Set(x, y, stateOn)
				} else {
					b.nxt.Set(x, y, stateDead)
				}
			}
		}
	}
	b.cur, b.nxt = b.nxt, b.cur
}

func init() {
	core.Register("briansbrain", func(cfg map[string]string) core.Sim {
		w, h := 256, 256
		if v, err := strconv.Atoi(cfg["w"]); err == nil && v > 0 {
			w = v
		}
		if v, err := strconv.Atoi(cfg["h"]); err == nil && v > 0 {
			h = v
		}
		return New(w, h)
	})
}
