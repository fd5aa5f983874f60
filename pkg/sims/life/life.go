package life

import (
	"math"

	"infigrid/internal/core"
	"infigrid/internal/monitoring"
	prng "infigrid/pkg/core"
	"infigrid/pkg/grid"
)

// Life implements Conway's Game of Life on an unbounded board. The visible
// window can be panned; cells outside it keep evolving.
type Life struct {
	w, h    int
	density int
	cur     *grid.InfiniteGrid[uint8]
	ox, oy  int32
	gen     int
	peak    int
}

// New returns a Life simulation whose window is w×h cells centred on the
// origin.
func New(w, h int) *Life {
	return NewWithConfig(Config{Width: w, Height: h, Density: DefaultConfig().Density})
}

// NewWithConfig returns a Life simulation for c.
func NewWithConfig(c Config) *Life {
	return &Life{
		w:       c.Width,
		h:       c.Height,
		density: c.Density,
		cur:     grid.NewInfinite[uint8](),
		ox:      -int32(c.Width / 2),
		oy:      -int32(c.Height / 2),
	}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the window dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

func (l *Life) window() (grid.Range[int32], grid.Range[int32]) {
	return grid.Span(l.ox, l.ox+int32(l.w)), grid.Span(l.oy, l.oy+int32(l.h))
}

// Frame returns the visible window.
func (l *Life) Frame() grid.Source[uint8] {
	x, y := l.window()
	return l.cur.Slice(x, y)
}

// Pan moves the visible window by (dx, dy) cells.
func (l *Life) Pan(dx, dy int) {
	l.ox += int32(dx)
	l.oy += int32(dy)
}

// Origin returns the world coordinates of the window's top-left cell.
func (l *Life) Origin() (int32, int32) { return l.ox, l.oy }

// Reset clears the board and seeds the visible window with a random soup.
func (l *Life) Reset(seed int64) {
	l.cur = grid.NewInfinite[uint8]()
	l.gen = 0
	l.peak = 0
	x, y := l.window()
	prng.FillSparse(prng.NewRNG(seed).Source(), l.cur.SliceMut(x, y), l.density, 1)
}

// Set marks the cell at world coordinates (x, y) alive or dead.
func (l *Life) Set(x, y int32, alive bool) {
	var v uint8
	if alive {
		v = 1
	}
	if !alive && l.cur.At(x, y) == 0 {
		return
	}
	l.cur.Set(x, y, v)
}

// Alive reports whether the cell at world coordinates (x, y) is alive.
func (l *Life) Alive(x, y int32) bool { return l.cur.At(x, y) == 1 }

// Population counts live cells anywhere on the board.
func (l *Life) Population() int {
	xr, yr, ok := l.cur.Extent()
	if !ok {
		return 0
	}
	n := 0
	for v := range l.cur.Slice(xr, yr).All() {
		n += int(v)
	}
	return n
}

// Step advances the simulation by one generation. Only the area covered by
// allocated chunks, plus a one-cell border, can hold live cells next.
func (l *Life) Step() {
	l.gen++
	xr, yr, ok := l.cur.Extent()
	if !ok {
		return
	}
	next := grid.NewInfinite[uint8]()
	for p, v := range l.cur.Slice(grow(xr), grow(yr)).Cells() {
		n := l.neighbors(p.X, p.Y)
		if (v == 1 && (n == 2 || n == 3)) || (v == 0 && n == 3) {
			next.Set(p.X, p.Y, 1)
		}
	}
	l.cur = next

	if chunks := next.ChunkCount(); chunks > l.peak {
		l.peak = chunks
		monitoring.Logf("life: generation %d spans %d chunks", l.gen, chunks)
	}
}

func (l *Life) neighbors(x, y int32) int {
	n := 0
	for dy := int32(-1); dy <= 1; dy++ {
		for dx := int32(-1); dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n += int(l.cur.At(x+dx, y+dy))
		}
	}
	return n
}

// Stats reports the generation and the chunk storage of the current board.
func (l *Life) Stats() core.Stats {
	return core.Stats{Generation: l.gen, Chunks: l.cur.ChunkCount(), Cache: l.cur.Stats()}
}

func grow(r grid.Range[int32]) grid.Range[int32] {
	if r.Start > math.MinInt32 {
		r.Start--
	}
	if r.End < math.MaxInt32 {
		r.End++
	}
	return r
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
