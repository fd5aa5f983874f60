package elementary

import (
	"strconv"

	"infigrid/internal/core"
	prng "infigrid/pkg/core"
	"infigrid/pkg/grid"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width  int
	Height int
	Rule   uint8
	// Random seeds the first row from the RNG instead of a single centre cell.
	Random bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Rule: 110}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	if v, ok := cfg["random"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Random = parsed
		}
	}
	return c
}

// Elementary implements a one-dimensional Wolfram code projected vertically:
// row 0 is the newest generation and older ones scroll downwards.
type Elementary struct {
	cfg  Config
	hist *grid.Grid[uint8]
}

// New creates an automaton with the given dimensions and rule.
func New(w, h int, rule uint8) *Elementary {
	return NewWithConfig(Config{Width: w, Height: h, Rule: rule})
}

// NewWithConfig creates an automaton for c.
func NewWithConfig(c Config) *Elementary {
	return &Elementary{cfg: c, hist: grid.NewDefault[uint8](c.Width, c.Height)}
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return "elementary" }

// Size returns the simulation grid dimensions.
func (e *Elementary) Size() core.Size {
	w, h := e.hist.Dims()
	return core.Size{W: w, H: h}
}

// Frame exposes the history buffer.
func (e *Elementary) Frame() grid.Source[uint8] { return e.hist.AsView() }

// Reset clears the history and seeds the top row.
func (e *Elementary) Reset(seed int64) {
	core.Clear(e.hist.AsViewMut())
	top := e.hist.SliceMut(e.hist.XRange(), grid.Span(0, min(1, e.hist.Height())))
	if e.cfg.Random {
		prng.FillBinary(prng.NewRNG(seed).Source(), top)
		return
	}
	if w := e.hist.Width(); w > 0 && top.Height() > 0 {
		top.Set(w/2, 0, 1)
	}
}

// Step computes the next generation and scrolls history downwards.
func (e *Elementary) Step() {
	w, h := e.hist.Dims()
	if w == 0 || h == 0 {
		return
	}
	prev := e.hist.Slice(e.hist.XRange(), grid.Span(0, 1)).Materialize()
	if h > 1 {
		older := e.hist.Slice(e.hist.XRange(), grid.Span(0, h-1)).Materialize()
		e.hist.SliceMut(e.hist.XRange(), grid.Span(1, h)).CopyFrom(older.AsView())
	}
	for x := 0; x < w; x++ {
		left := prev.At((x-1+w)%w, 0)
		center := prev.At(x, 0)
		right := prev.At((x+1)%w, 0)
		idx := (left << 2) | (center << 1) | right
		e.hist.Set(x, 0, (e.cfg.Rule>>idx)&1)
	}
}

func init() {
	core.Register("elementary", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
