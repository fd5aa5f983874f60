package app

import (
	"fmt"
	"io"

	"infigrid/internal/core"
	"infigrid/internal/monitoring"
	"infigrid/internal/render"
)

// RunHeadless steps sim frames times, printing the visible window as ASCII
// after each step. pace, when non-nil, is waited on before every step.
func RunHeadless(w io.Writer, sim core.Sim, frames int, pace *core.FixedStep) error {
	for i := 0; i < frames; i++ {
		if pace != nil {
			pace.Wait()
		}
		sim.Step()
		if _, err := fmt.Fprintf(w, "-- %s frame %d\n%s", sim.Name(), i+1, render.ASCII(sim.Frame(), render.DefaultGlyphs)); err != nil {
			return fmt.Errorf("write frame %d: %w", i+1, err)
		}
	}
	if p, ok := sim.(core.StatsProvider); ok {
		s := p.Stats()
		monitoring.Logf("%s: generation %d, %d chunks, %.1f%% cache hits", sim.Name(), s.Generation, s.Chunks, 100*s.HitRatio())
	}
	return nil
}
