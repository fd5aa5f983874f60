package app

import (
	"fmt"
	"sort"

	"infigrid/internal/core"
	"infigrid/internal/monitoring"
)

// NewSim looks up the configured simulation, builds it and resets it with
// the configured seed.
func NewSim(cfg *Config) (core.Sim, error) {
	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		names := make([]string, 0, len(core.Sims()))
		for name := range core.Sims() {
			names = append(names, name)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("unknown sim %q (available: %v)", cfg.Sim, names)
	}
	sim := factory(cfg.SimOptions())
	sim.Reset(cfg.Seed)
	size := sim.Size()
	monitoring.Logf("%s: %dx%d window, seed %d", sim.Name(), size.W, size.H, cfg.Seed)
	return sim, nil
}
