package core

import (
	"math/rand/v2"

	"infigrid/pkg/grid"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// FillBinary fills every cell of dst with 0 or 1.
func FillBinary[K grid.Coord](r *rand.Rand, dst grid.View[K, uint8]) {
	for p := range dst.Ptrs() {
		*p = uint8(r.IntN(2))
	}
}

// FillSparse sets each cell of dst to state with probability 1/n and to 0
// otherwise.
func FillSparse[K grid.Coord](r *rand.Rand, dst grid.View[K, uint8], n int, state uint8) {
	if n <= 0 {
		n = 1
	}
	for p := range dst.Ptrs() {
		*p = 0
		if r.IntN(n) == 0 {
			*p = state
		}
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
