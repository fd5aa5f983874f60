package briansbrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"infigrid/internal/core"
	"infigrid/pkg/grid"
)

func TestStateCycle(t *testing.T) {
	b := New(6, 6)
	// Two firing cells give their shared dead neighbours exactly two firing
	// neighbours each.
	b.cur.Set(2, 2, stateOn)
	b.cur.Set(3, 2, stateOn)

	b.Step()
	assert.Equal(t, uint8(stateDying), b.cur.At(2, 2))
	assert.Equal(t, uint8(stateDying), b.cur.At(3, 2))
	for _, p := range [][2]int{{2, 1}, {3, 1}, {2, 3}, {3, 3}} {
		assert.Equal(t, uint8(stateOn), b.cur.At(p[0], p[1]), "cell %v", p)
	}
	assert.Equal(t, uint8(stateDead), b.cur.At(1, 2), "one firing neighbour is not enough")

	b.Step()
	assert.Equal(t, uint8(stateDead), b.cur.At(2, 2))
}

func TestWrapsAroundEdges(t *testing.T) {
	b := New(5, 5)
	b.cur.Set(0, 0, stateOn)
	b.cur.Set(4, 0, stateOn)
	b.Step()
	assert.Equal(t, uint8(stateOn), b.cur.At(4, 1))
	assert.Equal(t, uint8(stateOn), b.cur.At(0, 4))
}

func TestResetAndFrame(t *testing.T) {
	b := New(16, 8)
	b.Reset(9)
	frame := b.Frame()
	require.Equal(t, 16, frame.Width())
	require.Equal(t, 8, frame.Height())
	assert.Equal(t, core.Size{W: 16, H: 8}, b.Size())

	other := New(16, 8)
	other.Reset(9)
	assert.True(t, grid.Equal(frame, other.Frame()))
	assert.Len(t, b.Palette(), 3)
}

func TestRegistered(t *testing.T) {
	f, ok := core.Sims()["briansbrain"]
	require.True(t, ok)
	sim := f(map[string]string{"w": "12", "h": "7"})
	assert.Equal(t, core.Size{W: 12, H: 7}, sim.Size())
}
