package life

import (
	"testing"

	"infigrid/internal/monitoring"
	"infigrid/pkg/grid"
)

func init() { monitoring.SetLogger(nil) }

func checkAlive(t *testing.T, l *Life, x0, y0, x1, y1 int32, expects map[[2]int32]bool, step string) {
	t.Helper()
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			alive := l.Alive(x, y)
			shouldBeAlive := expects[[2]int32{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("%s cell (%d,%d) alive=%v, expected %v", step, x, y, alive, shouldBeAlive)
			}
		}
	}
}

// The blinker straddles the chunk corner at the origin, so every generation
// reads and writes four chunks including negative ones.
func TestBlinkerOscillationAcrossChunks(t *testing.T) {
	life := New(5, 5)
	life.Set(-1, 0, true)
	life.Set(-1, -1, true)
	life.Set(-1, 1, true)

	life.Step()
	checkAlive(t, life, -4, -4, 4, 4, map[[2]int32]bool{
		{-2, 0}: true,
		{-1, 0}: true,
		{0, 0}:  true,
	}, "after first step")

	life.Step()
	checkAlive(t, life, -4, -4, 4, 4, map[[2]int32]bool{
		{-1, -1}: true,
		{-1, 0}:  true,
		{-1, 1}:  true,
	}, "after second step")
}

func TestGliderTravels(t *testing.T) {
	life := New(8, 8)
	for _, p := range [][2]int32{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
		life.Set(p[0]+62, p[1]+62, true)
	}
	start := grid.NewInfinite[uint8]()
	for y := int32(62); y < 65; y++ {
		for x := int32(62); x < 65; x++ {
			if life.Alive(x, y) {
				start.Set(x, y, 1)
			}
		}
	}

	for i := 0; i < 4; i++ {
		life.Step()
	}
	// After four generations a glider is the same shape shifted by (1, 1).
	if !grid.Equal[uint8](start.Slice(grid.Span[int32](62, 65), grid.Span[int32](62, 65)),
		life.cur.Slice(grid.Span[int32](63, 66), grid.Span[int32](63, 66))) {
		t.Fatalf("glider did not translate:\n%v", life.cur.Slice(grid.Span[int32](60, 68), grid.Span[int32](60, 68)))
	}
	if got := life.Population(); got != 5 {
		t.Fatalf("population = %d, expected 5", got)
	}
	if got := life.Stats().Generation; got != 4 {
		t.Fatalf("generation = %d, expected 4", got)
	}
}

func TestFrameFollowsPan(t *testing.T) {
	life := New(4, 4)
	ox, oy := life.Origin()
	if ox != -2 || oy != -2 {
		t.Fatalf("origin = (%d,%d), expected (-2,-2)", ox, oy)
	}
	life.Set(100, 100, true)
	life.Pan(100, 100)

	frame := life.Frame()
	if frame.Width() != 4 || frame.Height() != 4 {
		t.Fatalf("frame is %dx%d", frame.Width(), frame.Height())
	}
	i := 0
	for v := range frame.All() {
		want := uint8(0)
		if i == 2*4+2 {
			want = 1
		}
		if v != want {
			t.Fatalf("frame cell %d = %d, expected %d", i, v, want)
		}
		i++
	}
}

func TestResetDeterministic(t *testing.T) {
	a, b := New(32, 32), New(32, 32)
	a.Reset(42)
	b.Reset(42)
	if !grid.Equal(a.Frame(), b.Frame()) {
		t.Fatal("same seed produced different boards")
	}
	if a.Population() == 0 {
		t.Fatal("reset produced an empty board")
	}
	if grid.Hash(a.Frame()) != grid.Hash(b.Frame()) {
		t.Fatal("equal frames hashed differently")
	}
}

func TestEmptyBoardStaysEmpty(t *testing.T) {
	life := New(4, 4)
	life.Step()
	if life.Population() != 0 || life.Stats().Chunks != 0 {
		t.Fatal("empty board grew")
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "64", "h": "x", "density": "5"})
	if c.Width != 64 || c.Height != DefaultConfig().Height || c.Density != 5 {
		t.Fatalf("unexpected config %+v", c)
	}
}
