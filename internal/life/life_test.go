package life

import (
	"testing"

	"github.com/aphilas/game-of-life/internal/core"
)

func mustGrid(t testing.TB, w, h int) *core.Grid {
	t.Helper()
	g, err := core.NewGrid(w, h)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestStepIsPure(t *testing.T) {
	g := mustGrid(t, 10, 10)
	g.Seed(core.NewRNG(3))
	before := g.Clone()

	first := Step(g)
	second := Step(g)

	if !g.Equal(before) {
		t.Fatalf("input grid was mutated by Step")
	}
	if !first.Equal(second) {
		t.Fatalf("two steps from the same grid produced different results")
	}
	if first == g {
		t.Fatalf("Step returned its input instead of a fresh grid")
	}
}

func TestStepPreservesDimensions(t *testing.T) {
	g := mustGrid(t, 7, 13)
	g.Seed(core.NewRNG(11))
	next := Step(g)
	if next.W != g.W || next.H != g.H {
		t.Fatalf("dimensions changed: %dx%d -> %dx%d", g.W, g.H, next.W, next.H)
	}
}

func TestBirthByReproduction(t *testing.T) {
	g := mustGrid(t, 3, 3)
	g.Set(0, 0, true)
	g.Set(1, 0, true)
	g.Set(2, 0, true)

	next := Step(g)
	if !next.Get(1, 1) {
		t.Fatalf("dead center with 3 live neighbors must be born")
	}
}

func TestDeadGridStaysDead(t *testing.T) {
	g := mustGrid(t, 9, 9)
	for i := 0; i < 5; i++ {
		g = Step(g)
	}
	if g.Population() != 0 {
		t.Fatalf("dead grid produced %d live cells", g.Population())
	}
}

func TestIsolationDeath(t *testing.T) {
	g := mustGrid(t, 5, 5)
	g.Set(2, 2, true)

	next := Step(g)
	if next.Population() != 0 {
		t.Fatalf("isolated cell must die, got %d live cells", next.Population())
	}
}

func TestOverpopulationDeath(t *testing.T) {
	g := mustGrid(t, 5, 5)
	g.Set(2, 2, true)
	g.Set(1, 1, true)
	g.Set(1, 3, true)
	g.Set(3, 1, true)
	g.Set(3, 3, true)

	next := Step(g)
	if next.Get(2, 2) {
		t.Fatalf("live cell with 4 live neighbors must die")
	}
}

func TestBlockStillLife(t *testing.T) {
	g := mustGrid(t, 6, 6)
	g.Set(2, 2, true)
	g.Set(3, 2, true)
	g.Set(2, 3, true)
	g.Set(3, 3, true)
	original := g.Clone()

	for i := 0; i < 4; i++ {
		g = Step(g)
	}
	if !g.Equal(original) {
		t.Fatalf("2x2 block must be stable across steps")
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := mustGrid(t, 5, 5)
	g.Set(2, 1, true)
	g.Set(2, 2, true)
	g.Set(2, 3, true)

	g = Step(g)
	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := g.Get(x, y)
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}

	g = Step(g)
	expects = map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := g.Get(x, y)
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
}

func TestGliderCrossesEdges(t *testing.T) {
	g := mustGrid(t, 8, 8)
	// glider pointed toward the bottom-right corner
	g.Set(1, 0, true)
	g.Set(2, 1, true)
	g.Set(0, 2, true)
	g.Set(1, 2, true)
	g.Set(2, 2, true)

	// a glider repeats its shape every 4 steps, displaced by (1, 1); on a
	// torus 32 steps bring it back to the starting cells
	cur := g.Clone()
	for i := 0; i < 32; i++ {
		cur = Step(cur)
	}
	if !cur.Equal(g) {
		t.Fatalf("glider did not return to its origin after wrapping the torus")
	}
}

func BenchmarkStep(b *testing.B) {
	g := mustGrid(b, 256, 256)
	g.Seed(core.NewRNG(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g = Step(g)
	}
}
