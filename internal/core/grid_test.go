package core

import "testing"

func TestWrapIndex(t *testing.T) {
	cases := []struct {
		i, size, want int
	}{
		{-1, 100, 99},
		{100, 100, 0},
		{0, 100, 0},
		{99, 100, 99},
		{-100, 100, 0},
		{-101, 100, 99},
		{250, 100, 50},
	}
	for _, c := range cases {
		if got := WrapIndex(c.i, c.size); got != c.want {
			t.Fatalf("WrapIndex(%d, %d) = %d, expected %d", c.i, c.size, got, c.want)
		}
	}
}

func TestWrapConnectsEdges(t *testing.T) {
	g, err := NewGrid(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	x, y := g.Wrap(-1, 10)
	if x != 9 || y != 0 {
		t.Fatalf("Wrap(-1, 10) = (%d, %d), expected (9, 0)", x, y)
	}
}

func TestNeighborsExactlyEight(t *testing.T) {
	g, err := NewGrid(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	neighbors := g.Neighbors(2, 2)
	seen := map[[2]int]bool{}
	for _, n := range neighbors {
		if n == [2]int{2, 2} {
			t.Fatalf("neighbor list contains the cell itself")
		}
		if seen[n] {
			t.Fatalf("duplicate neighbor %v", n)
		}
		seen[n] = true
	}
	if len(seen) != 8 {
		t.Fatalf("expected 8 distinct neighbors, got %d", len(seen))
	}
}

func TestNeighborsMayLeaveBounds(t *testing.T) {
	g, err := NewGrid(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	out := 0
	for _, n := range g.Neighbors(0, 0) {
		if n[0] < 0 || n[1] < 0 {
			out++
		}
	}
	if out != 5 {
		t.Fatalf("corner cell should have 5 raw neighbors out of bounds, got %d", out)
	}
}

func TestNewGridRejectsNonPositiveDimensions(t *testing.T) {
	if _, err := NewGrid(0, 10); err == nil {
		t.Fatalf("expected error for zero width")
	}
	if _, err := NewGrid(10, -3); err == nil {
		t.Fatalf("expected error for negative height")
	}
}

func TestSeedFractionNearHalf(t *testing.T) {
	const trials = 20
	total := 0
	cells := 0
	for seed := int64(0); seed < trials; seed++ {
		g, err := NewGrid(100, 100)
		if err != nil {
			t.Fatal(err)
		}
		g.Seed(NewRNG(seed))
		total += g.Population()
		cells += g.W * g.H
	}
	fraction := float64(total) / float64(cells)
	if fraction < 0.48 || fraction > 0.52 {
		t.Fatalf("live fraction %.4f, expected about 0.5", fraction)
	}
}

func TestCloneAndEqual(t *testing.T) {
	g, err := NewGrid(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	g.Seed(NewRNG(7))

	c := g.Clone()
	if !g.Equal(c) {
		t.Fatalf("clone differs from original")
	}
	c.Set(3, 3, !c.Get(3, 3))
	if g.Equal(c) {
		t.Fatalf("flipping a clone cell must not affect equality with the original")
	}
	if g.Get(3, 3) == c.Get(3, 3) {
		t.Fatalf("clone shares storage with the original")
	}
}
