package life

import "github.com/aphilas/game-of-life/internal/core"

// nextCellState applies the B3/S23 rule: birth on exactly three live
// neighbors, survival on two or three.
func nextCellState(alive bool, neighbors int) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Step computes the next generation. The input grid is never written:
// every neighbor count reads the pre-step snapshot, and the result is a
// fresh grid with the same dimensions.
func Step(g *core.Grid) *core.Grid {
	next := g.Blank()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			neighbors := 0
			for _, n := range g.Neighbors(x, y) {
				nx, ny := g.Wrap(n[0], n[1])
				if g.Get(nx, ny) {
					neighbors++
				}
			}
			next.Set(x, y, nextCellState(g.Get(x, y), neighbors))
		}
	}
	return next
}
