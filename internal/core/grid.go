package core

import "github.com/pkg/errors"

// Grid stores a 2D field of boolean cell states in row-major order.
// Dimensions are fixed at construction; true means alive.
type Grid struct {
	W, H int
	data []bool
}

// NewGrid allocates a dead grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Errorf("[NewGrid] non-positive dimensions %dx%d", w, h)
	}
	return &Grid{W: w, H: h, data: make([]bool, w*h)}, nil
}

// Cells exposes the backing slice so renderers can traverse values directly.
func (g *Grid) Cells() []bool { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Get reads the cell at (x, y). Coordinates must be in bounds; wrap raw
// neighbor coordinates first.
func (g *Grid) Get(x, y int) bool { return g.data[y*g.W+x] }

// Set writes the cell at (x, y).
func (g *Grid) Set(x, y int, alive bool) { g.data[y*g.W+x] = alive }

// WrapIndex maps any integer onto [0, size) by true mathematical modulo, so
// -1 wraps to size-1 rather than truncating toward zero. size must be
// positive.
func WrapIndex(i, size int) int {
	return (i%size + size) % size
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	return WrapIndex(x, g.W), WrapIndex(y, g.H)
}

// neighborOffsets enumerates the Moore neighborhood. The (0, 0) self offset
// is deliberately absent.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighbors returns the eight raw neighbor coordinates of (x, y). Results
// may fall outside the grid and must pass through Wrap before lookup.
func (g *Grid) Neighbors(x, y int) [8][2]int {
	var out [8][2]int
	for i, off := range neighborOffsets {
		out[i] = [2]int{x + off[0], y + off[1]}
	}
	return out
}

// Seed fills the grid with fair coin flips from the provided RNG.
func (g *Grid) Seed(rng *RNG) {
	FillBinary(rng.Source(), g.data)
}

// Blank returns a dead grid with the same dimensions.
func (g *Grid) Blank() *Grid {
	return &Grid{W: g.W, H: g.H, data: make([]bool, len(g.data))}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := g.Blank()
	copy(c.data, g.data)
	return c
}

// Equal reports whether both grids have the same dimensions and cell states.
func (g *Grid) Equal(o *Grid) bool {
	if g.W != o.W || g.H != o.H {
		return false
	}
	for i, v := range g.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, v := range g.data {
		if v {
			n++
		}
	}
	return n
}
