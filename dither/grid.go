// Package dither converts grayscale intensity grids to black/white using
// Floyd-Steinberg error diffusion.
package dither

// Grid is a mutable rectangular grid of real-valued luminance samples.
// x is the column position, y is the row position. The origin is at the
// top-left. Samples are stored row-major. Input values normally lie in
// [0, 255], but cells may drift outside that range while diffusion error
// accumulates.
type Grid struct {
	width  int
	height int
	cells  []float64
}

// NewGrid creates a Grid of the given dimensions with all cells zero.
// Zero width or height is allowed and yields an empty grid.
func NewGrid(width, height int) *Grid {
	if width < 0 || height < 0 {
		panic("dither: dimensions must be nonnegative")
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]float64, width*height),
	}
}

// NewGridFromBytes creates a Grid from 8-bit luminance data in row-major
// order. len(lum) must be at least width*height.
func NewGridFromBytes(width, height int, lum []byte) *Grid {
	g := NewGrid(width, height)
	for i := range g.cells {
		g.cells[i] = float64(lum[i])
	}
	return g
}

// Get returns the sample at (x, y).
func (g *Grid) Get(x, y int) float64 {
	return g.cells[y*g.width+x]
}

// Set overwrites the sample at (x, y).
func (g *Grid) Set(x, y int, v float64) {
	g.cells[y*g.width+x] = v
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]float64, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}
