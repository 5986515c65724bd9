package dither

// Quantization levels written back into the grid. Every cell holds exactly
// one of these after FloydSteinberg returns.
const (
	Black = 0
	White = 255
)

// threshold is the midpoint of the 0-255 range. A cell quantizes to White
// only if its value is strictly greater, so a cell at exactly 127 goes Black.
const threshold = 127

// FloydSteinberg binarizes the grid in place using Floyd-Steinberg error
// diffusion. Cells are visited in raster order: row 0 first, left to right
// within each row. Each cell is quantized to Black or White and the signed
// quantization error is spread to the not-yet-visited neighbors with the
// classic 7/16, 3/16, 5/16, 1/16 weights:
//
//	          current  7/16
//	   3/16     5/16   1/16
//
// Neighbors outside the grid are skipped. Accumulation is floating point
// and unclamped, so cells awaiting their visit may hold values outside
// [0, 255]. The pass is deterministic and total; an empty grid is returned
// unchanged.
func FloydSteinberg(g *Grid) {
	width := g.width
	height := g.height
	cells := g.cells

	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			old := cells[row+x]
			var quantized float64 = Black
			if old > threshold {
				quantized = White
			}
			cells[row+x] = quantized

			qerr := old - quantized
			if x+1 < width {
				cells[row+x+1] += qerr * 7 / 16
			}
			if y+1 < height {
				below := row + width + x
				if x > 0 {
					cells[below-1] += qerr * 3 / 16
				}
				cells[below] += qerr * 5 / 16
				if x+1 < width {
					cells[below+1] += qerr * 1 / 16
				}
			}
		}
	}
}
