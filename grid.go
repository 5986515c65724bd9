package einkcover

import (
	"image"

	"github.com/ericlevine/einkcover/bitutil"
	"github.com/ericlevine/einkcover/dither"
)

// NewGrid builds a mutable intensity grid from a luminance source. The grid
// is an independent copy; dithering it does not affect the source.
func NewGrid(source LuminanceSource) *dither.Grid {
	width := source.Width()
	height := source.Height()
	g := dither.NewGrid(width, height)

	var row []byte
	for y := 0; y < height; y++ {
		row = source.Row(y, row)
		for x := 0; x < width; x++ {
			g.Set(x, y, float64(row[x]))
		}
	}
	return g
}

// BlackMatrix packs a binarized grid into a BitMatrix. Black cells become
// set bits. The grid must already be dithered: any cell that is not
// dither.White is treated as black.
func BlackMatrix(g *dither.Grid) *bitutil.BitMatrix {
	m := bitutil.NewBitMatrix(g.Width(), g.Height())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.Get(x, y) != dither.White {
				m.Set(x, y)
			}
		}
	}
	return m
}

// MatrixImage converts a BitMatrix to a grayscale image where set bits are
// black (0) and unset bits are white (255).
func MatrixImage(m *bitutil.BitMatrix) *image.Gray {
	w := m.Width()
	h := m.Height()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if m.Get(x, y) {
				img.Pix[y*img.Stride+x] = 0
			} else {
				img.Pix[y*img.Stride+x] = 255
			}
		}
	}
	return img
}

// grayImage renders a luminance source as an *image.Gray so it can be fed
// to the resampler.
func grayImage(s LuminanceSource) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, s.Width(), s.Height()))
	copy(img.Pix, s.Matrix())
	return img
}
