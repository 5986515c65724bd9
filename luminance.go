// Package einkcover converts raster images into fixed-size 1-bit bitmaps
// for small e-reader display controllers. Images are reduced to grayscale,
// resized to the panel dimensions, binarized with Floyd-Steinberg error
// diffusion and written out as 1-bit BMP files.
package einkcover

import "image"

// LuminanceSource provides access to greyscale luminance values for an image.
type LuminanceSource interface {
	// Row returns a row of luminance data. If row is non-nil and large enough,
	// it should be reused.
	Row(y int, row []byte) []byte

	// Matrix returns the entire luminance matrix.
	Matrix() []byte

	// Width returns the width of the image.
	Width() int

	// Height returns the height of the image.
	Height() int
}

// ImageLuminanceSource is a LuminanceSource implementation that wraps a Go
// image.Image, converting each pixel to greyscale luminance on construction.
type ImageLuminanceSource struct {
	luminances []byte
	width      int
	height     int
}

// NewImageLuminanceSource creates a LuminanceSource from a Go image.Image
// using the luminance formula (306*R + 601*G + 117*B + 0x200) >> 10 on 8-bit
// color components. Fully-transparent pixels are treated as white. For a
// grayscale pixel the formula is the identity, so *image.Gray inputs pass
// through unchanged.
func NewImageLuminanceSource(img image.Image) *ImageLuminanceSource {
	if gray, ok := img.(*image.Gray); ok {
		return NewGrayImageLuminanceSource(gray)
	}

	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	luminances := make([]byte, w*h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			r, g, b, a := c.RGBA()
			if a == 0 {
				luminances[y*w+x] = 0xFF
				continue
			}
			r8 := r >> 8
			g8 := g >> 8
			b8 := b >> 8
			luminances[y*w+x] = byte((306*r8 + 601*g8 + 117*b8 + 0x200) >> 10)
		}
	}

	return &ImageLuminanceSource{
		luminances: luminances,
		width:      w,
		height:     h,
	}
}

// NewGrayImageLuminanceSource creates a LuminanceSource from a *image.Gray,
// using the pixel data directly without conversion.
func NewGrayImageLuminanceSource(img *image.Gray) *ImageLuminanceSource {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	// If the image stride matches the width, the pixel data can be used as is.
	if img.Stride == w && bounds.Min.X == 0 && bounds.Min.Y == 0 {
		lum := make([]byte, w*h)
		copy(lum, img.Pix[:w*h])
		return &ImageLuminanceSource{
			luminances: lum,
			width:      w,
			height:     h,
		}
	}

	luminances := make([]byte, w*h)
	for y := 0; y < h; y++ {
		srcOff := img.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		copy(luminances[y*w:], img.Pix[srcOff:srcOff+w])
	}
	return &ImageLuminanceSource{
		luminances: luminances,
		width:      w,
		height:     h,
	}
}

// Row returns a row of luminance data.
func (s *ImageLuminanceSource) Row(y int, row []byte) []byte {
	if y < 0 || y >= s.height {
		return nil
	}
	if row == nil || len(row) < s.width {
		row = make([]byte, s.width)
	}
	offset := y * s.width
	copy(row, s.luminances[offset:offset+s.width])
	return row
}

// Matrix returns the entire luminance matrix.
func (s *ImageLuminanceSource) Matrix() []byte {
	result := make([]byte, len(s.luminances))
	copy(result, s.luminances)
	return result
}

// Width returns the width of the image.
func (s *ImageLuminanceSource) Width() int {
	return s.width
}

// Height returns the height of the image.
func (s *ImageLuminanceSource) Height() int {
	return s.height
}
