package einkcover

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/ericlevine/einkcover/bitutil"
	"github.com/ericlevine/einkcover/bmp"
	"github.com/ericlevine/einkcover/dither"
)

// Default target dimensions, matching the Xteink X4 cover panel.
const (
	DefaultWidth  = 148
	DefaultHeight = 226
)

// Options configures the conversion. A nil Options uses the defaults.
type Options struct {
	// Width is the target width in pixels. Zero means DefaultWidth.
	Width int

	// Height is the target height in pixels. Zero means DefaultHeight.
	Height int
}

func (o *Options) targetSize() (int, int) {
	if o == nil {
		return DefaultWidth, DefaultHeight
	}
	w, h := o.Width, o.Height
	if w == 0 {
		w = DefaultWidth
	}
	if h == 0 {
		h = DefaultHeight
	}
	return w, h
}

// Info describes a completed conversion.
type Info struct {
	// Path is the path of the written BMP file.
	Path string

	// Width and Height are the output dimensions in pixels.
	Width, Height int

	// Size is the size of the written file in bytes.
	Size int64
}

// Convert reduces an image to grayscale, resizes it to the target
// dimensions with Lanczos resampling and binarizes it with Floyd-Steinberg
// dithering. Set bits in the result are black pixels.
func Convert(img image.Image, opts *Options) (*bitutil.BitMatrix, error) {
	width, height := opts.targetSize()
	if width < 1 || height < 1 {
		return nil, ErrBadDimensions
	}
	bounds := img.Bounds()
	if bounds.Dx() < 1 || bounds.Dy() < 1 {
		return nil, ErrEmptyImage
	}

	gray := grayImage(NewImageLuminanceSource(img))
	resized := resize.Resize(uint(width), uint(height), gray, resize.Lanczos3)

	grid := NewGrid(NewImageLuminanceSource(resized))
	dither.FloydSteinberg(grid)
	return BlackMatrix(grid), nil
}

// ConvertReader decodes an image from r and converts it. PNG, JPEG, GIF,
// BMP, TIFF and WebP inputs are supported.
func ConvertReader(r io.Reader, opts *Options) (*bitutil.BitMatrix, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return Convert(img, opts)
}

// DefaultOutputPath derives the output path for an input file:
// the input path with its extension replaced by "_dithered.bmp".
func DefaultOutputPath(inputPath string) string {
	base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	return base + "_dithered.bmp"
}

// ConvertFile converts the image at inPath and writes a 1-bit BMP to
// outPath. An empty outPath means DefaultOutputPath(inPath).
func ConvertFile(inPath, outPath string, opts *Options) (*Info, error) {
	f, err := os.Open(inPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	matrix, err := ConvertReader(f, opts)
	if err != nil {
		return nil, err
	}

	if outPath == "" {
		outPath = DefaultOutputPath(inPath)
	}
	out, err := os.Create(outPath)
	if err != nil {
		return nil, err
	}
	if err := bmp.Encode(out, matrix); err != nil {
		out.Close()
		return nil, fmt.Errorf("encode bmp: %w", err)
	}
	if err := out.Close(); err != nil {
		return nil, err
	}

	stat, err := os.Stat(outPath)
	if err != nil {
		return nil, err
	}
	return &Info{
		Path:   outPath,
		Width:  matrix.Width(),
		Height: matrix.Height(),
		Size:   stat.Size(),
	}, nil
}
