// Command covergen converts an image into a 1-bit BMP cover for small
// e-reader displays, using Floyd-Steinberg dithering.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ericlevine/einkcover"
)

func main() {
	output := flag.String("o", "", "output path (default <input>_dithered.bmp)")
	width := flag.Int("width", einkcover.DefaultWidth, "target width in pixels")
	height := flag.Int("height", einkcover.DefaultHeight, "target height in pixels")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: covergen [flags] <input-image>\n\n")
		fmt.Fprintf(os.Stderr, "Convert an image (PNG, JPEG, GIF, BMP, TIFF, WebP) to a %dx%d\n",
			einkcover.DefaultWidth, einkcover.DefaultHeight)
		fmt.Fprintf(os.Stderr, "1-bit BMP with Floyd-Steinberg dithering.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		return
	}
	inputPath := flag.Arg(0)

	if _, err := os.Stat(inputPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: file '%s' not found.\n", inputPath)
		return
	}

	opts := &einkcover.Options{Width: *width, Height: *height}
	info, err := einkcover.ConvertFile(inputPath, *output, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error converting image: %v\n", err)
		return
	}

	fmt.Printf("✓ Converted: %s\n", info.Path)
	fmt.Printf("  %dx%d | %d bytes (%.2f KB) | 1-bit BMP\n",
		info.Width, info.Height, info.Size, float64(info.Size)/1024)
}
