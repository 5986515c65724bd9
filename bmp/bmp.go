// Package bmp encodes 1-bit-per-pixel Windows BMP files.
package bmp

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/ericlevine/einkcover/bitutil"
)

// fileHeader is the BITMAPFILEHEADER structure.
type fileHeader struct {
	Type      [2]byte // must be "BM"
	Size      uint32  // size of the whole file in bytes
	Reserved1 uint16
	Reserved2 uint16
	OffBits   uint32 // offset from the start of the file to the pixel array
}

// infoHeader is the 40-byte BITMAPINFOHEADER structure.
type infoHeader struct {
	Size            uint32
	Width           int32
	Height          int32 // positive height means bottom-up row order
	Planes          uint16
	BitCount        uint16
	Compression     uint32
	SizeImage       uint32
	XPixelsPerM     int32
	YPixelsPerM     int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

const (
	fileHeaderSize = 14
	infoHeaderSize = 40
	paletteSize    = 2 * 4 // two BGRA quads: black and white

	// 72 DPI expressed in pixels per meter.
	resolution = 2835
)

// Encode writes m to w as an uncompressed 1-bit BMP. Palette index 0 is
// black and maps to set bits, index 1 is white. Rows are written bottom-up
// and padded to 4-byte boundaries as the format requires.
func Encode(w io.Writer, m *bitutil.BitMatrix) error {
	width := m.Width()
	height := m.Height()
	rowSize := ((width + 31) / 32) * 4
	imageSize := rowSize * height
	offset := fileHeaderSize + infoHeaderSize + paletteSize

	bw := bufio.NewWriter(w)
	fh := fileHeader{
		Type:    [2]byte{'B', 'M'},
		Size:    uint32(offset + imageSize),
		OffBits: uint32(offset),
	}
	if err := binary.Write(bw, binary.LittleEndian, fh); err != nil {
		return err
	}
	ih := infoHeader{
		Size:            infoHeaderSize,
		Width:           int32(width),
		Height:          int32(height),
		Planes:          1,
		BitCount:        1,
		SizeImage:       uint32(imageSize),
		XPixelsPerM:     resolution,
		YPixelsPerM:     resolution,
		ColorsUsed:      2,
		ColorsImportant: 2,
	}
	if err := binary.Write(bw, binary.LittleEndian, ih); err != nil {
		return err
	}
	// Palette, stored as BGRA: black then white.
	if _, err := bw.Write([]byte{
		0x00, 0x00, 0x00, 0x00,
		0xFF, 0xFF, 0xFF, 0x00,
	}); err != nil {
		return err
	}

	row := make([]byte, rowSize)
	for y := height - 1; y >= 0; y-- {
		for i := range row {
			row[i] = 0
		}
		for x := 0; x < width; x++ {
			if !m.Get(x, y) {
				// White pixel, palette index 1. Bits are MSB first.
				row[x/8] |= 1 << uint(7-x%8)
			}
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// EncodedSize returns the size in bytes of the BMP that Encode would write
// for a width x height matrix.
func EncodedSize(width, height int) int {
	rowSize := ((width + 31) / 32) * 4
	return fileHeaderSize + infoHeaderSize + paletteSize + rowSize*height
}
