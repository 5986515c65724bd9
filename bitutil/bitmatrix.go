// Package bitutil provides a packed 1-bit image matrix.
package bitutil

import "strings"

// BitMatrix represents a 2D matrix of bits. A set bit is a black pixel and
// an unset bit is a white pixel. x is the column position, y is the row
// position. The origin is at the top-left.
type BitMatrix struct {
	width   int
	height  int
	rowSize int
	data    []uint32
}

// NewBitMatrix creates a new BitMatrix with the given width and height.
func NewBitMatrix(width, height int) *BitMatrix {
	if width < 1 || height < 1 {
		panic("bitutil: dimensions must be greater than 0")
	}
	rowSize := (width + 31) / 32
	return &BitMatrix{
		width:   width,
		height:  height,
		rowSize: rowSize,
		data:    make([]uint32, rowSize*height),
	}
}

// ParseBoolMatrix creates a BitMatrix from a 2D boolean array, indexed
// [row][column].
func ParseBoolMatrix(image [][]bool) *BitMatrix {
	height := len(image)
	width := len(image[0])
	bm := NewBitMatrix(width, height)
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			if image[i][j] {
				bm.Set(j, i)
			}
		}
	}
	return bm
}

// ParseStringMatrix creates a BitMatrix from a string representation using
// the given set and unset tokens. Rows are separated by newlines and must
// all have the same length.
func ParseStringMatrix(repr, setStr, unsetStr string) *BitMatrix {
	bts := make([]bool, len(repr))
	bitsPos := 0
	rowStartPos := 0
	rowLength := -1
	nRows := 0
	pos := 0
	for pos < len(repr) {
		ch := repr[pos]
		if ch == '\n' || ch == '\r' {
			if bitsPos > rowStartPos {
				if rowLength == -1 {
					rowLength = bitsPos - rowStartPos
				} else if bitsPos-rowStartPos != rowLength {
					panic("bitutil: row lengths do not match")
				}
				rowStartPos = bitsPos
				nRows++
			}
			pos++
		} else if len(repr) >= pos+len(setStr) && repr[pos:pos+len(setStr)] == setStr {
			pos += len(setStr)
			bts[bitsPos] = true
			bitsPos++
		} else if len(repr) >= pos+len(unsetStr) && repr[pos:pos+len(unsetStr)] == unsetStr {
			pos += len(unsetStr)
			bts[bitsPos] = false
			bitsPos++
		} else {
			panic("bitutil: illegal character encountered")
		}
	}
	if bitsPos > rowStartPos {
		if rowLength == -1 {
			rowLength = bitsPos - rowStartPos
		} else if bitsPos-rowStartPos != rowLength {
			panic("bitutil: row lengths do not match")
		}
		nRows++
	}
	matrix := NewBitMatrix(rowLength, nRows)
	for i := 0; i < bitsPos; i++ {
		if bts[i] {
			matrix.Set(i%rowLength, i/rowLength)
		}
	}
	return matrix
}

// Get returns true if the bit at (x, y) is set.
func (bm *BitMatrix) Get(x, y int) bool {
	offset := y*bm.rowSize + x/32
	return (bm.data[offset]>>uint(x&0x1f))&1 != 0
}

// Set sets the bit at (x, y).
func (bm *BitMatrix) Set(x, y int) {
	offset := y*bm.rowSize + x/32
	bm.data[offset] |= 1 << uint(x&0x1f)
}

// Unset clears the bit at (x, y).
func (bm *BitMatrix) Unset(x, y int) {
	offset := y*bm.rowSize + x/32
	bm.data[offset] &^= 1 << uint(x&0x1f)
}

// Flip flips the bit at (x, y).
func (bm *BitMatrix) Flip(x, y int) {
	offset := y*bm.rowSize + x/32
	bm.data[offset] ^= 1 << uint(x&0x1f)
}

// Clear clears all bits.
func (bm *BitMatrix) Clear() {
	for i := range bm.data {
		bm.data[i] = 0
	}
}

// Width returns the width of the matrix.
func (bm *BitMatrix) Width() int {
	return bm.width
}

// Height returns the height of the matrix.
func (bm *BitMatrix) Height() int {
	return bm.height
}

// Equal reports whether two matrices have the same dimensions and bits.
func (bm *BitMatrix) Equal(other *BitMatrix) bool {
	if bm.width != other.width || bm.height != other.height {
		return false
	}
	for i := range bm.data {
		if bm.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// String returns a representation using "X " for set bits and "  " for
// unset bits.
func (bm *BitMatrix) String() string {
	return bm.ToString("X ", "  ")
}

// ToString returns a representation of the matrix using the given set and
// unset tokens, one row per line.
func (bm *BitMatrix) ToString(setStr, unsetStr string) string {
	var sb strings.Builder
	sb.Grow(bm.height * (bm.width*len(setStr) + 1))
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			if bm.Get(x, y) {
				sb.WriteString(setStr)
			} else {
				sb.WriteString(unsetStr)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
