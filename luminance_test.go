package einkcover

import (
	"image"
	"image/color"
	"testing"
)

func TestImageLuminanceFormula(t *testing.T) {
	// (306*R + 601*G + 117*B + 0x200) >> 10 on 8-bit components.
	cases := []struct {
		name string
		c    color.Color
		want byte
	}{
		{"black", color.RGBA{0, 0, 0, 255}, 0},
		{"white", color.RGBA{255, 255, 255, 255}, 255},
		{"red", color.RGBA{255, 0, 0, 255}, 76},
		{"green", color.RGBA{0, 255, 0, 255}, 150},
		{"blue", color.RGBA{0, 0, 255, 255}, 29},
		{"transparent", color.RGBA{0, 0, 0, 0}, 255},
	}
	for _, tc := range cases {
		img := image.NewRGBA(image.Rect(0, 0, 1, 1))
		img.Set(0, 0, tc.c)
		source := NewImageLuminanceSource(img)
		if got := source.Matrix()[0]; got != tc.want {
			t.Errorf("%s: luminance = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestGrayImageLuminanceIdentity(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	vals := []byte{0, 63, 127, 128, 200, 255}
	copy(img.Pix, vals)

	source := NewImageLuminanceSource(img)
	if source.Width() != 3 || source.Height() != 2 {
		t.Fatalf("dimensions = %dx%d, want 3x2", source.Width(), source.Height())
	}
	m := source.Matrix()
	for i, want := range vals {
		if m[i] != want {
			t.Errorf("luminance[%d] = %d, want %d", i, m[i], want)
		}
	}
}

func TestGrayImageLuminanceSubimage(t *testing.T) {
	// A subimage has a stride wider than its width, forcing the row-by-row
	// copy path.
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = byte(i)
	}
	sub := img.SubImage(image.Rect(2, 3, 6, 6)).(*image.Gray)

	source := NewGrayImageLuminanceSource(sub)
	if source.Width() != 4 || source.Height() != 3 {
		t.Fatalf("dimensions = %dx%d, want 4x3", source.Width(), source.Height())
	}
	for y := 0; y < 3; y++ {
		row := source.Row(y, nil)
		for x := 0; x < 4; x++ {
			want := byte((y+3)*8 + x + 2)
			if row[x] != want {
				t.Errorf("row %d col %d = %d, want %d", y, x, row[x], want)
			}
		}
	}
}

func TestLuminanceRow(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 2))
	copy(img.Pix, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	source := NewImageLuminanceSource(img)

	row := source.Row(1, nil)
	for x, want := range []byte{5, 6, 7, 8} {
		if row[x] != want {
			t.Errorf("row[%d] = %d, want %d", x, row[x], want)
		}
	}

	// A large enough buffer is reused.
	buf := make([]byte, 4)
	got := source.Row(0, buf)
	if &got[0] != &buf[0] {
		t.Error("Row should reuse the provided buffer")
	}

	if source.Row(-1, nil) != nil || source.Row(2, nil) != nil {
		t.Error("out-of-range rows should return nil")
	}
}
