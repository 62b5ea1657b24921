package render

import (
	"image/color"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	cells := []uint8{0, 1, 2, 3, 9}
	buf := make([]byte, len(cells)*4)
	FillPaletteRGBA(buf, cells, ShipPalette)

	for i, c := range cells {
		idx := int(c)
		if idx >= len(ShipPalette) {
			idx = len(ShipPalette) - 1
		}
		want := ShipPalette[idx]
		got := color.RGBA{R: buf[i*4], G: buf[i*4+1], B: buf[i*4+2], A: buf[i*4+3]}
		if got != want {
			t.Fatalf("cell %d (value %d): got %v want %v", i, c, got, want)
		}
	}
}

func TestFillPaletteRGBAWithoutPaletteClears(t *testing.T) {
	buf := []byte{9, 9, 9, 9}
	FillPaletteRGBA(buf, []uint8{2}, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d, want 0", i, b)
		}
	}
}

func TestFillMaskRGBA(t *testing.T) {
	tint := color.RGBA{R: 200, G: 100, B: 0}
	buf := make([]byte, 12)
	FillMaskRGBA(buf, []float32{0, 1, 2}, tint)

	if buf[3] != 0 {
		t.Fatalf("zero intensity alpha = %d, want 0", buf[3])
	}
	if buf[4] != 200 || buf[5] != 100 || buf[6] != 0 || buf[7] != 140 {
		t.Fatalf("full intensity pixel = %v", buf[4:8])
	}
	for i := 0; i < 4; i++ {
		if buf[8+i] != buf[4+i] {
			t.Fatalf("intensity above one should clamp, got %v vs %v", buf[8:12], buf[4:8])
		}
	}
}
