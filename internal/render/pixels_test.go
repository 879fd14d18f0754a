package render

import (
	"image/color"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{{A: 255}, {R: 10, G: 20, B: 30, A: 255}}
	cells := []uint8{0, 1, 7}
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, palette)

	want := []byte{0, 0, 0, 255, 10, 20, 30, 255, 10, 20, 30, 255}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d = %d, expected %d", i, buf[i], want[i])
		}
	}

	fillPaletteRGBA(buf, cells, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d, expected cleared buffer", i, b)
		}
	}
}

func TestVisibleClampsToGrid(t *testing.T) {
	x0, y0, x1, y1 := Visible(0, 0, 100, 50, 32, 32, 250, 250)
	if x0 != 0 || y0 != 0 || x1 != 4 || y1 != 2 {
		t.Fatalf("Visible = %d,%d,%d,%d, expected 0,0,4,2", x0, y0, x1, y1)
	}
	x0, y0, x1, y1 = Visible(7900, 7950, 1200, 800, 32, 32, 250, 250)
	if x1 != 250 || y1 != 250 || x0 != 246 || y0 != 248 {
		t.Fatalf("Visible = %d,%d,%d,%d, expected 246,248,250,250", x0, y0, x1, y1)
	}
}

func TestVariantStable(t *testing.T) {
	for x := 0; x < 20; x++ {
		v := Variant(x, 3, 4)
		if v < 0 || v >= 4 {
			t.Fatalf("variant %d out of range", v)
		}
		if v != Variant(x, 3, 4) {
			t.Fatal("variant not stable")
		}
	}
	if Variant(5, 5, 1) != 0 {
		t.Fatal("single variant must be 0")
	}
}
