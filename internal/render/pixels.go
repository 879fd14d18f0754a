package render

import "image/color"

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Visible returns the half-open range of cells [x0,x1)×[y0,y1) that intersect
// a viewport of viewW×viewH pixels offset by (camX, camY), given tiles of
// tileW×tileH pixels on a gridW×gridH map.
func Visible(camX, camY float64, viewW, viewH int, tileW, tileH float64, gridW, gridH int) (x0, y0, x1, y1 int) {
	if tileW <= 0 || tileH <= 0 {
		return 0, 0, 0, 0
	}
	x0 = clamp(int(camX/tileW), 0, gridW)
	y0 = clamp(int(camY/tileH), 0, gridH)
	x1 = clamp(int((camX+float64(viewW))/tileW)+1, 0, gridW)
	y1 = clamp(int((camY+float64(viewH))/tileH)+1, 0, gridH)
	return x0, y0, x1, y1
}

// Variant picks a stable tile variant for cell (x, y).
func Variant(x, y, variants int) int {
	if variants <= 1 {
		return 0
	}
	h := uint32(x)*73856093 ^ uint32(y)*19349663
	return int(h % uint32(variants))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
