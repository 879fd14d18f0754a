//go:build ebiten

package render

import (
	"biomegen/internal/biome"
	"biomegen/internal/texture"
	"biomegen/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// TilePainter draws claimed cells as synthesized texture tiles. Each palette
// entry gets a few pre-rendered variants so neighbouring cells differ.
type TilePainter struct {
	cellW, cellH int
	variants     int
	tiles        [][]*ebiten.Image // by cell value, then variant
}

// NewTilePainter synthesizes variants tiles per palette entry.
func NewTilePainter(palette biome.Palette, cellW, cellH, variants int, syn *texture.Synthesizer, seed int64) (*TilePainter, error) {
	if variants < 1 {
		variants = 1
	}
	rng := core.NewRNG(seed)
	tp := &TilePainter{cellW: cellW, cellH: cellH, variants: variants, tiles: make([][]*ebiten.Image, len(palette)+1)}
	for i, id := range palette {
		set := make([]*ebiten.Image, variants)
		for v := range set {
			img, err := syn.Tile(id, cellW, cellH, v, i, rng)
			if err != nil {
				return nil, err
			}
			set[v] = ebiten.NewImageFromImage(img)
		}
		tp.tiles[i+1] = set
	}
	return tp, nil
}

// Draw paints the cells visible through a camera at (camX, camY) in zoomed
// pixel space. Unclaimed cells are left untouched.
func (tp *TilePainter) Draw(dst *ebiten.Image, cells []uint8, gridW, gridH int, camX, camY, zoom float64) {
	if len(cells) != gridW*gridH {
		return
	}
	tileW := float64(tp.cellW) * zoom
	tileH := float64(tp.cellH) * zoom
	b := dst.Bounds()
	x0, y0, x1, y1 := Visible(camX, camY, b.Dx(), b.Dy(), tileW, tileH, gridW, gridH)

	op := &ebiten.DrawImageOptions{}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			v := cells[y*gridW+x]
			if v == 0 || int(v) >= len(tp.tiles) {
				continue
			}
			op.GeoM.Reset()
			op.GeoM.Scale(zoom, zoom)
			op.GeoM.Translate(float64(x)*tileW-camX, float64(y)*tileH-camY)
			dst.DrawImage(tp.tiles[v][Variant(x, y, tp.variants)], op)
		}
	}
}
