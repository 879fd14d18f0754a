// Package texture turns biome texture identifiers into pixels.
package texture

import (
	"fmt"
	"image"
	"image/color"

	"biomegen/internal/biome"
	"biomegen/pkg/core"

	"github.com/aquilax/go-perlin"
)

// Range is an inclusive channel interval.
type Range struct {
	Min, Max uint8
}

func (r Range) draw(rng core.Rand) uint8 {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + uint8(rng.IntN(int(r.Max-r.Min)+1))
}

func (r Range) mid() uint8 { return uint8((int(r.Min) + int(r.Max)) / 2) }

// Texture describes how a biome's cells are coloured: every pixel draws each
// channel uniformly from its range.
type Texture struct {
	ID      biome.TextureID
	R, G, B Range
}

// Mean returns the expected colour of a synthesized pixel.
func (t Texture) Mean() color.RGBA {
	return color.RGBA{R: t.R.mid(), G: t.G.mid(), B: t.B.mid(), A: 255}
}

var table = map[biome.TextureID]Texture{
	"GRASSLAND":      {R: Range{50, 100}, G: Range{120, 170}, B: Range{20, 70}},
	"JUNGLE":         {R: Range{0, 50}, G: Range{80, 130}, B: Range{0, 30}},
	"DESERT":         {R: Range{210, 250}, G: Range{205, 230}, B: Range{140, 180}},
	"BEACH":          {R: Range{240, 255}, G: Range{220, 240}, B: Range{170, 200}},
	"RIVER":          {R: Range{0, 30}, G: Range{30, 60}, B: Range{180, 220}},
	"MOUNTAIN":       {R: Range{90, 120}, G: Range{90, 120}, B: Range{90, 120}},
	"HILLS":          {R: Range{120, 150}, G: Range{120, 150}, B: Range{60, 100}},
	"SNOWY_MOUNTAIN": {R: Range{220, 255}, G: Range{220, 255}, B: Range{220, 255}},
	"FOREST":         {R: Range{0, 50}, G: Range{80, 130}, B: Range{0, 50}},
	"RAINFOREST":     {R: Range{0, 30}, G: Range{70, 110}, B: Range{0, 30}},
	"PLAINS":         {R: Range{120, 170}, G: Range{180, 230}, B: Range{80, 130}},
	"TUNDRA":         {R: Range{180, 210}, G: Range{180, 210}, B: Range{180, 210}},
	"SWAMP":          {R: Range{50, 80}, G: Range{70, 100}, B: Range{30, 60}},
}

// Background is drawn wherever a cell was never claimed.
var Background = color.RGBA{A: 255}

// Lookup returns the texture registered under id.
func Lookup(id biome.TextureID) (Texture, error) {
	t, ok := table[id]
	if !ok {
		return Texture{}, fmt.Errorf("%w: %q", biome.ErrUnknownTexture, id)
	}
	t.ID = id
	return t, nil
}

// PaletteColors maps a biome palette to mean colours. Index 0 is Background
// so the result lines up with grid cell values.
func PaletteColors(p biome.Palette) ([]color.RGBA, error) {
	out := make([]color.RGBA, len(p)+1)
	out[0] = Background
	for i, id := range p {
		t, err := Lookup(id)
		if err != nil {
			return nil, err
		}
		out[i+1] = t.Mean()
	}
	return out, nil
}

// Synthesizer renders cell tiles. With Grain > 0 a Perlin field shifts each
// pixel toward the low or high end of its ranges, continuous across tiles.
type Synthesizer struct {
	Grain float64
	Scale float64

	noise *perlin.Perlin
}

// NewSynthesizer returns a synthesizer whose grain field is derived from seed.
func NewSynthesizer(seed int64, grain float64) *Synthesizer {
	return &Synthesizer{
		Grain: grain,
		Scale: 0.02,
		noise: perlin.NewPerlin(2, 2, 3, seed),
	}
}

// Tile renders one w×h cell of texture id located at grid cell (cx, cy).
func (s *Synthesizer) Tile(id biome.TextureID, w, h, cx, cy int, rng core.Rand) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if err := s.Draw(img, img.Bounds(), id, cx, cy, rng); err != nil {
		return nil, err
	}
	return img, nil
}

// Draw fills rect of dst with texture id for grid cell (cx, cy).
func (s *Synthesizer) Draw(dst *image.RGBA, rect image.Rectangle, id biome.TextureID, cx, cy int, rng core.Rand) error {
	t, err := Lookup(id)
	if err != nil {
		return err
	}
	w, h := rect.Dx(), rect.Dy()
	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			r, g, b := t.R.draw(rng), t.G.draw(rng), t.B.draw(rng)
			if s != nil && s.Grain > 0 && s.noise != nil {
				n := s.noise.Noise2D(float64(cx*w+px)*s.Scale, float64(cy*h+py)*s.Scale)
				r = shift(r, t.R, n*s.Grain)
				g = shift(g, t.G, n*s.Grain)
				b = shift(b, t.B, n*s.Grain)
			}
			dst.SetRGBA(rect.Min.X+px, rect.Min.Y+py, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return nil
}

// shift moves v by amount half-spans of rg, staying inside rg.
func shift(v uint8, rg Range, amount float64) uint8 {
	span := float64(rg.Max) - float64(rg.Min)
	out := float64(v) + amount*span/2
	if out < float64(rg.Min) {
		out = float64(rg.Min)
	}
	if out > float64(rg.Max) {
		out = float64(rg.Max)
	}
	return uint8(out + 0.5)
}
