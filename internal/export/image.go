// Package export writes finished biome maps to images and archives.
package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"biomegen/internal/biome"
	"biomegen/internal/texture"
	"biomegen/pkg/core"
)

// Render synthesizes a full-resolution picture of grid: one cellW×cellH tile
// per cell, unclaimed cells filled with texture.Background.
func Render(grid *biome.Grid, cellW, cellH int, syn *texture.Synthesizer, rng core.Rand) (*image.RGBA, error) {
	if cellW <= 0 || cellH <= 0 {
		return nil, fmt.Errorf("%w: cell %dx%d", biome.ErrInvalidSize, cellW, cellH)
	}
	img := image.NewRGBA(image.Rect(0, 0, grid.Width()*cellW, grid.Height()*cellH))
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			rect := image.Rect(x*cellW, y*cellH, (x+1)*cellW, (y+1)*cellH)
			id, ok := grid.At(biome.Coord{X: x, Y: y})
			if !ok {
				fill(img, rect)
				continue
			}
			if err := syn.Draw(img, rect, id, x, y, rng); err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", x, y, err)
			}
		}
	}
	return img, nil
}

func fill(img *image.RGBA, rect image.Rectangle) {
	for py := rect.Min.Y; py < rect.Max.Y; py++ {
		for px := rect.Min.X; px < rect.Max.X; px++ {
			img.SetRGBA(px, py, texture.Background)
		}
	}
}

// WritePNG renders grid and encodes it as PNG.
func WritePNG(w io.Writer, grid *biome.Grid, cellW, cellH int, syn *texture.Synthesizer, rng core.Rand) error {
	img, err := Render(grid, cellW, cellH, syn, rng)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// WritePNGFile is WritePNG to a newly created file.
func WritePNGFile(path string, grid *biome.Grid, cellW, cellH int, syn *texture.Synthesizer, rng core.Rand) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePNG(f, grid, cellW, cellH, syn, rng); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
