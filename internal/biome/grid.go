package biome

import (
	"fmt"

	"biomegen/internal/core"
)

// Grid maps every coordinate to an optional texture. Cells hold 0 while
// unclaimed and palette index + 1 once claimed.
type Grid struct {
	cells   *core.ByteGrid
	palette Palette
}

// MaxCells caps the number of cells in one grid. Per-cell engine state
// (owner, frontier holders) makes larger maps impractical.
const MaxCells = 1 << 24

// CheckSize rejects grids with a non-positive side or more than MaxCells cells.
func CheckSize(w, h int) error {
	if w <= 0 || h <= 0 || w > MaxCells/h {
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidSize, w, h)
	}
	return nil
}

// NewGrid allocates an all-unclaimed grid.
func NewGrid(w, h int, palette Palette) (*Grid, error) {
	if err := CheckSize(w, h); err != nil {
		return nil, err
	}
	if err := palette.Validate(); err != nil {
		return nil, err
	}
	return &Grid{cells: core.NewByteGrid(w, h), palette: append(Palette(nil), palette...)}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.cells.W }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.cells.H }

// Palette returns the textures the grid's cell values refer to.
func (g *Grid) Palette() Palette { return g.palette }

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Coord) bool { return g.cells.InBounds(c.X, c.Y) }

// At returns the texture at c. ok is false for unclaimed or out-of-bounds cells.
func (g *Grid) At(c Coord) (id TextureID, ok bool) {
	if !g.InBounds(c) {
		return "", false
	}
	v := g.cells.Cells()[g.cells.Index(c.X, c.Y)]
	if v == 0 {
		return "", false
	}
	return g.palette[v-1], true
}

// Set assigns id to c.
func (g *Grid) Set(c Coord, id TextureID) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	idx, ok := g.palette.Index(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTexture, id)
	}
	g.cells.Cells()[g.cells.Index(c.X, c.Y)] = uint8(idx + 1)
	return nil
}

// Each calls fn for every claimed cell in row-major order.
func (g *Grid) Each(fn func(Coord, TextureID)) {
	w := g.cells.W
	for i, v := range g.cells.Cells() {
		if v == 0 {
			continue
		}
		fn(Coord{X: i % w, Y: i / w}, g.palette[v-1])
	}
}

// Claimed counts the cells holding a texture.
func (g *Grid) Claimed() int {
	n := 0
	for _, v := range g.cells.Cells() {
		if v != 0 {
			n++
		}
	}
	return n
}

// Cells exposes the raw cell values (0 = unclaimed, palette index + 1).
func (g *Grid) Cells() []uint8 { return g.cells.Cells() }

func (g *Grid) setIndex(i int, value uint8) { g.cells.Cells()[i] = value }
