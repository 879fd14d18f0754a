package biome

import "fmt"

// TextureID names a texture. The engine never interprets it.
type TextureID string

// Palette lists the textures a seeder draws from. Grids store palette
// indices, so a palette holds at most MaxPaletteSize entries.
type Palette []TextureID

// MaxPaletteSize is the largest palette a Grid can encode.
const MaxPaletteSize = 255

// DefaultPalette is the stock set of biome textures.
var DefaultPalette = Palette{
	"GRASSLAND",
	"JUNGLE",
	"DESERT",
	"BEACH",
	"RIVER",
	"MOUNTAIN",
	"HILLS",
	"SNOWY_MOUNTAIN",
	"FOREST",
	"RAINFOREST",
	"PLAINS",
	"TUNDRA",
	"SWAMP",
}

// Index returns the position of id in the palette.
func (p Palette) Index(id TextureID) (int, bool) {
	for i, t := range p {
		if t == id {
			return i, true
		}
	}
	return 0, false
}

// Validate checks the palette is usable by a Grid.
func (p Palette) Validate() error {
	if len(p) == 0 {
		return fmt.Errorf("%w: no textures", ErrInvalidPalette)
	}
	if len(p) > MaxPaletteSize {
		return fmt.Errorf("%w: %d textures exceeds %d", ErrInvalidPalette, len(p), MaxPaletteSize)
	}
	seen := make(map[TextureID]struct{}, len(p))
	for _, t := range p {
		if t == "" {
			return fmt.Errorf("%w: blank texture id", ErrInvalidPalette)
		}
		if _, dup := seen[t]; dup {
			return fmt.Errorf("%w: duplicate texture %q", ErrInvalidPalette, t)
		}
		seen[t] = struct{}{}
	}
	return nil
}
