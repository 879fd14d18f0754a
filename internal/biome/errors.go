package biome

import "errors"

var (
	// ErrInvalidSize reports a non-positive grid or cell dimension.
	ErrInvalidSize = errors.New("biome: invalid size")
	// ErrInvalidSpacing reports a lattice spacing that cannot place seeds.
	ErrInvalidSpacing = errors.New("biome: invalid seed spacing")
	// ErrInvalidQuantity reports a seed quantity below one.
	ErrInvalidQuantity = errors.New("biome: invalid seed quantity")
	// ErrInvalidPalette reports an empty, oversized or ambiguous palette.
	ErrInvalidPalette = errors.New("biome: invalid palette")
	// ErrOutOfBounds reports a coordinate outside the grid.
	ErrOutOfBounds = errors.New("biome: coordinate out of bounds")
	// ErrUnknownTexture reports a texture identifier missing from the palette.
	ErrUnknownTexture = errors.New("biome: unknown texture")
)
