package biome

import "fmt"

// SeedingMode selects how biome origins are placed.
type SeedingMode uint8

const (
	// SeedingSymmetric places origins on a lattice with fixed spacing.
	SeedingSymmetric SeedingMode = iota
	// SeedingAsymmetric samples origins uniformly, with replacement.
	SeedingAsymmetric
)

func (m SeedingMode) String() string {
	if m == SeedingAsymmetric {
		return "asymmetric"
	}
	return "symmetric"
}

// ParseSeedingMode accepts "symmetric" and "asymmetric".
func ParseSeedingMode(s string) (SeedingMode, error) {
	switch s {
	case "symmetric":
		return SeedingSymmetric, nil
	case "asymmetric":
		return SeedingAsymmetric, nil
	}
	return SeedingSymmetric, fmt.Errorf("unknown seeding mode %q", s)
}

// Origin is a biome seed: where it starts and which texture it spreads.
type Origin struct {
	Coord   Coord
	Texture TextureID
}

// Seed produces biome origins for a w×h grid. amount is the lattice spacing
// in symmetric mode and the origin count in asymmetric mode. Coordinates are
// drawn before textures.
func Seed(w, h int, mode SeedingMode, amount int, palette Palette, r Rand) ([]Origin, error) {
	if err := CheckSize(w, h); err != nil {
		return nil, err
	}
	if err := palette.Validate(); err != nil {
		return nil, err
	}

	var coords []Coord
	switch mode {
	case SeedingAsymmetric:
		if amount < 1 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidQuantity, amount)
		}
		coords = make([]Coord, 0, amount)
		for i := 0; i < amount; i++ {
			x := r.IntN(w)
			y := r.IntN(h)
			coords = append(coords, Coord{X: x, Y: y})
		}
	default:
		if amount < 1 || amount > max(w, h) {
			return nil, fmt.Errorf("%w: %d for %dx%d grid", ErrInvalidSpacing, amount, w, h)
		}
		for x := 0; x < w; x += amount {
			for y := 0; y < h; y += amount {
				coords = append(coords, Coord{X: x, Y: y})
			}
		}
	}

	origins := make([]Origin, len(coords))
	for i, c := range coords {
		origins[i] = Origin{Coord: c, Texture: palette[r.IntN(len(palette))]}
	}
	return origins, nil
}
