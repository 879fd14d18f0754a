package biome

import "fmt"

// Config describes one generation.
type Config struct {
	Width  int
	Height int

	// CellWidth and CellHeight are the pixel size of one cell. Generation
	// ignores them; renderers and exporters read them.
	CellWidth  int
	CellHeight int

	Seeding  SeedingMode
	Spacing  int // symmetric lattice spacing
	Quantity int // asymmetric origin count

	Adjacency Adjacency
	Growth    GrowthMode

	Palette Palette
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:      250,
		Height:     250,
		CellWidth:  32,
		CellHeight: 32,
		Seeding:    SeedingSymmetric,
		Spacing:    10,
		Quantity:   20,
		Adjacency:  Adjacency4,
		Growth:     GrowthDefault,
		Palette:    append(Palette(nil), DefaultPalette...),
	}
}

// Amount returns the seeding parameter relevant to the configured mode.
func (c Config) Amount() int {
	if c.Seeding == SeedingAsymmetric {
		return c.Quantity
	}
	return c.Spacing
}

// Validate rejects configurations that cannot generate a map.
func (c Config) Validate() error {
	if err := CheckSize(c.Width, c.Height); err != nil {
		return err
	}
	if c.CellWidth <= 0 || c.CellHeight <= 0 {
		return fmt.Errorf("%w: cell %dx%d", ErrInvalidSize, c.CellWidth, c.CellHeight)
	}
	switch c.Seeding {
	case SeedingSymmetric:
		if c.Spacing < 1 || c.Spacing > max(c.Width, c.Height) {
			return fmt.Errorf("%w: %d for %dx%d grid", ErrInvalidSpacing, c.Spacing, c.Width, c.Height)
		}
	case SeedingAsymmetric:
		if c.Quantity < 1 {
			return fmt.Errorf("%w: %d", ErrInvalidQuantity, c.Quantity)
		}
	default:
		return fmt.Errorf("unknown seeding mode %d", c.Seeding)
	}
	if c.Adjacency > Adjacency8 {
		return fmt.Errorf("unknown adjacency %d", c.Adjacency)
	}
	if c.Growth > GrowthElongated {
		return fmt.Errorf("unknown growth mode %d", c.Growth)
	}
	return c.Palette.Validate()
}

// NewEngineFromConfig validates cfg, seeds origins from r and returns an
// engine ready to step.
func NewEngineFromConfig(cfg Config, r Rand) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	origins, err := Seed(cfg.Width, cfg.Height, cfg.Seeding, cfg.Amount(), cfg.Palette, r)
	if err != nil {
		return nil, err
	}
	return NewEngine(cfg.Width, cfg.Height, cfg.Palette, origins, cfg.Adjacency, cfg.Growth, r)
}

// Generate runs a complete generation and returns the finished grid.
func Generate(cfg Config, r Rand) (*Grid, error) {
	e, err := NewEngineFromConfig(cfg, r)
	if err != nil {
		return nil, err
	}
	return e.Run(), nil
}
