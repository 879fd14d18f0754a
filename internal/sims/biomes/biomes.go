package biomes

import (
	"image/color"

	"biomegen/internal/biome"
	"biomegen/internal/core"
	"biomegen/internal/texture"
	rng "biomegen/pkg/core"
)

// World drives one biome map generation behind the core.Sim contract.
type World struct {
	cfg     Config
	engine  *biome.Engine
	palette []color.RGBA
	blank   []uint8
	seed    int64

	paletteErr error
	err        error
}

// New returns a biome world with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Biome.Width = w
	cfg.Biome.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world configured from the provided options. The
// map is not generated until Reset.
func NewWithConfig(cfg Config) *World {
	total := cfg.Biome.Width * cfg.Biome.Height
	if total < 0 {
		total = 0
	}
	palette, err := texture.PaletteColors(cfg.Biome.Palette)
	return &World{cfg: cfg, palette: palette, blank: make([]uint8, total), paletteErr: err, err: err}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "biomes" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Biome.Width, H: w.cfg.Biome.Height} }

// Config returns the configuration the world was built with.
func (w *World) Config() Config { return w.cfg }

// Seed returns the seed of the current map.
func (w *World) Seed() int64 { return w.seed }

// Reset discards the current map and seeds a new one. A zero seed falls back
// to the configured seed. When StepsPerTick is zero the map is generated
// completely before Reset returns.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.seed = effective
	w.engine = nil
	if w.paletteErr != nil {
		w.err = w.paletteErr
		return
	}
	engine, err := biome.NewEngineFromConfig(w.cfg.Biome, rng.NewRNG(effective))
	if err != nil {
		w.err = err
		return
	}
	w.err = nil
	w.engine = engine
	if w.cfg.StepsPerTick <= 0 {
		engine.Run()
	}
}

// Step advances growth by up to StepsPerTick expansions.
func (w *World) Step() {
	if w.engine == nil {
		return
	}
	for i := 0; i < w.cfg.StepsPerTick; i++ {
		if !w.engine.Step() {
			return
		}
	}
}

// Cells exposes grid values: 0 for unclaimed, palette index + 1 otherwise.
func (w *World) Cells() []uint8 {
	if w.engine == nil {
		return w.blank
	}
	return w.engine.Grid().Cells()
}

// Done reports whether every biome has stopped growing.
func (w *World) Done() bool { return w.engine == nil || w.engine.Done() }

// Err returns the configuration error from the last Reset, if any.
func (w *World) Err() error { return w.err }

// Engine exposes the growth engine of the current map.
func (w *World) Engine() *biome.Engine { return w.engine }

// Grid returns the current map, or nil before a successful Reset.
func (w *World) Grid() *biome.Grid {
	if w.engine == nil {
		return nil
	}
	return w.engine.Grid()
}

// Palette maps cell values to mean texture colours.
func (w *World) Palette() []color.RGBA { return w.palette }

func init() {
	core.Register("biomes", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
