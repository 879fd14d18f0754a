package biome

import "fmt"

// GrowthMode controls frontier duplicate bookkeeping and with it the shape
// character of the biomes.
type GrowthMode uint8

const (
	// GrowthDefault keeps duplicate frontier entries, producing round biomes.
	GrowthDefault GrowthMode = iota
	// GrowthElongated keeps each cell at most once per frontier, producing
	// long, stringy biomes.
	GrowthElongated
)

func (m GrowthMode) String() string {
	if m == GrowthElongated {
		return "elongated"
	}
	return "default"
}

// ParseGrowthMode accepts "default"/"round" and "elongated"/"long".
func ParseGrowthMode(s string) (GrowthMode, error) {
	switch s {
	case "default", "round":
		return GrowthDefault, nil
	case "elongated", "long":
		return GrowthElongated, nil
	}
	return GrowthDefault, fmt.Errorf("unknown growth mode %q", s)
}

// Biome is one growing region. Its texture never changes after seeding.
type Biome struct {
	Origin  Coord
	Texture TextureID

	value    uint8
	frontier Frontier
	cells    int
}

// Cells returns how many cells the biome has claimed.
func (b *Biome) Cells() int { return b.cells }

// Frontier exposes the biome's pending candidates.
func (b *Biome) Frontier() *Frontier { return &b.frontier }

// Engine owns the complete growth state of one generation: the grid, the
// claim tracker and every biome's frontier. It is not safe for concurrent use.
type Engine struct {
	w, h      int
	adjacency Adjacency
	growth    GrowthMode

	grid    *Grid
	claims  *ClaimTracker
	biomes  []Biome
	active  []int
	holders [][]int32
	rng     Rand

	steps   int
	scratch []Coord
}

// NewEngine seeds a w×h grid with origins and prepares every biome's
// frontier. Origins are claimed in order; an origin already claimed by an
// earlier biome leaves its own biome with an empty frontier.
func NewEngine(w, h int, palette Palette, origins []Origin, adj Adjacency, growth GrowthMode, r Rand) (*Engine, error) {
	grid, err := NewGrid(w, h, palette)
	if err != nil {
		return nil, err
	}
	e := &Engine{
		w:         w,
		h:         h,
		adjacency: adj,
		growth:    growth,
		grid:      grid,
		claims:    newClaimTracker(w * h),
		biomes:    make([]Biome, len(origins)),
		active:    make([]int, len(origins)),
		holders:   make([][]int32, w*h),
		rng:       r,
		scratch:   make([]Coord, 0, 8),
	}
	for i, o := range origins {
		if !grid.InBounds(o.Coord) {
			return nil, fmt.Errorf("%w: origin %s", ErrOutOfBounds, o.Coord)
		}
		idx, ok := grid.palette.Index(o.Texture)
		if !ok {
			return nil, fmt.Errorf("%w: origin %s texture %q", ErrUnknownTexture, o.Coord, o.Texture)
		}
		e.biomes[i] = Biome{Origin: o.Coord, Texture: o.Texture, value: uint8(idx + 1)}
		e.active[i] = i
	}
	for i := range e.biomes {
		cell := e.index(e.biomes[i].Origin)
		if !e.claims.IsClaimed(cell) {
			e.claim(i, cell)
		}
	}
	return e, nil
}

// Step performs one expansion: a uniformly chosen active biome claims a
// uniformly chosen frontier entry, or is retired if its frontier is empty.
// It reports false once no active biome remains.
func (e *Engine) Step() bool {
	if len(e.active) == 0 {
		return false
	}
	slot := e.rng.IntN(len(e.active))
	b := e.active[slot]
	f := &e.biomes[b].frontier
	e.steps++
	if f.Len() == 0 {
		last := len(e.active) - 1
		e.active[slot] = e.active[last]
		e.active = e.active[:last]
		return true
	}
	e.claim(b, f.Pick(e.rng))
	return true
}

// Run steps until every frontier is exhausted and returns the finished grid.
func (e *Engine) Run() *Grid {
	for e.Step() {
	}
	return e.grid
}

// Done reports whether generation has finished.
func (e *Engine) Done() bool { return len(e.active) == 0 }

// Grid returns the grid being generated.
func (e *Engine) Grid() *Grid { return e.grid }

// Claims returns the claim tracker.
func (e *Engine) Claims() *ClaimTracker { return e.claims }

// Biomes returns every biome in seed order.
func (e *Engine) Biomes() []Biome { return e.biomes }

// Active returns the number of biomes that have not been retired.
func (e *Engine) Active() int { return len(e.active) }

// Steps returns how many expansion steps have run, retirements included.
func (e *Engine) Steps() int { return e.steps }

func (e *Engine) index(c Coord) int { return c.Y*e.w + c.X }

// claim is the single linearization point for ownership: the cell leaves
// every frontier holding it before it is written to the grid.
func (e *Engine) claim(b, cell int) {
	for _, holder := range e.holders[cell] {
		e.biomes[holder].frontier.RemoveAll(cell)
	}
	e.holders[cell] = nil

	biome := &e.biomes[b]
	e.claims.claim(cell, b)
	e.grid.setIndex(cell, biome.value)
	biome.cells++

	c := Coord{X: cell % e.w, Y: cell / e.w}
	e.scratch = neighbors(e.scratch[:0], c, e.w, e.h, e.adjacency)
	for _, n := range e.scratch {
		ni := e.index(n)
		if e.claims.IsClaimed(ni) {
			continue
		}
		held := biome.frontier.Count(ni)
		if held > 0 && e.growth == GrowthElongated {
			continue
		}
		if held == 0 {
			e.holders[ni] = append(e.holders[ni], int32(b))
		}
		biome.frontier.Add(ni)
		e.claims.discover(ni)
	}
}
