package biome

import (
	"slices"
	"testing"

	"biomegen/pkg/core"
)

func TestSymmetricSeedingFillsGrid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 4
	cfg.Height = 4
	cfg.Spacing = 2
	cfg.Palette = Palette{"ONLY"}

	e, err := NewEngineFromConfig(cfg, core.NewRNG(3))
	if err != nil {
		t.Fatalf("NewEngineFromConfig: %v", err)
	}
	origins := []Coord{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 0}, {X: 2, Y: 2}}
	for i, b := range e.Biomes() {
		if b.Origin != origins[i] {
			t.Fatalf("biome %d origin %s, expected %s", i, b.Origin, origins[i])
		}
	}

	grid := e.Run()
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			id, ok := grid.At(Coord{X: x, Y: y})
			if !ok || id != "ONLY" {
				t.Fatalf("cell (%d,%d) = %q,%v, expected ONLY,true", x, y, id, ok)
			}
		}
	}
}

func TestAsymmetricSingleSeedClaimsEverything(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 5
	cfg.Height = 5
	cfg.Seeding = SeedingAsymmetric
	cfg.Quantity = 1

	e, err := NewEngineFromConfig(cfg, core.NewRNG(11))
	if err != nil {
		t.Fatalf("NewEngineFromConfig: %v", err)
	}
	want := e.Biomes()[0].Texture
	grid := e.Run()
	if got := grid.Claimed(); got != 25 {
		t.Fatalf("claimed %d cells, expected 25", got)
	}
	grid.Each(func(c Coord, id TextureID) {
		if id != want {
			t.Fatalf("cell %s has %q, expected origin texture %q", c, id, want)
		}
	})
}

func TestDuplicateOriginsSingleWinner(t *testing.T) {
	origins := []Origin{
		{Coord: Coord{X: 2, Y: 2}, Texture: "A"},
		{Coord: Coord{X: 2, Y: 2}, Texture: "B"},
	}
	e, err := NewEngine(5, 5, Palette{"A", "B"}, origins, Adjacency4, GrowthDefault, core.NewRNG(5))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if got := e.Biomes()[1].Frontier().Len(); got != 0 {
		t.Fatalf("duplicate origin frontier len %d, expected 0", got)
	}
	grid := e.Run()
	if id, _ := grid.At(Coord{X: 2, Y: 2}); id != "A" {
		t.Fatalf("shared origin cell = %q, expected A", id)
	}
	if got := e.Biomes()[1].Cells(); got != 0 {
		t.Fatalf("losing biome claimed %d cells, expected 0", got)
	}
	if got := grid.Claimed(); got != 25 {
		t.Fatalf("claimed %d cells, expected 25", got)
	}
}

func TestDefaultModeAccumulatesDuplicates(t *testing.T) {
	counts := map[GrowthMode]int{}
	for _, mode := range []GrowthMode{GrowthDefault, GrowthElongated} {
		e, err := NewEngine(3, 3, Palette{"A"}, []Origin{{Coord: Coord{}, Texture: "A"}}, Adjacency4, mode, zeroRand{})
		if err != nil {
			t.Fatalf("NewEngine: %v", err)
		}
		// Claims (1,0) then (0,1); both border (1,1).
		e.Step()
		e.Step()
		if _, ok := e.Grid().At(Coord{X: 0, Y: 1}); !ok {
			t.Fatalf("%s: expected (0,1) to be claimed after two steps", mode)
		}
		counts[mode] = e.Biomes()[0].Frontier().Count(1*3 + 1)
	}
	if counts[GrowthDefault] != 2 {
		t.Fatalf("default mode holds (1,1) %d times, expected 2", counts[GrowthDefault])
	}
	if counts[GrowthElongated] != 1 {
		t.Fatalf("elongated mode holds (1,1) %d times, expected 1", counts[GrowthElongated])
	}
}

func TestDiagonalAdjacencyDiscoversCorners(t *testing.T) {
	origin := []Origin{{Coord: Coord{X: 1, Y: 1}, Texture: "A"}}
	e4, _ := NewEngine(3, 3, Palette{"A"}, origin, Adjacency4, GrowthDefault, zeroRand{})
	e8, _ := NewEngine(3, 3, Palette{"A"}, origin, Adjacency8, GrowthDefault, zeroRand{})

	if got := e4.Biomes()[0].Frontier().Len(); got != 4 {
		t.Fatalf("4-connected origin frontier len %d, expected 4", got)
	}
	got := e8.Biomes()[0].Frontier().Cells()
	want := []int{3, 1, 5, 7, 0, 6, 2, 8}
	if !slices.Equal(got, want) {
		t.Fatalf("8-connected discovery order %v, expected %v", got, want)
	}
}

func TestGenerationInvariants(t *testing.T) {
	configs := []struct {
		name string
		mut  func(*Config)
	}{
		{"symmetric-default", func(c *Config) {}},
		{"symmetric-elongated-diagonal", func(c *Config) {
			c.Growth = GrowthElongated
			c.Adjacency = Adjacency8
		}},
		{"asymmetric-default", func(c *Config) {
			c.Seeding = SeedingAsymmetric
			c.Quantity = 9
		}},
		{"asymmetric-crowded-elongated", func(c *Config) {
			c.Seeding = SeedingAsymmetric
			c.Quantity = 300
			c.Growth = GrowthElongated
		}},
	}

	for _, tc := range configs {
		cfg := DefaultConfig()
		cfg.Width = 17
		cfg.Height = 13
		cfg.Spacing = 4
		tc.mut(&cfg)

		e, err := NewEngineFromConfig(cfg, core.NewRNG(21))
		if err != nil {
			t.Fatalf("%s: NewEngineFromConfig: %v", tc.name, err)
		}
		total := cfg.Width * cfg.Height
		prevClaimed, prevPassed := e.Claims().Claimed(), e.Claims().Passed()
		for e.Step() {
			claimed, passed := e.Claims().Claimed(), e.Claims().Passed()
			if claimed < prevClaimed || passed < prevPassed {
				t.Fatalf("%s: tracker shrank: claimed %d->%d passed %d->%d", tc.name, prevClaimed, claimed, prevPassed, passed)
			}
			if claimed > passed || passed > total {
				t.Fatalf("%s: claimed=%d passed=%d total=%d", tc.name, claimed, passed, total)
			}
			if claimed-prevClaimed > 1 {
				t.Fatalf("%s: one step claimed %d cells", tc.name, claimed-prevClaimed)
			}
			prevClaimed, prevPassed = claimed, passed
			assertFrontiersUnclaimed(t, tc.name, e, cfg.Growth)
		}
		if limit := total + len(e.Biomes()); e.Steps() > limit {
			t.Fatalf("%s: took %d steps, bound is %d", tc.name, e.Steps(), limit)
		}

		sum := 0
		for _, b := range e.Biomes() {
			sum += b.Cells()
		}
		if sum != e.Claims().Claimed() || sum != e.Grid().Claimed() {
			t.Fatalf("%s: biome cells %d, tracker %d, grid %d disagree", tc.name, sum, e.Claims().Claimed(), e.Grid().Claimed())
		}
		for i, v := range e.Grid().Cells() {
			owner := e.Claims().Owner(i)
			if owner < 0 {
				if v != 0 {
					t.Fatalf("%s: unowned cell %d holds texture value %d", tc.name, i, v)
				}
				continue
			}
			got := e.Grid().Palette()[v-1]
			if want := e.Biomes()[owner].Texture; got != want {
				t.Fatalf("%s: cell %d has %q, owner %d spreads %q", tc.name, i, got, owner, want)
			}
		}
	}
}

func assertFrontiersUnclaimed(t *testing.T, name string, e *Engine, mode GrowthMode) {
	t.Helper()
	for bi := range e.Biomes() {
		f := e.Biomes()[bi].Frontier()
		for _, cell := range f.Cells() {
			if e.Claims().IsClaimed(cell) {
				t.Fatalf("%s: biome %d frontier still holds claimed cell %d", name, bi, cell)
			}
			if mode == GrowthElongated && f.Count(cell) > 1 {
				t.Fatalf("%s: elongated biome %d holds cell %d %d times", name, bi, cell, f.Count(cell))
			}
		}
	}
}

func TestGenerationDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 40
	cfg.Height = 30
	cfg.Seeding = SeedingAsymmetric
	cfg.Quantity = 12

	first, err := Generate(cfg, core.NewRNG(1234))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	second, err := Generate(cfg, core.NewRNG(1234))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !slices.Equal(first.Cells(), second.Cells()) {
		t.Fatal("same seed produced different grids")
	}

	other, _ := Generate(cfg, core.NewRNG(4321))
	if slices.Equal(first.Cells(), other.Cells()) {
		t.Fatal("different seeds should produce different grids")
	}
}

func TestGenerationReplaysRecordedDraws(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 20
	cfg.Height = 20
	cfg.Spacing = 5
	cfg.Growth = GrowthElongated

	rec := &recordingRand{rng: core.NewRNG(77)}
	recorded, err := Generate(cfg, rec)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	replayed, err := Generate(cfg, &replayRand{draws: rec.draws})
	if err != nil {
		t.Fatalf("Generate replay: %v", err)
	}
	if !slices.Equal(recorded.Cells(), replayed.Cells()) {
		t.Fatal("replaying the recorded draws produced a different grid")
	}
}

func TestElongatedBiomesLessCompact(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical shape comparison skipped in short mode")
	}
	const runs = 1000
	cfg := DefaultConfig()
	cfg.Width = 24
	cfg.Height = 24
	cfg.Spacing = 6

	mean := func(mode GrowthMode) float64 {
		c := cfg
		c.Growth = mode
		var sum float64
		for seed := int64(0); seed < runs; seed++ {
			e, err := NewEngineFromConfig(c, core.NewRNG(seed))
			if err != nil {
				t.Fatalf("NewEngineFromConfig: %v", err)
			}
			e.Run()
			sum += MeanCompactness(e.Stats())
		}
		return sum / runs
	}

	round := mean(GrowthDefault)
	long := mean(GrowthElongated)
	if long >= round {
		t.Fatalf("elongated compactness %.4f not below default %.4f", long, round)
	}
}

func TestStatsCompactness(t *testing.T) {
	s := BiomeStats{Cells: 3, MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}
	if got := s.Compactness(); got != 0.75 {
		t.Fatalf("Compactness() = %f, expected 0.75", got)
	}
	if got := (BiomeStats{}).Compactness(); got != 0 {
		t.Fatalf("empty biome compactness = %f, expected 0", got)
	}
	if got := MeanCompactness([]BiomeStats{s, {}, {Cells: 1, MinX: 2, MinY: 2, MaxX: 2, MaxY: 2}}); got != 0.875 {
		t.Fatalf("MeanCompactness = %f, expected 0.875", got)
	}
}
