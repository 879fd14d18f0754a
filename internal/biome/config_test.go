package biome

import (
	"errors"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestConfigValidateFailsFast(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Config)
		want error
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, ErrInvalidSize},
		{"negative height", func(c *Config) { c.Height = -2 }, ErrInvalidSize},
		{"cell count overflows", func(c *Config) { c.Width, c.Height = 1<<32, 1<<32 }, ErrInvalidSize},
		{"cell count over cap", func(c *Config) { c.Width, c.Height, c.Spacing = MaxCells+1, 1, 1 }, ErrInvalidSize},
		{"zero cell", func(c *Config) { c.CellWidth = 0 }, ErrInvalidSize},
		{"spacing zero", func(c *Config) { c.Spacing = 0 }, ErrInvalidSpacing},
		{"spacing too wide", func(c *Config) { c.Width, c.Height, c.Spacing = 4, 4, 5 }, ErrInvalidSpacing},
		{"negative quantity", func(c *Config) { c.Seeding, c.Quantity = SeedingAsymmetric, -1 }, ErrInvalidQuantity},
		{"empty palette", func(c *Config) { c.Palette = nil }, ErrInvalidPalette},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mut(&cfg)
		if err := cfg.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("%s: Validate() = %v, expected %v", tc.name, err, tc.want)
		}
		if _, err := Generate(cfg, zeroRand{}); !errors.Is(err, tc.want) {
			t.Fatalf("%s: Generate() = %v, expected %v", tc.name, err, tc.want)
		}
	}
}

func TestSpacingIgnoredInAsymmetricMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seeding = SeedingAsymmetric
	cfg.Spacing = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("asymmetric config should not check spacing: %v", err)
	}
}

func TestParseModes(t *testing.T) {
	if m, err := ParseSeedingMode("asymmetric"); err != nil || m != SeedingAsymmetric {
		t.Fatalf("ParseSeedingMode(asymmetric) = %v, %v", m, err)
	}
	if m, err := ParseGrowthMode("long"); err != nil || m != GrowthElongated {
		t.Fatalf("ParseGrowthMode(long) = %v, %v", m, err)
	}
	if a, err := ParseAdjacency("8"); err != nil || a != Adjacency8 {
		t.Fatalf("ParseAdjacency(8) = %v, %v", a, err)
	}
	if _, err := ParseSeedingMode("spiral"); err == nil {
		t.Fatal("expected error for unknown seeding mode")
	}
}
