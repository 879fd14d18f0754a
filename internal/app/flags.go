package app

import (
	"flag"
	"fmt"

	"biomegen/internal/config"
	"biomegen/internal/sims/biomes"
)

// Config holds command-line options shared by the viewer and headless tools.
type Config struct {
	Sim        string
	ConfigPath string
	TPS        int
	Variants   int
}

// NewConfig returns options with their defaults.
func NewConfig() *Config {
	return &Config{Sim: "biomes", TPS: 60, Variants: 4}
}

// Bind registers the shared flags on fs. Map flags are named after the
// biomes.Merge keys so the registry factory and the CLI agree.
func (c *Config) Bind(fs *flag.FlagSet) {
	def := biomes.DefaultConfig()
	fs.StringVar(&c.Sim, "sim", c.Sim, "registered simulation to run")
	fs.StringVar(&c.ConfigPath, "config", "", "YAML config file (default $"+config.EnvPath+")")
	fs.IntVar(&c.TPS, "tps", c.TPS, "viewer ticks per second")
	fs.IntVar(&c.Variants, "variants", c.Variants, "texture variants per biome tile")

	fs.Int("w", def.Biome.Width, "map width in cells")
	fs.Int("h", def.Biome.Height, "map height in cells")
	fs.Int("cell_w", def.Biome.CellWidth, "cell width in pixels")
	fs.Int("cell_h", def.Biome.CellHeight, "cell height in pixels")
	fs.Int64("seed", def.Seed, "random seed")
	fs.String("seeding", def.Biome.Seeding.String(), "origin placement: symmetric or asymmetric")
	fs.Int("spacing", def.Biome.Spacing, "lattice spacing for symmetric seeding")
	fs.Int("quantity", def.Biome.Quantity, "origin count for asymmetric seeding")
	fs.Bool("diagonal", false, "grow into diagonal neighbours")
	fs.Bool("long", false, "elongated growth")
	fs.Int("steps_per_tick", def.StepsPerTick, "cells claimed per tick (0 generates at once)")
	fs.Float64("grain", def.Grain, "Perlin shading strength for tiles")
}

// Resolve layers defaults, the YAML file and explicitly set flags, in that
// order, and validates the result. fs must already be parsed.
func (c *Config) Resolve(fs *flag.FlagSet) (biomes.Config, error) {
	file, err := config.Load(c.ConfigPath)
	if err != nil {
		return biomes.Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err := file.Apply(biomes.DefaultConfig())
	if err != nil {
		return biomes.Config{}, fmt.Errorf("apply config: %w", err)
	}
	cfg = biomes.Merge(cfg, Overrides(fs))
	if err := cfg.Biome.Validate(); err != nil {
		return biomes.Config{}, err
	}
	return cfg, nil
}

// Overrides collects the map flags that were set explicitly on fs.
func Overrides(fs *flag.FlagSet) map[string]string {
	out := map[string]string{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "sim", "config", "tps", "variants":
			return
		}
		out[f.Name] = f.Value.String()
	})
	return out
}
