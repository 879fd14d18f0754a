// Package config loads biome map settings from YAML files.
package config

import (
	"fmt"
	"os"

	"biomegen/internal/biome"
	"biomegen/internal/sims/biomes"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable consulted when no path is given.
const EnvPath = "BIOMEGEN_CONFIG"

// File mirrors the YAML layout. Absent keys leave defaults untouched.
type File struct {
	Seed *int64 `yaml:"seed"`

	Width      *int `yaml:"width"`
	Height     *int `yaml:"height"`
	CellWidth  *int `yaml:"cell_width"`
	CellHeight *int `yaml:"cell_height"`

	Seeding  *string `yaml:"seeding"`
	Spacing  *int    `yaml:"spacing"`
	Quantity *int    `yaml:"quantity"`

	Diagonal *bool `yaml:"diagonal"`
	Long     *bool `yaml:"long"`

	StepsPerTick *int     `yaml:"steps_per_tick"`
	Grain        *float64 `yaml:"grain"`

	Palette []string `yaml:"palette"`
}

// Load reads a YAML config file. An empty path falls back to $BIOMEGEN_CONFIG;
// if that is unset too, Load returns nil, nil and callers keep defaults.
func Load(path string) (*File, error) {
	if path == "" {
		path = os.Getenv(EnvPath)
		if path == "" {
			return nil, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML config data.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &f, nil
}

// Apply overlays the file onto base. A nil file returns base unchanged.
func (f *File) Apply(base biomes.Config) (biomes.Config, error) {
	c := base
	if f == nil {
		return c, nil
	}
	setInt64(&c.Seed, f.Seed)
	setInt(&c.Biome.Width, f.Width)
	setInt(&c.Biome.Height, f.Height)
	setInt(&c.Biome.CellWidth, f.CellWidth)
	setInt(&c.Biome.CellHeight, f.CellHeight)
	setInt(&c.Biome.Spacing, f.Spacing)
	setInt(&c.Biome.Quantity, f.Quantity)
	setInt(&c.StepsPerTick, f.StepsPerTick)
	if f.Grain != nil {
		c.Grain = *f.Grain
	}
	if f.Seeding != nil {
		mode, err := biome.ParseSeedingMode(*f.Seeding)
		if err != nil {
			return base, err
		}
		c.Biome.Seeding = mode
	}
	if f.Diagonal != nil {
		c.Biome.Adjacency = biome.Adjacency4
		if *f.Diagonal {
			c.Biome.Adjacency = biome.Adjacency8
		}
	}
	if f.Long != nil {
		c.Biome.Growth = biome.GrowthDefault
		if *f.Long {
			c.Biome.Growth = biome.GrowthElongated
		}
	}
	if len(f.Palette) > 0 {
		p := make(biome.Palette, len(f.Palette))
		for i, id := range f.Palette {
			p[i] = biome.TextureID(id)
		}
		c.Biome.Palette = p
	}
	return c, nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setInt64(dst *int64, v *int64) {
	if v != nil {
		*dst = *v
	}
}
