package biomes

import (
	"strconv"
	"strings"

	"biomegen/internal/biome"
)

// Config controls the biome map sim.
type Config struct {
	Biome biome.Config

	Seed int64

	// StepsPerTick animates growth: each Step claims up to this many cells.
	// Zero generates the whole map on Reset.
	StepsPerTick int

	// Grain is the Perlin shading strength used when tiles are synthesized.
	Grain float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Biome: biome.DefaultConfig(),
		Seed:  1337,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	return Merge(DefaultConfig(), cfg)
}

// Merge overlays flag-style key/value pairs onto base. Unparseable values
// keep the base value; range checks are left to biome.Config.Validate.
func Merge(base Config, cfg map[string]string) Config {
	c := base
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Biome.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Biome.Height = parsed
		}
	}
	if v, ok := cfg["cell_w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Biome.CellWidth = parsed
		}
	}
	if v, ok := cfg["cell_h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Biome.CellHeight = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["seeding"]; ok {
		if parsed, err := biome.ParseSeedingMode(v); err == nil {
			c.Biome.Seeding = parsed
		}
	}
	if v, ok := cfg["spacing"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Biome.Spacing = parsed
		}
	}
	if v, ok := cfg["quantity"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Biome.Quantity = parsed
		}
	}
	if v, ok := cfg["diagonal"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Biome.Adjacency = biome.Adjacency4
			if parsed {
				c.Biome.Adjacency = biome.Adjacency8
			}
		}
	}
	if v, ok := cfg["long"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Biome.Growth = biome.GrowthDefault
			if parsed {
				c.Biome.Growth = biome.GrowthElongated
			}
		}
	}
	if v, ok := cfg["palette"]; ok && v != "" {
		ids := strings.Split(v, ",")
		p := make(biome.Palette, len(ids))
		for i, id := range ids {
			p[i] = biome.TextureID(strings.TrimSpace(id))
		}
		c.Biome.Palette = p
	}
	if v, ok := cfg["steps_per_tick"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.StepsPerTick = parsed
		}
	}
	if v, ok := cfg["grain"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Grain = parsed
		}
	}
	return c
}

// Values renders c as the key/value pairs Merge understands, so a resolved
// config can be handed to a registry factory unchanged.
func (c Config) Values() map[string]string {
	ids := make([]string, len(c.Biome.Palette))
	for i, id := range c.Biome.Palette {
		ids[i] = string(id)
	}
	return map[string]string{
		"w":              strconv.Itoa(c.Biome.Width),
		"h":              strconv.Itoa(c.Biome.Height),
		"cell_w":         strconv.Itoa(c.Biome.CellWidth),
		"cell_h":         strconv.Itoa(c.Biome.CellHeight),
		"seed":           strconv.FormatInt(c.Seed, 10),
		"seeding":        c.Biome.Seeding.String(),
		"spacing":        strconv.Itoa(c.Biome.Spacing),
		"quantity":       strconv.Itoa(c.Biome.Quantity),
		"diagonal":       strconv.FormatBool(c.Biome.Adjacency == biome.Adjacency8),
		"long":           strconv.FormatBool(c.Biome.Growth == biome.GrowthElongated),
		"steps_per_tick": strconv.Itoa(c.StepsPerTick),
		"grain":          strconv.FormatFloat(c.Grain, 'g', -1, 64),
		"palette":        strings.Join(ids, ","),
	}
}
