package biomes

import (
	"strconv"

	"biomegen/internal/biome"
	"biomegen/internal/core"
)

// Parameters describes the world's settings and generation progress.
func (w *World) Parameters() core.ParameterSnapshot {
	b := w.cfg.Biome
	seeding := []core.Parameter{stringParam("seeding", "Seeding", b.Seeding.String())}
	if b.Seeding == biome.SeedingAsymmetric {
		seeding = append(seeding, intParam("quantity", "Quantity", b.Quantity))
	} else {
		seeding = append(seeding, intParam("spacing", "Spacing", b.Spacing))
	}
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", b.Width),
				intParam("h", "Height", b.Height),
				int64Param("seed", "Seed", w.seed),
			},
		},
		{Name: "Seeding", Params: seeding},
		{
			Name: "Growth",
			Params: []core.Parameter{
				stringParam("adjacency", "Adjacency", b.Adjacency.String()),
				stringParam("growth", "Shape", b.Growth.String()),
				intParam("steps_per_tick", "Steps per tick", w.cfg.StepsPerTick),
			},
		},
	}
	if e := w.engine; e != nil {
		groups = append(groups, core.ParameterGroup{
			Name: "Progress",
			Params: []core.Parameter{
				intParam("claimed", "Claimed", e.Claims().Claimed()),
				intParam("biomes", "Biomes", len(e.Biomes())),
				intParam("active", "Active", e.Active()),
				boolParam("done", "Done", e.Done()),
			},
		})
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
