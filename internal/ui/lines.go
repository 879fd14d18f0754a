package ui

import (
	"strings"

	"biomegen/internal/core"
)

// Lines flattens a parameter snapshot into HUD text rows: one header per
// group followed by "label: value" rows.
func Lines(snap core.ParameterSnapshot) []string {
	var out []string
	for _, g := range snap.Groups {
		out = append(out, strings.ToUpper(g.Name))
		for _, p := range g.Params {
			out = append(out, "  "+p.Label+": "+p.Value)
		}
	}
	return out
}
