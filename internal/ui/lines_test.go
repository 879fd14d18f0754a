package ui

import (
	"slices"
	"testing"

	"biomegen/internal/core"
)

func TestLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "World", Params: []core.Parameter{{Label: "Width", Value: "8"}, {Label: "Seed", Value: "3"}}},
		{Name: "Growth"},
	}}
	want := []string{"WORLD", "  Width: 8", "  Seed: 3", "GROWTH"}
	if got := Lines(snap); !slices.Equal(got, want) {
		t.Fatalf("Lines = %q, expected %q", got, want)
	}
}
