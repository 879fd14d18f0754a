//go:build ebiten

package ui

import (
	"image/color"

	"biomegen/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 8
	lineHeight   = 15
	panelWidth   = 190
)

// HUD renders a translucent status panel in the top-left corner. H toggles it.
type HUD struct {
	sim     core.Sim
	visible bool
	lines   []string
	help    []string
	pixel   *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim, help ...string) *HUD {
	h := &HUD{sim: sim, visible: true, help: help}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() {
	if h == nil {
		return
	}
	h.visible = !h.visible
}

// Update refreshes the cached parameter text from the simulation.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.lines = []string{h.sim.Name()}
		return
	}
	h.lines = Lines(provider.Parameters())
}

// Draw renders the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible {
		return
	}
	rows := len(h.lines) + len(h.help)
	if len(h.help) > 0 {
		rows++
	}
	height := rows*lineHeight + 2*panelPadding

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(panelWidth, float64(height))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 16, G: 16, B: 22, A: 200})
	screen.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	y := panelPadding + 11
	for _, line := range h.lines {
		text.Draw(screen, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		y += lineHeight
	}
	if len(h.help) == 0 {
		return
	}
	y += lineHeight
	for _, line := range h.help {
		text.Draw(screen, line, face, panelPadding, y, color.RGBA{R: 150, G: 150, B: 165, A: 255})
		y += lineHeight
	}
}
