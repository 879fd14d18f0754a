//go:build ebiten

package app

import (
	"fmt"
	"time"

	"biomegen/internal/core"
	"biomegen/internal/render"
	"biomegen/internal/sims/biomes"
	"biomegen/internal/texture"
	"biomegen/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	screenW = 1200
	screenH = 800

	minZoom  = 0.5
	maxZoom  = 1.0
	zoomStep = 0.1

	minimapScale = 1.0
)

// tiledSim is a sim whose cells can be drawn as synthesized biome tiles.
type tiledSim interface {
	core.Sim
	core.PaletteProvider
	Config() biomes.Config
}

// Game adapts a biome world to the ebiten.Game interface with a panning,
// zooming camera over the tiled map.
type Game struct {
	world   tiledSim
	tiles   *render.TilePainter
	minimap *render.GridPainter
	hud     *ui.HUD

	camX, camY float64
	zoom       float64

	paused      bool
	tickOnce    bool
	showMinimap bool
	seed        int64
}

// New constructs a Game for the provided sim. The sim must already have been
// reset and must expose a biome configuration for its tile textures.
func New(sim core.Sim, variants int, seed int64) (*Game, error) {
	world, ok := sim.(tiledSim)
	if !ok {
		return nil, fmt.Errorf("sim %q cannot be drawn as biome tiles", sim.Name())
	}
	cfg := world.Config()
	syn := texture.NewSynthesizer(seed, cfg.Grain)
	tiles, err := render.NewTilePainter(cfg.Biome.Palette, cfg.Biome.CellWidth, cfg.Biome.CellHeight, variants, syn, seed)
	if err != nil {
		return nil, err
	}
	size := world.Size()
	return &Game{
		world:   world,
		tiles:   tiles,
		minimap: render.NewGridPainter(size.W, size.H),
		hud: ui.NewHUD(world,
			"WASD pan  R/F zoom",
			"Space pause  . step",
			"Backspace reset  G new seed",
			"M minimap  H panel  Q quit"),
		zoom: maxZoom,
		seed: seed,
	}, nil
}

// Reset regenerates the map with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPeriod) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.showMinimap = !g.showMinimap
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	g.updateCamera()

	if f, ok := g.world.(core.Finisher); ok && f.Done() {
		g.tickOnce = false
	} else if !g.paused || g.tickOnce {
		g.world.Step()
		g.tickOnce = false
	}
	g.hud.Update()
	return nil
}

func (g *Game) updateCamera() {
	cfg := g.world.Config().Biome
	cam := Camera{X: g.camX, Y: g.camY, Zoom: g.zoom}
	// Held keys pan one tile every frame.
	cam = cam.Pan(axis(ebiten.KeyA, ebiten.KeyD), axis(ebiten.KeyW, ebiten.KeyS), cfg.CellWidth, cfg.CellHeight)
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		cam = cam.ZoomAbout(cam.Zoom+zoomStep, screenW/2, screenH/2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		cam = cam.ZoomAbout(cam.Zoom-zoomStep, screenW/2, screenH/2)
	}
	cam = cam.Clamp(cfg.Width*cfg.CellWidth, cfg.Height*cfg.CellHeight, screenW, screenH)
	g.camX, g.camY, g.zoom = cam.X, cam.Y, cam.Zoom
}

func axis(neg, pos ebiten.Key) int {
	d := 0
	if ebiten.IsKeyPressed(neg) {
		d--
	}
	if ebiten.IsKeyPressed(pos) {
		d++
	}
	return d
}

// Draw renders the visible part of the map and the overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(texture.Background)
	size := g.world.Size()
	g.tiles.Draw(screen, g.world.Cells(), size.W, size.H, g.camX, g.camY, g.zoom)
	if g.showMinimap {
		x := float64(screenW) - float64(size.W)*minimapScale - 8
		g.minimap.Blit(screen, g.world.Cells(), g.world.Palette(), x, 8, minimapScale)
	}
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

