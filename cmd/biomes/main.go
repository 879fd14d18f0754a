//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"biomegen/internal/app"
	"biomegen/internal/core"
	_ "biomegen/internal/sims/biomes"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	opts := app.NewConfig()
	opts.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := opts.Resolve(flag.CommandLine)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	factory, ok := core.Sims()[opts.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", opts.Sim)
	}

	sim := factory(cfg.Values())
	sim.Reset(cfg.Seed)
	if e, ok := sim.(interface{ Err() error }); ok && e.Err() != nil {
		log.Fatalf("generate: %v", e.Err())
	}

	game, err := app.New(sim, opts.Variants, cfg.Seed)
	if err != nil {
		log.Fatalf("textures: %v", err)
	}

	ebiten.SetWindowTitle("biomegen - " + sim.Name())
	ebiten.SetTPS(opts.TPS)
	ebiten.SetWindowSize(1200, 800)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
