// Command biomegen generates a biome map without a window and exports it as
// a PNG and/or a compressed archive.
package main

import (
	"flag"
	"log"

	"biomegen/internal/app"
	"biomegen/internal/biome"
	"biomegen/internal/export"
	"biomegen/internal/sims/biomes"
	"biomegen/internal/texture"
	"biomegen/pkg/core"
)

func main() {
	opts := app.NewConfig()
	opts.Bind(flag.CommandLine)
	pngPath := flag.String("png", "", "write the rendered map to this PNG file")
	outPath := flag.String("out", "", "write the map archive (zstd JSON) to this file")
	inPath := flag.String("in", "", "render an existing archive instead of generating")
	flag.Parse()

	if *inPath != "" {
		renderArchive(*inPath, *pngPath)
		return
	}

	cfg, err := opts.Resolve(flag.CommandLine)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg.StepsPerTick = 0

	world := biomes.NewWithConfig(cfg)
	world.Reset(cfg.Seed)
	if err := world.Err(); err != nil {
		log.Fatalf("generate: %v", err)
	}

	grid := world.Grid()
	stats := world.Engine().Stats()
	log.Printf("generated %dx%d map: seed=%d biomes=%d claimed=%d steps=%d compactness=%.3f",
		grid.Width(), grid.Height(), world.Seed(), len(stats), grid.Claimed(), world.Engine().Steps(), biome.MeanCompactness(stats))

	if *outPath != "" {
		if err := export.SaveFile(*outPath, export.NewArchive(grid, cfg.Biome, world.Seed())); err != nil {
			log.Fatalf("archive: %v", err)
		}
		log.Printf("wrote archive %s", *outPath)
	}
	if *pngPath != "" {
		writePNG(*pngPath, grid, cfg.Biome.CellWidth, cfg.Biome.CellHeight, world.Seed(), cfg.Grain)
	}
}

func renderArchive(in, pngPath string) {
	a, err := export.LoadFile(in)
	if err != nil {
		log.Fatalf("load %s: %v", in, err)
	}
	grid, err := a.Grid()
	if err != nil {
		log.Fatalf("load %s: %v", in, err)
	}
	log.Printf("loaded archive %s (%s): %dx%d seed=%d claimed=%d", in, a.ID, a.Width, a.Height, a.Seed, grid.Claimed())
	if pngPath == "" {
		return
	}
	writePNG(pngPath, grid, a.CellWidth, a.CellHeight, a.Seed, biomes.DefaultConfig().Grain)
}

func writePNG(path string, grid *biome.Grid, cellW, cellH int, seed int64, grain float64) {
	syn := texture.NewSynthesizer(seed, grain)
	if err := export.WritePNGFile(path, grid, cellW, cellH, syn, core.NewRNG(seed)); err != nil {
		log.Fatalf("png: %v", err)
	}
	log.Printf("wrote image %s", path)
}
