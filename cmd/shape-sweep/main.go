package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"biomegen/internal/biome"
	"biomegen/pkg/core"
)

type scenario struct {
	size      int
	spacing   int
	adjacency biome.Adjacency
	growth    biome.GrowthMode
}

func (s scenario) String() string {
	return fmt.Sprintf("%3dx%-3d spacing=%-2d %s %s", s.size, s.size, s.spacing, s.adjacency, s.growth)
}

type scenarioResult struct {
	scenario    scenario
	runs        int
	compactness float64
	minCompact  float64
	maxCompact  float64
	meanSteps   float64
}

func main() {
	runs := flag.Int("runs", 200, "seeds per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 1, "first seed")
	flag.Parse()

	var sets []scenario
	for _, size := range []int{24, 48, 96} {
		for _, spacing := range []int{4, 6, 8, 12} {
			for _, adj := range []biome.Adjacency{biome.Adjacency4, biome.Adjacency8} {
				for _, growth := range []biome.GrowthMode{biome.GrowthDefault, biome.GrowthElongated} {
					sets = append(sets, scenario{size: size, spacing: spacing, adjacency: adj, growth: growth})
				}
			}
		}
	}

	fmt.Printf("Sweeping %d scenarios (%d workers, %d runs each)\n", len(sets), *workers, *runs)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(sc, *seed, *runs)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range sets {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		a, b := all[i].scenario, all[j].scenario
		if a.size != b.size {
			return a.size < b.size
		}
		if a.spacing != b.spacing {
			return a.spacing < b.spacing
		}
		if a.adjacency != b.adjacency {
			return a.adjacency < b.adjacency
		}
		return a.growth < b.growth
	})

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for _, res := range all {
		fmt.Printf("%s  compact=%.3f [%.3f, %.3f] steps=%.0f\n",
			res.scenario, res.compactness, res.minCompact, res.maxCompact, res.meanSteps)
	}

	fmt.Println("\nElongated minus default (negative means longer shapes):")
	for i := 0; i+1 < len(all); i += 2 {
		def, long := all[i], all[i+1]
		fmt.Printf("%3dx%-3d spacing=%-2d %s  delta=%+.3f\n",
			def.scenario.size, def.scenario.size, def.scenario.spacing, def.scenario.adjacency, long.compactness-def.compactness)
	}
}

func runScenario(sc scenario, firstSeed int64, runs int) scenarioResult {
	cfg := biome.DefaultConfig()
	cfg.Width, cfg.Height = sc.size, sc.size
	cfg.Spacing = sc.spacing
	cfg.Adjacency = sc.adjacency
	cfg.Growth = sc.growth

	res := scenarioResult{scenario: sc, minCompact: 1}
	var total, steps float64
	for i := 0; i < runs; i++ {
		engine, err := biome.NewEngineFromConfig(cfg, core.NewRNG(firstSeed+int64(i)))
		if err != nil {
			fmt.Printf("%s: %v\n", sc, err)
			return res
		}
		engine.Run()
		c := biome.MeanCompactness(engine.Stats())
		total += c
		steps += float64(engine.Steps())
		res.minCompact = min(res.minCompact, c)
		res.maxCompact = max(res.maxCompact, c)
		res.runs++
	}
	if res.runs > 0 {
		res.compactness = total / float64(res.runs)
		res.meanSteps = steps / float64(res.runs)
	}
	return res
}
