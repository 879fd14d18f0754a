package biome

import "biomegen/pkg/core"

// zeroRand always draws the first option.
type zeroRand struct{}

func (zeroRand) IntN(int) int { return 0 }

// recordingRand forwards to an RNG and remembers every draw.
type recordingRand struct {
	rng   *core.RNG
	draws []int
}

func (r *recordingRand) IntN(n int) int {
	v := r.rng.IntN(n)
	r.draws = append(r.draws, v)
	return v
}

// replayRand returns a fixed sequence of draws.
type replayRand struct {
	draws []int
	pos   int
}

func (r *replayRand) IntN(int) int {
	v := r.draws[r.pos]
	r.pos++
	return v
}
