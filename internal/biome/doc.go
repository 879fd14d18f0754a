// Package biome partitions a rectangular grid into contiguous, irregularly
// shaped regions ("biomes"), each carrying one texture identifier.
//
// Generation is a randomized multi-source flood fill. A Seeder places biome
// origins, either on a lattice or uniformly at random, and the Engine grows
// them one cell at a time: each step picks an active biome uniformly, claims a
// uniformly chosen entry of that biome's frontier and discovers the claimed
// cell's free neighbours. A coordinate is claimed by at most one biome.
//
// Frontiers are multisets. In the default growth mode a cell bordering many
// cells of the same biome is enqueued once per bordering claim, so concave
// pockets fill quickly and biomes come out round. In elongated mode a biome
// never holds the same cell twice, which favours thin, stringy regions.
package biome
