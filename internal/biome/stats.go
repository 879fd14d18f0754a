package biome

// BiomeStats summarises the region one biome ended up with.
type BiomeStats struct {
	Origin  Coord
	Texture TextureID
	Cells   int

	MinX, MinY, MaxX, MaxY int
}

// BoundingArea returns the area of the biome's bounding box.
func (s BiomeStats) BoundingArea() int {
	if s.Cells == 0 {
		return 0
	}
	return (s.MaxX - s.MinX + 1) * (s.MaxY - s.MinY + 1)
}

// Compactness is claimed area over bounding-box area, in (0, 1]. Round
// blobs score high, thin diagonal strands score low.
func (s BiomeStats) Compactness() float64 {
	area := s.BoundingArea()
	if area == 0 {
		return 0
	}
	return float64(s.Cells) / float64(area)
}

// Stats returns per-biome statistics in seed order.
func (e *Engine) Stats() []BiomeStats {
	out := make([]BiomeStats, len(e.biomes))
	for i, b := range e.biomes {
		out[i] = BiomeStats{Origin: b.Origin, Texture: b.Texture, MinX: e.w, MinY: e.h, MaxX: -1, MaxY: -1}
	}
	for cell, owner := range e.claims.owner {
		if owner == unowned {
			continue
		}
		s := &out[owner]
		x, y := cell%e.w, cell/e.w
		s.Cells++
		s.MinX = min(s.MinX, x)
		s.MinY = min(s.MinY, y)
		s.MaxX = max(s.MaxX, x)
		s.MaxY = max(s.MaxY, y)
	}
	return out
}

// MeanCompactness averages Compactness over biomes that claimed any cells.
func MeanCompactness(stats []BiomeStats) float64 {
	var sum float64
	n := 0
	for _, s := range stats {
		if s.Cells == 0 {
			continue
		}
		sum += s.Compactness()
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
