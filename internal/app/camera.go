package app

// Camera is a viewport into the map in zoomed pixel space.
type Camera struct {
	X, Y float64
	Zoom float64
}

// Pan moves the camera by (dx, dy) tiles of cellW×cellH at the current zoom.
func (c Camera) Pan(dx, dy, cellW, cellH int) Camera {
	c.X += float64(dx*cellW) * c.Zoom
	c.Y += float64(dy*cellH) * c.Zoom
	return c
}

// ZoomAbout changes the zoom, clamped to [minZoom, maxZoom], keeping the map
// point under screen position (sx, sy) fixed.
func (c Camera) ZoomAbout(zoom, sx, sy float64) Camera {
	zoom = min(max(zoom, minZoom), maxZoom)
	if c.Zoom <= 0 {
		c.Zoom = maxZoom
	}
	ratio := zoom / c.Zoom
	return Camera{
		X:    (c.X+sx)*ratio - sx,
		Y:    (c.Y+sy)*ratio - sy,
		Zoom: zoom,
	}
}

// Clamp keeps the view inside a mapW×mapH pixel map. Maps smaller than the
// view are pinned to the origin.
func (c Camera) Clamp(mapW, mapH, viewW, viewH int) Camera {
	c.X = clampAxis(c.X, float64(mapW)*c.Zoom, float64(viewW))
	c.Y = clampAxis(c.Y, float64(mapH)*c.Zoom, float64(viewH))
	return c
}

func clampAxis(v, extent, view float64) float64 {
	hi := extent - view
	if hi < 0 {
		hi = 0
	}
	return min(max(v, 0), hi)
}
