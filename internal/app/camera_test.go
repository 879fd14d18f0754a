package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCameraZoomClamped(t *testing.T) {
	c := Camera{Zoom: 1}
	assert.Equal(t, maxZoom, c.ZoomAbout(1.5, 0, 0).Zoom)
	assert.Equal(t, minZoom, c.ZoomAbout(0.1, 0, 0).Zoom)
}

func TestCameraZoomKeepsAnchor(t *testing.T) {
	c := Camera{X: 100, Y: 40, Zoom: 1}
	z := c.ZoomAbout(0.5, 600, 400)
	// Map point under the anchor: (X+sx)/Zoom.
	assert.InDelta(t, (c.X+600)/c.Zoom, (z.X+600)/z.Zoom, 1e-9)
	assert.InDelta(t, (c.Y+400)/c.Zoom, (z.Y+400)/z.Zoom, 1e-9)
}

func TestCameraClamp(t *testing.T) {
	c := Camera{X: -50, Y: 5000, Zoom: 1}.Clamp(2000, 1000, 1200, 800)
	assert.Equal(t, 0.0, c.X)
	assert.Equal(t, 200.0, c.Y)

	small := Camera{X: 30, Y: 30, Zoom: 0.5}.Clamp(400, 400, 1200, 800)
	assert.Equal(t, 0.0, small.X)
	assert.Equal(t, 0.0, small.Y)
}

func TestCameraPanPerFrame(t *testing.T) {
	c := Camera{Zoom: 0.5}
	for frame := 0; frame < 3; frame++ {
		c = c.Pan(1, 1, 32, 16).Clamp(100*32, 200*16, 1200, 800)
	}
	assert.Equal(t, 48.0, c.X)
	assert.Equal(t, 24.0, c.Y)

	c = c.Pan(-1, 0, 32, 16).Pan(0, 0, 32, 16)
	assert.Equal(t, 32.0, c.X)
	assert.Equal(t, 24.0, c.Y)
}
