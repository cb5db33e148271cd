package obj

import (
	"github.com/jakecoffman/cp"
)

// Camera maps world coordinates to a screen of fixed logical size. The target
// world point is drawn at the screen center, scaled by zoom pixels per unit.
type Camera struct {
	target cp.Vector

	screenW int
	screenH int
	zoom    float64
}

// NewCamera creates a camera with the given logical screen size and initial zoom.
func NewCamera(screenW, screenH int, zoom float64) *Camera {
	c := &Camera{screenW: screenW, screenH: screenH, zoom: 1}
	c.SetZoom(zoom)
	return c
}

// SetZoom updates the camera zoom.
func (c *Camera) SetZoom(z float64) {
	if z <= 0 {
		return
	}
	c.zoom = z
}

// Zoom returns the current camera zoom.
func (c *Camera) Zoom() float64 {
	return c.zoom
}

func (c *Camera) Target() cp.Vector {
	return c.target
}

func (c *Camera) SetTarget(p cp.Vector) {
	c.target = p
}

// ScreenToWorld converts a screen pixel position into world coordinates.
func (c *Camera) ScreenToWorld(x, y float64) cp.Vector {
	return cp.Vector{
		X: c.target.X + (x-float64(c.screenW)/2)/c.zoom,
		Y: c.target.Y + (y-float64(c.screenH)/2)/c.zoom,
	}
}

// WorldToScreen converts a world position into screen pixels.
func (c *Camera) WorldToScreen(p cp.Vector) (float64, float64) {
	return (p.X-c.target.X)*c.zoom + float64(c.screenW)/2,
		(p.Y-c.target.Y)*c.zoom + float64(c.screenH)/2
}

// ClampToScreen keeps a screen position inside the viewport.
func (c *Camera) ClampToScreen(x, y float64) (float64, float64) {
	return cp.Clamp(x, 0, float64(c.screenW)), cp.Clamp(y, 0, float64(c.screenH))
}
