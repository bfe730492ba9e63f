// Package render draws a sketch onto a Gio surface. It consumes the display
// point sequences produced by the corner engine; the shape graph itself
// knows nothing about rendering.
package render

import (
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
)

// Camera represents a viewport onto the sketch canvas.
type Camera struct {
	// Center position in canvas coordinates (pixels)
	CenterX float64
	CenterY float64

	// Zoom level (screen pixels per canvas pixel)
	Zoom float64

	// Screen dimensions (pixels)
	ScreenWidth  int
	ScreenHeight int
}

// NewCamera creates a camera with default settings.
func NewCamera(screenWidth, screenHeight int) *Camera {
	return &Camera{
		Zoom:         1.0,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		CenterX:      float64(screenWidth) / 2.0,
		CenterY:      float64(screenHeight) / 2.0,
	}
}

// CanvasToScreen converts canvas coordinates to screen coordinates.
func (c *Camera) CanvasToScreen(p geom.Point) (float64, float64) {
	x := (p.X-c.CenterX)*c.Zoom + float64(c.ScreenWidth)/2.0
	y := (p.Y-c.CenterY)*c.Zoom + float64(c.ScreenHeight)/2.0
	return x, y
}

// ScreenToCanvas converts screen coordinates to canvas coordinates.
func (c *Camera) ScreenToCanvas(screenX, screenY float64) geom.Point {
	return geom.Point{
		X: (screenX-float64(c.ScreenWidth)/2.0)/c.Zoom + c.CenterX,
		Y: (screenY-float64(c.ScreenHeight)/2.0)/c.Zoom + c.CenterY,
	}
}

// Pan moves the camera by screen pixel offsets.
func (c *Camera) Pan(deltaX, deltaY float64) {
	c.CenterX -= deltaX / c.Zoom
	c.CenterY -= deltaY / c.Zoom
}

// ZoomAt zooms in or out at a specific screen position.
// factor > 1 zooms in, factor < 1 zooms out.
func (c *Camera) ZoomAt(screenX, screenY, factor float64) {
	before := c.ScreenToCanvas(screenX, screenY)

	c.Zoom *= factor
	if c.Zoom < 0.1 {
		c.Zoom = 0.1
	}
	if c.Zoom > 100.0 {
		c.Zoom = 100.0
	}

	after := c.ScreenToCanvas(screenX, screenY)

	// Keep the point under the cursor stationary
	c.CenterX += before.X - after.X
	c.CenterY += before.Y - after.Y
}

// Fit adjusts the camera to show the entire content with some padding.
func (c *Camera) Fit(bb geom.BoundingBox) {
	if bb.IsEmpty() || bb.Width() <= 0 || bb.Height() <= 0 {
		return
	}

	center := bb.Center()
	c.CenterX = center.X
	c.CenterY = center.Y

	zoomX := float64(c.ScreenWidth) * 0.9 / bb.Width()
	zoomY := float64(c.ScreenHeight) * 0.9 / bb.Height()
	if zoomX < zoomY {
		c.Zoom = zoomX
	} else {
		c.Zoom = zoomY
	}
}

// UpdateScreenSize updates the camera when the window is resized.
func (c *Camera) UpdateScreenSize(width, height int) {
	c.ScreenWidth = width
	c.ScreenHeight = height
}

// VisibleBounds returns the canvas-coordinate bounding box of the visible
// area, for culling off-screen elements.
func (c *Camera) VisibleBounds() geom.BoundingBox {
	bb := geom.NewBoundingBox()
	bb.Expand(c.ScreenToCanvas(0, 0))
	bb.Expand(c.ScreenToCanvas(float64(c.ScreenWidth), float64(c.ScreenHeight)))
	return bb
}
