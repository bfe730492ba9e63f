package render

import (
	"math"
	"testing"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
)

func TestCameraRoundTrip(t *testing.T) {
	c := NewCamera(800, 600)
	c.CenterX, c.CenterY, c.Zoom = 123, -45, 2.5

	pts := []geom.Point{{0, 0}, {100, 200}, {-300, 50}}
	for _, p := range pts {
		sx, sy := c.CanvasToScreen(p)
		back := c.ScreenToCanvas(sx, sy)
		if math.Abs(back.X-p.X) > 1e-9 || math.Abs(back.Y-p.Y) > 1e-9 {
			t.Fatalf("round trip %v -> (%v, %v) -> %v", p, sx, sy, back)
		}
	}
}

func TestCameraPan(t *testing.T) {
	c := NewCamera(800, 600)
	c.Zoom = 2.0
	before := c.ScreenToCanvas(400, 300)

	c.Pan(100, -50)

	// Dragging right by 100 screen px shifts the view 50 canvas px left.
	after := c.ScreenToCanvas(400, 300)
	if math.Abs(after.X-(before.X-50)) > 1e-9 || math.Abs(after.Y-(before.Y+25)) > 1e-9 {
		t.Fatalf("pan moved view to %v from %v", after, before)
	}
}

func TestZoomAtKeepsCursorStationary(t *testing.T) {
	c := NewCamera(800, 600)
	under := c.ScreenToCanvas(200, 150)

	c.ZoomAt(200, 150, 1.5)

	after := c.ScreenToCanvas(200, 150)
	if math.Abs(after.X-under.X) > 1e-9 || math.Abs(after.Y-under.Y) > 1e-9 {
		t.Fatalf("point under cursor moved: %v -> %v", under, after)
	}
	if c.Zoom != 1.5 {
		t.Fatalf("zoom = %v, want 1.5", c.Zoom)
	}
}

func TestZoomClamped(t *testing.T) {
	c := NewCamera(800, 600)
	c.ZoomAt(400, 300, 1e-6)
	if c.Zoom != 0.1 {
		t.Fatalf("zoom floor = %v, want 0.1", c.Zoom)
	}
	c.ZoomAt(400, 300, 1e6)
	if c.Zoom != 100.0 {
		t.Fatalf("zoom ceiling = %v, want 100", c.Zoom)
	}
}

func TestFit(t *testing.T) {
	c := NewCamera(800, 600)
	bb := geom.BoundingBox{Min: geom.Point{X: 0, Y: 0}, Max: geom.Point{X: 400, Y: 100}}
	c.Fit(bb)

	if c.CenterX != 200 || c.CenterY != 50 {
		t.Fatalf("center = (%v, %v), want (200, 50)", c.CenterX, c.CenterY)
	}
	// Width-limited: 800*0.9/400 = 1.8 beats 600*0.9/100 = 5.4.
	if math.Abs(c.Zoom-1.8) > 1e-9 {
		t.Fatalf("zoom = %v, want 1.8", c.Zoom)
	}

	// Degenerate boxes leave the camera alone.
	prev := *c
	c.Fit(geom.NewBoundingBox())
	if *c != prev {
		t.Fatal("empty bounds must not move the camera")
	}
}

func TestVisibleBounds(t *testing.T) {
	c := NewCamera(800, 600)
	c.Zoom = 2.0
	bb := c.VisibleBounds()
	if math.Abs(bb.Width()-400) > 1e-9 || math.Abs(bb.Height()-300) > 1e-9 {
		t.Fatalf("visible area %vx%v, want 400x300", bb.Width(), bb.Height())
	}
}
