package corner

import "github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"

// Quad is a single quadratic segment of a smoothed path.
type Quad struct {
	Ctrl geom.Point
	End  geom.Point
}

// Smooth converts a polyline into a start point plus quadratic segments for
// Bezier-style rendering: interior vertices become control points and the
// curve runs through the midpoints between them, anchored exactly at the
// first and last vertex. Both the Gio renderer and the SVG serializer build
// curved strokes from this so the exported shape matches the screen.
//
// Polylines with fewer than three vertices produce straight segments.
func Smooth(pts geom.Polyline) (geom.Point, []Quad) {
	if len(pts) == 0 {
		return geom.Point{}, nil
	}
	start := pts[0]
	if len(pts) == 1 {
		return start, nil
	}
	if len(pts) == 2 {
		// Straight line expressed as a degenerate quad
		mid := geom.Point{X: (pts[0].X + pts[1].X) / 2, Y: (pts[0].Y + pts[1].Y) / 2}
		return start, []Quad{{Ctrl: mid, End: pts[1]}}
	}

	segs := make([]Quad, 0, len(pts)-2)
	for i := 1; i < len(pts)-2; i++ {
		mid := geom.Point{
			X: (pts[i].X + pts[i+1].X) / 2,
			Y: (pts[i].Y + pts[i+1].Y) / 2,
		}
		segs = append(segs, Quad{Ctrl: pts[i], End: mid})
	}
	segs = append(segs, Quad{Ctrl: pts[len(pts)-2], End: pts[len(pts)-1]})
	return start, segs
}
