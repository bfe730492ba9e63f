// Package corner transforms routed polylines into renderable point sequences
// under a selected corner treatment. The stored polyline is never modified;
// every transform returns a fresh sequence, and the first and last vertices
// (node anchor positions) always pass through unchanged.
package corner

import (
	"math"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
)

// Style selects a corner treatment for interior vertices of a polyline.
// It is a closed set: exactly Linear, Chamfer, Fillet and Bezier implement it.
type Style interface {
	isStyle()
}

// Linear leaves the polyline untouched.
type Linear struct{}

// Chamfer replaces each interior vertex with a straight bevel cut. Length is
// the offset along each adjacent segment in canvas pixels. Callers are
// responsible for keeping Length well below the local segment length;
// the transform does not clamp it.
type Chamfer struct {
	Length float64
}

// Fillet replaces each interior vertex with a circular arc of fixed radius
// tangent to both adjacent segments.
type Fillet struct {
	Radius float64
}

// Bezier marks the polyline for curved interpolation at render time. The
// point sequence passes through identical to Linear so that length and
// resistance calculations always see the true polyline.
type Bezier struct{}

func (Linear) isStyle()  {}
func (Chamfer) isStyle() {}
func (Fillet) isStyle()  {}
func (Bezier) isStyle()  {}

// Curved reports whether the style delegates interpolation to the renderer.
func Curved(s Style) bool {
	_, ok := s.(Bezier)
	return ok
}

// minArcSegments is the floor on arc discretization.
const minArcSegments = 4

// arcResolution is the angular sweep covered by one arc segment at most.
const arcResolution = math.Pi / 12 // 15 degrees

// degenerateEps guards divisions by near-zero segment lengths and bisectors.
const degenerateEps = 1e-9

// Apply transforms a polyline under the given style and returns a new point
// sequence. Polylines with fewer than three vertices have no interior
// corners and come back as a plain copy.
func Apply(pts geom.Polyline, style Style) geom.Polyline {
	if len(pts) < 3 {
		return pts.Clone()
	}
	switch s := style.(type) {
	case Chamfer:
		return applyChamfer(pts, s.Length)
	case Fillet:
		return applyFillet(pts, s.Radius)
	default: // Linear, Bezier, nil
		return pts.Clone()
	}
}

// applyChamfer bevels each interior vertex by emitting two points offset
// along the directions toward its neighbors.
func applyChamfer(pts geom.Polyline, length float64) geom.Polyline {
	out := make(geom.Polyline, 0, 2*len(pts))
	out = append(out, pts[0])

	for i := 1; i < len(pts)-1; i++ {
		prev, v, next := pts[i-1], pts[i], pts[i+1]

		lenPrev := v.Distance(prev)
		lenNext := v.Distance(next)
		if lenPrev < degenerateEps || lenNext < degenerateEps || length <= 0 {
			// Zero-length adjacent segment: pass the vertex through
			out = append(out, v)
			continue
		}

		out = append(out, geom.Point{
			X: v.X + (prev.X-v.X)/lenPrev*length,
			Y: v.Y + (prev.Y-v.Y)/lenPrev*length,
		})
		out = append(out, geom.Point{
			X: v.X + (next.X-v.X)/lenNext*length,
			Y: v.Y + (next.Y-v.Y)/lenNext*length,
		})
	}

	out = append(out, pts[len(pts)-1])
	return out
}

// applyFillet rounds each interior vertex with a tangent arc of the given
// radius, discretized at 15 degrees per segment or better.
func applyFillet(pts geom.Polyline, radius float64) geom.Polyline {
	out := make(geom.Polyline, 0, 4*len(pts))
	out = append(out, pts[0])

	for i := 1; i < len(pts)-1; i++ {
		prev, v, next := pts[i-1], pts[i], pts[i+1]

		lenPrev := v.Distance(prev)
		lenNext := v.Distance(next)
		if lenPrev < degenerateEps || lenNext < degenerateEps || radius <= 0 {
			out = append(out, v)
			continue
		}

		// Unit vectors from the vertex toward each neighbor
		u1 := geom.Point{X: (prev.X - v.X) / lenPrev, Y: (prev.Y - v.Y) / lenPrev}
		u2 := geom.Point{X: (next.X - v.X) / lenNext, Y: (next.Y - v.Y) / lenNext}

		// Turn angle between the segments, clamped to guard acos overshoot
		dot := u1.X*u2.X + u1.Y*u2.Y
		if dot > 1 {
			dot = 1
		} else if dot < -1 {
			dot = -1
		}
		theta := math.Acos(dot)

		// Collinear straight-through (theta near pi) makes the bisector
		// vanish; collinear reversal (theta near 0) makes the tangent
		// offset blow up. Both pass the vertex through unmodified.
		bisX, bisY := u1.X+u2.X, u1.Y+u2.Y
		bisLen := math.Hypot(bisX, bisY)
		if bisLen < degenerateEps || theta < degenerateEps || math.Pi-theta < 1e-6 {
			out = append(out, v)
			continue
		}

		half := theta / 2
		tangentDist := radius / math.Tan(half)
		centerDist := radius / math.Sin(half)

		t1 := geom.Point{X: v.X + u1.X*tangentDist, Y: v.Y + u1.Y*tangentDist}
		t2 := geom.Point{X: v.X + u2.X*tangentDist, Y: v.Y + u2.Y*tangentDist}
		center := geom.Point{
			X: v.X + bisX/bisLen*centerDist,
			Y: v.Y + bisY/bisLen*centerDist,
		}

		a1 := math.Atan2(t1.Y-center.Y, t1.X-center.X)
		a2 := math.Atan2(t2.Y-center.Y, t2.X-center.X)

		// Take the shorter angular sweep
		sweep := a2 - a1
		for sweep > math.Pi {
			sweep -= 2 * math.Pi
		}
		for sweep <= -math.Pi {
			sweep += 2 * math.Pi
		}

		segments := int(math.Ceil(math.Abs(sweep) / arcResolution))
		if segments < minArcSegments {
			segments = minArcSegments
		}

		for k := 0; k <= segments; k++ {
			a := a1 + sweep*float64(k)/float64(segments)
			out = append(out, geom.Point{
				X: center.X + radius*math.Cos(a),
				Y: center.Y + radius*math.Sin(a),
			})
		}
	}

	out = append(out, pts[len(pts)-1])
	return out
}
