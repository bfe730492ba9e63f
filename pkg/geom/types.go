// Package geom provides shared 2D geometry types for the sketch toolkit.
// Coordinates are canvas pixels; the canvas has a fixed physical scale so
// pixel geometry maps 1:1 onto real-world dimensions.
package geom

import "math"

// Physical scale constants
// The canvas is calibrated so one pixel equals one millimeter.
const (
	PixelsPerMM = 1.0  // Canvas pixels per millimeter
	PixelsPerCM = 10.0 // Canvas pixels per centimeter
	MMPerPixel  = 1.0 / PixelsPerMM
	MetersPerMM = 1e-3 // Convert mm to meters (multiply by this)
	MMPerMeter  = 1e3  // Convert meters to mm (multiply by this)
)

// DefaultGridMM is the default grid step in millimeters. Grid spacing is
// always derived from the physical scale, never a free pixel count.
const DefaultGridMM = 5.0

// DefaultGridSpacing is the default grid step in canvas pixels.
const DefaultGridSpacing = DefaultGridMM * PixelsPerMM

// Point represents a 2D coordinate in canvas pixels.
type Point struct {
	X float64
	Y float64
}

// Distance returns the Euclidean distance to another point.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Polyline is an ordered sequence of vertices.
type Polyline []Point

// Clone returns an independent copy of the polyline.
func (pl Polyline) Clone() Polyline {
	if pl == nil {
		return nil
	}
	out := make(Polyline, len(pl))
	copy(out, pl)
	return out
}

// Length returns the summed segment lengths in canvas pixels.
func (pl Polyline) Length() float64 {
	var total float64
	for i := 1; i < len(pl); i++ {
		total += pl[i-1].Distance(pl[i])
	}
	return total
}

// Closed reports whether the polyline's last vertex equals its first.
func (pl Polyline) Closed() bool {
	if len(pl) < 3 {
		return false
	}
	return pl[0] == pl[len(pl)-1]
}

// Bounds returns the bounding box of all vertices.
func (pl Polyline) Bounds() BoundingBox {
	bb := NewBoundingBox()
	for _, p := range pl {
		bb.Expand(p)
	}
	return bb
}

// Snap quantizes a coordinate pair to the nearest grid intersection.
// Each coordinate rounds independently, half away from zero. When disabled
// (or the spacing is not positive) the input is returned unchanged.
func Snap(x, y, spacing float64, enabled bool) (float64, float64) {
	if !enabled || spacing <= 0 {
		return x, y
	}
	return math.Round(x/spacing) * spacing, math.Round(y/spacing) * spacing
}

// SnapPoint is Snap for a Point value.
func SnapPoint(p Point, spacing float64, enabled bool) Point {
	x, y := Snap(p.X, p.Y, spacing, enabled)
	return Point{X: x, Y: y}
}

// BoundingBox represents a rectangular boundary in canvas pixels.
type BoundingBox struct {
	Min Point
	Max Point
}

// NewBoundingBox creates an empty bounding box.
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Point{X: 1e9, Y: 1e9},
		Max: Point{X: -1e9, Y: -1e9},
	}
}

// IsEmpty checks if the bounding box is empty.
func (bb BoundingBox) IsEmpty() bool {
	return bb.Min.X > bb.Max.X || bb.Min.Y > bb.Max.Y
}

// Expand grows the bounding box to include a point.
func (bb *BoundingBox) Expand(p Point) {
	if p.X < bb.Min.X {
		bb.Min.X = p.X
	}
	if p.Y < bb.Min.Y {
		bb.Min.Y = p.Y
	}
	if p.X > bb.Max.X {
		bb.Max.X = p.X
	}
	if p.Y > bb.Max.Y {
		bb.Max.Y = p.Y
	}
}

// ExpandBox grows the bounding box to include another box.
func (bb *BoundingBox) ExpandBox(other BoundingBox) {
	if !other.IsEmpty() {
		bb.Expand(other.Min)
		bb.Expand(other.Max)
	}
}

// Contains checks if a point lies within the bounding box.
func (bb BoundingBox) Contains(p Point) bool {
	return p.X >= bb.Min.X && p.X <= bb.Max.X &&
		p.Y >= bb.Min.Y && p.Y <= bb.Max.Y
}

// Width returns the width of the bounding box.
func (bb BoundingBox) Width() float64 {
	return bb.Max.X - bb.Min.X
}

// Height returns the height of the bounding box.
func (bb BoundingBox) Height() float64 {
	return bb.Max.Y - bb.Min.Y
}

// Center returns the center point of the bounding box.
func (bb BoundingBox) Center() Point {
	return Point{
		X: (bb.Min.X + bb.Max.X) / 2.0,
		Y: (bb.Min.Y + bb.Max.Y) / 2.0,
	}
}
