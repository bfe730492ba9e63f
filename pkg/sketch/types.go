// Package sketch holds the in-memory shape graph for a circuit sketch:
// node terminals, routed traces, board outlines and text labels.
// Relationships are expressed by identifier lookup, never by embedding, so
// every update is explicit and single-sourced.
package sketch

import (
	"image/color"

	"github.com/google/uuid"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/material"
)

// ID uniquely identifies an entity in the graph.
type ID string

// NewID generates a fresh entity identifier.
func NewID() ID {
	return ID(uuid.NewString())
}

// Role tags a node as a power or ground terminal.
type Role string

const (
	RolePower  Role = "power"
	RoleGround Role = "ground"
)

// Color returns the display color for a node of this role.
func (r Role) Color() color.NRGBA {
	switch r {
	case RolePower:
		return color.NRGBA{R: 200, G: 52, B: 52, A: 255}
	case RoleGround:
		return color.NRGBA{R: 77, G: 127, B: 196, A: 255}
	}
	return color.NRGBA{R: 128, G: 128, B: 128, A: 255}
}

// DefaultNodeRadius is the render radius for node markers in canvas pixels.
const DefaultNodeRadius = 6.0

// OutlineColor is the fixed stroke color for board outlines.
var OutlineColor = color.NRGBA{R: 208, G: 210, B: 205, A: 255}

// Node is a connection endpoint (power or ground terminal).
type Node struct {
	ID     ID
	Pos    geom.Point
	Radius float64
	Role   Role
}

// Trace is a routed conductive path between exactly two nodes. The first
// point always equals node A's position and the last point node B's; the
// graph maintains that invariant through every mutation.
type Trace struct {
	ID       ID
	A        ID
	B        ID
	Points   geom.Polyline
	Material material.Material
	Width    float64 // Trace width in meters

	// Resistance is a cached display value recomputed on every mutation;
	// the polyline, material and width are the source of truth.
	Resistance float64
}

// Outline is a closed boundary polyline with no electrical role.
type Outline struct {
	ID     ID
	Points geom.Polyline
	Width  float64 // Stroke width in meters
}

// Label is a positioned text annotation.
type Label struct {
	ID   ID
	Pos  geom.Point
	Text string
	Size float64 // Font size in canvas pixels
}

// Background describes an optional reference image rendered beneath all
// shape layers at a user-specified real-world size.
type Background struct {
	Href     string
	Pos      geom.Point
	WidthCM  float64
	HeightCM float64
}
