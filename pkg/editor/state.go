// Package editor models the interactive drawing session as one explicit
// immutable state record updated through discrete, named transitions. The
// shape graph stays a separate module; the editor only decides which graph
// operation an interaction maps to and applies grid snapping at every
// point-producing step.
package editor

import (
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/corner"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/material"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/sketch"
)

// Tool identifies the active interaction tool.
type Tool int

const (
	ToolSelect Tool = iota
	ToolNode
	ToolTrace
	ToolOutline
	ToolLabel
)

// DefaultTraceWidth is the width for new traces in meters (5 mm).
const DefaultTraceWidth = 0.005

// DefaultOutlineWidth is the stroke width for new outlines in meters (2 mm).
const DefaultOutlineWidth = 0.002

// State is the complete drawing-session state. Values are never mutated in
// place; every transition returns a new State.
type State struct {
	Tool        Tool
	Corner      corner.Style
	GridEnabled bool
	GridSpacing float64

	// Attributes applied to the next created entity
	Role     sketch.Role
	Material material.Material
	Width    float64

	// In-progress trace: the start node plus accumulated waypoints
	TraceStart     sketch.ID
	TraceWaypoints geom.Polyline

	// In-progress outline path
	OutlinePoints geom.Polyline

	Selection sketch.ID
}

// NewState returns the initial session state: select tool, sharp corners,
// grid snapping on at the physical default step, copper traces.
func NewState() State {
	return State{
		Tool:        ToolSelect,
		Corner:      corner.Linear{},
		GridEnabled: true,
		GridSpacing: geom.DefaultGridSpacing,
		Role:        sketch.RolePower,
		Material:    material.Copper,
		Width:       DefaultTraceWidth,
	}
}

// SelectTool switches the active tool and discards any in-progress path.
func (s State) SelectTool(t Tool) State {
	s.Tool = t
	return s.clearPending()
}

// SetCornerStyle selects the corner treatment for rendering and export.
func (s State) SetCornerStyle(style corner.Style) State {
	s.Corner = style
	return s
}

// ToggleGrid flips grid snapping.
func (s State) ToggleGrid() State {
	s.GridEnabled = !s.GridEnabled
	return s
}

// SetGridSpacing changes the grid step (canvas pixels, derived from the
// physical scale by callers).
func (s State) SetGridSpacing(spacing float64) State {
	s.GridSpacing = spacing
	return s
}

// SetRole chooses the role for the next placed node.
func (s State) SetRole(r sketch.Role) State {
	s.Role = r
	return s
}

// SetMaterial chooses the material for the next trace.
func (s State) SetMaterial(m material.Material) State {
	s.Material = m
	return s
}

// SetWidth chooses the width in meters for the next trace or outline.
func (s State) SetWidth(w float64) State {
	s.Width = w
	return s
}

// Select marks an entity as selected.
func (s State) Select(id sketch.ID) State {
	s.Selection = id
	return s
}

// snap applies the session's grid policy to a raw pointer position.
func (s State) snap(x, y float64) geom.Point {
	sx, sy := geom.Snap(x, y, s.GridSpacing, s.GridEnabled)
	return geom.Point{X: sx, Y: sy}
}

// clearPending discards in-progress trace and outline paths.
func (s State) clearPending() State {
	s.TraceStart = ""
	s.TraceWaypoints = nil
	s.OutlinePoints = nil
	return s
}
