package editor

import (
	"errors"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/sketch"
)

// ErrNoNodeHit is returned when a trace interaction misses every node marker.
var ErrNoNodeHit = errors.New("editor: no node at position")

// PlaceNode creates a node at the (snapped) pointer position.
func (s State) PlaceNode(g *sketch.Graph, x, y float64) (State, *sketch.Node) {
	n := g.AddNode(s.snap(x, y), s.Role)
	return s, n
}

// StartTrace begins a trace at the node under the pointer.
func (s State) StartTrace(g *sketch.Graph, x, y float64) (State, error) {
	n, ok := g.NodeAt(geom.Point{X: x, Y: y})
	if !ok {
		return s, ErrNoNodeHit
	}
	s.TraceStart = n.ID
	s.TraceWaypoints = nil
	return s, nil
}

// AddTraceWaypoint appends a snapped waypoint to the in-progress trace.
func (s State) AddTraceWaypoint(x, y float64) State {
	s.TraceWaypoints = append(s.TraceWaypoints.Clone(), s.snap(x, y))
	return s
}

// FinishTrace completes the in-progress trace at the node under the pointer
// and routes it through the accumulated waypoints. Drawing-mode state is
// cleared whether or not the trace is accepted.
func (s State) FinishTrace(g *sketch.Graph, x, y float64) (State, *sketch.Trace, error) {
	if s.TraceStart == "" {
		return s.clearPending(), nil, ErrNoNodeHit
	}
	end, ok := g.NodeAt(geom.Point{X: x, Y: y})
	if !ok {
		return s.clearPending(), nil, ErrNoNodeHit
	}
	t, err := g.AddTrace(s.TraceStart, end.ID, s.TraceWaypoints, s.Material, s.Width)
	return s.clearPending(), t, err
}

// StartOutline begins an outline path at the (snapped) pointer position.
func (s State) StartOutline(x, y float64) State {
	s.OutlinePoints = geom.Polyline{s.snap(x, y)}
	return s
}

// AddOutlinePoint appends a snapped waypoint to the in-progress outline.
func (s State) AddOutlinePoint(x, y float64) State {
	s.OutlinePoints = append(s.OutlinePoints.Clone(), s.snap(x, y))
	return s
}

// FinishOutline closes the in-progress outline and adds it to the graph.
// With fewer than two accumulated points this is a no-op: the pending path
// is discarded and no shape is produced.
func (s State) FinishOutline(g *sketch.Graph) (State, *sketch.Outline) {
	pts := s.OutlinePoints
	s = s.clearPending()
	if len(pts) < 2 {
		return s, nil
	}
	o, err := g.AddOutline(pts, s.Width)
	if err != nil {
		return s, nil
	}
	return s, o
}

// PlaceLabel creates a text annotation at the (snapped) pointer position.
func (s State) PlaceLabel(g *sketch.Graph, x, y float64, text string, size float64) (State, *sketch.Label) {
	l := g.AddLabel(s.snap(x, y), text, size)
	return s, l
}

// EditResistance applies a user-edited target resistance to the selected
// trace. Invalid targets leave the trace (and its displayed values)
// untouched; the caller restores the prior display from the unchanged graph.
// Outlines carry no resistance semantics, so only trace selections resolve.
func (s State) EditResistance(g *sketch.Graph, target float64) error {
	if _, ok := g.Trace(s.Selection); !ok {
		return sketch.ErrUnknownEntity
	}
	return g.SetTraceResistance(s.Selection, target)
}
