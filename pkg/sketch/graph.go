package sketch

import (
	"errors"
	"fmt"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/material"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/resist"
)

var (
	// ErrUnknownNode is returned when an operation references a node
	// identifier that is not in the graph.
	ErrUnknownNode = errors.New("sketch: unknown node")
	// ErrSelfLoop is returned when a trace would connect a node to itself.
	ErrSelfLoop = errors.New("sketch: trace endpoints must differ")
	// ErrUnknownEntity is returned when deleting an identifier the graph
	// does not own.
	ErrUnknownEntity = errors.New("sketch: unknown entity")
	// ErrDegenerateOutline is returned for outlines with fewer than two
	// distinct waypoints.
	ErrDegenerateOutline = errors.New("sketch: outline needs at least 2 points")
)

// Graph owns all node, trace and outline records of a sketch plus the flat
// label collection. It is mutated by a single logical thread, one operation
// at a time; every mutation is atomic from the caller's perspective.
type Graph struct {
	nodes    map[ID]*Node
	traces   map[ID]*Trace
	outlines map[ID]*Outline
	labels   map[ID]*Label

	// incident maps a node to the traces that terminate on it, so a node
	// move touches only its own traces instead of scanning the full set.
	incident map[ID]map[ID]struct{}

	// Insertion order per entity kind; export and save walk these so output
	// never depends on map iteration order.
	nodeOrder    []ID
	traceOrder   []ID
	outlineOrder []ID
	labelOrder   []ID

	background *Background
}

// NewGraph creates an empty shape graph.
func NewGraph() *Graph {
	return &Graph{
		nodes:    make(map[ID]*Node),
		traces:   make(map[ID]*Trace),
		outlines: make(map[ID]*Outline),
		labels:   make(map[ID]*Label),
		incident: make(map[ID]map[ID]struct{}),
	}
}

// AddNode creates a node terminal at the given position.
func (g *Graph) AddNode(pos geom.Point, role Role) *Node {
	n := &Node{
		ID:     NewID(),
		Pos:    pos,
		Radius: DefaultNodeRadius,
		Role:   role,
	}
	g.putNode(n)
	return n
}

// putNode inserts a fully formed node record (used by AddNode and loaders).
func (g *Graph) putNode(n *Node) {
	g.nodes[n.ID] = n
	g.nodeOrder = append(g.nodeOrder, n.ID)
	g.incident[n.ID] = make(map[ID]struct{})
}

// AddTrace routes a trace between two existing nodes through optional
// waypoints. The stored polyline starts at node a's position and ends at
// node b's; waypoints sit in between. Self-loops and references to unknown
// nodes are rejected.
func (g *Graph) AddTrace(a, b ID, waypoints []geom.Point, m material.Material, width float64) (*Trace, error) {
	if a == b {
		return nil, ErrSelfLoop
	}
	na, ok := g.nodes[a]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNode, a)
	}
	nb, ok := g.nodes[b]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNode, b)
	}

	pts := make(geom.Polyline, 0, len(waypoints)+2)
	pts = append(pts, na.Pos)
	pts = append(pts, waypoints...)
	pts = append(pts, nb.Pos)

	t := &Trace{
		ID:       NewID(),
		A:        a,
		B:        b,
		Points:   pts,
		Material: m,
		Width:    width,
	}
	t.Resistance = resist.Resistance(t.Points, t.Material, t.Width)

	g.traces[t.ID] = t
	g.traceOrder = append(g.traceOrder, t.ID)
	g.incident[a][t.ID] = struct{}{}
	g.incident[b][t.ID] = struct{}{}
	return t, nil
}

// AddOutline creates a closed board outline from the given waypoints. Fewer
// than two points is a degenerate shape and is rejected. The polyline is
// closed by repeating the first point if the caller has not already done so.
func (g *Graph) AddOutline(points []geom.Point, width float64) (*Outline, error) {
	if len(points) < 2 {
		return nil, ErrDegenerateOutline
	}
	pts := make(geom.Polyline, 0, len(points)+1)
	pts = append(pts, points...)
	if pts[0] != pts[len(pts)-1] {
		pts = append(pts, pts[0])
	}

	o := &Outline{ID: NewID(), Points: pts, Width: width}
	g.outlines[o.ID] = o
	g.outlineOrder = append(g.outlineOrder, o.ID)
	return o, nil
}

// AddLabel places a text annotation.
func (g *Graph) AddLabel(pos geom.Point, text string, size float64) *Label {
	l := &Label{ID: NewID(), Pos: pos, Text: text, Size: size}
	g.labels[l.ID] = l
	g.labelOrder = append(g.labelOrder, l.ID)
	return l
}

// SetBackground installs or replaces the optional background image record.
// A nil value clears it.
func (g *Graph) SetBackground(bg *Background) {
	g.background = bg
}

// Background returns the background image record, or nil.
func (g *Graph) Background() *Background {
	return g.background
}

// MoveNode repositions a node and updates the matching endpoint of every
// incident trace in the same operation. No intermediate state with a stale
// endpoint is observable.
func (g *Graph) MoveNode(id ID, pos geom.Point) error {
	n, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownNode, id)
	}
	n.Pos = pos
	for tid := range g.incident[id] {
		t := g.traces[tid]
		if t.A == id {
			t.Points[0] = pos
		}
		if t.B == id {
			t.Points[len(t.Points)-1] = pos
		}
		t.Resistance = resist.Resistance(t.Points, t.Material, t.Width)
	}
	return nil
}

// SetTraceWidth updates a trace's width and recomputes the cached
// resistance so the two stay consistent.
func (g *Graph) SetTraceWidth(id ID, width float64) error {
	t, ok := g.traces[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEntity, id)
	}
	t.Width = width
	t.Resistance = resist.Resistance(t.Points, t.Material, t.Width)
	return nil
}

// SetTraceResistance solves the trace width for a target resistance and
// applies it. An invalid target or a material without a physical model
// leaves the trace untouched.
func (g *Graph) SetTraceResistance(id ID, target float64) error {
	t, ok := g.traces[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEntity, id)
	}
	width, err := resist.WidthForResistance(target, t.Material, t.Points)
	if err != nil {
		return err
	}
	t.Width = width
	t.Resistance = resist.Resistance(t.Points, t.Material, t.Width)
	return nil
}

// DeleteNode removes a node and cascades to every trace referencing it, so
// no trace is ever left with a dangling endpoint.
func (g *Graph) DeleteNode(id ID) error {
	if _, ok := g.nodes[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownNode, id)
	}
	for tid := range g.incident[id] {
		g.removeTrace(tid)
	}
	delete(g.incident, id)
	delete(g.nodes, id)
	g.nodeOrder = removeID(g.nodeOrder, id)
	return nil
}

// DeleteTrace removes a single trace.
func (g *Graph) DeleteTrace(id ID) error {
	if _, ok := g.traces[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEntity, id)
	}
	g.removeTrace(id)
	return nil
}

func (g *Graph) removeTrace(id ID) {
	t := g.traces[id]
	delete(g.incident[t.A], id)
	delete(g.incident[t.B], id)
	delete(g.traces, id)
	g.traceOrder = removeID(g.traceOrder, id)
}

// DeleteOutline removes a board outline.
func (g *Graph) DeleteOutline(id ID) error {
	if _, ok := g.outlines[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEntity, id)
	}
	delete(g.outlines, id)
	g.outlineOrder = removeID(g.outlineOrder, id)
	return nil
}

// DeleteLabel removes a text annotation.
func (g *Graph) DeleteLabel(id ID) error {
	if _, ok := g.labels[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEntity, id)
	}
	delete(g.labels, id)
	g.labelOrder = removeID(g.labelOrder, id)
	return nil
}

// Node returns the node with the given identifier.
func (g *Graph) Node(id ID) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Trace returns the trace with the given identifier.
func (g *Graph) Trace(id ID) (*Trace, bool) {
	t, ok := g.traces[id]
	return t, ok
}

// Outline returns the outline with the given identifier.
func (g *Graph) Outline(id ID) (*Outline, bool) {
	o, ok := g.outlines[id]
	return o, ok
}

// Nodes returns the nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		out = append(out, g.nodes[id])
	}
	return out
}

// Traces returns the traces in insertion order.
func (g *Graph) Traces() []*Trace {
	out := make([]*Trace, 0, len(g.traceOrder))
	for _, id := range g.traceOrder {
		out = append(out, g.traces[id])
	}
	return out
}

// Outlines returns the outlines in insertion order.
func (g *Graph) Outlines() []*Outline {
	out := make([]*Outline, 0, len(g.outlineOrder))
	for _, id := range g.outlineOrder {
		out = append(out, g.outlines[id])
	}
	return out
}

// Labels returns the labels in insertion order.
func (g *Graph) Labels() []*Label {
	out := make([]*Label, 0, len(g.labelOrder))
	for _, id := range g.labelOrder {
		out = append(out, g.labels[id])
	}
	return out
}

// IncidentTraces returns the identifiers of traces terminating on a node.
func (g *Graph) IncidentTraces(id ID) []ID {
	set, ok := g.incident[id]
	if !ok {
		return nil
	}
	out := make([]ID, 0, len(set))
	for _, tid := range g.traceOrder {
		if _, hit := set[tid]; hit {
			out = append(out, tid)
		}
	}
	return out
}

// NodeAt returns the first node (in insertion order) whose marker covers the
// given point, for interactive hit-testing.
func (g *Graph) NodeAt(p geom.Point) (*Node, bool) {
	for _, id := range g.nodeOrder {
		n := g.nodes[id]
		if n.Pos.Distance(p) <= n.Radius {
			return n, true
		}
	}
	return nil, false
}

// Bounds returns the bounding box of all shapes and labels.
func (g *Graph) Bounds() geom.BoundingBox {
	bb := geom.NewBoundingBox()
	for _, id := range g.nodeOrder {
		bb.Expand(g.nodes[id].Pos)
	}
	for _, id := range g.traceOrder {
		bb.ExpandBox(g.traces[id].Points.Bounds())
	}
	for _, id := range g.outlineOrder {
		bb.ExpandBox(g.outlines[id].Points.Bounds())
	}
	for _, id := range g.labelOrder {
		bb.Expand(g.labels[id].Pos)
	}
	return bb
}

func removeID(ids []ID, id ID) []ID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
