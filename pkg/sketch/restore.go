package sketch

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/resist"
)

// The Insert functions install fully formed records while keeping their
// identifiers, for loaders that mirror a saved sketch or a persistence
// service. They enforce the same invariants as the Add operations.

// InsertNode installs a node record as-is.
func (g *Graph) InsertNode(n Node) error {
	if n.ID == "" {
		return fmt.Errorf("sketch: node missing identifier")
	}
	if _, exists := g.nodes[n.ID]; exists {
		return fmt.Errorf("sketch: duplicate node %s", n.ID)
	}
	if n.Radius <= 0 {
		n.Radius = DefaultNodeRadius
	}
	stored := n
	g.putNode(&stored)
	return nil
}

// InsertTrace installs a trace record, re-anchoring its endpoints to the
// referenced node positions so the endpoint invariant holds even if the
// stored polyline drifted from the node records.
func (g *Graph) InsertTrace(t Trace) error {
	if t.ID == "" {
		return fmt.Errorf("sketch: trace missing identifier")
	}
	if _, exists := g.traces[t.ID]; exists {
		return fmt.Errorf("sketch: duplicate trace %s", t.ID)
	}
	if t.A == t.B {
		return ErrSelfLoop
	}
	na, ok := g.nodes[t.A]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownNode, t.A)
	}
	nb, ok := g.nodes[t.B]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownNode, t.B)
	}
	if len(t.Points) < 2 {
		return fmt.Errorf("sketch: trace %s has fewer than 2 points", t.ID)
	}

	stored := t
	stored.Points = t.Points.Clone()
	stored.Points[0] = na.Pos
	stored.Points[len(stored.Points)-1] = nb.Pos
	stored.Resistance = resist.Resistance(stored.Points, stored.Material, stored.Width)

	g.traces[stored.ID] = &stored
	g.traceOrder = append(g.traceOrder, stored.ID)
	g.incident[t.A][stored.ID] = struct{}{}
	g.incident[t.B][stored.ID] = struct{}{}
	return nil
}

// InsertOutline installs an outline record, closing the polyline if needed.
func (g *Graph) InsertOutline(o Outline) error {
	if o.ID == "" {
		return fmt.Errorf("sketch: outline missing identifier")
	}
	if _, exists := g.outlines[o.ID]; exists {
		return fmt.Errorf("sketch: duplicate outline %s", o.ID)
	}
	if len(o.Points) < 2 {
		return ErrDegenerateOutline
	}
	stored := o
	stored.Points = o.Points.Clone()
	if stored.Points[0] != stored.Points[len(stored.Points)-1] {
		stored.Points = append(stored.Points, stored.Points[0])
	}
	g.outlines[stored.ID] = &stored
	g.outlineOrder = append(g.outlineOrder, stored.ID)
	return nil
}

// InsertLabel installs a label record as-is.
func (g *Graph) InsertLabel(l Label) error {
	if l.ID == "" {
		return fmt.Errorf("sketch: label missing identifier")
	}
	if _, exists := g.labels[l.ID]; exists {
		return fmt.Errorf("sketch: duplicate label %s", l.ID)
	}
	stored := l
	g.labels[stored.ID] = &stored
	g.labelOrder = append(g.labelOrder, stored.ID)
	return nil
}
