package sketch

// Snapshot is a deep, immutable copy of the graph's shapes and labels.
// Export serializes a snapshot so a later mutation can never change a
// document that is already being written.
type Snapshot struct {
	Nodes      []Node
	Traces     []Trace
	Outlines   []Outline
	Labels     []Label
	Background *Background
}

// Snapshot captures the current graph state. Polylines are copied, not
// aliased.
func (g *Graph) Snapshot() Snapshot {
	snap := Snapshot{
		Nodes:    make([]Node, 0, len(g.nodeOrder)),
		Traces:   make([]Trace, 0, len(g.traceOrder)),
		Outlines: make([]Outline, 0, len(g.outlineOrder)),
		Labels:   make([]Label, 0, len(g.labelOrder)),
	}
	for _, id := range g.nodeOrder {
		snap.Nodes = append(snap.Nodes, *g.nodes[id])
	}
	for _, id := range g.traceOrder {
		t := *g.traces[id]
		t.Points = t.Points.Clone()
		snap.Traces = append(snap.Traces, t)
	}
	for _, id := range g.outlineOrder {
		o := *g.outlines[id]
		o.Points = o.Points.Clone()
		snap.Outlines = append(snap.Outlines, o)
	}
	for _, id := range g.labelOrder {
		snap.Labels = append(snap.Labels, *g.labels[id])
	}
	if g.background != nil {
		bg := *g.background
		snap.Background = &bg
	}
	return snap
}
