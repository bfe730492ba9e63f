// Package store mirrors the sketch's shape records against a persistence
// service. The contract is append-only: the full collection is fetched once
// at startup and each created shape is appended. Mutations are applied to
// the in-memory graph first; Create reports its outcome explicitly so the
// host can retry, queue or surface a failure, but the optimistic in-memory
// state always stands.
package store

import (
	"context"
	"fmt"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/material"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/sketch"
)

// Type discriminates shape record kinds.
type Type string

const (
	TypeNode    Type = "node"
	TypeTrace   Type = "trace"
	TypeOutline Type = "outline"
	TypeLabel   Type = "label"
)

// Record is the wire form of one shape.
type Record struct {
	ID   string `json:"id"`
	Type Type   `json:"type"`

	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Radius float64 `json:"radius,omitempty"`
	Role   string  `json:"role,omitempty"`

	From     string    `json:"from,omitempty"`
	To       string    `json:"to,omitempty"`
	Points   []float64 `json:"points,omitempty"`
	Material string    `json:"material,omitempty"`
	Width    float64   `json:"width,omitempty"`

	Text string  `json:"text,omitempty"`
	Size float64 `json:"size,omitempty"`
}

// Store is the persistence collaborator contract.
type Store interface {
	// Load fetches the full shape collection.
	Load(ctx context.Context) ([]Record, error)
	// Create appends one shape record.
	Create(ctx context.Context, rec Record) error
}

// FromNode converts a node to its wire record.
func FromNode(n sketch.Node) Record {
	return Record{
		ID:     string(n.ID),
		Type:   TypeNode,
		X:      n.Pos.X,
		Y:      n.Pos.Y,
		Radius: n.Radius,
		Role:   string(n.Role),
	}
}

// FromTrace converts a trace to its wire record. The full polyline is
// stored, node anchors included.
func FromTrace(t sketch.Trace) Record {
	return Record{
		ID:       string(t.ID),
		Type:     TypeTrace,
		From:     string(t.A),
		To:       string(t.B),
		Points:   flatten(t.Points),
		Material: string(t.Material),
		Width:    t.Width,
	}
}

// FromOutline converts an outline to its wire record.
func FromOutline(o sketch.Outline) Record {
	return Record{
		ID:     string(o.ID),
		Type:   TypeOutline,
		Points: flatten(o.Points),
		Width:  o.Width,
	}
}

// FromLabel converts a label to its wire record.
func FromLabel(l sketch.Label) Record {
	return Record{
		ID:   string(l.ID),
		Type: TypeLabel,
		X:    l.Pos.X,
		Y:    l.Pos.Y,
		Text: l.Text,
		Size: l.Size,
	}
}

// FromSnapshot converts a full snapshot in layer-then-insertion order.
func FromSnapshot(snap sketch.Snapshot) []Record {
	recs := make([]Record, 0,
		len(snap.Nodes)+len(snap.Traces)+len(snap.Outlines)+len(snap.Labels))
	for _, n := range snap.Nodes {
		recs = append(recs, FromNode(n))
	}
	for _, t := range snap.Traces {
		recs = append(recs, FromTrace(t))
	}
	for _, o := range snap.Outlines {
		recs = append(recs, FromOutline(o))
	}
	for _, l := range snap.Labels {
		recs = append(recs, FromLabel(l))
	}
	return recs
}

// BuildGraph reconstructs a shape graph from loaded records. Nodes install
// first so traces can resolve their endpoints regardless of record order.
func BuildGraph(recs []Record) (*sketch.Graph, error) {
	g := sketch.NewGraph()

	for _, r := range recs {
		if r.Type != TypeNode {
			continue
		}
		err := g.InsertNode(sketch.Node{
			ID:     sketch.ID(r.ID),
			Pos:    geom.Point{X: r.X, Y: r.Y},
			Radius: r.Radius,
			Role:   sketch.Role(r.Role),
		})
		if err != nil {
			return nil, err
		}
	}

	for _, r := range recs {
		switch r.Type {
		case TypeNode:
			// already installed
		case TypeTrace:
			pts, err := unflatten(r.Points)
			if err != nil {
				return nil, fmt.Errorf("store: trace %s: %w", r.ID, err)
			}
			err = g.InsertTrace(sketch.Trace{
				ID:       sketch.ID(r.ID),
				A:        sketch.ID(r.From),
				B:        sketch.ID(r.To),
				Points:   pts,
				Material: material.Material(r.Material),
				Width:    r.Width,
			})
			if err != nil {
				return nil, err
			}
		case TypeOutline:
			pts, err := unflatten(r.Points)
			if err != nil {
				return nil, fmt.Errorf("store: outline %s: %w", r.ID, err)
			}
			err = g.InsertOutline(sketch.Outline{
				ID:     sketch.ID(r.ID),
				Points: pts,
				Width:  r.Width,
			})
			if err != nil {
				return nil, err
			}
		case TypeLabel:
			err := g.InsertLabel(sketch.Label{
				ID:   sketch.ID(r.ID),
				Pos:  geom.Point{X: r.X, Y: r.Y},
				Text: r.Text,
				Size: r.Size,
			})
			if err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("store: unknown record type %q", r.Type)
		}
	}

	return g, nil
}

func flatten(pts geom.Polyline) []float64 {
	out := make([]float64, 0, 2*len(pts))
	for _, p := range pts {
		out = append(out, p.X, p.Y)
	}
	return out
}

func unflatten(coords []float64) (geom.Polyline, error) {
	if len(coords)%2 != 0 {
		return nil, fmt.Errorf("odd coordinate count %d", len(coords))
	}
	pts := make(geom.Polyline, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		pts = append(pts, geom.Point{X: coords[i], Y: coords[i+1]})
	}
	return pts, nil
}
