package sketchfile

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/material"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/sketch"
)

// Decode builds a shape graph from a parsed sketch document. Nodes are
// installed first so traces may reference them regardless of statement
// order in the file.
func Decode(file *File) (*sketch.Graph, error) {
	if file.Version != FormatVersion {
		return nil, fmt.Errorf("sketchfile: unsupported version %d", file.Version)
	}

	g := sketch.NewGraph()

	for _, st := range file.Statements {
		if st.Node == nil {
			continue
		}
		n := sketch.Node{
			ID:   sketch.ID(st.Node.ID),
			Pos:  geom.Point{X: st.Node.X, Y: st.Node.Y},
			Role: sketch.Role(st.Node.Role),
		}
		if st.Node.Radius != nil {
			n.Radius = *st.Node.Radius
		}
		if err := g.InsertNode(n); err != nil {
			return nil, err
		}
	}

	for _, st := range file.Statements {
		switch {
		case st.Trace != nil:
			waypoints, err := pairPoints(st.Trace.Via)
			if err != nil {
				return nil, fmt.Errorf("sketchfile: trace %q: %w", st.Trace.ID, err)
			}
			pts := make(geom.Polyline, 0, len(waypoints)+2)
			// Endpoints re-anchored to node positions by InsertTrace;
			// placeholders keep the waypoints in the interior slots.
			pts = append(pts, geom.Point{})
			pts = append(pts, waypoints...)
			pts = append(pts, geom.Point{})
			err = g.InsertTrace(sketch.Trace{
				ID:       sketch.ID(st.Trace.ID),
				A:        sketch.ID(st.Trace.From),
				B:        sketch.ID(st.Trace.To),
				Points:   pts,
				Material: material.Material(st.Trace.Material),
				Width:    st.Trace.Width,
			})
			if err != nil {
				return nil, err
			}

		case st.Outline != nil:
			points, err := pairPoints(st.Outline.Points)
			if err != nil {
				return nil, fmt.Errorf("sketchfile: outline %q: %w", st.Outline.ID, err)
			}
			err = g.InsertOutline(sketch.Outline{
				ID:     sketch.ID(st.Outline.ID),
				Points: points,
				Width:  st.Outline.Width,
			})
			if err != nil {
				return nil, err
			}

		case st.Label != nil:
			err := g.InsertLabel(sketch.Label{
				ID:   sketch.ID(st.Label.ID),
				Pos:  geom.Point{X: st.Label.X, Y: st.Label.Y},
				Text: st.Label.Text,
				Size: st.Label.Size,
			})
			if err != nil {
				return nil, err
			}

		case st.Background != nil:
			g.SetBackground(&sketch.Background{
				Href:     st.Background.Href,
				Pos:      geom.Point{X: st.Background.X, Y: st.Background.Y},
				WidthCM:  st.Background.WidthCM,
				HeightCM: st.Background.HeightCM,
			})
		}
	}

	return g, nil
}

// Load parses and decodes a sketch file in one step.
func Load(filename string) (*sketch.Graph, error) {
	p, err := NewParser()
	if err != nil {
		return nil, err
	}
	file, err := p.ParseFile(filename)
	if err != nil {
		return nil, err
	}
	return Decode(file)
}

// pairPoints converts a flat interleaved coordinate list into points.
func pairPoints(coords []float64) (geom.Polyline, error) {
	if len(coords)%2 != 0 {
		return nil, fmt.Errorf("odd coordinate count %d", len(coords))
	}
	pts := make(geom.Polyline, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		pts = append(pts, geom.Point{X: coords[i], Y: coords[i+1]})
	}
	return pts, nil
}
