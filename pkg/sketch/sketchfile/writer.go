package sketchfile

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/sketch"
)

// Write serializes a graph snapshot as a sketch document. Statements are
// emitted in layer order (nodes, traces, outlines, labels, background) and
// insertion order within a layer, so identical snapshots always produce
// identical files.
func Write(w io.Writer, snap sketch.Snapshot) error {
	var b strings.Builder
	fmt.Fprintf(&b, "sketch %d\n", FormatVersion)

	for _, n := range snap.Nodes {
		fmt.Fprintf(&b, "node %q %s at %s %s radius %s\n",
			string(n.ID), string(n.Role), num(n.Pos.X), num(n.Pos.Y), num(n.Radius))
	}

	for _, t := range snap.Traces {
		fmt.Fprintf(&b, "trace %q from %q to %q material %s width %s",
			string(t.ID), string(t.A), string(t.B), string(t.Material), num(t.Width))
		if len(t.Points) > 2 {
			b.WriteString(" via")
			for _, p := range t.Points[1 : len(t.Points)-1] {
				fmt.Fprintf(&b, " %s %s", num(p.X), num(p.Y))
			}
		}
		b.WriteByte('\n')
	}

	for _, o := range snap.Outlines {
		fmt.Fprintf(&b, "outline %q width %s points", string(o.ID), num(o.Width))
		// The closing point is implicit in the format
		pts := o.Points
		if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
			pts = pts[:len(pts)-1]
		}
		for _, p := range pts {
			fmt.Fprintf(&b, " %s %s", num(p.X), num(p.Y))
		}
		b.WriteByte('\n')
	}

	for _, l := range snap.Labels {
		fmt.Fprintf(&b, "label %q at %s %s size %s text %q\n",
			string(l.ID), num(l.Pos.X), num(l.Pos.Y), num(l.Size), l.Text)
	}

	if bg := snap.Background; bg != nil {
		fmt.Fprintf(&b, "background %q at %s %s size %s %s\n",
			bg.Href, num(bg.Pos.X), num(bg.Pos.Y), num(bg.WidthCM), num(bg.HeightCM))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteFile serializes a graph snapshot to a file path.
func WriteFile(filename string, snap sketch.Snapshot) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := Write(f, snap); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// num formats a coordinate or width with the shortest exact representation.
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
