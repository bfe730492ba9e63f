// Package export serializes a sketch snapshot into a dimensionally accurate
// SVG document. The document's outer size is expressed in centimeters at the
// canvas's physical scale while the inner coordinate system matches canvas
// pixels 1:1, so exported shapes align with their on-screen positions.
package export

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo/float"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/corner"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/material"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/sketch"
)

// Options controls the exported document.
type Options struct {
	// Canvas size in pixels. When zero, the size is derived from the
	// snapshot bounds plus a margin.
	Width  float64
	Height float64

	// Background includes the background-image layer beneath all shapes.
	Background bool
}

// exportMargin pads derived document bounds, in pixels.
const exportMargin = 20.0

// SVG writes the snapshot as an SVG document. Output is deterministic:
// identical snapshots, style and options produce byte-identical documents.
// Element order is background, nodes, traces and outlines, labels; within a
// layer, graph insertion order.
func SVG(w io.Writer, snap sketch.Snapshot, style corner.Style, opts Options) error {
	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		bb := snapshotBounds(snap)
		if bb.IsEmpty() {
			width, height = 100, 100
		} else {
			width = bb.Max.X + exportMargin
			height = bb.Max.Y + exportMargin
		}
	}

	canvas := svg.New(w)
	canvas.StartviewUnit(width/geom.PixelsPerCM, height/geom.PixelsPerCM, "cm", 0, 0, width, height)

	if opts.Background && snap.Background != nil {
		bg := snap.Background
		canvas.Gid("background")
		// Image takes integer pixel dimensions
		canvas.Image(bg.Pos.X, bg.Pos.Y,
			int(math.Round(bg.WidthCM*geom.PixelsPerCM)),
			int(math.Round(bg.HeightCM*geom.PixelsPerCM)), bg.Href)
		canvas.Gend()
	}

	canvas.Gid("nodes")
	for _, n := range snap.Nodes {
		canvas.Circle(n.Pos.X, n.Pos.Y, n.Radius,
			fmt.Sprintf(`fill="%s"`, rgb(n.Role.Color())))
	}
	canvas.Gend()

	canvas.Gid("traces")
	for _, t := range snap.Traces {
		strokeWidth := t.Width * geom.MMPerMeter * geom.PixelsPerMM
		drawPath(canvas, t.Points, style, rgb(material.TraceColor(t.Material)), strokeWidth)
	}
	for _, o := range snap.Outlines {
		strokeWidth := o.Width * geom.MMPerMeter * geom.PixelsPerMM
		drawPath(canvas, o.Points, style, rgb(sketch.OutlineColor), strokeWidth)
	}
	canvas.Gend()

	canvas.Gid("labels")
	for _, l := range snap.Labels {
		canvas.Text(l.Pos.X, l.Pos.Y, l.Text,
			fmt.Sprintf(`font-size="%vpx" fill="black"`, l.Size))
	}
	canvas.Gend()

	canvas.End()
	return nil
}

// drawPath strokes one trace or outline with the document's corner style.
// Curved styles are emitted as quadratic path segments from the same
// smoothing the on-screen renderer uses.
func drawPath(canvas *svg.SVG, pts geom.Polyline, style corner.Style, stroke string, width float64) {
	if len(pts) < 2 {
		return
	}
	attrs := fmt.Sprintf(
		`fill="none" stroke="%s" stroke-width="%v" stroke-linecap="round" stroke-linejoin="round"`,
		stroke, width)

	if corner.Curved(style) {
		canvas.Path(smoothPathData(pts), attrs)
		return
	}

	shaped := corner.Apply(pts, style)
	xs := make([]float64, len(shaped))
	ys := make([]float64, len(shaped))
	for i, p := range shaped {
		xs[i], ys[i] = p.X, p.Y
	}
	canvas.Polyline(xs, ys, attrs)
}

// smoothPathData builds SVG path data from the shared curve smoothing.
func smoothPathData(pts geom.Polyline) string {
	start, segs := corner.Smooth(pts)
	var b strings.Builder
	fmt.Fprintf(&b, "M %v %v", start.X, start.Y)
	for _, q := range segs {
		fmt.Fprintf(&b, " Q %v %v %v %v", q.Ctrl.X, q.Ctrl.Y, q.End.X, q.End.Y)
	}
	return b.String()
}

// snapshotBounds computes the bounding box of all snapshot content.
func snapshotBounds(snap sketch.Snapshot) geom.BoundingBox {
	bb := geom.NewBoundingBox()
	for _, n := range snap.Nodes {
		bb.Expand(geom.Point{X: n.Pos.X + n.Radius, Y: n.Pos.Y + n.Radius})
		bb.Expand(geom.Point{X: n.Pos.X - n.Radius, Y: n.Pos.Y - n.Radius})
	}
	for _, t := range snap.Traces {
		bb.ExpandBox(t.Points.Bounds())
	}
	for _, o := range snap.Outlines {
		bb.ExpandBox(o.Points.Bounds())
	}
	for _, l := range snap.Labels {
		bb.Expand(l.Pos)
	}
	return bb
}

// rgb formats a display color as a CSS rgb() value.
func rgb(c color.NRGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}
