package render

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/corner"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/material"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/sketch"
)

// minStrokeWidth keeps hairline traces visible at low zoom.
const minStrokeWidth = 1.0

// RenderSketch draws a snapshot in layer order: grid, traces and outlines,
// nodes, labels. The corner style shapes trace and outline strokes exactly
// as the SVG serializer does.
func RenderSketch(gtx layout.Context, camera *Camera, snap sketch.Snapshot, style corner.Style, theme *Theme) {
	paint.Fill(gtx.Ops, theme.Background)

	renderGrid(gtx, camera, theme)

	for _, t := range snap.Traces {
		width := float32(t.Width * geom.MMPerMeter * geom.PixelsPerMM * camera.Zoom)
		strokePolyline(gtx, camera, t.Points, style, material.TraceColor(t.Material), width)
	}
	for _, o := range snap.Outlines {
		width := float32(o.Width * geom.MMPerMeter * geom.PixelsPerMM * camera.Zoom)
		strokePolyline(gtx, camera, o.Points, style, sketch.OutlineColor, width)
	}

	for _, n := range snap.Nodes {
		x, y := camera.CanvasToScreen(n.Pos)
		r := n.Radius * camera.Zoom
		paint.FillShape(gtx.Ops, n.Role.Color(),
			clip.Ellipse{
				Min: image.Pt(int(x-r), int(y-r)),
				Max: image.Pt(int(x+r), int(y+r)),
			}.Op(gtx.Ops))
	}

	renderLabels(gtx, camera, snap.Labels, theme)
}

// strokePolyline builds and strokes one shaped path.
func strokePolyline(gtx layout.Context, camera *Camera, pts geom.Polyline, style corner.Style, col color.NRGBA, width float32) {
	if len(pts) < 2 {
		return
	}
	if width < minStrokeWidth {
		width = minStrokeWidth
	}

	var path clip.Path
	path.Begin(gtx.Ops)

	if corner.Curved(style) {
		start, segs := corner.Smooth(pts)
		x0, y0 := camera.CanvasToScreen(start)
		path.MoveTo(f32.Pt(float32(x0), float32(y0)))
		for _, q := range segs {
			cx, cy := camera.CanvasToScreen(q.Ctrl)
			ex, ey := camera.CanvasToScreen(q.End)
			path.QuadTo(f32.Pt(float32(cx), float32(cy)), f32.Pt(float32(ex), float32(ey)))
		}
	} else {
		shaped := corner.Apply(pts, style)
		x0, y0 := camera.CanvasToScreen(shaped[0])
		path.MoveTo(f32.Pt(float32(x0), float32(y0)))
		for _, p := range shaped[1:] {
			x, y := camera.CanvasToScreen(p)
			path.LineTo(f32.Pt(float32(x), float32(y)))
		}
	}

	paint.FillShape(gtx.Ops, col, clip.Stroke{
		Path:  path.End(),
		Width: width,
	}.Op())
}

// ringPolyline strokes a highlight ring just outside a node marker.
func ringPolyline(gtx layout.Context, camera *Camera, n *sketch.Node, col color.NRGBA) {
	x, y := camera.CanvasToScreen(n.Pos)
	r := (n.Radius + 3) * camera.Zoom
	paint.FillShape(gtx.Ops, col, clip.Stroke{
		Path: clip.Ellipse{
			Min: image.Pt(int(x-r), int(y-r)),
			Max: image.Pt(int(x+r), int(y+r)),
		}.Path(gtx.Ops),
		Width: 2,
	}.Op())
}

// renderGrid draws grid lines at the physical grid step across the visible
// area. The grid is culled entirely once the step shrinks below four screen
// pixels.
func renderGrid(gtx layout.Context, camera *Camera, theme *Theme) {
	step := geom.DefaultGridSpacing
	if step*camera.Zoom < 4.0 {
		return
	}

	visible := camera.VisibleBounds()
	const lineWidth = 1.0

	startX := math.Floor(visible.Min.X/step) * step
	startY := math.Floor(visible.Min.Y/step) * step

	var path clip.Path
	path.Begin(gtx.Ops)
	for x := startX; x <= visible.Max.X; x += step {
		sx, _ := camera.CanvasToScreen(geom.Point{X: x, Y: visible.Min.Y})
		path.MoveTo(f32.Pt(float32(sx), 0))
		path.LineTo(f32.Pt(float32(sx), float32(camera.ScreenHeight)))
	}
	for y := startY; y <= visible.Max.Y; y += step {
		_, sy := camera.CanvasToScreen(geom.Point{X: visible.Min.X, Y: y})
		path.MoveTo(f32.Pt(0, float32(sy)))
		path.LineTo(f32.Pt(float32(camera.ScreenWidth), float32(sy)))
	}
	paint.FillShape(gtx.Ops, theme.Grid, clip.Stroke{
		Path:  path.End(),
		Width: lineWidth,
	}.Op())
}

// renderLabels draws text annotations using the Go font collection.
func renderLabels(gtx layout.Context, camera *Camera, labels []sketch.Label, theme *Theme) {
	if len(labels) == 0 {
		return
	}

	collection := gofont.Collection()
	shaper := text.NewShaper(text.WithCollection(collection))

	for _, l := range labels {
		x, y := camera.CanvasToScreen(l.Pos)

		fontSize := l.Size * camera.Zoom
		if fontSize < 4.0 {
			continue
		}
		if fontSize > 96.0 {
			fontSize = 96.0
		}

		macro := op.Record(gtx.Ops)

		transform := f32.Affine2D{}.Offset(f32.Pt(float32(x), float32(y)))
		stack := op.Affine(transform).Push(gtx.Ops)

		paint.ColorOp{Color: theme.LabelText}.Add(gtx.Ops)
		lbl := widget.Label{
			Alignment: text.Start,
			MaxLines:  1,
		}
		lbl.Layout(gtx, shaper, font.Font{}, unit.Sp(fontSize), l.Text, op.CallOp{})

		stack.Pop()
		call := macro.Stop()
		call.Add(gtx.Ops)
	}
}
