package render

import (
	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/corner"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/sketch"
)

// Viewer is a read-only interactive window over a sketch snapshot:
// drag to pan, scroll to zoom, space to fit, escape or Q to quit.
type Viewer struct {
	Title string
	Snap  sketch.Snapshot
	Style corner.Style
	Theme *Theme
}

// Run opens the viewer window and blocks until it is closed.
func (v *Viewer) Run() error {
	w := new(app.Window)
	w.Option(app.Title(v.Title))
	w.Option(app.Size(unit.Dp(1000), unit.Dp(800)))
	return v.loop(w)
}

func (v *Viewer) loop(w *app.Window) error {
	if v.Theme == nil {
		v.Theme = DefaultTheme()
	}
	if v.Style == nil {
		v.Style = corner.Linear{}
	}

	camera := NewCamera(1000, 800)
	bbox := snapshotBounds(v.Snap)
	if !bbox.IsEmpty() {
		camera.Fit(bbox)
	}

	var ops op.Ops
	var dragging bool
	var lastX, lastY float32

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			ops.Reset()

			gtx := layout.Context{
				Ops:         &ops,
				Constraints: layout.Exact(e.Size),
				Metric:      e.Metric,
				Now:         e.Now,
				Source:      e.Source,
			}

			camera.UpdateScreenSize(e.Size.X, e.Size.Y)

			for {
				ev, ok := gtx.Event(key.Filter{})
				if !ok {
					break
				}
				ke, ok := ev.(key.Event)
				if !ok || ke.State != key.Press {
					continue
				}
				switch ke.Name {
				case key.NameEscape, "Q":
					return nil
				case key.NameSpace:
					if !bbox.IsEmpty() {
						camera.Fit(bbox)
					}
					w.Invalidate()
				}
			}

			for {
				ev, ok := gtx.Event(pointer.Filter{
					Kinds: pointer.Press | pointer.Drag | pointer.Release | pointer.Scroll,
				})
				if !ok {
					break
				}
				pe, ok := ev.(pointer.Event)
				if !ok {
					continue
				}
				switch pe.Kind {
				case pointer.Press:
					if pe.Buttons == pointer.ButtonPrimary {
						dragging = true
						lastX, lastY = pe.Position.X, pe.Position.Y
					}
				case pointer.Drag:
					if dragging {
						camera.Pan(float64(pe.Position.X-lastX), float64(pe.Position.Y-lastY))
						lastX, lastY = pe.Position.X, pe.Position.Y
						w.Invalidate()
					}
				case pointer.Release:
					dragging = false
				case pointer.Scroll:
					zoomFactor := 1.0 - float64(pe.Scroll.Y)*0.1
					camera.ZoomAt(float64(pe.Position.X), float64(pe.Position.Y), zoomFactor)
					w.Invalidate()
				}
			}

			RenderSketch(gtx, camera, v.Snap, v.Style, v.Theme)

			e.Frame(&ops)
		}
	}
}

// snapshotBounds computes the bounding box of all snapshot content.
func snapshotBounds(snap sketch.Snapshot) geom.BoundingBox {
	bb := geom.NewBoundingBox()
	for _, n := range snap.Nodes {
		bb.Expand(n.Pos)
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
