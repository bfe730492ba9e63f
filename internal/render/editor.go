package render

import (
	"context"
	"log"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/corner"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/editor"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/material"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/sketch"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/sketch/sketchfile"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/store"
)

// EditorWindow is the interactive drawing surface over a live shape graph.
//
// Keys: 1 select, 2 node, 3 trace, 4 outline, 5 label, G grid, C corner
// style, M material, R role, Enter finish outline, S save, Space fit,
// Escape or Q quit. In the select tool the primary button drags to pan; in
// drawing tools it places points. Scroll zooms at the cursor.
type EditorWindow struct {
	Title string
	Graph *sketch.Graph
	State editor.State
	Theme *Theme

	// SavePath receives the sketch document on save.
	SavePath string

	// Mirror, when set, receives every created shape. Failures are logged
	// and the in-memory graph stands.
	Mirror store.Store
}

// Run opens the editor window and blocks until it is closed.
func (e *EditorWindow) Run() error {
	w := new(app.Window)
	w.Option(app.Title(e.Title))
	w.Option(app.Size(unit.Dp(1000), unit.Dp(800)))
	return e.loop(w)
}

func (e *EditorWindow) loop(w *app.Window) error {
	if e.Theme == nil {
		e.Theme = DefaultTheme()
	}

	camera := NewCamera(1000, 800)
	if bb := e.Graph.Bounds(); !bb.IsEmpty() {
		camera.Fit(bb)
	}

	var ops op.Ops
	var dragging bool
	var lastX, lastY float32

	for {
		switch ev := w.Event().(type) {
		case app.DestroyEvent:
			return ev.Err

		case app.FrameEvent:
			ops.Reset()

			gtx := layout.Context{
				Ops:         &ops,
				Constraints: layout.Exact(ev.Size),
				Metric:      ev.Metric,
				Now:         ev.Now,
				Source:      ev.Source,
			}

			camera.UpdateScreenSize(ev.Size.X, ev.Size.Y)

			for {
				kev, ok := gtx.Event(key.Filter{})
				if !ok {
					break
				}
				ke, ok := kev.(key.Event)
				if !ok || ke.State != key.Press {
					continue
				}
				if quit := e.handleKey(ke.Name, camera); quit {
					return nil
				}
				w.Invalidate()
			}

			for {
				pev, ok := gtx.Event(pointer.Filter{
					Kinds: pointer.Press | pointer.Drag | pointer.Release | pointer.Scroll,
				})
				if !ok {
					break
				}
				pe, ok := pev.(pointer.Event)
				if !ok {
					continue
				}
				switch pe.Kind {
				case pointer.Press:
					if pe.Buttons != pointer.ButtonPrimary {
						break
					}
					if e.State.Tool == editor.ToolSelect {
						dragging = true
						lastX, lastY = pe.Position.X, pe.Position.Y
					}
					p := camera.ScreenToCanvas(float64(pe.Position.X), float64(pe.Position.Y))
					e.handlePress(p)
					w.Invalidate()
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

			snap := e.Graph.Snapshot()
			RenderSketch(gtx, camera, snap, e.State.Corner, e.Theme)
			e.renderOverlays(gtx, camera)

			ev.Frame(&ops)
		}
	}
}

// handleKey applies one key press and reports whether the window should close.
func (e *EditorWindow) handleKey(name key.Name, camera *Camera) bool {
	switch name {
	case key.NameEscape, "Q":
		return true
	case key.NameSpace:
		if bb := e.Graph.Bounds(); !bb.IsEmpty() {
			camera.Fit(bb)
		}
	case "1":
		e.State = e.State.SelectTool(editor.ToolSelect)
	case "2":
		e.State = e.State.SelectTool(editor.ToolNode)
	case "3":
		e.State = e.State.SelectTool(editor.ToolTrace)
	case "4":
		e.State = e.State.SelectTool(editor.ToolOutline)
	case "5":
		e.State = e.State.SelectTool(editor.ToolLabel)
	case "G":
		e.State = e.State.ToggleGrid()
	case "C":
		e.State = e.State.SetCornerStyle(nextCornerStyle(e.State.Corner))
	case "M":
		e.State = e.State.SetMaterial(nextMaterial(e.State.Material))
	case "R":
		if e.State.Role == sketch.RolePower {
			e.State = e.State.SetRole(sketch.RoleGround)
		} else {
			e.State = e.State.SetRole(sketch.RolePower)
		}
	case key.NameReturn:
		var o *sketch.Outline
		e.State, o = e.State.FinishOutline(e.Graph)
		if o != nil {
			e.mirror(store.FromOutline(*o))
		}
	case "S":
		if e.SavePath != "" {
			if err := sketchfile.WriteFile(e.SavePath, e.Graph.Snapshot()); err != nil {
				log.Printf("save %s: %v", e.SavePath, err)
			}
		}
	}
	return false
}

// handlePress routes a primary-button press at a canvas position through the
// active tool.
func (e *EditorWindow) handlePress(p geom.Point) {
	switch e.State.Tool {
	case editor.ToolSelect:
		if n, ok := e.Graph.NodeAt(p); ok {
			e.State = e.State.Select(n.ID)
		} else {
			e.State = e.State.Select("")
		}

	case editor.ToolNode:
		var n *sketch.Node
		e.State, n = e.State.PlaceNode(e.Graph, p.X, p.Y)
		e.mirror(store.FromNode(*n))

	case editor.ToolTrace:
		if e.State.TraceStart == "" {
			s, err := e.State.StartTrace(e.Graph, p.X, p.Y)
			if err == nil {
				e.State = s
			}
			return
		}
		if _, hit := e.Graph.NodeAt(p); hit {
			s, t, err := e.State.FinishTrace(e.Graph, p.X, p.Y)
			e.State = s
			if err != nil {
				log.Printf("trace: %v", err)
				return
			}
			e.mirror(store.FromTrace(*t))
			return
		}
		e.State = e.State.AddTraceWaypoint(p.X, p.Y)

	case editor.ToolOutline:
		if e.State.OutlinePoints == nil {
			e.State = e.State.StartOutline(p.X, p.Y)
		} else {
			e.State = e.State.AddOutlinePoint(p.X, p.Y)
		}

	case editor.ToolLabel:
		// TODO: text entry widget for label content; placeholder until then
		var l *sketch.Label
		e.State, l = e.State.PlaceLabel(e.Graph, p.X, p.Y, "text", 12)
		e.mirror(store.FromLabel(*l))
	}
}

// renderOverlays draws editor chrome above the shape layers: the selection
// ring and in-progress trace and outline paths.
func (e *EditorWindow) renderOverlays(gtx layout.Context, camera *Camera) {
	if id := e.State.Selection; id != "" {
		if n, ok := e.Graph.Node(id); ok {
			ringPolyline(gtx, camera, n, e.Theme.Selection)
		}
	}

	if e.State.TraceStart != "" {
		if n, ok := e.Graph.Node(e.State.TraceStart); ok {
			pts := append(geom.Polyline{n.Pos}, e.State.TraceWaypoints...)
			if len(pts) >= 2 {
				strokePolyline(gtx, camera, pts, corner.Linear{}, e.Theme.Pending, 2)
			}
		}
	}
	if len(e.State.OutlinePoints) >= 2 {
		strokePolyline(gtx, camera, e.State.OutlinePoints, corner.Linear{}, e.Theme.Pending, 2)
	}
}

// mirror forwards a created shape to the persistence collaborator.
func (e *EditorWindow) mirror(rec store.Record) {
	if e.Mirror == nil {
		return
	}
	if err := e.Mirror.Create(context.Background(), rec); err != nil {
		log.Printf("mirror %s %s: %v", rec.Type, rec.ID, err)
	}
}

// nextCornerStyle cycles linear, chamfer, fillet, bezier.
func nextCornerStyle(s corner.Style) corner.Style {
	switch s.(type) {
	case corner.Linear:
		return corner.Chamfer{Length: 10}
	case corner.Chamfer:
		return corner.Fillet{Radius: 15}
	case corner.Fillet:
		return corner.Bezier{}
	default:
		return corner.Linear{}
	}
}

// nextMaterial cycles through the material table in display order.
func nextMaterial(m material.Material) material.Material {
	all := material.All()
	for i, cur := range all {
		if cur == m {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}
