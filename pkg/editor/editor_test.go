package editor

import (
	"errors"
	"math"
	"testing"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/material"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/sketch"
)

func TestPlaceNodeSnapsToGrid(t *testing.T) {
	g := sketch.NewGraph()
	s := NewState()

	_, n := s.PlaceNode(g, 12, 13)
	if n.Pos != (geom.Point{X: 10, Y: 15}) {
		t.Fatalf("node at %v, want (10, 15)", n.Pos)
	}
	if n.Role != sketch.RolePower {
		t.Fatalf("role = %s, want power", n.Role)
	}

	_, n = s.SetRole(sketch.RoleGround).PlaceNode(g, 48, 27)
	if n.Pos != (geom.Point{X: 50, Y: 25}) {
		t.Fatalf("node at %v, want (50, 25)", n.Pos)
	}
	if n.Role != sketch.RoleGround {
		t.Fatalf("role = %s, want ground", n.Role)
	}
}

func TestPlaceNodeGridDisabled(t *testing.T) {
	g := sketch.NewGraph()
	s := NewState().ToggleGrid()

	_, n := s.PlaceNode(g, 12, 13)
	if n.Pos != (geom.Point{X: 12, Y: 13}) {
		t.Fatalf("node at %v, want raw (12, 13)", n.Pos)
	}
}

func TestTraceDrawingFlow(t *testing.T) {
	g := sketch.NewGraph()
	a := g.AddNode(geom.Point{X: 0, Y: 0}, sketch.RolePower)
	b := g.AddNode(geom.Point{X: 100, Y: 0}, sketch.RoleGround)
	s := NewState().SelectTool(ToolTrace)

	s, err := s.StartTrace(g, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if s.TraceStart != a.ID {
		t.Fatalf("trace start = %s, want %s", s.TraceStart, a.ID)
	}

	s = s.AddTraceWaypoint(48, 33)
	s, tr, err := s.FinishTrace(g, 101, 2)
	if err != nil {
		t.Fatal(err)
	}
	if tr.A != a.ID || tr.B != b.ID {
		t.Fatalf("trace endpoints %s -> %s", tr.A, tr.B)
	}
	if len(tr.Points) != 3 || tr.Points[1] != (geom.Point{X: 50, Y: 35}) {
		t.Fatalf("trace points = %v, want snapped waypoint (50, 35)", tr.Points)
	}
	if tr.Material != material.Copper || tr.Width != DefaultTraceWidth {
		t.Fatalf("trace attributes = %s %v", tr.Material, tr.Width)
	}
	if s.TraceStart != "" || s.TraceWaypoints != nil {
		t.Fatal("drawing state not cleared after finish")
	}
}

func TestStartTraceMiss(t *testing.T) {
	g := sketch.NewGraph()
	g.AddNode(geom.Point{X: 0, Y: 0}, sketch.RolePower)
	s := NewState()

	if _, err := s.StartTrace(g, 500, 500); !errors.Is(err, ErrNoNodeHit) {
		t.Fatalf("err = %v, want ErrNoNodeHit", err)
	}
}

func TestFinishTraceMissClearsPending(t *testing.T) {
	g := sketch.NewGraph()
	g.AddNode(geom.Point{X: 0, Y: 0}, sketch.RolePower)
	s := NewState()

	s, err := s.StartTrace(g, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	s = s.AddTraceWaypoint(40, 40)

	s, tr, err := s.FinishTrace(g, 500, 500)
	if !errors.Is(err, ErrNoNodeHit) {
		t.Fatalf("err = %v, want ErrNoNodeHit", err)
	}
	if tr != nil {
		t.Fatal("miss must not produce a trace")
	}
	if s.TraceStart != "" || s.TraceWaypoints != nil {
		t.Fatal("pending trace state must clear on miss")
	}
	if len(g.Traces()) != 0 {
		t.Fatal("graph must be unchanged")
	}
}

func TestFinishTraceWithoutStart(t *testing.T) {
	g := sketch.NewGraph()
	g.AddNode(geom.Point{X: 0, Y: 0}, sketch.RolePower)
	s := NewState()

	if _, _, err := s.FinishTrace(g, 0, 0); !errors.Is(err, ErrNoNodeHit) {
		t.Fatalf("err = %v, want ErrNoNodeHit", err)
	}
}

func TestSelectToolClearsPending(t *testing.T) {
	g := sketch.NewGraph()
	g.AddNode(geom.Point{X: 0, Y: 0}, sketch.RolePower)
	s := NewState()

	s, err := s.StartTrace(g, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	s = s.StartOutline(10, 10)

	s = s.SelectTool(ToolSelect)
	if s.TraceStart != "" || s.TraceWaypoints != nil || s.OutlinePoints != nil {
		t.Fatal("tool switch must discard in-progress paths")
	}
}

func TestOutlineDrawingFlow(t *testing.T) {
	g := sketch.NewGraph()
	s := NewState().SelectTool(ToolOutline)

	s = s.StartOutline(1, 2)
	s = s.AddOutlinePoint(102, 3)
	s = s.AddOutlinePoint(98, 77)

	s, o := s.FinishOutline(g)
	if o == nil {
		t.Fatal("expected an outline")
	}
	if !o.Points.Closed() {
		t.Fatalf("outline not closed: %v", o.Points)
	}
	if o.Points[0] != (geom.Point{X: 0, Y: 0}) || o.Points[1] != (geom.Point{X: 100, Y: 5}) {
		t.Fatalf("outline points not snapped: %v", o.Points)
	}
	if o.Width != DefaultTraceWidth {
		t.Fatalf("outline width = %v, want session width", o.Width)
	}
	if s.OutlinePoints != nil {
		t.Fatal("drawing state not cleared")
	}
}

func TestFinishOutlineTooFewPoints(t *testing.T) {
	g := sketch.NewGraph()
	s := NewState().SelectTool(ToolOutline)

	s = s.StartOutline(10, 10)
	s, o := s.FinishOutline(g)
	if o != nil {
		t.Fatal("single-point outline must not produce a shape")
	}
	if s.OutlinePoints != nil {
		t.Fatal("pending outline state must clear")
	}
	if len(g.Outlines()) != 0 {
		t.Fatal("graph must be unchanged")
	}
}

func TestAddWaypointDoesNotAliasPriorState(t *testing.T) {
	s := NewState()
	s1 := s.AddTraceWaypoint(10, 10)
	s2 := s1.AddTraceWaypoint(20, 20)
	s3 := s1.AddTraceWaypoint(30, 30)

	if len(s1.TraceWaypoints) != 1 {
		t.Fatalf("earlier state grew: %v", s1.TraceWaypoints)
	}
	if s2.TraceWaypoints[1] != (geom.Point{X: 20, Y: 20}) {
		t.Fatalf("s2 waypoints = %v", s2.TraceWaypoints)
	}
	if s3.TraceWaypoints[1] != (geom.Point{X: 30, Y: 30}) {
		t.Fatalf("branched state corrupted: %v", s3.TraceWaypoints)
	}
}

func TestEditResistance(t *testing.T) {
	g := sketch.NewGraph()
	a := g.AddNode(geom.Point{X: 0, Y: 0}, sketch.RolePower)
	b := g.AddNode(geom.Point{X: 100, Y: 0}, sketch.RoleGround)
	tr, err := g.AddTrace(a.ID, b.ID, nil, material.Copper, 0.005)
	if err != nil {
		t.Fatal(err)
	}
	s := NewState().Select(tr.ID)

	const target = 0.05
	if err := s.EditResistance(g, target); err != nil {
		t.Fatal(err)
	}
	if math.Abs(tr.Resistance-target) > 1e-12 {
		t.Fatalf("resistance = %v, want %v", tr.Resistance, target)
	}

	// Invalid input leaves the trace alone.
	w := tr.Width
	if err := s.EditResistance(g, -1); err == nil {
		t.Fatal("expected error for negative target")
	}
	if tr.Width != w {
		t.Fatal("invalid edit mutated the trace")
	}
}

func TestEditResistanceNonTraceSelection(t *testing.T) {
	g := sketch.NewGraph()
	o, err := g.AddOutline([]geom.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 80}}, 0.002)
	if err != nil {
		t.Fatal(err)
	}
	s := NewState().Select(o.ID)

	if err := s.EditResistance(g, 1.0); !errors.Is(err, sketch.ErrUnknownEntity) {
		t.Fatalf("err = %v, want ErrUnknownEntity", err)
	}
}
