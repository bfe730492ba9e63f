package corner

import (
	"math"
	"testing"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
)

func TestLinearIsIdentity(t *testing.T) {
	pts := geom.Polyline{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 50}}
	got := Apply(pts, Linear{})
	assertSamePoints(t, got, pts)
}

func TestBezierPassesRawPointsThrough(t *testing.T) {
	pts := geom.Polyline{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 50}, {X: 100, Y: 50}}
	got := Apply(pts, Bezier{})
	assertSamePoints(t, got, pts)
	if !Curved(Bezier{}) {
		t.Fatal("Bezier must report curved")
	}
	if Curved(Linear{}) || Curved(Fillet{Radius: 1}) {
		t.Fatal("only Bezier reports curved")
	}
}

func TestApplyNeverMutatesInput(t *testing.T) {
	pts := geom.Polyline{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 50}}
	orig := pts.Clone()
	for _, style := range []Style{Linear{}, Chamfer{Length: 10}, Fillet{Radius: 15}, Bezier{}} {
		Apply(pts, style)
		assertSamePoints(t, pts, orig)
	}
}

func TestChamferRightAngle(t *testing.T) {
	pts := geom.Polyline{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 50}}
	got := Apply(pts, Chamfer{Length: 10})

	want := geom.Polyline{{X: 0, Y: 0}, {X: 40, Y: 0}, {X: 50, Y: 10}, {X: 50, Y: 50}}
	assertClosePoints(t, got, want)
}

func TestChamferPreservesEndpoints(t *testing.T) {
	pts := geom.Polyline{{X: 3, Y: 7}, {X: 50, Y: 0}, {X: 80, Y: 40}, {X: 120, Y: 5}}
	got := Apply(pts, Chamfer{Length: 8})
	if got[0] != pts[0] || got[len(got)-1] != pts[len(pts)-1] {
		t.Fatalf("endpoints changed: got %v .. %v", got[0], got[len(got)-1])
	}
}

func TestChamferZeroLengthSegment(t *testing.T) {
	// Duplicate vertex makes the middle segment zero-length; both adjacent
	// interior vertices must pass through unmodified.
	pts := geom.Polyline{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 50}}
	got := Apply(pts, Chamfer{Length: 10})
	assertSamePoints(t, got, pts)
}

func TestFilletCollinearUnchanged(t *testing.T) {
	pts := geom.Polyline{{X: 0, Y: 0}, {X: 25, Y: 0}, {X: 50, Y: 0}, {X: 100, Y: 0}}
	got := Apply(pts, Fillet{Radius: 15})
	assertSamePoints(t, got, pts)
}

func TestFilletReversalUnchanged(t *testing.T) {
	// Path doubles back on itself; the turn angle is zero and the tangent
	// offset undefined, so the vertex passes through.
	pts := geom.Polyline{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 0, Y: 0}}
	got := Apply(pts, Fillet{Radius: 15})
	assertSamePoints(t, got, pts)
}

func TestFilletRightAngleTangentPoints(t *testing.T) {
	// 90 degree corner with radius 15: tangent points sit exactly
	// 15 = r/tan(45) units back from the corner along each segment.
	pts := geom.Polyline{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 50}}
	got := Apply(pts, Fillet{Radius: 15})

	if len(got) < 4 {
		t.Fatalf("expected arc points, got %d points", len(got))
	}
	if got[0] != (geom.Point{X: 0, Y: 0}) || got[len(got)-1] != (geom.Point{X: 50, Y: 50}) {
		t.Fatalf("endpoints changed: %v .. %v", got[0], got[len(got)-1])
	}

	first := got[1]
	last := got[len(got)-2]
	if !closeTo(first, geom.Point{X: 35, Y: 0}, 1e-9) {
		t.Fatalf("first tangent point = %v, want (35, 0)", first)
	}
	if !closeTo(last, geom.Point{X: 50, Y: 15}, 1e-9) {
		t.Fatalf("second tangent point = %v, want (50, 15)", last)
	}

	corner := geom.Point{X: 50, Y: 0}
	if d := corner.Distance(first); math.Abs(d-15) > 1e-9 {
		t.Fatalf("tangent offset = %v, want 15", d)
	}
	if d := corner.Distance(last); math.Abs(d-15) > 1e-9 {
		t.Fatalf("tangent offset = %v, want 15", d)
	}

	// Every arc point lies on the radius-15 circle about (35, 15)
	center := geom.Point{X: 35, Y: 15}
	for _, p := range got[1 : len(got)-1] {
		if d := center.Distance(p); math.Abs(d-15) > 1e-9 {
			t.Fatalf("arc point %v is %v from center, want 15", p, d)
		}
	}
}

func TestFilletArcResolution(t *testing.T) {
	// A 90 degree sweep at 15 degrees per segment needs 6 segments,
	// i.e. 7 arc points.
	pts := geom.Polyline{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 50}}
	got := Apply(pts, Fillet{Radius: 15})
	arcPoints := len(got) - 2
	if arcPoints != 7 {
		t.Fatalf("arc has %d points, want 7", arcPoints)
	}

	// A shallow turn still gets the minimum 4 segments (5 points).
	shallow := geom.Polyline{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 200, Y: 20}}
	got = Apply(shallow, Fillet{Radius: 5})
	arcPoints = len(got) - 2
	if arcPoints != 5 {
		t.Fatalf("shallow arc has %d points, want 5", arcPoints)
	}
}

func TestTwoPointPolylineUntouched(t *testing.T) {
	pts := geom.Polyline{{X: 0, Y: 0}, {X: 50, Y: 50}}
	for _, style := range []Style{Linear{}, Chamfer{Length: 10}, Fillet{Radius: 15}, Bezier{}} {
		got := Apply(pts, style)
		assertSamePoints(t, got, pts)
	}
}

func TestSmoothAnchorsEndpoints(t *testing.T) {
	pts := geom.Polyline{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 50}, {X: 100, Y: 50}}
	start, segs := Smooth(pts)
	if start != pts[0] {
		t.Fatalf("smooth start = %v, want %v", start, pts[0])
	}
	if len(segs) == 0 {
		t.Fatal("expected smoothing segments")
	}
	if end := segs[len(segs)-1].End; end != pts[len(pts)-1] {
		t.Fatalf("smooth end = %v, want %v", end, pts[len(pts)-1])
	}
}

func TestSmoothStraightSegment(t *testing.T) {
	start, segs := Smooth(geom.Polyline{{X: 0, Y: 0}, {X: 10, Y: 0}})
	if start != (geom.Point{X: 0, Y: 0}) {
		t.Fatalf("start = %v", start)
	}
	if len(segs) != 1 || segs[0].End != (geom.Point{X: 10, Y: 0}) {
		t.Fatalf("segments = %v", segs)
	}
}

func closeTo(p, q geom.Point, tol float64) bool {
	return math.Abs(p.X-q.X) <= tol && math.Abs(p.Y-q.Y) <= tol
}

func assertSamePoints(t *testing.T, got, want geom.Polyline) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d points, want %d (%v vs %v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func assertClosePoints(t *testing.T, got, want geom.Polyline) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d points, want %d (%v vs %v)", len(got), len(want), got, want)
	}
	for i := range got {
		if !closeTo(got[i], want[i], 1e-9) {
			t.Fatalf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}
