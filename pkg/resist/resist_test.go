package resist

import (
	"math"
	"testing"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/material"
)

func TestLength(t *testing.T) {
	// 100 canvas pixels = 100 mm = 0.1 m at the fixed scale.
	pts := geom.Polyline{{X: 0, Y: 0}, {X: 100, Y: 0}}
	if got := Length(pts); math.Abs(got-0.1) > 1e-12 {
		t.Fatalf("Length = %v m, want 0.1", got)
	}
}

func TestResistanceCopperStraight(t *testing.T) {
	// R = 1.68e-8 * 0.1 / (0.005 * 35e-6) = 9.6e-3 ohm
	pts := geom.Polyline{{X: 0, Y: 0}, {X: 100, Y: 0}}
	got := Resistance(pts, material.Copper, 0.005)
	want := 1.68e-8 * 0.1 / (0.005 * Thickness)
	if math.Abs(got-want) > 1e-15 {
		t.Fatalf("Resistance = %v, want %v", got, want)
	}
	if math.Abs(got-9.6e-3) > 1e-12 {
		t.Fatalf("Resistance = %v, want 9.6e-3", got)
	}
}

func TestResistanceUsesRawPolyline(t *testing.T) {
	// Waypoints only contribute their true segment lengths, so a bent trace
	// of the same total length matches a straight one.
	straight := geom.Polyline{{X: 0, Y: 0}, {X: 100, Y: 0}}
	bent := geom.Polyline{{X: 0, Y: 0}, {X: 60, Y: 0}, {X: 100, Y: 0}}
	a := Resistance(straight, material.Copper, 0.005)
	b := Resistance(bent, material.Copper, 0.005)
	if math.Abs(a-b) > 1e-15 {
		t.Fatalf("collinear waypoint changed resistance: %v vs %v", a, b)
	}
}

func TestResistanceScalesInverselyWithWidth(t *testing.T) {
	pts := geom.Polyline{{X: 0, Y: 0}, {X: 100, Y: 0}}
	narrow := Resistance(pts, material.Copper, 0.001)
	wide := Resistance(pts, material.Copper, 0.002)
	if math.Abs(narrow-2*wide) > 1e-12*narrow {
		t.Fatalf("doubling width must halve resistance: %v vs %v", narrow, wide)
	}
}

func TestResistanceNoModel(t *testing.T) {
	pts := geom.Polyline{{X: 0, Y: 0}, {X: 100, Y: 0}}
	if got := Resistance(pts, material.Material("unobtainium"), 0.005); got != 0 {
		t.Fatalf("unknown material resistance = %v, want 0", got)
	}
	if got := Resistance(pts, material.Copper, 0); got != 0 {
		t.Fatalf("zero width resistance = %v, want 0", got)
	}
	if got := Resistance(pts, material.Copper, -0.001); got != 0 {
		t.Fatalf("negative width resistance = %v, want 0", got)
	}
}

func TestWidthForResistanceRoundTrip(t *testing.T) {
	pts := geom.Polyline{{X: 0, Y: 0}, {X: 80, Y: 0}, {X: 80, Y: 60}}
	for _, m := range material.All() {
		const width = 0.004
		r := Resistance(pts, m, width)
		got, err := WidthForResistance(r, m, pts)
		if err != nil {
			t.Fatalf("%s: %v", m, err)
		}
		if math.Abs(got-width) > 1e-12 {
			t.Fatalf("%s: round-trip width = %v, want %v", m, got, width)
		}
	}
}

func TestWidthForResistanceRejectsInvalidTargets(t *testing.T) {
	pts := geom.Polyline{{X: 0, Y: 0}, {X: 100, Y: 0}}
	for _, target := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := WidthForResistance(target, material.Copper, pts); err == nil {
			t.Errorf("target %v: expected error", target)
		}
	}
}

func TestWidthForResistanceUnknownMaterial(t *testing.T) {
	pts := geom.Polyline{{X: 0, Y: 0}, {X: 100, Y: 0}}
	if _, err := WidthForResistance(1.0, material.Material("unobtainium"), pts); err == nil {
		t.Fatal("expected error for material without a physical model")
	}
}
