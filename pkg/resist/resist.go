// Package resist implements the physical model relating trace geometry,
// material and width to electrical resistance. All calculations use the raw
// stored polyline, never a corner-styled render derivative, so electrical
// length is independent of display style.
package resist

import (
	"fmt"
	"math"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/material"
)

// Thickness is the fixed trace cross-section depth in meters
// (35 um, standard 1 oz copper pour).
const Thickness = 35e-6

// Length returns the electrical length of a polyline in meters.
func Length(pts geom.Polyline) float64 {
	return pts.Length() * geom.MMPerPixel * geom.MetersPerMM
}

// Resistance computes R = rho * length / (width * thickness) for a raw
// polyline, a material and a trace width in meters. An unknown material or a
// non-positive width yields zero, signaling that no physical model is
// available.
func Resistance(pts geom.Polyline, m material.Material, width float64) float64 {
	rho := material.Resistivity(m)
	if rho == 0 || width <= 0 {
		return 0
	}
	return rho * Length(pts) / (width * Thickness)
}

// WidthForResistance inverts the resistance relation, solving for the trace
// width in meters that yields the target resistance. The target must be a
// positive finite number; anything else is rejected so the caller can keep
// its last valid value. Materials without a physical model cannot be solved.
func WidthForResistance(target float64, m material.Material, pts geom.Polyline) (float64, error) {
	if math.IsNaN(target) || math.IsInf(target, 0) || target <= 0 {
		return 0, fmt.Errorf("resist: invalid target resistance %v", target)
	}
	rho := material.Resistivity(m)
	if rho == 0 {
		return 0, fmt.Errorf("resist: no physical model for material %q", m)
	}
	return rho * Length(pts) / (target * Thickness), nil
}
