// Package material defines the fixed set of trace materials and their
// physical and display properties. The table is immutable and process-wide.
package material

import "image/color"

// Material identifies a conductor material.
type Material string

const (
	Copper   Material = "copper"
	Aluminum Material = "aluminum"
	Gold     Material = "gold"
	Silver   Material = "silver"
)

// Properties holds the physical and display attributes of a material.
type Properties struct {
	Resistivity float64     // Resistivity in ohm-meters at 20 degrees C
	Color       color.NRGBA // Display color for traces of this material
}

var table = map[Material]Properties{
	Copper:   {Resistivity: 1.68e-8, Color: color.NRGBA{R: 184, G: 115, B: 51, A: 255}},
	Aluminum: {Resistivity: 2.65e-8, Color: color.NRGBA{R: 169, G: 172, B: 176, A: 255}},
	Gold:     {Resistivity: 2.44e-8, Color: color.NRGBA{R: 227, G: 183, B: 46, A: 255}},
	Silver:   {Resistivity: 1.59e-8, Color: color.NRGBA{R: 192, G: 192, B: 192, A: 255}},
}

// All returns the materials in their fixed display order.
func All() []Material {
	return []Material{Copper, Aluminum, Gold, Silver}
}

// Lookup returns the properties for a material and whether it is known.
func Lookup(m Material) (Properties, bool) {
	p, ok := table[m]
	return p, ok
}

// Resistivity returns the resistivity for a material in ohm-meters.
// Unknown materials yield zero, meaning "no physical model available" -
// callers must not read zero as superconducting.
func Resistivity(m Material) float64 {
	return table[m].Resistivity
}

// TraceColor returns the display color for a material.
// Unknown materials render gray.
func TraceColor(m Material) color.NRGBA {
	if p, ok := table[m]; ok {
		return p.Color
	}
	return color.NRGBA{R: 128, G: 128, B: 128, A: 255}
}

// Valid reports whether m names a known material.
func Valid(m Material) bool {
	_, ok := table[m]
	return ok
}
