package render

import (
	"image/color"

	"golang.org/x/exp/shiny/materialdesign/colornames"
)

// Theme holds the fixed UI palette for the sketch surface. Shape colors
// (node roles, materials, outlines) come from the model packages; the theme
// only covers chrome around them.
type Theme struct {
	Background color.NRGBA
	Grid       color.NRGBA
	LabelText  color.NRGBA
	Selection  color.NRGBA
	Pending    color.NRGBA
}

// DefaultTheme is the standard dark canvas palette.
func DefaultTheme() *Theme {
	return &Theme{
		Background: nrgba(colornames.BlueGrey900),
		Grid:       nrgba(colornames.BlueGrey800),
		LabelText:  nrgba(colornames.Grey100),
		Selection:  nrgba(colornames.Amber400),
		Pending:    nrgba(colornames.LightBlue300),
	}
}

// nrgba converts the material design palette entries (opaque color.RGBA)
// for use with Gio paint operations.
func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
