// Package sketchfile implements the plain-text sketch document format.
// A sketch file is a line-oriented list of shape statements:
//
//	sketch 1
//	node "n1" power at 100 200 radius 6
//	node "n2" ground at 300 200 radius 6
//	trace "t1" from "n1" to "n2" material copper width 0.005 via 200 120
//	outline "o1" width 0.002 points 0 0 400 0 400 300
//	label "l1" at 20 20 size 12 text "5V rail"
//	background "board.png" at 0 0 size 40 30
//
// Coordinates are canvas pixels, widths are meters, background sizes are
// centimeters. '#' starts a comment running to end of line.
package sketchfile

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// SketchLexer defines the lexical structure for sketch files.
var SketchLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments run from '#' to end of line
	{Name: "Comment", Pattern: `#[^\n]*`},

	// Whitespace
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// Statement keywords
	{Name: "KwSketch", Pattern: `\bsketch\b`},
	{Name: "KwNode", Pattern: `\bnode\b`},
	{Name: "KwTrace", Pattern: `\btrace\b`},
	{Name: "KwOutline", Pattern: `\boutline\b`},
	{Name: "KwLabel", Pattern: `\blabel\b`},
	{Name: "KwBackground", Pattern: `\bbackground\b`},

	// Node roles
	{Name: "KwPower", Pattern: `\bpower\b`},
	{Name: "KwGround", Pattern: `\bground\b`},

	// Attribute keywords
	{Name: "KwAt", Pattern: `\bat\b`},
	{Name: "KwRadius", Pattern: `\bradius\b`},
	{Name: "KwFrom", Pattern: `\bfrom\b`},
	{Name: "KwTo", Pattern: `\bto\b`},
	{Name: "KwMaterial", Pattern: `\bmaterial\b`},
	{Name: "KwWidth", Pattern: `\bwidth\b`},
	{Name: "KwVia", Pattern: `\bvia\b`},
	{Name: "KwPoints", Pattern: `\bpoints\b`},
	{Name: "KwSize", Pattern: `\bsize\b`},
	{Name: "KwText", Pattern: `\btext\b`},

	// Literals
	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},
	{Name: "Number", Pattern: `[-+]?[0-9]+(\.[0-9]+)?([eE][-+]?[0-9]+)?`},

	// Identifiers (material names; must come after keywords)
	{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z0-9_]*`},
})
