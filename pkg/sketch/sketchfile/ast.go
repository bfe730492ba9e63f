package sketchfile

// File represents a complete sketch document.
type File struct {
	Version    int          `parser:"KwSketch @Number"`
	Statements []*Statement `parser:"@@*"`
}

// Statement is one shape record.
type Statement struct {
	Node       *NodeStmt       `parser:"  @@"`
	Trace      *TraceStmt      `parser:"| @@"`
	Outline    *OutlineStmt    `parser:"| @@"`
	Label      *LabelStmt      `parser:"| @@"`
	Background *BackgroundStmt `parser:"| @@"`
}

// NodeStmt declares a node terminal.
// Example: node "n1" power at 100 200 radius 6
type NodeStmt struct {
	ID     string   `parser:"KwNode @String"`
	Role   string   `parser:"@( KwPower | KwGround )"`
	X      float64  `parser:"KwAt @Number"`
	Y      float64  `parser:"@Number"`
	Radius *float64 `parser:"( KwRadius @Number )?"`
}

// TraceStmt declares a routed trace between two nodes. The via list holds
// interleaved x y waypoint coordinates; node anchor points are not repeated.
// Example: trace "t1" from "n1" to "n2" material copper width 0.005 via 200 120
type TraceStmt struct {
	ID       string    `parser:"KwTrace @String"`
	From     string    `parser:"KwFrom @String"`
	To       string    `parser:"KwTo @String"`
	Material string    `parser:"KwMaterial @Ident"`
	Width    float64   `parser:"KwWidth @Number"`
	Via      []float64 `parser:"( KwVia @Number+ )?"`
}

// OutlineStmt declares a closed board outline. The point list holds
// interleaved x y coordinates; the closing point may be omitted.
// Example: outline "o1" width 0.002 points 0 0 400 0 400 300
type OutlineStmt struct {
	ID     string    `parser:"KwOutline @String"`
	Width  float64   `parser:"KwWidth @Number"`
	Points []float64 `parser:"KwPoints @Number+"`
}

// LabelStmt declares a text annotation.
// Example: label "l1" at 20 20 size 12 text "5V rail"
type LabelStmt struct {
	ID   string  `parser:"KwLabel @String"`
	X    float64 `parser:"KwAt @Number"`
	Y    float64 `parser:"@Number"`
	Size float64 `parser:"KwSize @Number"`
	Text string  `parser:"KwText @String"`
}

// BackgroundStmt declares the optional background image with its physical
// size in centimeters.
// Example: background "board.png" at 0 0 size 40 30
type BackgroundStmt struct {
	Href     string  `parser:"KwBackground @String"`
	X        float64 `parser:"KwAt @Number"`
	Y        float64 `parser:"@Number"`
	WidthCM  float64 `parser:"KwSize @Number"`
	HeightCM float64 `parser:"@Number"`
}
