package main

import (
	"fmt"
	"log"
	"os"

	"gioui.org/app"

	"github.com/OpenTraceLab/OpenTraceSketch/internal/render"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/corner"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/sketch/sketchfile"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: sketch-viewer <sketch_file>")
		os.Exit(1)
	}

	filename := os.Args[1]

	fmt.Printf("Loading sketch: %s\n", filename)
	g, err := sketchfile.Load(filename)
	if err != nil {
		fmt.Printf("Error loading sketch: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Loaded sketch successfully\n")
	fmt.Printf("  Nodes: %d\n", len(g.Nodes()))
	fmt.Printf("  Traces: %d\n", len(g.Traces()))
	fmt.Printf("  Outlines: %d\n", len(g.Outlines()))
	fmt.Printf("  Labels: %d\n", len(g.Labels()))

	bbox := g.Bounds()
	if !bbox.IsEmpty() {
		fmt.Printf("  Sketch size: %.1f x %.1f mm\n",
			bbox.Width()*geom.MMPerPixel, bbox.Height()*geom.MMPerPixel)
	}

	viewer := &render.Viewer{
		Title: "Sketch Viewer - " + filename,
		Snap:  g.Snapshot(),
		Style: corner.Linear{},
	}

	go func() {
		if err := viewer.Run(); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}
