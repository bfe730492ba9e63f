package cmd

import (
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSketch/internal/render"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/sketch/sketchfile"
)

var (
	viewCorner  string
	viewChamfer float64
	viewRadius  float64
)

var viewCmd = &cobra.Command{
	Use:   "view <sketch_file>",
	Short: "View a sketch in an interactive window",
	Long: `Open a sketch file in a window. Drag to pan, scroll to zoom, space to
fit the sketch, escape to quit.`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.Flags().StringVar(&viewCorner, "corner", "linear", "corner style: linear, chamfer, fillet, bezier")
	viewCmd.Flags().Float64Var(&viewChamfer, "chamfer", 10, "chamfer length in pixels")
	viewCmd.Flags().Float64Var(&viewRadius, "radius", 15, "fillet radius in pixels")
}

func runView(cmd *cobra.Command, args []string) error {
	filename := args[0]
	g, err := sketchfile.Load(filename)
	if err != nil {
		return fmt.Errorf("error loading sketch: %w", err)
	}

	style, err := cornerStyle(viewCorner, viewChamfer, viewRadius)
	if err != nil {
		return err
	}

	viewer := &render.Viewer{
		Title: "OpenTraceSketch - " + filename,
		Snap:  g.Snapshot(),
		Style: style,
	}

	go func() {
		if err := viewer.Run(); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
	return nil
}
