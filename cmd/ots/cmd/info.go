package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/resist"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/sketch/sketchfile"
)

var infoCmd = &cobra.Command{
	Use:   "info <sketch_file>",
	Short: "Show sketch information",
	Long: `Display a summary of a sketch file: shape counts, physical size, and
per-trace electrical properties.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]
	g, err := sketchfile.Load(filename)
	if err != nil {
		return fmt.Errorf("error loading sketch: %w", err)
	}

	fmt.Printf("Sketch: %s\n", filename)
	fmt.Println()

	fmt.Println("Statistics:")
	fmt.Printf("  Nodes: %d\n", len(g.Nodes()))
	fmt.Printf("  Traces: %d\n", len(g.Traces()))
	fmt.Printf("  Outlines: %d\n", len(g.Outlines()))
	fmt.Printf("  Labels: %d\n", len(g.Labels()))
	fmt.Println()

	bb := g.Bounds()
	if !bb.IsEmpty() {
		fmt.Printf("Sketch size: %.1f x %.1f mm\n",
			bb.Width()*geom.MMPerPixel, bb.Height()*geom.MMPerPixel)
		fmt.Println()
	}

	traces := g.Traces()
	if len(traces) > 0 {
		fmt.Println("Traces:")
		for _, t := range traces {
			lengthMM := t.Points.Length() * geom.MMPerPixel
			fmt.Printf("  %s: %s, %.1f mm long, %.2f mm wide, %.3f ohm\n",
				t.ID, t.Material, lengthMM, t.Width*geom.MMPerMeter, t.Resistance)
			if verbose {
				fmt.Printf("    from %s to %s via %d waypoints, length %.4g m\n",
					t.A, t.B, len(t.Points)-2, resist.Length(t.Points))
			}
		}
	}

	return nil
}
