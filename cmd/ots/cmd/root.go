package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ots",
	Short: "OpenTraceSketch - circuit sketch and trace tools",
	Long: `OpenTraceSketch (ots) provides tools for working with circuit sketch files:
  - Inspecting sketch contents and trace resistance
  - Exporting true-to-scale SVG drawings
  - Viewing and editing sketches in an interactive window
  - Syncing shapes with a persistence service

Examples:
  ots info board.sketch               # Show sketch summary
  ots export board.sketch -o out.svg  # Export scale-accurate SVG
  ots view board.sketch               # Open interactive viewer
  ots edit board.sketch               # Open interactive editor
  ots fmt board.sketch                # Rewrite in canonical form
  ots push board.sketch --store URL   # Upload shapes to a service`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
