package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/sketch/sketchfile"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt <sketch_file>",
	Short: "Rewrite a sketch file in canonical form",
	Long: `Parse a sketch file and print it back in canonical statement order
(nodes, traces, outlines, labels, background). With -w the file is
rewritten in place.`,
	Args: cobra.ExactArgs(1),
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write result back to the source file")
}

func runFmt(cmd *cobra.Command, args []string) error {
	filename := args[0]
	g, err := sketchfile.Load(filename)
	if err != nil {
		return fmt.Errorf("error loading sketch: %w", err)
	}

	if fmtWrite {
		return sketchfile.WriteFile(filename, g.Snapshot())
	}
	return sketchfile.Write(os.Stdout, g.Snapshot())
}
