package cmd

import (
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSketch/internal/render"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/editor"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/sketch"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/sketch/sketchfile"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/store"
)

var editStoreURL string

var editCmd = &cobra.Command{
	Use:   "edit [sketch_file]",
	Short: "Edit a sketch in an interactive window",
	Long: `Open a sketch file for editing, or start with an empty canvas.

Keys: 1 select, 2 node, 3 trace, 4 outline, 5 label, G grid, C corner
style, M material, R power/ground role, Enter finish outline, S save,
Space fit, Escape quit. With --store, created shapes are also posted to
the persistence service.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editStoreURL, "store", "", "persistence service base URL")
}

func runEdit(cmd *cobra.Command, args []string) error {
	g := sketch.NewGraph()
	savePath := "untitled.sketch"
	title := "OpenTraceSketch - untitled"
	if len(args) == 1 {
		loaded, err := sketchfile.Load(args[0])
		if err != nil {
			return fmt.Errorf("error loading sketch: %w", err)
		}
		g = loaded
		savePath = args[0]
		title = "OpenTraceSketch - " + args[0]
	}

	win := &render.EditorWindow{
		Title:    title,
		Graph:    g,
		State:    editor.NewState(),
		SavePath: savePath,
	}
	if editStoreURL != "" {
		win.Mirror = store.NewRESTStore(editStoreURL)
	}

	go func() {
		if err := win.Run(); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
	return nil
}
