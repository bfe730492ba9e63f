package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/sketch/sketchfile"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/store"
)

var (
	syncStoreURL string
	pullOutput   string
)

var pushCmd = &cobra.Command{
	Use:   "push <sketch_file>",
	Short: "Upload a sketch's shapes to the persistence service",
	Args:  cobra.ExactArgs(1),
	RunE:  runPush,
}

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Download the persisted shapes as a sketch file",
	RunE:  runPull,
}

func init() {
	rootCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(pullCmd)
	pushCmd.Flags().StringVar(&syncStoreURL, "store", "http://localhost:8080", "persistence service base URL")
	pullCmd.Flags().StringVar(&syncStoreURL, "store", "http://localhost:8080", "persistence service base URL")
	pullCmd.Flags().StringVarP(&pullOutput, "output", "o", "", "output file (default stdout)")
}

func runPush(cmd *cobra.Command, args []string) error {
	g, err := sketchfile.Load(args[0])
	if err != nil {
		return fmt.Errorf("error loading sketch: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	s := store.NewRESTStore(syncStoreURL)
	recs := store.FromSnapshot(g.Snapshot())
	for _, rec := range recs {
		if err := s.Create(ctx, rec); err != nil {
			return fmt.Errorf("error pushing %s %s: %w", rec.Type, rec.ID, err)
		}
		if verbose {
			fmt.Printf("pushed %s %s\n", rec.Type, rec.ID)
		}
	}
	fmt.Printf("Pushed %d shapes to %s\n", len(recs), syncStoreURL)
	return nil
}

func runPull(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	s := store.NewRESTStore(syncStoreURL)
	recs, err := s.Load(ctx)
	if err != nil {
		return fmt.Errorf("error loading shapes: %w", err)
	}

	g, err := store.BuildGraph(recs)
	if err != nil {
		return fmt.Errorf("error rebuilding sketch: %w", err)
	}

	out := os.Stdout
	if pullOutput != "" {
		f, err := os.Create(pullOutput)
		if err != nil {
			return fmt.Errorf("error creating output: %w", err)
		}
		defer f.Close()
		out = f
	}
	return sketchfile.Write(out, g.Snapshot())
}
