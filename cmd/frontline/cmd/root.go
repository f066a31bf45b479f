// Package cmd wires the frontline command line interface: graph
// generation or loading, parallel traversal runs, and the benchmark
// suite.
package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	workers int
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "frontline",
	Short: "A parallel direction-optimizing graph traversal engine",
	Long: `frontline computes hop counts over large directed graphs using a
direction-optimizing breadth-first engine: it pushes from the frontier
while the frontier is small and pulls from the unvisited remainder once
pushing would touch more edges than pulling.

Graphs are generated (uniform random, scale-free, R-MAT) or loaded from
whitespace-separated edge-list files.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cfg := loadDefaults()

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", cfg.Workers, "Worker goroutines per traversal round")

	binName := BinName()
	rootCmd.Example = `  # Traverse a generated random graph from vertex 0
  ` + binName + ` run --gen random --vertices 100000 --density 0.0001 --source 0

  # Whole-graph reachability over a scale-free graph, 8 workers
  ` + binName + ` run --gen scalefree --vertices 100000 --edges 1600000 -w 8

  # Load an edge list from disk and validate against the serial oracle
  ` + binName + ` run --file ./edges.txt --source 0 --validate

  # Benchmark suite with a thread-scaling sweep, CSV to disk
  ` + binName + ` bench --runs 5 --scaling --csv ./results.csv`
}

// BinName returns the base name of the current executable
func BinName() string {
	return filepath.Base(os.Args[0])
}

// defaultWorkers is the fallback when neither flag nor environment
// picks a worker count.
func defaultWorkers() int {
	return runtime.NumCPU()
}
