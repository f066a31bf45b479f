package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/frontline/bench"
)

var (
	// Bench command flags
	benchRuns int
	csvPath   string
	scaling   bool
)

// benchCmd represents the bench command
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark traversal throughput and parallel speedup",
	Long: `Bench measures repeated multi-source traversals of one graph and
reports mean wall time, edge throughput and speedup over a
single-worker baseline.

With --scaling it sweeps worker counts from 1 up to --workers and
reports one row per count, which shows how the engine scales with
threads on the current machine.`,
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)
	addGraphFlags(benchCmd)

	cfg := loadDefaults()
	benchCmd.Flags().IntVar(&benchRuns, "runs", cfg.Runs, "Timed runs per measurement")
	benchCmd.Flags().StringVar(&csvPath, "csv", "", "Write results to this CSV file")
	benchCmd.Flags().BoolVar(&scaling, "scaling", false, "Sweep worker counts 1..--workers")
}

func runBench(cmd *cobra.Command, args []string) error {
	g, name, err := buildGraph()
	if err != nil {
		return err
	}

	slog.Info("benchmarking",
		"name", name,
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
		"workers", workers,
		"runs", benchRuns,
		"scaling", scaling)

	var results []bench.Result
	if scaling {
		results, err = bench.ThreadScaling(g, name, workers, benchRuns)
	} else {
		var r bench.Result
		if r, err = bench.Run(g, name, workers, benchRuns); err == nil {
			results = []bench.Result{r}
		}
	}
	if err != nil {
		return err
	}

	printResults(results)

	if csvPath != "" {
		if err = writeCSVFile(csvPath, results); err != nil {
			return err
		}
		slog.Info("results written", "path", csvPath)
	}

	return nil
}

// printResults renders a fixed-width result table to stdout.
func printResults(results []bench.Result) {
	fmt.Printf("%-16s %10s %12s %8s %10s %14s %8s %12s\n",
		"Graph", "Vertices", "Edges", "Workers", "Time(ms)", "Thruput(M/s)", "Speedup", "Reachable")
	for _, r := range results {
		fmt.Printf("%-16s %10d %12d %8d %10.3f %14.2f %8.2f %6d (%4.1f%%)\n",
			r.Name, r.Vertices, r.Edges, r.Workers,
			r.TimeMS, r.ThroughputMES, r.Speedup, r.Reachable, r.ReachablePct)
	}
}

// writeCSVFile creates path and streams the results through WriteCSV.
func writeCSVFile(path string, results []bench.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	return bench.WriteCSV(f, results)
}
