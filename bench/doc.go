// Package bench times the traversal engine and reports the numbers a
// performance investigation needs: wall time, edge throughput, parallel
// speedup and coverage.
//
// What it does:
//   - Run executes warmup plus repeated timed multi-source traversals of
//     one graph at a fixed worker count and condenses the samples into a
//     Result (mean and standard deviation of run time, throughput in
//     millions of edges per second, speedup over a single-worker
//     baseline, reachable-vertex count).
//   - ThreadScaling sweeps worker counts 1..max and returns one Result
//     per count, all sharing the single-worker baseline.
//   - WriteCSV renders results as CSV for spreadsheets and plotting.
//
// Why repeated runs: a single wall-clock sample on a parallel workload
// is noise. Each measurement aggregates several runs with
// gonum.org/v1/gonum/stat so the spread is visible next to the mean.
//
// Progress is reported through log/slog at debug level; the package
// stays silent under the default logger configuration.
//
// Errors: ErrNilGraph, ErrBadRuns, ErrBadWorkers, ErrNoResults.
package bench
