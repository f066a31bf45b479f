package bench

import (
	"fmt"
	"log/slog"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/frontline/csr"
	"github.com/katalvlaran/frontline/traverse"
)

// Result condenses one benchmark measurement of a graph at a fixed
// worker count.
type Result struct {
	// Name labels the graph (generator name, file name, ...).
	Name string
	// Vertices and Edges describe the input size.
	Vertices int
	Edges    int
	// Workers is the goroutine count the measurement ran with.
	Workers int
	// TimeMS is the mean wall time of one traversal in milliseconds;
	// TimeStdDevMS is the standard deviation over the timed runs.
	TimeMS       float64
	TimeStdDevMS float64
	// ThroughputMES is edges per second, in millions.
	ThroughputMES float64
	// Speedup is the single-worker mean time divided by this
	// measurement's mean time. Exactly 1 for a single-worker run.
	Speedup float64
	// Reachable counts vertices discovered by the traversal;
	// ReachablePct is the same as a percentage of Vertices.
	Reachable    int
	ReachablePct float64
}

// Run measures multi-source reachability traversal of g: one warmup
// run, then runs timed runs at the given worker count, plus a
// single-worker baseline for the speedup figure.
func Run(g *csr.Graph, name string, workers, runs int) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if workers <= 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrBadWorkers, workers)
	}
	if runs <= 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrBadRuns, runs)
	}

	mean, std, reachable, err := measure(g, workers, runs)
	if err != nil {
		return Result{}, err
	}

	baseline := mean
	if workers != 1 {
		if baseline, _, _, err = measure(g, 1, runs); err != nil {
			return Result{}, err
		}
	}

	return summarize(g, name, workers, mean, std, baseline, reachable), nil
}

// ThreadScaling sweeps worker counts 1..maxWorkers and returns one
// Result per count. The single-worker measurement doubles as the
// baseline for every speedup figure, so the first Result always
// reports Speedup == 1.
func ThreadScaling(g *csr.Graph, name string, maxWorkers, runs int) ([]Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if maxWorkers <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadWorkers, maxWorkers)
	}
	if runs <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadRuns, runs)
	}

	results := make([]Result, 0, maxWorkers)
	baseline := 0.0
	for workers := 1; workers <= maxWorkers; workers++ {
		mean, std, reachable, err := measure(g, workers, runs)
		if err != nil {
			return nil, err
		}
		if workers == 1 {
			baseline = mean
		}
		results = append(results, summarize(g, name, workers, mean, std, baseline, reachable))
	}

	return results, nil
}

// measure runs one untimed warmup and then runs timed traversals,
// returning the mean and standard deviation of run time in seconds and
// the reachable count of the final run.
func measure(g *csr.Graph, workers, runs int) (mean, std float64, reachable int, err error) {
	dist := traverse.NewDistanceVector(g.VertexCount())
	opt := traverse.WithWorkers(workers)

	// warmup: pages faulted in, pools grown, result discarded
	if err = traverse.TraverseMultiSource(g, dist, opt); err != nil {
		return 0, 0, 0, err
	}

	samples := make([]float64, runs)
	for i := range samples {
		start := time.Now()
		if err = traverse.TraverseMultiSource(g, dist, opt); err != nil {
			return 0, 0, 0, err
		}
		samples[i] = time.Since(start).Seconds()

		slog.Debug("bench: timed run complete",
			"workers", workers, "run", i+1, "of", runs, "seconds", samples[i])
	}

	mean = stat.Mean(samples, nil)
	if runs > 1 {
		std = stat.StdDev(samples, nil)
	}

	return mean, std, dist.Reachable(), nil
}

// summarize folds raw timings into a Result.
func summarize(g *csr.Graph, name string, workers int, mean, std, baseline float64, reachable int) Result {
	r := Result{
		Name:         name,
		Vertices:     g.VertexCount(),
		Edges:        g.EdgeCount(),
		Workers:      workers,
		TimeMS:       mean * 1e3,
		TimeStdDevMS: std * 1e3,
		Reachable:    reachable,
	}
	if mean > 0 {
		r.ThroughputMES = float64(g.EdgeCount()) / mean / 1e6
		r.Speedup = baseline / mean
	}
	if g.VertexCount() > 0 {
		r.ReachablePct = 100 * float64(reachable) / float64(g.VertexCount())
	}

	return r
}
