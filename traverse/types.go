// Package traverse defines tunable options, round reporting and error
// definitions for the direction-optimizing traversal engine.
package traverse

import (
	"context"
	"errors"
	"fmt"
	"runtime"
)

// Sentinel errors for engine execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("traverse: graph is nil")

	// ErrNilDistances is returned if a nil distance vector is passed.
	ErrNilDistances = errors.New("traverse: distance vector is nil")

	// ErrSourceRange is returned when the source vertex lies outside [0,V).
	ErrSourceRange = errors.New("traverse: source vertex out of range")

	// ErrDistanceSize is returned when the distance vector length does not
	// match the graph's vertex count.
	ErrDistanceSize = errors.New("traverse: distance vector size mismatch")

	// ErrVertexRange is returned by DistanceVector accessors for a vertex
	// outside the vector's range.
	ErrVertexRange = errors.New("traverse: vertex index out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")
)

// Mode names the two traversal strategies the engine alternates between.
type Mode int

const (
	// TopDown expands the frontier outward: each frontier vertex pushes
	// claims onto its unvisited out-neighbors. Cost scales with the number
	// of frontier edges.
	TopDown Mode = iota

	// BottomUp scans the remainder inward: each unvisited vertex looks for
	// one already-visited in-neighbor to claim a distance from. Cost scales
	// with the remainder size times at most one scan-until-hit.
	BottomUp
)

// String returns the conventional name of the mode.
func (m Mode) String() string {
	if m == BottomUp {
		return "BOTTOM-UP"
	}

	return "TOP-DOWN"
}

// RoundStats describes one completed engine round; delivered to the
// OnRound hook after the round's barrier.
type RoundStats struct {
	// Round is the 1-based count of completed rounds.
	Round int
	// Mode is the strategy the round executed under.
	Mode Mode
	// Frontier is the size of the deduplicated frontier produced by the round.
	Frontier int
	// Remainder is the current remainder size (0 until lazily initialized).
	Remainder int
	// Visited is the running total of discovered vertices, seeds included.
	Visited int
}

// Option configures engine behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the traversal is invoked.
type Option func(*Options)

// Options holds parameters and callbacks customizing a traversal.
type Options struct {
	// Ctx allows cancellation; checked once per round, never mid-round.
	Ctx context.Context

	// Workers is the number of goroutines each parallel round forks.
	// Defaults to runtime.NumCPU().
	Workers int

	// OnRound, if set, is called after every completed round.
	OnRound func(RoundStats)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background context,
// all available CPUs, no round hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: runtime.NumCPU(),
		OnRound: nil,
		err:     nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers fixes the worker count for parallel rounds.
//
//	n > 0: use exactly n workers
//	n == 0: use the default (all available CPUs)
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = runtime.NumCPU()
		default:
			o.Workers = n
		}
	}
}

// WithOnRound registers a callback invoked after each completed round.
// The callback runs on the coordinating goroutine, after the round's
// barrier, so it may read RoundStats without synchronization.
func WithOnRound(fn func(RoundStats)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRound = fn
		}
	}
}
