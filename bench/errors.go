package bench

import "errors"

var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("bench: graph is nil")

	// ErrBadRuns is returned when the requested run count is not positive.
	ErrBadRuns = errors.New("bench: runs must be positive")

	// ErrBadWorkers is returned when the requested worker count is not positive.
	ErrBadWorkers = errors.New("bench: workers must be positive")

	// ErrNoResults is returned by WriteCSV for an empty result set.
	ErrNoResults = errors.New("bench: no results to write")
)
