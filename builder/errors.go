package builder

import "errors"

var (
	// ErrNoVertices indicates a request for a graph with no vertices.
	ErrNoVertices = errors.New("builder: graph must have at least 1 vertex")
	// ErrBadDensity indicates an edge probability outside [0,1].
	ErrBadDensity = errors.New("builder: density must be between 0 and 1")
	// ErrBadPartition indicates invalid R-MAT quadrant probabilities.
	ErrBadPartition = errors.New("builder: R-MAT partition probabilities must be non-negative and sum below 1")
	// ErrBadEdgeCount indicates a negative target edge count.
	ErrBadEdgeCount = errors.New("builder: edge count must be non-negative")
	// ErrUnreadable indicates the edge-list source could not be opened.
	ErrUnreadable = errors.New("builder: could not open edge-list file")
	// ErrBadEdgeToken indicates a malformed token in an edge-list stream.
	ErrBadEdgeToken = errors.New("builder: malformed edge-list token")
)
