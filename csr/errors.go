package csr

import "errors"

var (
	// ErrTooFewVertices indicates the offsets slice describes no vertices.
	ErrTooFewVertices = errors.New("csr: graph must have at least 1 vertex")
	// ErrMalformedOffsets indicates offsets are non-monotonic or do not
	// span the edges slice exactly.
	ErrMalformedOffsets = errors.New("csr: malformed offsets slice")
	// ErrEdgeOutOfRange indicates an edge target outside [0,V).
	ErrEdgeOutOfRange = errors.New("csr: edge target out of range")
	// ErrVertexRange indicates a vertex ID outside [0,V).
	ErrVertexRange = errors.New("csr: vertex index out of range")
)
