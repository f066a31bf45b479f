// Package csr implements the compressed sparse row (offsets+edges)
// adjacency storage that every frontline traversal reads from.
//
// What
//
//   - Graph: an immutable directed graph over dense vertex IDs [0,V).
//   - Neighbor lists are stored contiguously in one edges slice and
//     indexed through a prefix-sum offsets slice of length V+1, so the
//     out-neighbors of u are edges[offsets[u]:offsets[u+1]].
//   - Neighbors(u) returns that range as a subslice view in O(1),
//     without copying.
//   - Validate() re-checks the structural invariants for graphs whose
//     parts came from untrusted input.
//
// Why
//
//   - A flat CSR layout keeps the traversal hot path cache-friendly:
//     one bounds-checked slice read per neighbor, no pointer chasing.
//   - Immutability after construction means the engine may share one
//     Graph across any number of worker goroutines without locks.
//
// Invariants
//
//   - offsets is non-decreasing, offsets[0] == 0, offsets[V] == len(edges).
//   - every edge target lies in [0,V).
//   - V ≥ 1 (ErrTooFewVertices otherwise).
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - Construction: O(V + E) for the invariant scan.
//   - Neighbors:    O(1).
//   - Memory:       O(V + E), shared by all readers.
//
// Errors
//
//   - ErrTooFewVertices  if fewer than one vertex is described.
//   - ErrMalformedOffsets if the offsets slice violates its invariant.
//   - ErrEdgeOutOfRange  if an edge target falls outside [0,V).
//   - ErrVertexRange     if Neighbors is asked about a vertex outside [0,V).
package csr
