// Package builder produces csr.Graph values: synthetic generators for
// benchmarking and an edge-list loader for real datasets.
//
// What
//
//   - Random / RandomUndirected: G(V,p) graphs with a seeded PRNG, no
//     self-loops, each (ordered) pair sampled independently.
//   - ScaleFree: preferential-attachment graphs with heavy-tailed
//     degree distributions.
//   - RMAT: recursive-matrix graphs over 2^scale vertices, the standard
//     Graph500-style skewed generator.
//   - FromFile / FromEdgeList: whitespace-separated "from to" pairs.
//     Vertex IDs need not be contiguous or zero-based; they are remapped
//     to a dense [0,V) range in first-seen order. Duplicate edges and
//     self-loops are preserved, not deduplicated.
//
// Determinism
//
//	Every generator takes an explicit seed; the same seed yields the
//	same graph. FromFile's first-seen remapping makes loaded graphs
//	reproducible across runs as well.
//
// Errors
//
//   - ErrNoVertices   if a generator is asked for zero vertices, or a
//     loaded edge list mentions none.
//   - ErrBadDensity   if density lies outside [0,1].
//   - ErrBadPartition if R-MAT quadrant probabilities are invalid.
//   - ErrBadEdgeCount if a target edge count is negative.
//   - ErrUnreadable   if the input file cannot be opened.
//   - ErrBadEdgeToken if the input stream holds a non-integer token or
//     an unpaired trailing one.
package builder
