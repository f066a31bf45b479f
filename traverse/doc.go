// Package traverse provides a direction-optimizing parallel breadth-first
// traversal over a csr.Graph, producing minimum hop counts from one or
// many source vertices.
//
// What
//
//   - Traverse: single-source hop counts into a caller-owned DistanceVector.
//   - TraverseMultiSource: the reachability variant — every non-isolated
//     vertex seeds the frontier at distance 0.
//   - DistanceVector: per-vertex atomic distance slots; Claim (a CAS from
//     the Unvisited sentinel) is the system's sole synchronization
//     primitive and succeeds at most once per vertex per run.
//   - Serial / SerialMultiSource: single-threaded FIFO-queue oracles.
//   - Validate / Compare: engine-vs-oracle checking with first-mismatch
//     diagnostics.
//
// How
//
//	The engine runs round-synchronous: each round it estimates the push
//	cost (|frontier| · avg degree), picks a strategy, executes one
//	parallel pass over a fixed worker pool, and joins at a barrier
//	before advancing. TOP-DOWN partitions the frontier and pushes claims
//	onto out-neighbors; BOTTOM-UP partitions the remainder (the not yet
//	visited vertices, materialized lazily and rebuilt by full rescan
//	after every pull round) and has each vertex pull a distance from the
//	first in-neighbor already settled at the frontier's depth. Workers
//	collect discoveries in private buffers, merged once per round under
//	a single mutex and then sorted + deduplicated — which is what makes
//	the final DistanceVector bit-identical across worker counts.
//
// Concurrency
//
//   - Fixed fork-join pool per round; Workers defaults to all CPUs.
//   - Strict level synchronization: no goroutine touches round k+1
//     before every goroutine finished round k.
//   - The DistanceVector is the only shared mutable state; after
//     seeding, the atomic Claim is its only permitted mutation.
//   - A lost claim race is an expected, silently-dropped outcome — no
//     retries, no errors.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - Top-down rounds: O(frontier edges) claims total.
//   - Bottom-up rounds: O(|remainder|) scan-until-hit passes, plus an
//     O(V) remainder rebuild per pull round (a known ceiling of this
//     design; an incremental remainder would be a performance change,
//     not a correctness one).
//   - Memory: O(V) working sets + the transpose adjacency (O(V+E)),
//     built at most once per traversal and only if pull mode arms.
//
// Errors
//
//   - ErrNilGraph / ErrNilDistances  for nil inputs.
//   - ErrSourceRange                 for a source outside [0,V).
//   - ErrDistanceSize                when dist.Len() != g.VertexCount().
//   - ErrOptionViolation             for invalid options (negative Workers).
//
// Usage
//
//	g, _ := builder.Random(100_000, 0.0001, 42)
//	dist := traverse.NewDistanceVector(g.VertexCount())
//	if err := traverse.Traverse(g, 0, dist,
//	    traverse.WithWorkers(8),
//	    traverse.WithOnRound(func(rs traverse.RoundStats) {
//	        // per-round progress: rs.Mode, rs.Frontier, rs.Visited...
//	    }),
//	); err != nil {
//	    // handle invalid input / option errors
//	}
//	ok, _ := traverse.Validate(g, 0, dist) // oracle check, test-time only
package traverse
