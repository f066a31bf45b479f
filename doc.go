// Package frontline is a shared-memory parallel breadth-first traversal
// engine over static directed graphs — hop counts from one or many
// sources, computed by a direction-optimizing round loop.
//
// 🚀 What is frontline?
//
//	A compact, concurrency-first library built around four pieces:
//		• csr/      — immutable compressed (offsets+edges) adjacency storage
//		• builder/  — random, scale-free and R-MAT generators + edge-list ingestion
//		• traverse/ — the hybrid top-down / bottom-up BFS engine, its serial
//		              reference oracle and a result validator
//		• bench/    — timed runs, thread-scaling sweeps and CSV export
//
// ✨ Why choose frontline?
//
//   - Exactly-once discovery — a single atomic claim primitive, no locks
//     on the hot path
//   - Direction-optimizing — switches between push and pull expansion to
//     bound total work as the frontier grows and shrinks
//   - Deterministic results — final distances are independent of worker
//     count and scheduling order
//
// Quick ASCII example:
//
//	    0 ──▶ 1 ──▶ 3 ──▶ 4
//	    │           ▲
//	    └────▶ 2 ───┘
//
//	from source 0 the hop counts are [0, 1, 1, 2, 3].
//
// The cmd/frontline CLI wraps the library for one-shot runs and
// benchmark suites.
//
//	go get github.com/katalvlaran/frontline
package frontline
