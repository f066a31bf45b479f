package csr

import "fmt"

// Graph is an immutable directed graph in compressed sparse row form.
//
// The out-neighbors of vertex u occupy edges[offsets[u]:offsets[u+1]].
// A Graph is exclusively owned by its constructor's caller and is never
// mutated after New returns, so it is safe to share across goroutines.
type Graph struct {
	offsets   []int   // len V+1, prefix sums into edges
	edges     []int32 // len E, dense vertex IDs
	avgDegree float64 // E / V, fixed at construction
}

// New builds a Graph from a prefix-sum offsets slice (length V+1) and a
// flat edges slice (length E), validating the structural invariants.
//
// Returns ErrTooFewVertices when offsets describes no vertices,
// ErrMalformedOffsets when offsets are non-monotonic or do not span
// edges exactly, and ErrEdgeOutOfRange for a target outside [0,V).
func New(offsets []int, edges []int32) (*Graph, error) {
	if len(offsets) < 2 {
		return nil, ErrTooFewVertices
	}
	g := &Graph{offsets: offsets, edges: edges}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	g.avgDegree = float64(len(edges)) / float64(len(offsets)-1)

	return g, nil
}

// VertexCount returns V, the number of vertices.
func (g *Graph) VertexCount() int { return len(g.offsets) - 1 }

// EdgeCount returns E, the number of directed edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// AvgDegree returns E/V as fixed at construction time.
func (g *Graph) AvgDegree() float64 { return g.avgDegree }

// Neighbors returns the out-neighbors of u as a read-only subslice view
// of the underlying edges storage. Callers must not mutate it.
// Returns ErrVertexRange for u outside [0,V).
func (g *Graph) Neighbors(u int) ([]int32, error) {
	if u < 0 || u >= g.VertexCount() {
		return nil, fmt.Errorf("%w: %d (V=%d)", ErrVertexRange, u, g.VertexCount())
	}

	return g.edges[g.offsets[u]:g.offsets[u+1]], nil
}

// Degree returns the out-degree of u, or ErrVertexRange.
func (g *Graph) Degree(u int) (int, error) {
	if u < 0 || u >= g.VertexCount() {
		return 0, fmt.Errorf("%w: %d (V=%d)", ErrVertexRange, u, g.VertexCount())
	}

	return g.offsets[u+1] - g.offsets[u], nil
}

// Validate re-checks every structural invariant. It is run once by New;
// call it again only when the backing slices came from untrusted input
// assembled elsewhere.
func (g *Graph) Validate() error {
	v := len(g.offsets) - 1
	if v < 1 {
		return ErrTooFewVertices
	}
	if g.offsets[0] != 0 {
		return fmt.Errorf("%w: offsets[0] = %d, want 0", ErrMalformedOffsets, g.offsets[0])
	}
	if g.offsets[v] != len(g.edges) {
		return fmt.Errorf("%w: offsets[%d] = %d, want %d", ErrMalformedOffsets, v, g.offsets[v], len(g.edges))
	}
	for i := 0; i < v; i++ {
		if g.offsets[i] > g.offsets[i+1] {
			return fmt.Errorf("%w: offsets[%d] = %d > offsets[%d] = %d",
				ErrMalformedOffsets, i, g.offsets[i], i+1, g.offsets[i+1])
		}
	}
	for i, t := range g.edges {
		if t < 0 || int(t) >= v {
			return fmt.Errorf("%w: edges[%d] = %d (V=%d)", ErrEdgeOutOfRange, i, t, v)
		}
	}

	return nil
}

// Transpose returns a new Graph holding the reverse of every edge, so
// the out-neighbors of u in the transpose are u's in-neighbors here.
// Built with the usual count / prefix-sum / scatter passes in O(V + E).
func (g *Graph) Transpose() *Graph {
	v := g.VertexCount()
	offsets := make([]int, v+1)
	for _, t := range g.edges {
		offsets[t+1]++
	}
	for i := 1; i <= v; i++ {
		offsets[i] += offsets[i-1]
	}

	edges := make([]int32, len(g.edges))
	cursor := make([]int, v)
	copy(cursor, offsets[:v])
	for u := 0; u < v; u++ {
		for _, t := range g.edges[g.offsets[u]:g.offsets[u+1]] {
			edges[cursor[t]] = int32(u)
			cursor[t]++
		}
	}

	// invariants hold by construction, skip re-validation
	return &Graph{offsets: offsets, edges: edges, avgDegree: g.avgDegree}
}

// Raw returns the underlying offsets and edges slices. The contract is
// strictly read-only: both slices are shared, not copied. The traversal
// engine uses Raw to avoid a bounds-checked method call per edge.
func (g *Graph) Raw() (offsets []int, edges []int32) {
	return g.offsets, g.edges
}
