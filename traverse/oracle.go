package traverse

import (
	"fmt"

	"github.com/katalvlaran/frontline/csr"
)

// Serial computes single-source hop counts with a plain FIFO-queue
// breadth-first walk on one goroutine. It is the reference oracle the
// concurrent engine is validated against: correctness only, never the
// hot path.
func Serial(g *csr.Graph, source int) ([]int32, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if source < 0 || source >= g.VertexCount() {
		return nil, fmt.Errorf("%w: %d (V=%d)", ErrSourceRange, source, g.VertexCount())
	}

	dist := make([]int32, g.VertexCount())
	for i := range dist {
		dist[i] = Unvisited
	}
	dist[source] = 0

	return serialFrom(g, dist, []int32{int32(source)}), nil
}

// SerialMultiSource is the oracle for the reachability variant: every
// vertex with at least one outgoing edge starts at distance 0.
func SerialMultiSource(g *csr.Graph) ([]int32, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	dist := make([]int32, g.VertexCount())
	for i := range dist {
		dist[i] = Unvisited
	}

	offsets, _ := g.Raw()
	queue := make([]int32, 0, g.VertexCount())
	for u := 0; u < g.VertexCount(); u++ {
		if offsets[u] < offsets[u+1] {
			dist[u] = 0
			queue = append(queue, int32(u))
		}
	}

	return serialFrom(g, dist, queue), nil
}

// serialFrom drains a seeded FIFO queue, settling each vertex once.
func serialFrom(g *csr.Graph, dist []int32, queue []int32) []int32 {
	offsets, edges := g.Raw()
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		du := dist[u]
		for _, v := range edges[offsets[u]:offsets[u+1]] {
			if dist[v] == Unvisited {
				dist[v] = du + 1
				queue = append(queue, v)
			}
		}
	}

	return dist
}
