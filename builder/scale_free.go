package builder

import (
	"math/rand"

	"github.com/katalvlaran/frontline/csr"
)

// ScaleFree generates a directed preferential-attachment graph with v
// vertices and approximately e edges. Vertices join one at a time and
// attach m ≈ e/v edges each to targets drawn from a repeated-endpoints
// pool, so high-degree vertices keep attracting new edges.
//
// Returns ErrNoVertices for v == 0 and ErrBadEdgeCount for e < 0.
func ScaleFree(v, e int, seed int64) (*csr.Graph, error) {
	if v == 0 {
		return nil, ErrNoVertices
	}
	if e < 0 {
		return nil, ErrBadEdgeCount
	}

	m := e / v
	if m < 1 {
		m = 1
	}

	rng := rand.New(rand.NewSource(seed))
	pairs := make([][2]int32, 0, v*m)

	// Every endpoint ever seen goes into the pool; sampling the pool
	// uniformly is sampling vertices proportional to current degree.
	pool := make([]int32, 0, 2*v*m)
	pool = append(pool, 0)

	for u := 1; u < v; u++ {
		for i := 0; i < m; i++ {
			t := pool[rng.Intn(len(pool))]
			if t == int32(u) {
				// no self-loops from attachment; redraw uniformly
				t = int32(rng.Intn(u))
			}
			pairs = append(pairs, [2]int32{int32(u), t})
			pool = append(pool, int32(u), t)
		}
	}

	return assemble(v, pairs)
}
