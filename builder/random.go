package builder

import (
	"math/rand"

	"github.com/katalvlaran/frontline/csr"
)

// Random generates a directed G(V,p) graph: every ordered pair (u,v)
// with u != v carries an edge independently with probability density.
// The PRNG is seeded explicitly, so equal seeds yield equal graphs.
//
// Returns ErrNoVertices for v == 0 and ErrBadDensity for density
// outside [0,1].
func Random(v int, density float64, seed int64) (*csr.Graph, error) {
	if v == 0 {
		return nil, ErrNoVertices
	}
	if density < 0 || density > 1 {
		return nil, ErrBadDensity
	}

	rng := rand.New(rand.NewSource(seed))
	offsets := make([]int, v+1)
	edges := make([]int32, 0, int(float64(v)*float64(v)*density))

	// Stream row by row: offsets[u] is fixed before u's edges are drawn.
	for u := 0; u < v; u++ {
		offsets[u] = len(edges)
		for w := 0; w < v; w++ {
			if u != w && rng.Float64() < density {
				edges = append(edges, int32(w))
			}
		}
	}
	offsets[v] = len(edges)

	return csr.New(offsets, edges)
}

// RandomUndirected generates an undirected G(V,p) graph encoded as a
// symmetric directed graph: each unordered pair {u,v} is sampled once
// and, when chosen, both u→v and v→u are emitted.
func RandomUndirected(v int, density float64, seed int64) (*csr.Graph, error) {
	if v == 0 {
		return nil, ErrNoVertices
	}
	if density < 0 || density > 1 {
		return nil, ErrBadDensity
	}

	rng := rand.New(rand.NewSource(seed))
	pairs := make([][2]int32, 0, int(float64(v)*float64(v)*density))
	for u := 0; u < v; u++ {
		for w := u + 1; w < v; w++ {
			if rng.Float64() < density {
				pairs = append(pairs, [2]int32{int32(u), int32(w)}, [2]int32{int32(w), int32(u)})
			}
		}
	}

	return assemble(v, pairs)
}

// assemble builds a CSR graph from (from,to) pairs over dense IDs [0,v)
// via the usual count / prefix-sum / scatter passes. Pair order within a
// source vertex is preserved.
func assemble(v int, pairs [][2]int32) (*csr.Graph, error) {
	if v == 0 {
		return nil, ErrNoVertices
	}
	offsets := make([]int, v+1)
	for _, p := range pairs {
		offsets[p[0]+1]++
	}
	for i := 1; i <= v; i++ {
		offsets[i] += offsets[i-1]
	}

	edges := make([]int32, len(pairs))
	cursor := make([]int, v)
	copy(cursor, offsets[:v])
	for _, p := range pairs {
		edges[cursor[p[0]]] = p[1]
		cursor[p[0]]++
	}

	return csr.New(offsets, edges)
}
