package builder

import (
	"math/rand"

	"github.com/katalvlaran/frontline/csr"
)

// RMAT generates a recursive-matrix (R-MAT) graph over 2^scale vertices
// with exactly e directed edges. Each edge lands in one of four
// adjacency-matrix quadrants with probabilities a, b, c and 1-a-b-c,
// recursively per bit level, producing the skewed degree distributions
// typical of real-world networks. Duplicate edges and self-loops are
// kept, matching the edge-list ingestion contract.
//
// Returns ErrBadPartition when any probability is negative or a+b+c ≥ 1,
// and ErrBadEdgeCount for e < 0.
func RMAT(scale uint, e int, a, b, c float64, seed int64) (*csr.Graph, error) {
	if a < 0 || b < 0 || c < 0 || a+b+c >= 1 {
		return nil, ErrBadPartition
	}
	if e < 0 {
		return nil, ErrBadEdgeCount
	}

	v := 1 << scale
	rng := rand.New(rand.NewSource(seed))
	pairs := make([][2]int32, 0, e)

	for k := 0; k < e; k++ {
		var u, w int32
		for level := uint(0); level < scale; level++ {
			r := rng.Float64()
			switch {
			case r < a:
				// top-left: both bits stay 0
			case r < a+b:
				w |= 1 << level
			case r < a+b+c:
				u |= 1 << level
			default:
				u |= 1 << level
				w |= 1 << level
			}
		}
		pairs = append(pairs, [2]int32{u, w})
	}

	return assemble(v, pairs)
}
