package traverse

import (
	"fmt"

	"github.com/katalvlaran/frontline/csr"
)

// Mismatch pinpoints the first divergence between two distance slices.
type Mismatch struct {
	// Vertex is the first index whose distances disagree.
	Vertex int
	// Want and Got are the disagreeing values (Unvisited included).
	Want, Got int32
}

// Compare checks two distance slices elementwise. On disagreement it
// returns ok=false plus the first mismatching vertex and both values; a
// length mismatch is reported as Vertex=-1.
func Compare(want, got []int32) (ok bool, diff Mismatch) {
	if len(want) != len(got) {
		return false, Mismatch{Vertex: -1}
	}
	for i := range want {
		if want[i] != got[i] {
			return false, Mismatch{Vertex: i, Want: want[i], Got: got[i]}
		}
	}

	return true, Mismatch{}
}

// Validate runs the serial oracle for (g, source) and compares its
// output against dist. A false result signals an algorithmic
// correctness issue to surface to the caller or test harness; it is
// never raised as an error. The returned error covers invalid input
// only (nil graph, source out of range, size mismatch).
func Validate(g *csr.Graph, source int, dist *DistanceVector) (bool, error) {
	if dist == nil {
		return false, ErrNilDistances
	}
	want, err := Serial(g, source)
	if err != nil {
		return false, err
	}
	if dist.Len() != g.VertexCount() {
		return false, fmt.Errorf("%w: %d slots for %d vertices", ErrDistanceSize, dist.Len(), g.VertexCount())
	}
	ok, _ := Compare(want, dist.Snapshot())

	return ok, nil
}
