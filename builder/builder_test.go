package builder_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/frontline/builder"
)

// TestRandom_Errors verifies argument validation.
func TestRandom_Errors(t *testing.T) {
	if _, err := builder.Random(0, 0.5, 1); !errors.Is(err, builder.ErrNoVertices) {
		t.Errorf("V=0: want ErrNoVertices, got %v", err)
	}
	if _, err := builder.Random(10, -0.1, 1); !errors.Is(err, builder.ErrBadDensity) {
		t.Errorf("density<0: want ErrBadDensity, got %v", err)
	}
	if _, err := builder.Random(10, 1.5, 1); !errors.Is(err, builder.ErrBadDensity) {
		t.Errorf("density>1: want ErrBadDensity, got %v", err)
	}
}

// TestRandom_Deterministic checks that equal seeds yield equal graphs.
func TestRandom_Deterministic(t *testing.T) {
	a, err := builder.Random(200, 0.05, 42)
	if err != nil {
		t.Fatal(err)
	}
	b, err := builder.Random(200, 0.05, 42)
	if err != nil {
		t.Fatal(err)
	}
	if a.EdgeCount() != b.EdgeCount() {
		t.Fatalf("edge counts differ: %d vs %d", a.EdgeCount(), b.EdgeCount())
	}
	for u := 0; u < a.VertexCount(); u++ {
		na, _ := a.Neighbors(u)
		nb, _ := b.Neighbors(u)
		if len(na) != len(nb) {
			t.Fatalf("degree of %d differs: %d vs %d", u, len(na), len(nb))
		}
		for i := range na {
			if na[i] != nb[i] {
				t.Fatalf("neighbors of %d differ at %d: %d vs %d", u, i, na[i], nb[i])
			}
		}
	}

	// a different seed should (overwhelmingly) yield a different graph
	c, err := builder.Random(200, 0.05, 43)
	if err != nil {
		t.Fatal(err)
	}
	if a.EdgeCount() == c.EdgeCount() {
		t.Log("edge counts happen to match across seeds; acceptable but rare")
	}
}

// TestRandom_NoSelfLoops checks the generator never emits u→u.
func TestRandom_NoSelfLoops(t *testing.T) {
	g, err := builder.Random(100, 0.2, 7)
	if err != nil {
		t.Fatal(err)
	}
	for u := 0; u < g.VertexCount(); u++ {
		nbrs, _ := g.Neighbors(u)
		for _, w := range nbrs {
			if int(w) == u {
				t.Fatalf("self-loop at vertex %d", u)
			}
		}
	}
}

// TestRandom_DensityExtremes covers p=0 (no edges) and p=1 (complete).
func TestRandom_DensityExtremes(t *testing.T) {
	empty, err := builder.Random(50, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got := empty.EdgeCount(); got != 0 {
		t.Errorf("p=0: EdgeCount = %d; want 0", got)
	}

	full, err := builder.Random(50, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := full.EdgeCount(), 50*49; got != want {
		t.Errorf("p=1: EdgeCount = %d; want %d", got, want)
	}
}

// TestRandomUndirected_Symmetric checks every edge has its mirror.
func TestRandomUndirected_Symmetric(t *testing.T) {
	g, err := builder.RandomUndirected(80, 0.1, 11)
	if err != nil {
		t.Fatal(err)
	}
	if g.EdgeCount()%2 != 0 {
		t.Fatalf("EdgeCount = %d; want even", g.EdgeCount())
	}
	// collect adjacency into a set and check symmetry
	has := make(map[[2]int32]bool, g.EdgeCount())
	for u := 0; u < g.VertexCount(); u++ {
		nbrs, _ := g.Neighbors(u)
		for _, w := range nbrs {
			has[[2]int32{int32(u), w}] = true
		}
	}
	for e := range has {
		if !has[[2]int32{e[1], e[0]}] {
			t.Fatalf("edge %d→%d has no mirror", e[0], e[1])
		}
	}
}

// TestScaleFree_Basics sanity-checks vertex/edge counts and validity.
func TestScaleFree_Basics(t *testing.T) {
	if _, err := builder.ScaleFree(0, 10, 1); !errors.Is(err, builder.ErrNoVertices) {
		t.Errorf("V=0: want ErrNoVertices, got %v", err)
	}
	if _, err := builder.ScaleFree(10, -1, 1); !errors.Is(err, builder.ErrBadEdgeCount) {
		t.Errorf("E<0: want ErrBadEdgeCount, got %v", err)
	}

	g, err := builder.ScaleFree(500, 2000, 3)
	if err != nil {
		t.Fatal(err)
	}
	if got := g.VertexCount(); got != 500 {
		t.Errorf("VertexCount = %d; want 500", got)
	}
	if g.EdgeCount() == 0 {
		t.Error("EdgeCount = 0; want > 0")
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

// TestRMAT_Basics checks partition validation, sizes and determinism.
func TestRMAT_Basics(t *testing.T) {
	if _, err := builder.RMAT(4, 10, 0.6, 0.3, 0.2, 1); !errors.Is(err, builder.ErrBadPartition) {
		t.Errorf("a+b+c>=1: want ErrBadPartition, got %v", err)
	}
	if _, err := builder.RMAT(4, 10, -0.1, 0.3, 0.3, 1); !errors.Is(err, builder.ErrBadPartition) {
		t.Errorf("negative part: want ErrBadPartition, got %v", err)
	}
	if _, err := builder.RMAT(4, -5, 0.57, 0.19, 0.19, 1); !errors.Is(err, builder.ErrBadEdgeCount) {
		t.Errorf("E<0: want ErrBadEdgeCount, got %v", err)
	}

	g, err := builder.RMAT(8, 3000, 0.57, 0.19, 0.19, 42)
	if err != nil {
		t.Fatal(err)
	}
	if got := g.VertexCount(); got != 256 {
		t.Errorf("VertexCount = %d; want 256", got)
	}
	if got := g.EdgeCount(); got != 3000 {
		t.Errorf("EdgeCount = %d; want 3000", got)
	}

	h, err := builder.RMAT(8, 3000, 0.57, 0.19, 0.19, 42)
	if err != nil {
		t.Fatal(err)
	}
	if g.EdgeCount() != h.EdgeCount() {
		t.Error("same seed produced different edge counts")
	}
}
