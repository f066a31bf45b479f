package builder_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/katalvlaran/frontline/builder"
)

// TestFromEdgeList_DenseRemap verifies sparse IDs collapse to [0,V) in
// first-seen order.
func TestFromEdgeList_DenseRemap(t *testing.T) {
	// IDs 100, 7, 100, 42 → remapped 0, 1, 0, 2
	g, err := builder.FromEdgeList([][2]int64{{100, 7}, {100, 42}, {7, 42}})
	if err != nil {
		t.Fatal(err)
	}
	if got := g.VertexCount(); got != 3 {
		t.Fatalf("VertexCount = %d; want 3", got)
	}
	if got := g.EdgeCount(); got != 3 {
		t.Fatalf("EdgeCount = %d; want 3", got)
	}

	n0, _ := g.Neighbors(0) // 100 → {7, 42} = {1, 2}
	if want := []int32{1, 2}; !reflect.DeepEqual(n0, want) {
		t.Errorf("Neighbors(0) = %v; want %v", n0, want)
	}
	n1, _ := g.Neighbors(1) // 7 → {42} = {2}
	if want := []int32{2}; !reflect.DeepEqual(n1, want) {
		t.Errorf("Neighbors(1) = %v; want %v", n1, want)
	}
}

// TestFromEdgeList_PreservesDuplicatesAndLoops documents the by-design
// behavior: no deduplication, self-loops kept.
func TestFromEdgeList_PreservesDuplicatesAndLoops(t *testing.T) {
	g, err := builder.FromEdgeList([][2]int64{{1, 2}, {1, 2}, {3, 3}})
	if err != nil {
		t.Fatal(err)
	}
	if got := g.EdgeCount(); got != 3 {
		t.Errorf("EdgeCount = %d; want 3 (duplicates and loop preserved)", got)
	}
}

// TestFromEdgeList_Empty rejects a list that mentions no vertices.
func TestFromEdgeList_Empty(t *testing.T) {
	if _, err := builder.FromEdgeList(nil); !errors.Is(err, builder.ErrNoVertices) {
		t.Errorf("empty list: want ErrNoVertices, got %v", err)
	}
}

// TestFromReader_Format covers whitespace flexibility and bad tokens.
func TestFromReader_Format(t *testing.T) {
	// newlines, tabs and runs of spaces all separate tokens
	g, err := builder.FromReader(strings.NewReader("0 1\n1\t2\n   2 0\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := g.VertexCount(); got != 3 {
		t.Errorf("VertexCount = %d; want 3", got)
	}

	if _, err = builder.FromReader(strings.NewReader("0 x")); !errors.Is(err, builder.ErrBadEdgeToken) {
		t.Errorf("non-integer token: want ErrBadEdgeToken, got %v", err)
	}
	if _, err = builder.FromReader(strings.NewReader("0 1 2")); !errors.Is(err, builder.ErrBadEdgeToken) {
		t.Errorf("dangling token: want ErrBadEdgeToken, got %v", err)
	}
}

// TestFromFile_RoundTrip writes a small edge list and loads it back.
func TestFromFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edges.txt")
	if err := os.WriteFile(path, []byte("10 20\n20 30\n30 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	g, err := builder.FromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := g.VertexCount(); got != 3 {
		t.Errorf("VertexCount = %d; want 3", got)
	}
	if got := g.EdgeCount(); got != 3 {
		t.Errorf("EdgeCount = %d; want 3", got)
	}
}

// TestFromFile_Missing surfaces ErrUnreadable for absent files.
func TestFromFile_Missing(t *testing.T) {
	if _, err := builder.FromFile(filepath.Join(t.TempDir(), "nope.txt")); !errors.Is(err, builder.ErrUnreadable) {
		t.Errorf("missing file: want ErrUnreadable, got %v", err)
	}
}
