package csr_test

import (
	"fmt"

	"github.com/katalvlaran/frontline/csr"
)

// ExampleNew builds the diamond graph 0→1, 0→2, 1→3, 2→3, 3→4 and reads
// a neighbor range.
func ExampleNew() {
	g, err := csr.New([]int{0, 2, 3, 4, 5, 5}, []int32{1, 2, 3, 3, 4})
	if err != nil {
		fmt.Println("construction failed:", err)
		return
	}
	nbrs, _ := g.Neighbors(0)
	fmt.Println("V:", g.VertexCount())
	fmt.Println("E:", g.EdgeCount())
	fmt.Println("neighbors of 0:", nbrs)
	// Output:
	// V: 5
	// E: 5
	// neighbors of 0: [1 2]
}
