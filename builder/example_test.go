package builder_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/frontline/builder"
)

// ExampleFromReader loads a tiny triangle with sparse IDs and shows the
// dense remapping.
func ExampleFromReader() {
	g, err := builder.FromReader(strings.NewReader("100 200\n200 300\n300 100\n"))
	if err != nil {
		fmt.Println("load failed:", err)
		return
	}
	fmt.Println("V:", g.VertexCount())
	fmt.Println("E:", g.EdgeCount())
	// Output:
	// V: 3
	// E: 3
}

// ExampleRandom generates a reproducible sparse graph.
func ExampleRandom() {
	g, err := builder.Random(4, 0, 42)
	if err != nil {
		fmt.Println("generation failed:", err)
		return
	}
	fmt.Println("V:", g.VertexCount(), "E:", g.EdgeCount())
	// Output:
	// V: 4 E: 0
}
