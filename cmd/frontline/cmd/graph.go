package cmd

import (
	"fmt"
	"math/bits"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/frontline/builder"
	"github.com/katalvlaran/frontline/csr"
)

// R-MAT partition probabilities, Graph500 reference values.
const (
	rmatA = 0.57
	rmatB = 0.19
	rmatC = 0.19
)

var (
	// Graph source flags, shared by run and bench
	genType     string
	genVertices int
	genEdges    int
	genDensity  float64
	genSeed     int64
	inputFile   string
)

// addGraphFlags registers the graph source flags on a command.
func addGraphFlags(c *cobra.Command) {
	cfg := loadDefaults()

	c.Flags().StringVar(&genType, "gen", "random", "Generator: random, scalefree, rmat")
	c.Flags().IntVar(&genVertices, "vertices", cfg.Vertices, "Vertex count for generated graphs")
	c.Flags().IntVar(&genEdges, "edges", 0, "Edge target for scalefree/rmat (0 = 16 per vertex)")
	c.Flags().Float64Var(&genDensity, "density", cfg.Density, "Edge probability for the random generator")
	c.Flags().Int64Var(&genSeed, "seed", cfg.Seed, "Generator seed")
	c.Flags().StringVarP(&inputFile, "file", "f", "", "Edge-list file to load instead of generating")
}

// buildGraph resolves the shared flags into a graph and a display name.
func buildGraph() (*csr.Graph, string, error) {
	if inputFile != "" {
		g, err := builder.FromFile(inputFile)
		if err != nil {
			return nil, "", err
		}

		return g, filepath.Base(inputFile), nil
	}

	edges := genEdges
	if edges == 0 {
		edges = 16 * genVertices
	}

	switch strings.ToLower(genType) {
	case "random":
		g, err := builder.Random(genVertices, genDensity, genSeed)

		return g, fmt.Sprintf("random-%d", genVertices), err
	case "scalefree":
		g, err := builder.ScaleFree(genVertices, edges, genSeed)

		return g, fmt.Sprintf("scalefree-%d", genVertices), err
	case "rmat":
		// smallest power of two covering the requested vertex count
		scale := uint(bits.Len(uint(genVertices - 1)))
		g, err := builder.RMAT(scale, edges, rmatA, rmatB, rmatC, genSeed)

		return g, fmt.Sprintf("rmat-%d", scale), err
	default:
		return nil, "", fmt.Errorf("unknown generator: %s (valid: random, scalefree, rmat)", genType)
	}
}
