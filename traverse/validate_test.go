package traverse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/frontline/traverse"
)

// TestCompare_Diagnostics checks first-mismatch reporting.
func TestCompare_Diagnostics(t *testing.T) {
	ok, _ := traverse.Compare([]int32{0, 1, 2}, []int32{0, 1, 2})
	require.True(t, ok)

	ok, diff := traverse.Compare([]int32{0, 1, 2}, []int32{0, 9, 9})
	require.False(t, ok)
	require.Equal(t, 1, diff.Vertex)
	require.Equal(t, int32(1), diff.Want)
	require.Equal(t, int32(9), diff.Got)

	ok, diff = traverse.Compare([]int32{0}, []int32{0, 1})
	require.False(t, ok)
	require.Equal(t, -1, diff.Vertex, "length mismatch marker")
}

// TestValidate_GoodAndBad runs the oracle check on a correct result and
// on a deliberately corrupted one.
func TestValidate_GoodAndBad(t *testing.T) {
	g := diamond(t)

	dist := traverse.NewDistanceVector(g.VertexCount())
	require.NoError(t, traverse.Traverse(g, 0, dist))
	ok, err := traverse.Validate(g, 0, dist)
	require.NoError(t, err)
	require.True(t, ok)

	// corrupt: claim a wrong distance into a fresh vector
	bad := traverse.NewDistanceVector(g.VertexCount())
	bad.Claim(0, 0)
	bad.Claim(1, 5)
	ok, err = traverse.Validate(g, 0, bad)
	require.NoError(t, err)
	require.False(t, ok, "corrupted distances must fail validation")

	// invalid input is an error, not a false verdict
	_, err = traverse.Validate(g, 0, nil)
	require.ErrorIs(t, err, traverse.ErrNilDistances)
	_, err = traverse.Validate(nil, 0, dist)
	require.ErrorIs(t, err, traverse.ErrNilGraph)
}
