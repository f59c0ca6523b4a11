package graph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/hygraph/graph"
)

func TestFromGonumUndirected(t *testing.T) {
	src := simple.NewUndirectedGraph()
	// Sparse, non-contiguous gonum ids exercise the dense remapping.
	src.SetEdge(simple.Edge{F: simple.Node(10), T: simple.Node(40)})
	src.SetEdge(simple.Edge{F: simple.Node(40), T: simple.Node(70)})

	g, toGonum, err := graph.FromGonum(src)
	require.NoError(t, err)

	require.Equal(t, 3, g.VertexCount())
	require.False(t, g.Directed())
	require.False(t, g.Weighted())
	require.Equal(t, []int64{10, 40, 70}, toGonum, "mapping is ascending by gonum id")
	// gonum's From already yields both directions; arcs must not be doubled.
	require.EqualValues(t, 4, g.EdgeCount())
	require.Equal(t, []graph.VID{1}, g.Neighbors(0))
	require.Equal(t, []graph.VID{0, 2}, g.Neighbors(1))
}

func TestFromGonumDirectedWeighted(t *testing.T) {
	src := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	src.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(1), T: simple.Node(2), W: 2.5})
	src.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(1), T: simple.Node(3), W: 4})

	g, _, err := graph.FromGonum(src)
	require.NoError(t, err)

	require.True(t, g.Directed())
	require.True(t, g.Weighted())
	require.EqualValues(t, 2, g.EdgeCount())
	require.Equal(t, []graph.VID{1, 2}, g.Neighbors(0))
	require.Equal(t, []graph.Weight{2.5, 4}, g.ArcWeights(0))
	require.Empty(t, g.Neighbors(1))
}

func TestFromGonumErrors(t *testing.T) {
	_, _, err := graph.FromGonum(nil)
	require.ErrorIs(t, err, graph.ErrNilSource)

	_, _, err = graph.FromGonum(simple.NewUndirectedGraph())
	require.ErrorIs(t, err, graph.ErrNoVertices)
}
