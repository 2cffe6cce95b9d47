package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nonamecorn/pcg-together/graph"
)

func TestAddVertex_EmptyIDAndIdempotent(t *testing.T) {
	g := graph.NewGraph()

	require.ErrorIs(t, g.AddVertex(""), graph.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex("A"))
	require.True(t, g.HasVertex("A"))

	before := g.VertexCount()
	require.NoError(t, g.AddVertex("A"))
	require.Equal(t, before, g.VertexCount())
}

func TestAddEdge_WeightConstraint(t *testing.T) {
	g := graph.NewGraph()
	_, err := g.AddEdge("A", "B", 5)
	require.ErrorIs(t, err, graph.ErrBadWeight)

	wg := graph.NewGraph(graph.WithWeighted())
	_, err = wg.AddEdge("A", "B", 5)
	require.NoError(t, err)
}

func TestAddEdge_LoopConstraint(t *testing.T) {
	g := graph.NewGraph()
	_, err := g.AddEdge("A", "A", 0)
	require.ErrorIs(t, err, graph.ErrLoopNotAllowed)

	lg := graph.NewGraph(graph.WithLoops())
	_, err = lg.AddEdge("A", "A", 0)
	require.NoError(t, err)
}

func TestAddEdge_MultiEdgeConstraint(t *testing.T) {
	g := graph.NewGraph()
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 0)
	require.ErrorIs(t, err, graph.ErrMultiEdgeNotAllowed)

	mg := graph.NewGraph(graph.WithMultiEdges())
	_, err = mg.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = mg.AddEdge("A", "B", 0)
	require.NoError(t, err)
}

func TestHasEdge_UndirectedIsMirrored(t *testing.T) {
	g := graph.NewGraph()
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	require.True(t, g.HasEdge("A", "B"))
	require.True(t, g.HasEdge("B", "A"))
}

func TestNeighborIDs_SortedUnique(t *testing.T) {
	g := graph.NewGraph()
	_, err := g.AddEdge("A", "C", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 0)
	require.NoError(t, err)

	ids, err := g.NeighborIDs("A")
	require.NoError(t, err)
	require.Equal(t, []string{"B", "C"}, ids)

	_, err = g.NeighborIDs("")
	require.ErrorIs(t, err, graph.ErrEmptyVertexID)
	_, err = g.NeighborIDs("Z")
	require.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestEdges_SortedByID(t *testing.T) {
	g := graph.NewGraph()
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 0)
	require.NoError(t, err)

	edges := g.Edges()
	require.Len(t, edges, 2)
	require.True(t, edges[0].ID < edges[1].ID)
}

func TestVertices_SortedAndInternalVerticesShared(t *testing.T) {
	g := graph.NewGraph()
	require.NoError(t, g.AddVertex("B"))
	require.NoError(t, g.AddVertex("A"))
	require.Equal(t, []string{"A", "B"}, g.Vertices())

	verts := g.InternalVertices()
	verts["A"].Metadata["tag"] = "x"
	require.Equal(t, "x", g.InternalVertices()["A"].Metadata["tag"])
}
