package traversal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nonamecorn/pcg-together/traversal"
	"github.com/nonamecorn/pcg-together/voronoi"
)

func buildDiagram(t *testing.T) *voronoi.Diagram {
	t.Helper()
	seeds := []voronoi.Point{
		{X: 3, Y: 3}, {X: 20, Y: 3}, {X: 3, Y: 20}, {X: 20, Y: 20},
		{X: 11, Y: 11}, {X: 17, Y: 9}, {X: 6, Y: 15},
	}
	return voronoi.Build(seeds, voronoi.Size{W: 24, H: 24})
}

func TestBuild_Connectivity(t *testing.T) {
	d := buildDiagram(t)
	tg := traversal.Build(d, traversal.Params{NeighborRatio: 0.5, Seed: 1, IncludeBorderEdges: true, ConnectionDistributionScaling: 0.7})

	uf := make([]int, len(d.Cells))
	for i := range uf {
		uf[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for uf[x] != x {
			uf[x] = uf[uf[x]]
			x = uf[x]
		}
		return x
	}
	for _, c := range tg.Connections {
		ra, rb := find(c.CellA), find(c.CellB)
		if ra != rb {
			uf[ra] = rb
		}
	}
	root := find(0)
	for i := range d.Cells {
		require.Equal(t, root, find(i), "cell %d not connected", i)
	}
}

func TestBuild_MinimumSpanningEdges(t *testing.T) {
	d := buildDiagram(t)
	tg := traversal.Build(d, traversal.Params{NeighborRatio: 0, Seed: 1, IncludeBorderEdges: true})
	require.GreaterOrEqual(t, len(tg.Connections), len(d.Cells)-1)
}

func TestBuild_CoverageTarget(t *testing.T) {
	d := buildDiagram(t)
	tg := traversal.Build(d, traversal.Params{NeighborRatio: 1.0, Seed: 1, IncludeBorderEdges: true})
	require.Equal(t, tg.TotalNeighborPairs, tg.TargetConnections)

	// TotalNeighborPairs counts Delaunay-adjacent pairs, and some of those
	// have no Voronoi edge left inside the canvas. At ratio 1.0 every pair
	// that does keep an edge must end up connected.
	pairs := make(map[[2]int]struct{})
	for _, e := range d.Edges {
		if e.Length() <= 0 {
			continue
		}
		a, b := e.SeedA, e.SeedB
		if a > b {
			a, b = b, a
		}
		pairs[[2]int{a, b}] = struct{}{}
	}
	require.Equal(t, len(pairs), len(tg.Connections))
}

func TestBuild_ConnectionsReferenceRealEdges(t *testing.T) {
	d := buildDiagram(t)
	tg := traversal.Build(d, traversal.Params{NeighborRatio: 0.8, Seed: 5, IncludeBorderEdges: true})
	for _, c := range tg.Connections {
		e := d.Edges[c.EdgeIndex]
		pair := [2]int{e.SeedA, e.SeedB}
		got := [2]int{c.CellA, c.CellB}
		require.True(t, pair == got || pair == [2]int{got[1], got[0]})
	}
}

func TestBuild_Deterministic(t *testing.T) {
	d := buildDiagram(t)
	params := traversal.Params{NeighborRatio: 0.6, Seed: 99, IncludeBorderEdges: true, ConnectionDistributionScaling: 0.5}
	a := traversal.Build(d, params)
	b := traversal.Build(d, params)
	require.Equal(t, a.Connections, b.Connections)
}

func TestBuild_FewerThanTwoCells(t *testing.T) {
	d := voronoi.Build([]voronoi.Point{{X: 2, Y: 2}}, voronoi.Size{W: 8, H: 8})
	tg := traversal.Build(d, traversal.Params{NeighborRatio: 0.5, Seed: 1})
	require.Empty(t, tg.Connections)
	require.Equal(t, 0, tg.TotalNeighborPairs)
}

func TestBuild_ExcludesBorderEdgesWhenDisabled(t *testing.T) {
	d := voronoi.Build([]voronoi.Point{{X: 2, Y: 4}, {X: 6, Y: 4}}, voronoi.Size{W: 8, H: 8})
	tg := traversal.Build(d, traversal.Params{NeighborRatio: 1.0, Seed: 1, IncludeBorderEdges: false})
	require.Empty(t, tg.Connections)
}
