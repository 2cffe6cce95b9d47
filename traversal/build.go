package traversal

import (
	"math"
	"sort"
	"strconv"

	"github.com/nonamecorn/pcg-together/seedchain"
	"github.com/nonamecorn/pcg-together/voronoi"
)

type candidate struct {
	edgeIndex int
	edge      voronoi.Edge
	weight    float64
}

// Build runs the biased spanning tree (Phase A) and coverage pass (Phase
// B) over diagram and returns the resulting Graph. Candidate pairs are
// walked from diagram.CellGraph.Edges() rather than diagram.Edges
// directly, so the weighted adjacency graph voronoi.Build constructs is
// what actually drives which seed pairs Phase A and B can connect. With
// fewer than two cells the result has no connections and no neighbour
// pairs to cover.
func Build(diagram *voronoi.Diagram, params Params) *Graph {
	g := &Graph{
		Diagram:        diagram,
		ConnectedPairs: make(map[[2]int]struct{}),
	}
	g.TotalNeighborPairs = countNeighborPairs(diagram)
	if len(diagram.Cells) < 2 || diagram.CellGraph == nil {
		return g
	}

	rng := seedchain.NewRNG(params.Seed)

	// diagram.CellGraph carries one edge per adjacent seed pair but not the
	// edge geometry itself; geomByPair recovers the voronoi.Edge a pair's
	// connection point gets sampled from, applying the same border/length
	// filters the original edge-index walk used.
	geomByPair := make(map[[2]int]int, len(diagram.Edges))
	for i, e := range diagram.Edges {
		if e.IsBorder && !params.IncludeBorderEdges {
			continue
		}
		if e.Length() <= 0 {
			continue
		}
		geomByPair[sortedPair(e.SeedA, e.SeedB)] = i
	}

	graphEdges := diagram.CellGraph.Edges()
	candidates := make([]candidate, 0, len(graphEdges))
	for _, ge := range graphEdges {
		a, errA := strconv.Atoi(ge.From)
		b, errB := strconv.Atoi(ge.To)
		if errA != nil || errB != nil {
			continue
		}
		idx, ok := geomByPair[sortedPair(a, b)]
		if !ok {
			continue
		}
		e := diagram.Edges[idx]
		candidates = append(candidates, candidate{edgeIndex: idx, edge: e, weight: e.Length()})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].weight > candidates[j].weight
	})

	uf := newUnionFind(len(diagram.Cells))
	used := make([]bool, len(candidates))
	merged := 0
	target := len(diagram.Cells) - 1

	for i, c := range candidates {
		if merged >= target {
			break
		}
		if !uf.union(c.edge.SeedA, c.edge.SeedB) {
			continue
		}
		used[i] = true
		merged++
		g.appendConnection(c, rng, params.ConnectionDistributionScaling)
	}

	coverageTarget := int(math.Ceil(params.NeighborRatio * float64(g.TotalNeighborPairs)))
	if coverageTarget < len(g.Connections) {
		coverageTarget = len(g.Connections)
	}
	g.TargetConnections = coverageTarget

	remaining := make([]candidate, 0, len(candidates))
	for i, c := range candidates {
		if !used[i] && !g.Connected(c.edge.SeedA, c.edge.SeedB) {
			remaining = append(remaining, c)
		}
	}

	attemptBound := 5 * len(remaining)
	attempts := 0
	for len(g.Connections) < coverageTarget && len(remaining) > 0 && attempts < attemptBound {
		attempts++

		total := 0.0
		cumulative := make([]float64, len(remaining))
		for i, c := range remaining {
			total += c.weight
			cumulative[i] = total
		}
		if total <= 0 {
			break
		}

		pick := float64(rng.NextF32()) * total
		idx := sort.Search(len(cumulative), func(i int) bool { return cumulative[i] >= pick })
		if idx >= len(remaining) {
			idx = len(remaining) - 1
		}

		chosen := remaining[idx]
		remaining[idx] = remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]

		if g.Connected(chosen.edge.SeedA, chosen.edge.SeedB) {
			continue
		}
		g.appendConnection(chosen, rng, params.ConnectionDistributionScaling)
	}

	return g
}

func (g *Graph) appendConnection(c candidate, rng *seedchain.RNG, scaling float64) {
	point := samplePoint(c.edge, rng, scaling)
	g.Connections = append(g.Connections, Connection{
		CellA:       c.edge.SeedA,
		CellB:       c.edge.SeedB,
		EdgeIndex:   c.edgeIndex,
		PointOnEdge: point,
		EdgeLength:  c.weight,
	})
	g.ConnectedPairs[sortedPair(c.edge.SeedA, c.edge.SeedB)] = struct{}{}
}

// samplePoint draws a point along edge using a cubic smoothstep of a
// uniform t, then pulls it toward the midpoint by (1-scaling).
func samplePoint(edge voronoi.Edge, rng *seedchain.RNG, scaling float64) voronoi.Point {
	t := float64(rng.NextF32())
	s := 3*t*t - 2*t*t*t
	factor := (s-0.5)*scaling + 0.5
	return voronoi.Point{
		X: edge.From.X + factor*(edge.To.X-edge.From.X),
		Y: edge.From.Y + factor*(edge.To.Y-edge.From.Y),
	}
}

func countNeighborPairs(diagram *voronoi.Diagram) int {
	total := 0
	for _, c := range diagram.Cells {
		total += len(c.Neighbors)
	}
	return total / 2
}
