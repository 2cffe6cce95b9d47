package traversal

import "github.com/nonamecorn/pcg-together/voronoi"

// Params configures a single Build call.
type Params struct {
	// NeighborRatio is the target fraction, in [0,1], of the diagram's
	// neighbour pairs that should be connected after Phase B.
	NeighborRatio float64

	// Seed drives the sampling RNG.
	Seed uint64

	// IncludeBorderEdges allows canvas-border Voronoi edges to host
	// connections when true.
	IncludeBorderEdges bool

	// ConnectionDistributionScaling biases the sampled point on each
	// connection's edge toward its midpoint (0) or its full smoothstep
	// spread (1).
	ConnectionDistributionScaling float64
}

// Connection is one accepted link between two adjacent cells.
type Connection struct {
	CellA, CellB int
	EdgeIndex    int
	PointOnEdge  voronoi.Point
	EdgeLength   float64
}

func sortedPair(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// Graph is the traversal connectivity graph built over a Diagram.
type Graph struct {
	Diagram            *voronoi.Diagram
	TotalNeighborPairs int
	TargetConnections  int
	Connections        []Connection
	ConnectedPairs     map[[2]int]struct{}
}

// Connected reports whether cells a and b are directly linked by a
// Connection.
func (g *Graph) Connected(a, b int) bool {
	if a > b {
		a, b = b, a
	}
	_, ok := g.ConnectedPairs[[2]int{a, b}]
	return ok
}
