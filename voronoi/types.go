package voronoi

import (
	"math"

	"github.com/nonamecorn/pcg-together/graph"
)

// Point is a 2D coordinate in canvas space; x increases right, y increases
// down. Integer pixel (i,j) has centre (i+0.5, j+0.5).
type Point struct {
	X, Y float64
}

// Size is an integer canvas extent in pixels.
type Size struct {
	W, H int
}

// Rect is an axis-aligned integer bounding box, [X0,X1) x [Y0,Y1).
type Rect struct {
	X0, Y0, X1, Y1 int
}

// Width returns X1 - X0.
func (r Rect) Width() int { return r.X1 - r.X0 }

// Height returns Y1 - Y0.
func (r Rect) Height() int { return r.Y1 - r.Y0 }

// Triangle is a Delaunay triangle: three seed indices plus the
// circumcenter of the triangle they form.
type Triangle struct {
	Vertices     [3]int
	Circumcenter Point
}

// Edge is an undirected Voronoi edge in canvas space between two cells.
type Edge struct {
	From, To     Point
	SeedA, SeedB int
	IsBorder     bool
}

// Length returns the Euclidean length of the edge segment.
func (e Edge) Length() float64 {
	dx := e.To.X - e.From.X
	dy := e.To.Y - e.From.Y
	return math.Hypot(dx, dy)
}

// Cell is one Voronoi region, owned by the seed at SeedIndex.
type Cell struct {
	SeedIndex   int
	Seed        Point
	Neighbors   map[int]struct{}
	EdgeIndices []int
	BBox        Rect
}

// Diagram is an immutable Voronoi diagram built from a seed sequence.
type Diagram struct {
	Size          Size
	Seeds         []Point
	Cells         []Cell
	Edges         []Edge
	Triangles     []Triangle
	OwnershipGrid []int32 // row-major, Size.W x Size.H; -1 only when Seeds is empty

	// CellGraph mirrors cell adjacency as a weighted undirected graph,
	// edge weight = rounded Euclidean distance between the two seeds
	// (not the rendered Voronoi edge's own length). Vertex IDs are seed
	// indices formatted in base 10. Built once alongside the rest of the
	// diagram; nil only when Seeds is empty. traversal.Build walks its
	// Edges() directly to source Phase A/B candidate pairs.
	CellGraph *graph.Graph
}

// OwnerAt returns the cell index owning pixel (x,y), or -1 if out of
// bounds or the diagram has no seeds.
func (d *Diagram) OwnerAt(x, y int) int32 {
	if x < 0 || y < 0 || x >= d.Size.W || y >= d.Size.H {
		return -1
	}
	return d.OwnershipGrid[y*d.Size.W+x]
}
