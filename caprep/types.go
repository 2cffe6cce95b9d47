package caprep

import "github.com/nonamecorn/pcg-together/voronoi"

// CellConnector is a traversal connection translated into a cell's local
// region coordinates, ready for the carve-mask rasterizer.
type CellConnector struct {
	OtherCell         int
	EdgeIndex         int
	WorldPoint        voronoi.Point
	LocalPoint        [2]int
	DirectionIntoCell [2]float64
}

// CellTask is the immutable, self-contained input to one cellular-automata
// worker run.
type CellTask struct {
	CellIndex    int
	Region       voronoi.Rect
	Mask         []byte // Region.Width() x Region.Height(), row-major
	Connectors   []CellConnector
	CASeed       uint64
	SeedPosition voronoi.Point
}

// At returns the mask bit for local coordinate (x,y) within the region.
func (t *CellTask) At(x, y int) byte {
	return t.Mask[y*t.Region.Width()+x]
}
