package caprep

import (
	"math"

	"github.com/nonamecorn/pcg-together/seedchain"
	"github.com/nonamecorn/pcg-together/traversal"
	"github.com/nonamecorn/pcg-together/voronoi"
)

// Build produces one CellTask per cell of diagram, padding each cell's
// bounding box by padding pixels (clamped to the canvas) and translating
// every traversal connection touching that cell into local coordinates.
func Build(diagram *voronoi.Diagram, tg *traversal.Graph, chain seedchain.Chain, padding int) []CellTask {
	tasks := make([]CellTask, len(diagram.Cells))

	connectorsByCell := make([][]traversal.Connection, len(diagram.Cells))
	for _, c := range tg.Connections {
		connectorsByCell[c.CellA] = append(connectorsByCell[c.CellA], c)
		connectorsByCell[c.CellB] = append(connectorsByCell[c.CellB], c)
	}

	for i, cell := range diagram.Cells {
		region := padRegion(cell.BBox, padding, diagram.Size)
		mask := buildMask(diagram, i, region)

		var connectors []CellConnector
		for _, conn := range connectorsByCell[i] {
			other := conn.CellB
			if other == i {
				other = conn.CellA
			}
			connectors = append(connectors, CellConnector{
				OtherCell:         other,
				EdgeIndex:         conn.EdgeIndex,
				WorldPoint:        conn.PointOnEdge,
				LocalPoint:        localPoint(conn.PointOnEdge, region),
				DirectionIntoCell: inwardDirection(cell.Seed, conn.PointOnEdge),
			})
		}

		tasks[i] = CellTask{
			CellIndex:    i,
			Region:       region,
			Mask:         mask,
			Connectors:   connectors,
			CASeed:       chain.CASeed(i),
			SeedPosition: cell.Seed,
		}
	}

	return tasks
}

func padRegion(bbox voronoi.Rect, padding int, canvas voronoi.Size) voronoi.Rect {
	x0 := clamp(bbox.X0-padding, 0, canvas.W)
	y0 := clamp(bbox.Y0-padding, 0, canvas.H)
	x1 := clamp(bbox.X1+padding, 0, canvas.W)
	y1 := clamp(bbox.Y1+padding, 0, canvas.H)
	if x1 <= x0 {
		x1 = min(x0+1, canvas.W)
		if x1 <= x0 {
			x0 = x1 - 1
		}
	}
	if y1 <= y0 {
		y1 = min(y0+1, canvas.H)
		if y1 <= y0 {
			y0 = y1 - 1
		}
	}
	return voronoi.Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

func buildMask(diagram *voronoi.Diagram, cellIndex int, region voronoi.Rect) []byte {
	w, h := region.Width(), region.Height()
	mask := make([]byte, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if int(diagram.OwnerAt(region.X0+x, region.Y0+y)) == cellIndex {
				mask[y*w+x] = 1
			}
		}
	}
	return mask
}

func localPoint(world voronoi.Point, region voronoi.Rect) [2]int {
	lx := int(math.Floor(world.X)) - region.X0
	ly := int(math.Floor(world.Y)) - region.Y0
	return [2]int{
		clamp(lx, 0, region.Width()-1),
		clamp(ly, 0, region.Height()-1),
	}
}

func inwardDirection(seed, world voronoi.Point) [2]float64 {
	dx, dy := seed.X-world.X, seed.Y-world.Y
	norm := math.Hypot(dx, dy)
	if norm < 1e-9 {
		return [2]float64{1, 0}
	}
	return [2]float64{dx / norm, dy / norm}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
