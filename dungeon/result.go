package dungeon

import (
	"math"

	"github.com/nonamecorn/pcg-together/ca"
	"github.com/nonamecorn/pcg-together/gridgraph"
	"github.com/nonamecorn/pcg-together/traversal"
	"github.com/nonamecorn/pcg-together/voronoi"
)

const (
	tileFloor byte = 0
	tileWall  byte = 1
)

// MergedResult is the output of a single Generate call.
type MergedResult struct {
	CanvasW, CanvasH int

	// OwnershipGrid is row-major, CanvasW x CanvasH; -1 only when no
	// seeds were sampled.
	OwnershipGrid []int32

	// Merged is row-major, CanvasW x CanvasH; 0 = floor, 1 = wall.
	Merged []byte

	Diagram    *voronoi.Diagram
	Traversal  *traversal.Graph
	PerCell    []ca.Result
}

// TileAt returns the merged tile value at (x,y): 0 = floor, 1 = wall.
func (r *MergedResult) TileAt(x, y int) byte {
	return r.Merged[y*r.CanvasW+x]
}

// FloorGraph is a read-only diagnostic view: it treats every floor pixel
// as "land" and every wall pixel as "water", letting a caller run
// connected-component or island-bridging analysis over the generated
// map. It is never invoked by Generate itself, so it cannot influence the
// deterministic output.
func (r *MergedResult) FloorGraph() (*gridgraph.GridGraph, error) {
	values := make([][]int, r.CanvasH)
	for y := 0; y < r.CanvasH; y++ {
		row := make([]int, r.CanvasW)
		for x := 0; x < r.CanvasW; x++ {
			if r.TileAt(x, y) == tileFloor {
				row[x] = 1
			}
		}
		values[y] = row
	}
	return gridgraph.NewGridGraph(values, gridgraph.GridOptions{LandThreshold: 1, Conn: gridgraph.Conn4})
}

// RepairPath finds a minimal-cost sequence of wall-to-floor conversions
// connecting the floor component under (x0,y0) to the one under (x1,y1).
// Within radius hops of any connector the generator already carved, a
// wall cell converts at cost 0 instead of the uniform cost of 1, so the
// repair prefers reopening an existing doorway over tunneling through
// untouched rock. radius <= 0 disables that bias entirely, falling back
// to a uniform-cost shortest path. Returns ErrPointOutsideFloor if either
// point does not land on a floor cell.
func (r *MergedResult) RepairPath(x0, y0, x1, y1, radius int) ([]gridgraph.Cell, int, error) {
	fg, err := r.FloorGraph()
	if err != nil {
		return nil, 0, err
	}

	components := fg.ConnectedComponents()[1]
	var src, dst []gridgraph.Cell
	for _, comp := range components {
		for _, c := range comp {
			if c.X == x0 && c.Y == y0 {
				src = comp
			}
			if c.X == x1 && c.Y == y1 {
				dst = comp
			}
		}
	}
	if src == nil || dst == nil {
		return nil, 0, ErrPointOutsideFloor
	}

	return fg.ExpandIslandNear(src, dst, r.connectorCells(), radius)
}

// connectorCells gathers every per-cell connector's world-space point,
// rounded to the nearest canvas tile and clamped to the grid, as the
// proximity anchors RepairPath biases its search toward.
func (r *MergedResult) connectorCells() []gridgraph.Cell {
	cells := make([]gridgraph.Cell, 0, len(r.PerCell))
	for _, pc := range r.PerCell {
		for _, conn := range pc.Connectors {
			x := min(max(int(math.Round(conn.WorldPoint.X)), 0), r.CanvasW-1)
			y := min(max(int(math.Round(conn.WorldPoint.Y)), 0), r.CanvasH-1)
			cells = append(cells, gridgraph.Cell{X: x, Y: y})
		}
	}
	return cells
}
