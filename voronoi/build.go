package voronoi

import (
	"math"
	"sort"
	"strconv"

	"github.com/nonamecorn/pcg-together/graph"
)

type vEdgeKey struct{ u, v int }

func vKey(u, v int) vEdgeKey {
	if u > v {
		u, v = v, u
	}
	return vEdgeKey{u, v}
}

type vEdgeAccum struct {
	triangles [2]int
	opposite  [2]int
	count     int
}

// Build constructs a Voronoi diagram over seeds within a canvas of the
// given size. The zero-, one-, and two-seed cases are handled explicitly;
// three or more seeds go through Delaunay triangulation.
func Build(seeds []Point, size Size) *Diagram {
	d := &Diagram{Size: size, Seeds: seeds}
	d.OwnershipGrid = make([]int32, size.W*size.H)

	switch len(seeds) {
	case 0:
		for i := range d.OwnershipGrid {
			d.OwnershipGrid[i] = -1
		}
		return d
	case 1:
		d.Cells = []Cell{{
			SeedIndex: 0,
			Seed:      seeds[0],
			Neighbors: map[int]struct{}{},
			BBox:      Rect{0, 0, size.W, size.H},
		}}
		fillOwnership(d)
		d.CellGraph = buildCellGraph(d)
		return d
	case 2:
		buildTwoSeed(d)
		fillOwnership(d)
		d.CellGraph = buildCellGraph(d)
		return d
	}

	buildGeneral(d)
	fillOwnership(d)
	d.CellGraph = buildCellGraph(d)
	return d
}

func buildTwoSeed(d *Diagram) {
	s0, s1 := d.Seeds[0], d.Seeds[1]
	mid := Point{X: (s0.X + s1.X) / 2, Y: (s0.Y + s1.Y) / 2}
	ex, ey := s1.X-s0.X, s1.Y-s0.Y
	perp := Point{X: -ey, Y: ex}
	norm := math.Hypot(perp.X, perp.Y)
	if norm > geometryEpsilon {
		perp.X /= norm
		perp.Y /= norm
	}
	farLen := 2*(float64(d.Size.W)+float64(d.Size.H)) + 10

	cells := []Cell{
		{SeedIndex: 0, Seed: s0, Neighbors: map[int]struct{}{1: {}}},
		{SeedIndex: 1, Seed: s1, Neighbors: map[int]struct{}{0: {}}},
	}

	p0 := Point{X: mid.X - perp.X*farLen, Y: mid.Y - perp.Y*farLen}
	p1 := Point{X: mid.X + perp.X*farLen, Y: mid.Y + perp.Y*farLen}
	clipped0, clipped1, ok := liangBarsky(p0, p1, float64(d.Size.W), float64(d.Size.H))
	if ok && math.Hypot(clipped1.X-clipped0.X, clipped1.Y-clipped0.Y) >= 0.5 {
		edge := Edge{From: clipped0, To: clipped1, SeedA: 0, SeedB: 1, IsBorder: true}
		d.Edges = append(d.Edges, edge)
		cells[0].EdgeIndices = []int{0}
		cells[1].EdgeIndices = []int{0}
	}

	cells[0].BBox = cellEnvelope(s0, cells[0].EdgeIndices, d.Edges, d.Size)
	cells[1].BBox = cellEnvelope(s1, cells[1].EdgeIndices, d.Edges, d.Size)
	d.Cells = cells
}

func buildGeneral(d *Diagram) {
	seeds := d.Seeds
	triangles := delaunay(seeds)
	d.Triangles = triangles

	accum := make(map[vEdgeKey]*vEdgeAccum)
	neighbors := make([]map[int]struct{}, len(seeds))
	for i := range neighbors {
		neighbors[i] = map[int]struct{}{}
	}

	type triEdge struct {
		key      vEdgeKey
		opposite int
	}
	for ti, tri := range triangles {
		v := tri.Vertices
		edges := [3]triEdge{
			{vKey(v[0], v[1]), v[2]},
			{vKey(v[1], v[2]), v[0]},
			{vKey(v[2], v[0]), v[1]},
		}
		for _, te := range edges {
			neighbors[te.key.u][te.key.v] = struct{}{}
			neighbors[te.key.v][te.key.u] = struct{}{}

			a, ok := accum[te.key]
			if !ok {
				a = &vEdgeAccum{}
				accum[te.key] = a
			}
			if a.count < 2 {
				a.triangles[a.count] = ti
				a.opposite[a.count] = te.opposite
				a.count++
			}
		}
	}

	keys := make([]vEdgeKey, 0, len(accum))
	for k := range accum {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].u != keys[j].u {
			return keys[i].u < keys[j].u
		}
		return keys[i].v < keys[j].v
	})

	w, h := float64(d.Size.W), float64(d.Size.H)
	farLen := 2*(w+h) + 10

	cellEdgeIdx := make([][]int, len(seeds))

	for _, k := range keys {
		a := accum[k]
		var from, to Point
		var ok bool

		if a.count == 2 {
			from = triangles[a.triangles[0]].Circumcenter
			to = triangles[a.triangles[1]].Circumcenter
			from, to, ok = liangBarsky(from, to, w, h)
		} else {
			origin := triangles[a.triangles[0]].Circumcenter
			u, v := seeds[k.u], seeds[k.v]
			mid := Point{X: (u.X + v.X) / 2, Y: (u.Y + v.Y) / 2}
			perp := Point{X: -(v.Y - u.Y), Y: v.X - u.X}
			wOpp := seeds[a.opposite[0]]
			if dot2(perp, Point{X: wOpp.X - mid.X, Y: wOpp.Y - mid.Y}) > 0 {
				perp.X, perp.Y = -perp.X, -perp.Y
			}
			norm := math.Hypot(perp.X, perp.Y)
			if norm > geometryEpsilon {
				perp.X /= norm
				perp.Y /= norm
			}
			far := Point{X: origin.X + perp.X*farLen, Y: origin.Y + perp.Y*farLen}
			from, to, ok = liangBarsky(origin, far, w, h)
		}

		if !ok || math.Hypot(to.X-from.X, to.Y-from.Y) < 0.5 {
			continue
		}

		edgeIdx := len(d.Edges)
		d.Edges = append(d.Edges, Edge{
			From: from, To: to,
			SeedA: k.u, SeedB: k.v,
			IsBorder: a.count == 1,
		})
		cellEdgeIdx[k.u] = append(cellEdgeIdx[k.u], edgeIdx)
		cellEdgeIdx[k.v] = append(cellEdgeIdx[k.v], edgeIdx)
	}

	cells := make([]Cell, len(seeds))
	for i, s := range seeds {
		cells[i] = Cell{
			SeedIndex:   i,
			Seed:        s,
			Neighbors:   neighbors[i],
			EdgeIndices: cellEdgeIdx[i],
			BBox:        cellEnvelope(s, cellEdgeIdx[i], d.Edges, d.Size),
		}
	}
	d.Cells = cells
}

func dot2(a, b Point) float64 { return a.X*b.X + a.Y*b.Y }

func cellEnvelope(seed Point, edgeIdx []int, edges []Edge, size Size) Rect {
	minX, minY := math.Floor(seed.X), math.Floor(seed.Y)
	maxX, maxY := math.Ceil(seed.X), math.Ceil(seed.Y)

	consider := func(p Point) {
		minX = math.Min(minX, math.Floor(p.X))
		minY = math.Min(minY, math.Floor(p.Y))
		maxX = math.Max(maxX, math.Ceil(p.X))
		maxY = math.Max(maxY, math.Ceil(p.Y))
	}
	for _, ei := range edgeIdx {
		consider(edges[ei].From)
		consider(edges[ei].To)
	}

	x0, y0 := clampInt(int(minX), 0, size.W), clampInt(int(minY), 0, size.H)
	x1, y1 := clampInt(int(maxX), 0, size.W), clampInt(int(maxY), 0, size.H)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	if x1 > size.W {
		x1 = size.W
		if x0 >= x1 {
			x0 = x1 - 1
		}
	}
	if y1 > size.H {
		y1 = size.H
		if y0 >= y1 {
			y0 = y1 - 1
		}
	}
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func fillOwnership(d *Diagram) {
	if len(d.Seeds) == 0 {
		return
	}
	if len(d.Seeds) == 1 {
		for i := range d.OwnershipGrid {
			d.OwnershipGrid[i] = 0
		}
		return
	}
	for y := 0; y < d.Size.H; y++ {
		cy := float64(y) + 0.5
		for x := 0; x < d.Size.W; x++ {
			cx := float64(x) + 0.5
			best := 0
			bestDist := math.MaxFloat64
			for i, s := range d.Seeds {
				dx := cx - s.X
				dy := cy - s.Y
				dist := dx*dx + dy*dy
				if dist < bestDist {
					bestDist = dist
					best = i
				}
			}
			d.OwnershipGrid[y*d.Size.W+x] = int32(best)
		}
	}
}

// buildCellGraph mirrors each cell's neighbor set into a weighted Graph,
// one vertex per cell index and one edge per adjacent seed pair, weighted
// by rounded Euclidean seed distance. traversal.Build walks its Edges() to
// source Phase A spanning-tree candidates; neighbor indices are sorted
// before insertion so edge IDs (and therefore Edges() order) don't depend
// on Go's randomized map iteration.
func buildCellGraph(d *Diagram) *graph.Graph {
	g := graph.NewGraph(graph.WithWeighted())
	for i := range d.Cells {
		g.AddVertex(strconv.Itoa(i))
	}
	for i := range d.Cells {
		neighbors := make([]int, 0, len(d.Cells[i].Neighbors))
		for j := range d.Cells[i].Neighbors {
			if j > i {
				neighbors = append(neighbors, j)
			}
		}
		sort.Ints(neighbors)
		for _, j := range neighbors {
			dist := math.Hypot(d.Cells[i].Seed.X-d.Cells[j].Seed.X, d.Cells[i].Seed.Y-d.Cells[j].Seed.Y)
			g.AddEdge(strconv.Itoa(i), strconv.Itoa(j), int64(math.Round(dist)))
		}
	}
	return g
}
