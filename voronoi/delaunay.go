package voronoi

import "math"

// bwTriangle is an in-progress Bowyer-Watson triangle, indexing into the
// combined points slice (seeds followed by the three super-triangle
// vertices).
type bwTriangle struct {
	a, b, c int
	center  Point
	radius2 float64
}

func makeBWTriangle(points []Point, a, b, c int) bwTriangle {
	center, ok := circumcenter(points[a], points[b], points[c])
	r2 := distSq(center, points[a])
	if !ok {
		// Degenerate: fall back to centroid, radius large enough to
		// behave like "always contains" is wrong; instead use the max
		// distance to any of the three vertices so containment tests
		// stay well defined.
		r2 = math.Max(r2, math.Max(distSq(center, points[b]), distSq(center, points[c])))
	}
	return bwTriangle{a: a, b: b, c: c, center: center, radius2: r2}
}

func (t bwTriangle) containsInCircumcircle(points []Point, p int) bool {
	return distSq(points[p], t.center) <= t.radius2+geometryEpsilon
}

func (t bwTriangle) hasSuperVertex(n int) bool {
	return t.a >= n || t.b >= n || t.c >= n
}

type bwEdge struct{ u, v int }

func normalizeEdge(u, v int) bwEdge {
	if u > v {
		u, v = v, u
	}
	return bwEdge{u, v}
}

func (t bwTriangle) edges() [3]bwEdge {
	return [3]bwEdge{
		normalizeEdge(t.a, t.b),
		normalizeEdge(t.b, t.c),
		normalizeEdge(t.c, t.a),
	}
}

// delaunay triangulates seeds via Bowyer-Watson with seeds inserted in
// index order, and returns Triangles referencing only seed indices.
func delaunay(seeds []Point) []Triangle {
	n := len(seeds)
	if n < 3 {
		return nil
	}

	minX, minY := seeds[0].X, seeds[0].Y
	maxX, maxY := seeds[0].X, seeds[0].Y
	for _, s := range seeds {
		minX = math.Min(minX, s.X)
		minY = math.Min(minY, s.Y)
		maxX = math.Max(maxX, s.X)
		maxY = math.Max(maxY, s.Y)
	}
	dx := maxX - minX
	dy := maxY - minY
	deltaMax := math.Max(dx, dy)*20 + 10
	midX := (minX + maxX) / 2
	midY := (minY + maxY) / 2

	points := make([]Point, n, n+3)
	copy(points, seeds)
	points = append(points,
		Point{X: midX - 2*deltaMax, Y: midY - deltaMax},
		Point{X: midX, Y: midY + 2*deltaMax},
		Point{X: midX + 2*deltaMax, Y: midY - deltaMax},
	)

	triangles := []bwTriangle{makeBWTriangle(points, n, n+1, n+2)}

	for p := 0; p < n; p++ {
		var bad []int
		for i, tri := range triangles {
			if tri.containsInCircumcircle(points, p) {
				bad = append(bad, i)
			}
		}

		edgeCount := make(map[bwEdge]int)
		edgeOrder := make([]bwEdge, 0, len(bad)*3)
		for _, ti := range bad {
			for _, e := range triangles[ti].edges() {
				if _, seen := edgeCount[e]; !seen {
					edgeOrder = append(edgeOrder, e)
				}
				edgeCount[e]++
			}
		}

		badSet := make(map[int]bool, len(bad))
		for _, ti := range bad {
			badSet[ti] = true
		}
		kept := make([]bwTriangle, 0, len(triangles)-len(bad)+len(edgeOrder))
		for i, tri := range triangles {
			if !badSet[i] {
				kept = append(kept, tri)
			}
		}

		for _, e := range edgeOrder {
			if edgeCount[e] != 1 {
				continue
			}
			kept = append(kept, makeBWTriangle(points, e.u, e.v, p))
		}

		triangles = kept
	}

	result := make([]Triangle, 0, len(triangles))
	for _, tri := range triangles {
		if tri.hasSuperVertex(n) {
			continue
		}
		result = append(result, Triangle{
			Vertices:     [3]int{tri.a, tri.b, tri.c},
			Circumcenter: tri.center,
		})
	}
	return result
}
