package voronoi

import "math"

const geometryEpsilon = 1e-9

// circumcenter returns the circumcenter of triangle (a,b,c) and whether the
// three points are non-degenerate (not collinear). On degeneracy the
// centroid is returned instead, per the fallback rule.
func circumcenter(a, b, c Point) (Point, bool) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) < geometryEpsilon {
		centroid := Point{
			X: (a.X + b.X + c.X) / 3,
			Y: (a.Y + b.Y + c.Y) / 3,
		}
		return centroid, false
	}

	a2 := a.X*a.X + a.Y*a.Y
	b2 := b.X*b.X + b.Y*b.Y
	c2 := c.X*c.X + c.Y*c.Y

	ux := (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d
	uy := (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d
	return Point{X: ux, Y: uy}, true
}

func distSq(p, q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// liangBarsky clips the segment p0-p1 against the closed rectangle
// [0,w] x [0,h] and reports the clipped endpoints, or ok=false if the
// segment does not intersect the rectangle at all.
func liangBarsky(p0, p1 Point, w, h float64) (Point, Point, bool) {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y

	tMin, tMax := 0.0, 1.0

	clip := func(pComp, qComp float64) bool {
		if pComp == 0 {
			return qComp >= 0
		}
		t := qComp / pComp
		if pComp < 0 {
			if t > tMax {
				return false
			}
			if t > tMin {
				tMin = t
			}
		} else {
			if t < tMin {
				return false
			}
			if t < tMax {
				tMax = t
			}
		}
		return true
	}

	if !clip(-dx, p0.X) {
		return Point{}, Point{}, false
	}
	if !clip(dx, w-p0.X) {
		return Point{}, Point{}, false
	}
	if !clip(-dy, p0.Y) {
		return Point{}, Point{}, false
	}
	if !clip(dy, h-p0.Y) {
		return Point{}, Point{}, false
	}
	if tMin > tMax {
		return Point{}, Point{}, false
	}

	clipped0 := Point{X: p0.X + tMin*dx, Y: p0.Y + tMin*dy}
	clipped1 := Point{X: p0.X + tMax*dx, Y: p0.Y + tMax*dy}
	return clipped0, clipped1, true
}
