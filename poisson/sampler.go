package poisson

import (
	"math"

	"github.com/kelindar/bitmap"

	"github.com/nonamecorn/pcg-together/seedchain"
)

// grid is the background acceleration structure: a uniform lattice with
// cell side radius/√2, sized so that any point conflicting with a new
// candidate must lie in the candidate cell's 5x5 neighbourhood.
type grid struct {
	cols, rows int
	cellSize   float64
	occupied   bitmap.Bitmap
	cellPoint  []int32
}

func newGrid(width, height, radius float64) *grid {
	cellSize := radius / math.Sqrt2
	cols := int(math.Ceil(width/cellSize)) + 1
	rows := int(math.Ceil(height/cellSize)) + 1
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	g := &grid{
		cols:      cols,
		rows:      rows,
		cellSize:  cellSize,
		cellPoint: make([]int32, cols*rows),
	}
	g.occupied.Grow(uint32(cols*rows) + 1)
	return g
}

func (g *grid) cellOf(p Point) (int, int) {
	return int(p.X / g.cellSize), int(p.Y / g.cellSize)
}

func (g *grid) index(cx, cy int) int {
	return cy*g.cols + cx
}

func (g *grid) insert(idx int32, p Point) {
	cx, cy := g.cellOf(p)
	i := g.index(cx, cy)
	g.occupied.Set(uint32(i))
	g.cellPoint[i] = idx
}

// conflicts reports whether any already-placed point lies within radius of
// candidate, searching only the 5x5 cell neighbourhood that can contain one.
func (g *grid) conflicts(candidate Point, points []Point, radius float64) bool {
	cx, cy := g.cellOf(candidate)
	radius2 := radius * radius
	for dy := -2; dy <= 2; dy++ {
		ny := cy + dy
		if ny < 0 || ny >= g.rows {
			continue
		}
		for dx := -2; dx <= 2; dx++ {
			nx := cx + dx
			if nx < 0 || nx >= g.cols {
				continue
			}
			i := g.index(nx, ny)
			if !g.occupied.Contains(uint32(i)) {
				continue
			}
			other := points[g.cellPoint[i]]
			ddx := other.X - candidate.X
			ddy := other.Y - candidate.Y
			if ddx*ddx+ddy*ddy < radius2 {
				return true
			}
		}
	}
	return false
}

// Sample runs Bridson's algorithm over params and returns the accepted
// points in the order they were generated. The first point is always
// placed uniformly within the region; every point thereafter is at least
// params.Radius from every other accepted point.
func Sample(params Params) ([]Point, error) {
	if params.Radius <= 0 {
		return nil, ErrInvalidRadius
	}
	attempts := params.Attempts
	if attempts <= 0 {
		attempts = DefaultAttempts
	}

	rng := seedchain.NewRNG(params.Seed)
	g := newGrid(params.Width, params.Height, params.Radius)

	points := make([]Point, 0, 64)
	active := make([]int32, 0, 64)

	first := Point{
		X: float64(rng.NextF32()) * params.Width,
		Y: float64(rng.NextF32()) * params.Height,
	}
	points = append(points, first)
	g.insert(0, first)
	active = append(active, 0)

	inRegion := func(p Point) bool {
		return p.X >= 0 && p.X < params.Width && p.Y >= 0 && p.Y < params.Height
	}

	for len(active) > 0 {
		pick := rng.NextInt(0, len(active)-1)
		base := points[active[pick]]

		accepted := false
		for i := 0; i < attempts; i++ {
			u := float64(rng.NextF32())
			v := float64(rng.NextF32())
			dist := params.Radius * (1 + math.Sqrt(u))
			angle := 2 * math.Pi * v

			candidate := Point{
				X: base.X + dist*math.Cos(angle),
				Y: base.Y + dist*math.Sin(angle),
			}
			if !inRegion(candidate) || g.conflicts(candidate, points, params.Radius) {
				continue
			}

			idx := int32(len(points))
			points = append(points, candidate)
			g.insert(idx, candidate)
			active = append(active, idx)
			accepted = true
			break
		}

		if !accepted {
			last := len(active) - 1
			active[pick] = active[last]
			active = active[:last]
		}
	}

	return points, nil
}
