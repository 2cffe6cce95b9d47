package ca

import (
	"math"

	"github.com/nonamecorn/pcg-together/caprep"
	"github.com/nonamecorn/pcg-together/seedchain"
)

const (
	floor byte = 0
	wall  byte = 1
)

// Run executes one masked CA pass over task and returns the resulting
// tile grid. Determinism: the same task and cfg always produce identical
// Tiles, regardless of concurrency elsewhere in the pipeline.
func Run(task caprep.CellTask, cfg Config) Result {
	cfg = cfg.Normalize()
	w, h := task.Region.Width(), task.Region.Height()

	carve := buildCarveMask(task, cfg.ConnectorDepth, w, h)
	tiles := initialFill(task, carve, cfg, w, h)

	for it := 0; it < cfg.Iterations; it++ {
		tiles = step(tiles, task.Mask, carve, cfg, w, h)
	}

	return Result{
		CellIndex:  task.CellIndex,
		Region:     task.Region,
		Tiles:      tiles,
		Connectors: task.Connectors,
	}
}

func buildCarveMask(task caprep.CellTask, depth, w, h int) []byte {
	carve := make([]byte, w*h)
	for _, c := range task.Connectors {
		lx, ly := c.LocalPoint[0], c.LocalPoint[1]
		ex := lx + int(math.Round(c.DirectionIntoCell[0]*float64(depth)))
		ey := ly + int(math.Round(c.DirectionIntoCell[1]*float64(depth)))
		for _, cell := range bresenhamLine(lx, ly, ex, ey) {
			x, y := cell[0], cell[1]
			if x < 0 || y < 0 || x >= w || y >= h {
				continue
			}
			if task.Mask[y*w+x] == 0 {
				continue
			}
			carve[y*w+x] = 1
		}
	}
	return carve
}

func initialFill(task caprep.CellTask, carve []byte, cfg Config, w, h int) []byte {
	rng := seedchain.NewRNG(task.CASeed)
	tiles := make([]byte, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			switch {
			case carve[i] == 1:
				tiles[i] = floor
			case task.Mask[i] == 0:
				tiles[i] = wall
			default:
				if float64(rng.NextF32()) < cfg.InitialWallProbability {
					tiles[i] = wall
				} else {
					tiles[i] = floor
				}
			}
		}
	}
	return tiles
}

func step(tiles, mask, carve []byte, cfg Config, w, h int) []byte {
	next := make([]byte, w*h)
	half := cfg.KernelSize / 2

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			switch {
			case carve[i] == 1:
				next[i] = floor
			case mask[i] == 0:
				next[i] = wall
			default:
				n := countNeighbors(tiles, mask, carve, x, y, half, w, h)
				if tiles[i] == wall {
					if n >= cfg.SurvivalLimit {
						next[i] = wall
					} else {
						next[i] = floor
					}
				} else {
					if n >= cfg.BirthLimit {
						next[i] = wall
					} else {
						next[i] = floor
					}
				}
			}
		}
	}
	return next
}

func countNeighbors(tiles, mask, carve []byte, x, y, half, w, h int) int {
	count := 0
	for dy := -half; dy <= half; dy++ {
		for dx := -half; dx <= half; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx < 0 || ny < 0 || nx >= w || ny >= h {
				count++ // out-of-region counts as wall
				continue
			}
			ni := ny*w + nx
			switch {
			case carve[ni] == 1:
				// contributes 0
			case mask[ni] == 0:
				count++ // masked-out, not carved: counts as wall
			default:
				count += int(tiles[ni])
			}
		}
	}
	return count
}
