package dungeon

import (
	"runtime"
	"sync"

	"github.com/nonamecorn/pcg-together/ca"
	"github.com/nonamecorn/pcg-together/caprep"
	"github.com/nonamecorn/pcg-together/poisson"
	"github.com/nonamecorn/pcg-together/seedchain"
	"github.com/nonamecorn/pcg-together/traversal"
	"github.com/nonamecorn/pcg-together/voronoi"
)

// Generate runs the full pipeline for the given base seed and Config and
// returns the merged map. Stages through cell-task preparation run on the
// calling goroutine; the cellular-automata stage fans out across a
// bounded worker pool and the merge step runs after every worker
// completes.
func Generate(baseSeed uint64, cfg Config) (*MergedResult, error) {
	if cfg.CanvasW <= 0 || cfg.CanvasH <= 0 {
		return nil, ErrInvalidCanvasSize
	}
	if cfg.PoissonRadius <= 0 {
		return nil, ErrInvalidRadius
	}

	chain := seedchain.New(baseSeed)

	regionW := float64(cfg.CanvasW) - 2*cfg.SeedPadding
	regionH := float64(cfg.CanvasH) - 2*cfg.SeedPadding
	if regionW < 1 {
		regionW = 1
	}
	if regionH < 1 {
		regionH = 1
	}

	sampled, err := poisson.Sample(poisson.Params{
		Width:    regionW,
		Height:   regionH,
		Radius:   cfg.PoissonRadius,
		Attempts: cfg.PoissonAttempts,
		Seed:     chain.Poisson,
	})
	if err != nil {
		return nil, err
	}

	seeds := make([]voronoi.Point, len(sampled))
	for i, p := range sampled {
		seeds[i] = voronoi.Point{X: p.X + cfg.SeedPadding, Y: p.Y + cfg.SeedPadding}
	}

	diagram := voronoi.Build(seeds, voronoi.Size{W: cfg.CanvasW, H: cfg.CanvasH})

	tg := traversal.Build(diagram, traversal.Params{
		NeighborRatio:                 cfg.NeighborCoverage,
		Seed:                          chain.Traversal,
		IncludeBorderEdges:            cfg.IncludeBorderEdges,
		ConnectionDistributionScaling: cfg.ConnectionDistributionScaling,
	})

	tasks := caprep.Build(diagram, tg, chain, cfg.CellPadding)

	results := runCellWorkers(tasks, cfg.CA, cfg.Parallelism)

	merged := mergeResults(diagram, results, cfg.CanvasW, cfg.CanvasH)

	return &MergedResult{
		CanvasW:       cfg.CanvasW,
		CanvasH:       cfg.CanvasH,
		OwnershipGrid: diagram.OwnershipGrid,
		Merged:        merged,
		Diagram:       diagram,
		Traversal:     tg,
		PerCell:       results,
	}, nil
}

// runCellWorkers dispatches one ca.Run job per task across a bounded pool
// and returns results indexed identically to tasks. Every worker writes
// exactly one pre-allocated slot, never reading another worker's output,
// so the outcome does not depend on scheduling order.
func runCellWorkers(tasks []caprep.CellTask, cfg ca.Config, parallelism int) []ca.Result {
	results := make([]ca.Result, len(tasks))
	if len(tasks) == 0 {
		return results
	}

	workers := parallelism
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(tasks) {
		workers = len(tasks)
	}

	jobs := make(chan int, len(tasks))
	for i := range tasks {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = ca.Run(tasks[idx], cfg)
			}
		}()
	}
	wg.Wait()

	return results
}

func mergeResults(diagram *voronoi.Diagram, results []ca.Result, canvasW, canvasH int) []byte {
	merged := make([]byte, canvasW*canvasH)
	for i := range merged {
		merged[i] = tileWall
	}

	for _, r := range results {
		w := r.Region.Width()
		for y := r.Region.Y0; y < r.Region.Y1; y++ {
			if y < 0 || y >= canvasH {
				continue
			}
			for x := r.Region.X0; x < r.Region.X1; x++ {
				if x < 0 || x >= canvasW {
					continue
				}
				if int(diagram.OwnerAt(x, y)) != r.CellIndex {
					continue
				}
				merged[y*canvasW+x] = r.Tiles[(y-r.Region.Y0)*w+(x-r.Region.X0)]
			}
		}
	}

	return merged
}
