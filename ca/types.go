package ca

import (
	"github.com/nonamecorn/pcg-together/caprep"
	"github.com/nonamecorn/pcg-together/voronoi"
)

// Config is the rule configuration for a CA run.
type Config struct {
	// KernelSize is the neighbourhood window side. Must be odd and >= 3;
	// an even value is rounded up to the next odd number.
	KernelSize int

	// BirthLimit and SurvivalLimit are clamped to [0, KernelSize^2 - 1].
	BirthLimit    int
	SurvivalLimit int

	// Iterations is the number of smoothing passes; >= 0.
	Iterations int

	// InitialWallProbability is the chance an undetermined cell starts as
	// wall, in [0,1].
	InitialWallProbability float64

	// ConnectorDepth is the length, in cells, of the carved-open path
	// rasterized at each connector.
	ConnectorDepth int
}

// Normalize returns a copy of cfg with all fields clamped into their valid
// ranges, rounding an even KernelSize up to the next odd value.
func (cfg Config) Normalize() Config {
	if cfg.KernelSize < 3 {
		cfg.KernelSize = 3
	}
	if cfg.KernelSize%2 == 0 {
		cfg.KernelSize++
	}
	maxNeighbors := cfg.KernelSize*cfg.KernelSize - 1
	cfg.BirthLimit = clampInt(cfg.BirthLimit, 0, maxNeighbors)
	cfg.SurvivalLimit = clampInt(cfg.SurvivalLimit, 0, maxNeighbors)
	if cfg.Iterations < 0 {
		cfg.Iterations = 0
	}
	if cfg.InitialWallProbability < 0 {
		cfg.InitialWallProbability = 0
	}
	if cfg.InitialWallProbability > 1 {
		cfg.InitialWallProbability = 1
	}
	if cfg.ConnectorDepth < 0 {
		cfg.ConnectorDepth = 0
	}
	return cfg
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

// Result is the per-cell CA output: Tiles is 1 = wall, 0 = floor.
type Result struct {
	CellIndex  int
	Region     voronoi.Rect
	Tiles      []byte
	Connectors []caprep.CellConnector
}
