package dungeon

import (
	"errors"

	"github.com/nonamecorn/pcg-together/ca"
)

// Sentinel errors for Generate's synchronous parameter validation.
var (
	// ErrInvalidCanvasSize indicates a non-positive canvas width or height.
	ErrInvalidCanvasSize = errors.New("dungeon: canvas width and height must be positive")

	// ErrInvalidRadius indicates a non-positive poisson radius.
	ErrInvalidRadius = errors.New("dungeon: poisson radius must be positive")

	// ErrPointOutsideFloor indicates RepairPath was given a coordinate
	// that does not land on any floor component.
	ErrPointOutsideFloor = errors.New("dungeon: point is not part of any floor component")
)

// Config holds every tunable parameter of a Generate call. Use
// DefaultConfig and the With* options rather than constructing it by hand.
type Config struct {
	CanvasW, CanvasH int

	PoissonRadius   float64
	PoissonAttempts int
	SeedPadding     float64

	NeighborCoverage              float64
	ConnectionDistributionScaling float64
	IncludeBorderEdges            bool

	CellPadding int
	CA          ca.Config

	// Parallelism caps the number of concurrent CA workers. <= 0 means
	// use runtime.NumCPU().
	Parallelism int
}

// Option mutates a Config during DefaultConfig construction.
type Option func(*Config)

// DefaultConfig returns a Config with reasonable defaults, then applies
// opts over it.
func DefaultConfig(opts ...Option) Config {
	cfg := Config{
		CanvasW:         128,
		CanvasH:         128,
		PoissonRadius:   16,
		PoissonAttempts: 30,
		SeedPadding:     8,

		NeighborCoverage:              0.5,
		ConnectionDistributionScaling: 0.7,
		IncludeBorderEdges:            true,

		CellPadding: 2,
		CA: ca.Config{
			KernelSize:             5,
			BirthLimit:             5,
			SurvivalLimit:          4,
			Iterations:             4,
			InitialWallProbability: 0.45,
			ConnectorDepth:         3,
		},
		Parallelism: 0,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithCanvasSize sets the output extent in pixels.
func WithCanvasSize(w, h int) Option {
	return func(c *Config) { c.CanvasW, c.CanvasH = w, h }
}

// WithPoisson sets the minimum seed separation and the rejection-sample
// budget per active point.
func WithPoisson(radius float64, attempts int) Option {
	return func(c *Config) { c.PoissonRadius, c.PoissonAttempts = radius, attempts }
}

// WithSeedPadding sets the border keep-out distance for sampled seeds.
func WithSeedPadding(padding float64) Option {
	return func(c *Config) { c.SeedPadding = padding }
}

// WithTraversal sets the neighbour coverage target, the edge-sample
// distribution bias, and whether canvas-border edges may host
// connections.
func WithTraversal(coverage, scaling float64, includeBorderEdges bool) Option {
	return func(c *Config) {
		c.NeighborCoverage = coverage
		c.ConnectionDistributionScaling = scaling
		c.IncludeBorderEdges = includeBorderEdges
	}
}

// WithCellPadding sets the extra pixels padded around each cell's CA
// region.
func WithCellPadding(padding int) Option {
	return func(c *Config) { c.CellPadding = padding }
}

// WithCA sets the cellular-automata rule configuration.
func WithCA(cfg ca.Config) Option {
	return func(c *Config) { c.CA = cfg }
}

// WithParallelism caps the number of concurrent CA workers.
func WithParallelism(n int) Option {
	return func(c *Config) { c.Parallelism = n }
}
