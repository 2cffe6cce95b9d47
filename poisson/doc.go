// Package poisson generates blue-noise point sets via Bridson's Poisson-disk
// algorithm: points that are mutually at least radius apart, filling a
// rectangular region with no large empty gaps and no clustering.
//
// Sampling maintains a background occupancy grid with cell side
// radius/√2, so any 5×5 neighbourhood of cells is enough to find every
// point that could conflict with a new candidate. Occupancy is tracked
// with a github.com/kelindar/bitmap bitmap alongside a parallel point-index
// slice, the same two-structure pattern used for spatial hashing in
// kelindar's own sparse-sampling code.
package poisson
