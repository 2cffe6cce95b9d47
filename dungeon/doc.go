// Package dungeon wires the seedchain, poisson, voronoi, traversal, caprep
// and ca packages into a single deterministic generate call: a base seed
// and a parameter block in, a canvas-sized floor/wall grid out.
//
// Generate runs seed derivation through cell-task preparation on the
// calling goroutine, then fans the per-cell cellular-automata runs out
// across a bounded worker pool. Every CellTask is built before the pool
// starts, every worker writes into its own pre-allocated result slot, and
// the merge step addresses those slots by cell index rather than
// processing them in completion order — so the merged grid is the same
// byte-for-byte no matter how many workers ran it or in what order they
// finished.
package dungeon
