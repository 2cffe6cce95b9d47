// Package seedchain derives the independent sub-seeds consumed by each
// stage of the generation pipeline from a single caller-supplied base
// seed, and provides the xorshift*-based RNG used throughout.
//
// A Chain holds three uint64 values: Base, Poisson, and Traversal. Poisson
// and Traversal are produced by mixing Base with a stage-specific salt via
// mix, a small non-cryptographic hash combining XOR, addition, two shifts,
// a multiply, and a final xor-shift. Per-cell cellular-automata seeds are
// derived on demand through Chain.CASeed, so the pipeline never needs to
// store one seed per cell.
//
// mix is deterministic and has no external dependency: the same (base,
// salt) pair always yields the same uint64, independent of goroutine
// scheduling or call order, which is what lets the later pipeline stages
// run in parallel without losing reproducibility.
package seedchain
