// Package caprep turns a Voronoi diagram and its traversal graph into the
// per-cell inputs the cellular-automata stage needs: a padded region, a
// byte mask selecting pixels owned by that cell, the traversal connectors
// translated into the cell's local coordinate system, and a per-cell seed
// derived from the shared seedchain.Chain.
//
// Every CellTask it produces is self-contained and immutable, so it can be
// handed to a worker goroutine with no further synchronization.
package caprep
