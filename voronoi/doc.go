// Package voronoi builds a Voronoi diagram over a set of seed points by
// first computing their Delaunay triangulation (Bowyer-Watson, with a
// fixed insertion order so the result is a pure function of the seed
// sequence) and then deriving Voronoi edges, cell adjacency, per-cell
// bounding boxes, and a brute-force per-pixel ownership grid from it.
//
// Every cyclic reference (cell-to-edge, edge-to-cell) is an integer index
// into one of the Diagram's own slices rather than a pointer, which keeps
// a built Diagram trivially shareable read-only across goroutines.
//
// Build also assembles a *graph.Graph mirroring cell adjacency, edges
// weighted by rounded seed-to-seed Euclidean distance, for callers that want to run arbitrary
// graph algorithms over the cell layout rather than walk Cell.Neighbors
// by hand.
package voronoi
