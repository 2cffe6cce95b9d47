// Package traversal builds a connectivity graph over a Voronoi diagram's
// cells: first a spanning tree biased toward longer, more open edges
// (Kruskal run on edges sorted by descending length), then extra edges
// added by cumulative-weighted sampling until a target neighbour-coverage
// ratio is met or an attempt budget is exhausted.
//
// Every accepted edge contributes one Connection carrying a point sampled
// along it with a cubic smoothstep, which later stages treat as the
// doorway between the two cells it joins.
package traversal
