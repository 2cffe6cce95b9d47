// Package graph defines a small thread-safe, undirected Graph type used to
// represent adjacency in two places in this pipeline: Voronoi cell
// adjacency (voronoi.Diagram.CellGraph), which traversal.Build reads to
// source its spanning-tree candidates, and grid-cell adjacency
// (gridgraph.GridGraph.ToGraph). Every edge mirrors both directions; there
// is no directed mode.
//
// Why use graph.Graph?
//
//   - Single type, composable flags (weighted, loops, multi-edges) instead
//     of a graph type per caller.
//   - Deterministic iteration — Vertices(), Edges(), NeighborIDs() all
//     return sorted results, so callers that fold over them (traversal's
//     Kruskal pass, bfs.BFS) get reproducible output for a fixed seed.
//
// Configuration Options (GraphOption):
//
//	– WithWeighted()
//	    Permits non-zero weights globally; otherwise AddEdge(weight≠0) → ErrBadWeight.
//
//	– WithMultiEdges()
//	    Allows multiple parallel edges between the same endpoints.
//	    Otherwise a second AddEdge(from,to) → ErrMultiEdgeNotAllowed.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error         // O(1)
//	HasVertex(id string) bool          // O(1)
//
//	// Edge lifecycle
//	AddEdge(from,to string, weight int64) (edgeID string, err error) // O(1)†
//	HasEdge(from,to string) bool      // O(1)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)   // O(d·log d)
//	NeighborIDs(id string) ([]string, error)// O(d·log d), unique, sorted
//	Vertices() []string                      // O(V·log V)
//	Edges() []*Edge                          // O(E·log E)
//	VertexCount() int                    // O(1)
//
// Edge struct fields:
//
//	ID       string   // "e1", "e2", …
//	From     string   // one endpoint's vertex ID
//	To       string   // the other endpoint's vertex ID
//	Weight   int64    // cost (zero in unweighted graphs)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrBadWeight           – non-zero weight on unweighted graph
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
//
// voronoi.Build constructs one Graph per generated diagram (cell adjacency,
// edge weight = rounded Euclidean seed-to-seed distance); traversal.Build walks that same
// Graph's Edges() to order its spanning-tree candidates. gridgraph.ToGraph
// converts a floor/wall grid into an unweighted Graph that bfs.BFS walks to
// mark cells near an existing connector.
package graph
