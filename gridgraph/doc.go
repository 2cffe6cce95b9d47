// Package gridgraph treats a 2D grid of cells as a graph, enabling
// component analysis and minimal-cost “island” expansions.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold.
//   - Identifies connected components (“islands”) of cells with value ≥ LandThreshold.
//   - Computes minimal conversions (0-1 BFS) to connect two island sets.
//   - Converts to a *graph.Graph for arbitrary graph algorithms.
//   - Biases those conversions toward cells near an existing connector,
//     via NearConnectors/ExpandIslandNear, so a repair path reopens a
//     passage the generator already carved rather than tunneling fresh rock.
//
// Why:
//
//   - Game maps: contiguous land detection, optimal bridging.
//   - Resource planning: connect facilities with minimal upgrades.
//   - Topology analysis: count lakes, islands, and heterogeneous regions.
//   - Dungeon repair: when two floor components generated disjoint,
//     ExpandIslandNear prefers reconnecting through a cell's own doorway
//     over carving through untouched wall.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ExpandIsland:          O(W×H×d), Memory: O(W×H).
//   - ToGraph:               O(W×H×d + E), Memory: O(W×H + E).
//   - NearConnectors:        O(len(connectors) × (W×H + E)).
//   - ExpandIslandNear:      O(W×H×d) plus the NearConnectors precompute.
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
//
package gridgraph
