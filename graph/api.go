// File: api.go
// Role: Thin, deterministic public facade exposing read-only configuration getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.
//
// AI-HINT (file):
//   - Weighted() is the only construction-time flag any caller outside this
//     package inspects (bfs.BFS rejects weighted graphs up front).

package graph

// Weighted reports whether the graph treats edge weights as meaningful.
//
// Contract:
//   - Returns the construction-time flag (immutable after NewGraph).
//   - Read is protected by muVert for consistent visibility.
//   - No allocations, no mutations.
//
// Complexity: O(1).
// Concurrency: safe; uses read lock.
func (g *Graph) Weighted() bool {
	// AI-HINT: If this returns false, AddEdge with non-zero weight returns ErrBadWeight.
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}
