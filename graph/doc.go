// SPDX-License-Identifier: MIT

// Package graph is the immutable Graph Store shared by every shortest-path
// search in this module.
//
// A Graph is built once from a list of directed, non-negatively weighted
// edges and never mutated afterwards. Nodes are dense zero-based integers,
// so every per-node table used by a search (distances, predecessors,
// finalized bits) is a plain slice indexed by Node.
//
// Layout:
//
//   - Forward adjacency: compressed sparse rows (CSR) over outgoing arcs.
//   - Backward adjacency: the same edges reversed, precomputed by Build,
//     so a backward search pays nothing extra at run time.
//   - MinWeight: the lightest arc leaving each node in each direction,
//     used by the parallel searches to decide when a node is safe to
//     finalize.
//
// Construction:
//
//	g, err := graph.Build([]graph.Edge{
//	    {From: 0, To: 1, Weight: 1},
//	    {From: 1, To: 2, Weight: 2},
//	    {From: 0, To: 2, Weight: 4},
//	}, graph.WithNodeCount(4))
//
// Errors:
//
//	ErrInvalidEdgeWeight - an edge carries a negative weight.
//	ErrInvalidNode       - an endpoint is negative or outside WithNodeCount.
//
// Semantics:
//
//   - Edges are directed. WithUndirected inserts each edge in both
//     directions; an undirected graph can equally be modelled by listing
//     both arcs explicitly.
//   - Multi-edges and self-loops are stored as given. Only the lightest
//     parallel arc matters for distances.
//
// Thread safety:
//
//   - A *Graph is read-only after Build. Any number of goroutines may call
//     its methods concurrently without synchronization.
//   - Slices returned by Neighbors are views into the graph's storage and
//     must not be modified.
package graph
