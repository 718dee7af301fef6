// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"
)

// Graph is an immutable, index-based adjacency structure holding both the
// forward and the reversed arcs of every node.
type Graph struct {
	order int    // number of nodes
	edges []Edge // edges as stored (undirected input already mirrored)

	adj [2]csr     // adjacency per Direction
	min [2][]int64 // lightest arc weight per node per Direction
}

// csr is a compressed sparse row adjacency: the arcs of node u are
// arcs[offsets[u]:offsets[u+1]].
type csr struct {
	offsets []int
	arcs    []Arc
}

// Build validates edges and constructs an immutable Graph.
//
// Validation (fail fast, no partial graph is returned):
//  1. Every endpoint must be ≥ 0 (ErrInvalidNode).
//  2. With WithNodeCount(n), every endpoint must be < n (ErrInvalidNode).
//  3. Every weight must be ≥ 0 and below Infinity (ErrInvalidEdgeWeight).
//
// The node count is max(n, largest endpoint + 1).
//
// Complexity: O(V + E) time and space.
func Build(edges []Edge, opts ...Option) (*Graph, error) {
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Validate and size the node space.
	order := cfg.nodeCount
	for i, e := range edges {
		if e.From < 0 || e.To < 0 {
			return nil, fmt.Errorf("%w: edge #%d %d→%d", ErrInvalidNode, i, e.From, e.To)
		}
		if cfg.nodeCount > 0 && (int(e.From) >= cfg.nodeCount || int(e.To) >= cfg.nodeCount) {
			return nil, fmt.Errorf("%w: edge #%d %d→%d outside %d nodes", ErrInvalidNode, i, e.From, e.To, cfg.nodeCount)
		}
		if e.Weight < 0 || e.Weight == Infinity {
			return nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrInvalidEdgeWeight, e.From, e.To, e.Weight)
		}
		if int(e.From) >= order {
			order = int(e.From) + 1
		}
		if int(e.To) >= order {
			order = int(e.To) + 1
		}
	}

	// 2) Materialize the stored edge list (mirrored when undirected).
	stored := make([]Edge, 0, len(edges))
	stored = append(stored, edges...)
	if cfg.undirected {
		for _, e := range edges {
			if e.From != e.To {
				stored = append(stored, Edge{From: e.To, To: e.From, Weight: e.Weight})
			}
		}
	}

	g := &Graph{order: order, edges: stored}
	g.adj[Forward] = buildCSR(order, stored, Forward)
	g.adj[Backward] = buildCSR(order, stored, Backward)
	g.min[Forward] = minWeights(g.adj[Forward], order)
	g.min[Backward] = minWeights(g.adj[Backward], order)

	return g, nil
}

// buildCSR lays out the arcs of dir with a counting pass and a fill pass.
// Arcs of a node keep the relative order of the input edges.
func buildCSR(order int, edges []Edge, dir Direction) csr {
	offsets := make([]int, order+1)
	for _, e := range edges {
		tail, _ := orient(e, dir)
		offsets[tail+1]++
	}
	for u := 0; u < order; u++ {
		offsets[u+1] += offsets[u]
	}

	arcs := make([]Arc, len(edges))
	next := make([]int, order)
	copy(next, offsets[:order])
	for _, e := range edges {
		tail, head := orient(e, dir)
		arcs[next[tail]] = Arc{To: head, Weight: e.Weight}
		next[tail]++
	}

	return csr{offsets: offsets, arcs: arcs}
}

// orient returns the (tail, head) of e as seen when walking dir.
func orient(e Edge, dir Direction) (Node, Node) {
	if dir == Backward {
		return e.To, e.From
	}

	return e.From, e.To
}

func minWeights(c csr, order int) []int64 {
	mins := make([]int64, order)
	for u := 0; u < order; u++ {
		best := Infinity
		for _, a := range c.arcs[c.offsets[u]:c.offsets[u+1]] {
			if a.Weight < best {
				best = a.Weight
			}
		}
		mins[u] = best
	}

	return mins
}

// Order returns the number of nodes.
func (g *Graph) Order() int { return g.order }

// Size returns the number of stored directed edges (mirrors included).
func (g *Graph) Size() int { return len(g.edges) }

// HasNode reports whether n is a node of g.
func (g *Graph) HasNode(n Node) bool {
	return n >= 0 && int(n) < g.order
}

// Neighbors returns the arcs leaving node in direction dir. For Backward
// these are the incoming edges reversed. The slice is a read-only view.
// Returns nil for nodes outside the graph.
//
// Complexity: O(1).
func (g *Graph) Neighbors(node Node, dir Direction) []Arc {
	if !g.HasNode(node) {
		return nil
	}
	c := &g.adj[dir]

	return c.arcs[c.offsets[node]:c.offsets[node+1]:c.offsets[node+1]]
}

// MinWeight returns the lightest arc weight leaving node in direction dir,
// or Infinity when there is none.
func (g *Graph) MinWeight(node Node, dir Direction) int64 {
	if !g.HasNode(node) {
		return Infinity
	}

	return g.min[dir][node]
}

// Weight returns the lightest weight among the arcs from → to.
// ok is false when no such arc exists.
//
// Complexity: O(out-degree(from)).
func (g *Graph) Weight(from, to Node) (w int64, ok bool) {
	w = Infinity
	for _, a := range g.Neighbors(from, Forward) {
		if a.To == to && a.Weight < w {
			w, ok = a.Weight, true
		}
	}

	return w, ok
}

// Edges returns a copy of the stored edges in build order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}
