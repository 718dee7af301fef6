// SPDX-License-Identifier: MIT

package dijkstra

import (
	"context"

	"github.com/katalvlaran/shortpath/graph"
)

// Tree is a shortest-path tree rooted at Source.
//
// Dist[v] is the distance from Source to v, or graph.Infinity when v is
// unreachable. Prev[v] is v's predecessor on one shortest path, or
// graph.NoNode for Source and unreachable nodes.
type Tree struct {
	Source graph.Node
	Dist   []int64
	Prev   []graph.Node
	Stats  Stats
}

// Distances computes shortest distances from source to every node of g.
// It is DistancesContext with context.Background().
//
// Only the single-direction variants can build a tree: Sequential and
// Parallel(n). Bidirectional variants return ErrTargetRequired.
//
// Returns:
//
//   - (*Tree, nil) once every node reachable from source is finalized.
//   - (nil, err) for invalid input (ErrNilGraph, ErrUnknownNode,
//     ErrBadWorkerCount, ErrUnknownVariant, ErrTargetRequired), a failed
//     parallel search (ErrWorkerFailure) or a distance past the int64
//     range (ErrDistanceOverflow).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Distances(g *graph.Graph, source graph.Node, variant Variant, opts ...Option) (*Tree, error) {
	return DistancesContext(context.Background(), g, source, variant, opts...)
}

// DistancesContext is Distances with cancellation.
func DistancesContext(ctx context.Context, g *graph.Graph, source graph.Node, variant Variant, opts ...Option) (*Tree, error) {
	s := NewSearch(g, source, graph.NoNode, variant, opts...)
	s.tree = &Tree{Source: source}
	if _, err := s.Run(ctx); err != nil {
		return nil, err
	}

	return s.tree, nil
}

// fill copies the final tables of an exhausted search.
func (t *Tree) fill(dist func(graph.Node) int64, prev []graph.Node) {
	t.Dist = make([]int64, len(prev))
	for v := range t.Dist {
		t.Dist[v] = dist(graph.Node(v))
	}
	t.Prev = make([]graph.Node, len(prev))
	copy(t.Prev, prev)
}

// Reachable reports whether v is reachable from Source.
func (t *Tree) Reachable(v graph.Node) bool {
	return v >= 0 && int(v) < len(t.Dist) && t.Dist[v] != graph.Infinity
}

// PathTo returns the tree path from Source to v; ok is false when v is
// unreachable.
func (t *Tree) PathTo(v graph.Node) (p Path, ok bool) {
	if !t.Reachable(v) {
		return Path{}, false
	}

	return Path{Nodes: forwardPath(t.Prev, v), TotalWeight: t.Dist[v]}, true
}
