// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/shortpath/graph"
)

// Len returns the number of nodes on the path.
func (p Path) Len() int { return len(p.Nodes) }

// Verify checks p against g: every consecutive pair must be joined by a
// forward arc, and the lightest such arcs must add up to TotalWeight.
// An empty path is invalid.
//
// Complexity: O(Σ out-degree of the path's nodes).
func (p Path) Verify(g *graph.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	if len(p.Nodes) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	if !g.HasNode(p.Nodes[0]) {
		return fmt.Errorf("%w: node %d not in graph", ErrInvalidPath, p.Nodes[0])
	}

	var sum int64
	for i := 1; i < len(p.Nodes); i++ {
		u, v := p.Nodes[i-1], p.Nodes[i]
		w, ok := g.Weight(u, v)
		if !ok {
			return fmt.Errorf("%w: no arc %d→%d", ErrInvalidPath, u, v)
		}
		sum = graph.AddWeight(sum, w)
	}
	if sum != p.TotalWeight {
		return fmt.Errorf("%w: arcs sum to %d, path reports %d", ErrInvalidPath, sum, p.TotalWeight)
	}

	return nil
}

// walk follows prev from n until NoNode and returns the visited nodes,
// n first.
func walk(prev []graph.Node, n graph.Node) []graph.Node {
	var out []graph.Node
	for ; n != graph.NoNode; n = prev[n] {
		out = append(out, n)
	}

	return out
}

// forwardPath returns origin … n from a forward predecessor table.
func forwardPath(prev []graph.Node, n graph.Node) []graph.Node {
	nodes := walk(prev, n)
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	return nodes
}

// joinPath splices the forward half (source … meet) and the backward half
// (meet … target). In a backward table prev[v] is the next node toward the
// target.
func joinPath(fwdPrev, bwdPrev []graph.Node, meet graph.Node) []graph.Node {
	nodes := forwardPath(fwdPrev, meet)

	return append(nodes, walk(bwdPrev, meet)[1:]...)
}
