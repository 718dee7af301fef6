// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/shortpath/graph"
)

// oracle answers shortest-path distances with gonum's Dijkstra over the same
// arcs. Parallel arcs collapse to the lightest one and self-loops are
// dropped, neither of which changes a distance.
type oracle struct {
	g    *simple.WeightedDirectedGraph
	from map[graph.Node]path.Shortest
}

func newOracle(t *testing.T, g *graph.Graph) *oracle {
	t.Helper()
	wg := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for v := 0; v < g.Order(); v++ {
		wg.AddNode(simple.Node(v))
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		u, v := simple.Node(e.From), simple.Node(e.To)
		if cur := wg.WeightedEdge(int64(u), int64(v)); cur != nil && cur.Weight() <= float64(e.Weight) {
			continue
		}
		wg.SetWeightedEdge(wg.NewWeightedEdge(u, v, float64(e.Weight)))
	}

	return &oracle{g: wg, from: make(map[graph.Node]path.Shortest)}
}

// distance returns the shortest distance and whether target is reachable.
func (o *oracle) distance(source, target graph.Node) (int64, bool) {
	sh, ok := o.from[source]
	if !ok {
		sh = path.DijkstraFrom(o.g.Node(int64(source)), o.g)
		o.from[source] = sh
	}
	w := sh.WeightTo(int64(target))
	if math.IsInf(w, 1) {
		return 0, false
	}

	return int64(w), true
}

// randomEdges returns m arcs over n nodes with weights in [0, maxW].
// Self-loops and parallel arcs occur on purpose.
func randomEdges(r *rand.Rand, n, m int, maxW int64) []graph.Edge {
	edges := make([]graph.Edge, m)
	for i := range edges {
		edges[i] = graph.Edge{
			From:   graph.Node(r.Intn(n)),
			To:     graph.Node(r.Intn(n)),
			Weight: r.Int63n(maxW + 1),
		}
	}

	return edges
}
