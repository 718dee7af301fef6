// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/frontier"
	"github.com/katalvlaran/shortpath/generate"
	"github.com/katalvlaran/shortpath/graph"
)

// treeVariants are the variants that can build a shortest-path tree.
func treeVariants() []dijkstra.Variant {
	return []dijkstra.Variant{
		dijkstra.Sequential(),
		dijkstra.Parallel(1),
		dijkstra.Parallel(2),
		dijkstra.Parallel(4),
	}
}

// checkTree compares every node's distance with the oracle and verifies the
// tree path to every reachable node.
func checkTree(t *testing.T, g *graph.Graph, source graph.Node) {
	t.Helper()
	o := newOracle(t, g)
	for _, v := range treeVariants() {
		for _, kind := range []frontier.Kind{frontier.Heap, frontier.Tree} {
			msg := fmt.Sprintf("from %d %s/%s", source, v, kind)
			tree, err := dijkstra.Distances(g, source, v, dijkstra.WithFrontier(kind))
			require.NoError(t, err, msg)
			require.Len(t, tree.Dist, g.Order(), msg)

			reached := 0
			for n := 0; n < g.Order(); n++ {
				node := graph.Node(n)
				want, reachable := o.distance(source, node)
				require.Equal(t, reachable, tree.Reachable(node), "%s node %d", msg, n)
				if !reachable {
					require.Equal(t, graph.Infinity, tree.Dist[n], msg)
					require.Equal(t, graph.NoNode, tree.Prev[n], msg)
					continue
				}
				reached++
				require.Equal(t, want, tree.Dist[n], "%s node %d", msg, n)

				p, ok := tree.PathTo(node)
				require.True(t, ok, msg)
				require.Equal(t, source, p.Nodes[0], msg)
				require.Equal(t, node, p.Nodes[p.Len()-1], msg)
				require.NoError(t, p.Verify(g), "%s node %d", msg, n)
			}
			require.Equal(t, reached, tree.Stats.Finalized, msg)
		}
	}
}

func TestDistances_MatchOracle_RandomSparse(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			opts := []generate.Option{generate.WithSeed(seed), generate.WithWeightFn(generate.UniformWeight(0, 20))}
			g, err := generate.Build(opts, generate.RandomSparse(90, 0.04))
			require.NoError(t, err)
			checkTree(t, g, graph.Node(rand.New(rand.NewSource(seed)).Intn(g.Order())))
		})
	}
}

func TestDistances_MatchOracle_MultiEdgesAndLoops(t *testing.T) {
	r := rand.New(rand.NewSource(17))
	for round := 0; round < 3; round++ {
		g := mustGraph(t, randomEdges(r, 50, 200, 9), graph.WithNodeCount(50))
		checkTree(t, g, graph.Node(r.Intn(50)))
	}
}

func TestDistances_MatchOracle_Grid(t *testing.T) {
	opts := []generate.Option{generate.WithSeed(4), generate.WithWeightFn(generate.UniformWeight(1, 40))}
	g := generate.MustBuild(opts, generate.Grid(12, 12))
	checkTree(t, g, 0)
	checkTree(t, g, 77)
}

func TestDistances_ParallelMatchesSequential(t *testing.T) {
	opts := []generate.Option{generate.WithSeed(31), generate.WithWeightFn(generate.UniformWeight(0, 7))}
	g := generate.MustBuild(opts, generate.RandomSparse(400, 0.02))

	want, err := dijkstra.Distances(g, 0, dijkstra.Sequential())
	require.NoError(t, err)
	for _, workers := range []int{1, 3, 8} {
		got, err := dijkstra.Distances(g, 0, dijkstra.Parallel(workers))
		require.NoError(t, err)
		require.Equal(t, want.Dist, got.Dist, "workers=%d", workers)
		require.Equal(t, want.Stats.Finalized, got.Stats.Finalized, "workers=%d", workers)
	}
}

func TestDistances_IsolatedNodes(t *testing.T) {
	g := triangle(t, graph.WithNodeCount(5))
	tree, err := dijkstra.Distances(g, 0, dijkstra.Sequential())
	require.NoError(t, err)
	require.Equal(t, []int64{0, 1, 3, graph.Infinity, graph.Infinity}, tree.Dist)
	require.Equal(t, []graph.Node{graph.NoNode, 0, 1, graph.NoNode, graph.NoNode}, tree.Prev)
	require.Equal(t, graph.Node(0), tree.Source)

	_, ok := tree.PathTo(4)
	require.False(t, ok)
	require.False(t, tree.Reachable(-1))
	require.False(t, tree.Reachable(9))

	p, ok := tree.PathTo(0)
	require.True(t, ok)
	require.Equal(t, []graph.Node{0}, p.Nodes)
	require.Equal(t, int64(0), p.TotalWeight)
}

func TestDistances_Validation(t *testing.T) {
	g := triangle(t)

	_, err := dijkstra.Distances(nil, 0, dijkstra.Sequential())
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.Distances(g, 3, dijkstra.Parallel(2))
	require.ErrorIs(t, err, dijkstra.ErrUnknownNode)

	_, err = dijkstra.Distances(g, 0, dijkstra.Parallel(-1))
	require.ErrorIs(t, err, dijkstra.ErrBadWorkerCount)

	for _, v := range []dijkstra.Variant{dijkstra.Bidirectional(), dijkstra.ParallelBidirectional(2)} {
		tree, err := dijkstra.Distances(g, 0, v)
		require.ErrorIs(t, err, dijkstra.ErrTargetRequired, v.String())
		require.Nil(t, tree)
	}
}

func TestDistances_Overflow(t *testing.T) {
	g := mustGraph(t, []graph.Edge{
		{From: 0, To: 1, Weight: graph.Infinity / 2},
		{From: 1, To: 2, Weight: graph.Infinity/2 + 1},
	})
	for _, v := range treeVariants() {
		tree, err := dijkstra.Distances(g, 0, v)
		require.ErrorIs(t, err, dijkstra.ErrDistanceOverflow, v.String())
		require.Nil(t, tree)
	}
}

func TestDistancesContext_Canceled(t *testing.T) {
	g := generate.MustBuild(nil, generate.Path(100))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, v := range treeVariants() {
		tree, err := dijkstra.DistancesContext(ctx, g, 0, v)
		require.ErrorIs(t, err, context.Canceled, v.String())
		require.Nil(t, tree)
	}
}
