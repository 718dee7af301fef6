// SPDX-License-Identifier: MIT

package generate_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/generate"
	"github.com/katalvlaran/shortpath/graph"
)

func TestConstructors_Counts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		opts      []generate.Option
		ctor      generate.Constructor
		wantOrder int
		wantSize  int
	}{
		{"Path(4)", nil, generate.Path(4), 4, 3},
		{"Path(4) undirected", []generate.Option{generate.WithUndirected()}, generate.Path(4), 4, 6},
		{"Cycle(5)", nil, generate.Cycle(5), 5, 5},
		{"Star(4)", nil, generate.Star(4), 4, 6},
		{"Star(4) undirected", []generate.Option{generate.WithUndirected()}, generate.Star(4), 4, 6},
		{"Grid(2,3)", nil, generate.Grid(2, 3), 6, 14},
		{"Grid(1,1)", nil, generate.Grid(1, 1), 1, 0},
		{"Complete(4)", nil, generate.Complete(4), 4, 12},
		{"Complete(4) undirected", []generate.Option{generate.WithUndirected()}, generate.Complete(4), 4, 12},
		{"Complete(1)", nil, generate.Complete(1), 1, 0},
		{"RandomSparse(5,1)", nil, generate.RandomSparse(5, 1), 5, 20},
		{"RandomSparse(5,0)", nil, generate.RandomSparse(5, 0), 5, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := generate.Build(tc.opts, tc.ctor)
			require.NoError(t, err)
			require.Equal(t, tc.wantOrder, g.Order())
			require.Equal(t, tc.wantSize, g.Size())
		})
	}
}

func TestPath_Arcs(t *testing.T) {
	g := generate.MustBuild(nil, generate.Path(4))
	for i := graph.Node(0); i < 3; i++ {
		w, ok := g.Weight(i, i+1)
		require.True(t, ok)
		require.Equal(t, generate.DefaultEdgeWeight, w)
		_, ok = g.Weight(i+1, i)
		require.False(t, ok, "directed path has no back arc %d→%d", i+1, i)
	}
}

func TestCycle_ClosesRing(t *testing.T) {
	g := generate.MustBuild(nil, generate.Cycle(3))
	_, ok := g.Weight(2, 0)
	require.True(t, ok)
}

func TestBuild_DisjointUnion(t *testing.T) {
	g, err := generate.Build(nil, generate.Path(3), generate.Cycle(4))
	require.NoError(t, err)
	require.Equal(t, 7, g.Order())

	// Cycle nodes are shifted past the path.
	_, ok := g.Weight(6, 3)
	require.True(t, ok)
	_, ok = g.Weight(2, 3)
	require.False(t, ok)
}

func TestModuloWeight(t *testing.T) {
	g := generate.MustBuild([]generate.Option{generate.WithWeightFn(generate.ModuloWeight(10))}, generate.Complete(12))
	for _, e := range g.Edges() {
		require.Equal(t, (int64(e.From)+int64(e.To))%10+1, e.Weight)
	}
}

func TestUniformWeight_Range(t *testing.T) {
	opts := []generate.Option{generate.WithSeed(7), generate.WithWeightFn(generate.UniformWeight(3, 9))}
	g := generate.MustBuild(opts, generate.Complete(10))
	for _, e := range g.Edges() {
		require.GreaterOrEqual(t, e.Weight, int64(3))
		require.LessOrEqual(t, e.Weight, int64(9))
	}

	// Without an RNG the lower bound is used.
	g = generate.MustBuild([]generate.Option{generate.WithWeightFn(generate.UniformWeight(3, 9))}, generate.Path(2))
	w, _ := g.Weight(0, 1)
	require.Equal(t, int64(3), w)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func() []graph.Edge {
		g, err := generate.Build([]generate.Option{generate.WithSeed(42)}, generate.RandomSparse(30, 0.2))
		require.NoError(t, err)
		return g.Edges()
	}
	require.Equal(t, build(), build())

	r := rand.New(rand.NewSource(42))
	g, err := generate.Build([]generate.Option{generate.WithRand(r)}, generate.RandomSparse(30, 0.2))
	require.NoError(t, err)
	require.Equal(t, build(), g.Edges())
}

func TestValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor generate.Constructor
		want error
	}{
		{"Path(1)", generate.Path(1), generate.ErrTooFewVertices},
		{"Cycle(2)", generate.Cycle(2), generate.ErrTooFewVertices},
		{"Star(1)", generate.Star(1), generate.ErrTooFewVertices},
		{"Grid(0,3)", generate.Grid(0, 3), generate.ErrTooFewVertices},
		{"Complete(0)", generate.Complete(0), generate.ErrTooFewVertices},
		{"RandomSparse(0)", generate.RandomSparse(0, 0.5), generate.ErrTooFewVertices},
		{"RandomSparse(p<0)", generate.RandomSparse(3, -0.1), generate.ErrInvalidProbability},
		{"RandomSparse(p>1)", generate.RandomSparse(3, 1.5), generate.ErrInvalidProbability},
		{"RandomSparse no rng", generate.RandomSparse(3, 0.5), generate.ErrNeedRandSource},
		{"nil constructor", nil, generate.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := generate.Build(nil, tc.ctor)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, g)
		})
	}
}

func TestBuild_NegativeWeightFn(t *testing.T) {
	neg := func(*rand.Rand, graph.Node, graph.Node) int64 { return -1 }
	_, err := generate.Build([]generate.Option{generate.WithWeightFn(neg)}, generate.Path(2))
	require.ErrorIs(t, err, graph.ErrInvalidEdgeWeight)
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { generate.WithRand(nil) })
	require.Panics(t, func() { generate.WithWeightFn(nil) })
	require.Panics(t, func() { generate.ModuloWeight(0) })
	require.Panics(t, func() { generate.UniformWeight(5, 1) })
	require.Panics(t, func() { generate.ConstantWeight(-1) })
	require.Panics(t, func() { generate.MustBuild(nil, generate.Path(0)) })
}
