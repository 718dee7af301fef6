// SPDX-License-Identifier: MIT

package generate

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/shortpath/graph"
)

// DefaultEdgeWeight is the weight of every edge when no WeightFn is set.
const DefaultEdgeWeight int64 = 1

// WeightFn returns the weight of the edge from→to. rng is the configured
// source and may be nil.
type WeightFn func(rng *rand.Rand, from, to graph.Node) int64

// Option customizes a Build call.
type Option func(*config)

// config is resolved once per Build and passed by value to constructors.
type config struct {
	rng        *rand.Rand
	weightFn   WeightFn
	undirected bool
}

func newConfig(opts ...Option) config {
	cfg := config{weightFn: constWeight(DefaultEdgeWeight)}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed seeds a private RNG so stochastic constructors are reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r for every random draw. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generate: WithRand(nil)")
	}

	return func(c *config) {
		c.rng = r
	}
}

// WithWeightFn overrides the edge weight policy. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("generate: WithWeightFn(nil)")
	}

	return func(c *config) {
		c.weightFn = fn
	}
}

// WithUndirected makes every emitted edge usable in both directions.
func WithUndirected() Option {
	return func(c *config) {
		c.undirected = true
	}
}

func constWeight(w int64) WeightFn {
	return func(*rand.Rand, graph.Node, graph.Node) int64 { return w }
}

// ConstantWeight returns w for every edge. Panics if w < 0.
func ConstantWeight(w int64) WeightFn {
	if w < 0 {
		panic(fmt.Sprintf("generate: ConstantWeight(%d)", w))
	}

	return constWeight(w)
}

// ModuloWeight returns (from + to) % m + 1, the dense benchmark weighting.
// Panics if m < 1.
func ModuloWeight(m int64) WeightFn {
	if m < 1 {
		panic(fmt.Sprintf("generate: ModuloWeight(%d)", m))
	}

	return func(_ *rand.Rand, from, to graph.Node) int64 {
		return (int64(from)+int64(to))%m + 1
	}
}

// UniformWeight draws uniformly from [min, max]. Without an RNG it yields
// min. Panics unless 0 ≤ min ≤ max.
func UniformWeight(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("generate: UniformWeight(%d, %d)", min, max))
	}

	return func(rng *rand.Rand, _, _ graph.Node) int64 {
		if rng == nil || min == max {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}
