// SPDX-License-Identifier: MIT

package generate

import (
	"fmt"

	"github.com/katalvlaran/shortpath/graph"
)

// Constructor appends one topology to the edge list under construction.
// Constructors validate their parameters first and return sentinel errors;
// they never panic.
type Constructor func(b *builder, cfg config) error

// builder accumulates nodes and edges across constructors.
type builder struct {
	order int
	edges []graph.Edge
}

// reserve allocates n consecutive node ids and returns the first.
func (b *builder) reserve(n int) graph.Node {
	base := graph.Node(b.order)
	b.order += n

	return base
}

// link emits from→to with the configured weight.
func (b *builder) link(cfg config, from, to graph.Node) {
	b.edges = append(b.edges, graph.Edge{From: from, To: to, Weight: cfg.weightFn(cfg.rng, from, to)})
}

// both emits from→to and, on directed graphs, to→from with the same weight.
func (b *builder) both(cfg config, from, to graph.Node) {
	w := cfg.weightFn(cfg.rng, from, to)
	b.edges = append(b.edges, graph.Edge{From: from, To: to, Weight: w})
	if !cfg.undirected {
		b.edges = append(b.edges, graph.Edge{From: to, To: from, Weight: w})
	}
}

// Build resolves opts, runs cons in order and assembles the graph.
//
// Errors: constructor sentinels wrapped with "generate: %w",
// ErrConstructFailed for a nil constructor, and graph.ErrInvalidEdgeWeight
// when a WeightFn produced a negative weight.
func Build(opts []Option, cons ...Constructor) (*graph.Graph, error) {
	cfg := newConfig(opts...)

	var b builder
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("generate: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(&b, cfg); err != nil {
			return nil, fmt.Errorf("generate: %w", err)
		}
	}

	gopts := []graph.Option{graph.WithNodeCount(b.order)}
	if cfg.undirected {
		gopts = append(gopts, graph.WithUndirected())
	}
	g, err := graph.Build(b.edges, gopts...)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	return g, nil
}

// MustBuild is Build for fixtures known to be valid. Panics on error.
func MustBuild(opts []Option, cons ...Constructor) *graph.Graph {
	g, err := Build(opts, cons...)
	if err != nil {
		panic(err)
	}

	return g
}
