// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/frontier"
	"github.com/katalvlaran/shortpath/generate"
)

func BenchmarkVariants_Dense(b *testing.B) {
	g := generate.MustBuild(
		[]generate.Option{generate.WithWeightFn(generate.ModuloWeight(10))},
		generate.Complete(400),
	)
	for _, v := range dijkstra.Variants(4) {
		for _, kind := range []frontier.Kind{frontier.Heap, frontier.Tree} {
			b.Run(v.String()+"/"+kind.String(), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					if _, err := dijkstra.ShortestPath(g, 0, 399, v, dijkstra.WithFrontier(kind)); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkVariants_Grid(b *testing.B) {
	g := generate.MustBuild(
		[]generate.Option{generate.WithSeed(1), generate.WithWeightFn(generate.UniformWeight(1, 100))},
		generate.Grid(200, 200),
	)
	for _, v := range dijkstra.Variants(4) {
		b.Run(v.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := dijkstra.ShortestPath(g, 0, 200*200-1, v); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
