// SPDX-License-Identifier: MIT
// Package: shortpath/generate
//
// random.go: the RandomSparse constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); p in [0,1] (else ErrInvalidProbability).
//   • A rand source is required for 0 < p < 1 (else ErrNeedRandSource).
//   • No self-loops; ordered pairs, or unordered pairs under WithUndirected.
//
// Complexity:
//   • Time: O(n²) Bernoulli trials. Space: O(1) beyond the emitted edges.
//
// Determinism:
//   • Trials run i ascending, then j ascending; one Float64 draw per trial,
//     none for p = 0 or p = 1.

package generate

import (
	"fmt"

	"github.com/katalvlaran/shortpath/graph"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse appends an Erdős–Rényi graph over n nodes: every ordered
// pair i≠j (unordered under WithUndirected) is kept independently with
// probability p. Trials run i ascending, then j ascending, so a fixed seed
// gives a fixed graph. An RNG is required unless p is 0 or 1.
func RandomSparse(n int, p float64) Constructor {
	return func(b *builder, cfg config) error {
		// 1) Validate size, probability and rand source.
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Reserve ids and run one trial per candidate pair.
		base := b.reserve(n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (cfg.undirected && j < i) {
					continue
				}
				if keep(cfg, p) {
					b.link(cfg, base+graph.Node(i), base+graph.Node(j))
				}
			}
		}

		return nil
	}
}

// keep runs one Bernoulli trial. p of 0 or 1 consumes no randomness.
func keep(cfg config, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
