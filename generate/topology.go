// SPDX-License-Identifier: MIT
// Package: shortpath/generate
//
// topology.go: the fixed-shape constructors Path, Cycle, Star, Grid and
// Complete.
//
// Contract:
//   • Each constructor reserves its nodes after those already emitted and
//     only links nodes inside its own range.
//   • Size below the minimum returns ErrTooFewVertices; nothing is emitted.
//   • Path, Cycle and Complete emit one arc per link (one edge per pair
//     under WithUndirected); Star and Grid always connect both ways.
//   • Weights come from cfg.weightFn, called once per emitted link.
//
// Complexity:
//   • Path, Cycle, Star: O(n). Grid: O(rows·cols). Complete: O(n²).
//   • Space: O(1) beyond the emitted edges.
//
// Determinism:
//   • Node ids follow reservation order; edges are emitted in ascending
//     index order, so a fixed seed yields an identical graph.

package generate

import (
	"fmt"

	"github.com/katalvlaran/shortpath/graph"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodGrid     = "Grid"
	methodComplete = "Complete"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minGridDim       = 1
	minCompleteNodes = 1
)

// Path appends n nodes joined as 0→1→…→n-1.
func Path(n int) Constructor {
	return func(b *builder, cfg config) error {
		// 1) Validate size.
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		// 2) Reserve ids and emit i→i+1.
		base := b.reserve(n)
		for i := base; i < base+graph.Node(n)-1; i++ {
			b.link(cfg, i, i+1)
		}

		return nil
	}
}

// Cycle appends a ring of n nodes: Path(n) closed by n-1→0.
func Cycle(n int) Constructor {
	return func(b *builder, cfg config) error {
		// 1) Validate size.
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		// 2) Reserve ids and emit i→(i+1)%n, closing the ring last.
		base := b.reserve(n)
		for i := 0; i < n; i++ {
			b.link(cfg, base+graph.Node(i), base+graph.Node((i+1)%n))
		}

		return nil
	}
}

// Star appends a hub (its first node) connected both ways to n-1 leaves.
func Star(n int) Constructor {
	return func(b *builder, cfg config) error {
		// 1) Validate size.
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		// 2) The first reserved id is the hub; link every leaf both ways.
		hub := b.reserve(n)
		for leaf := hub + 1; leaf < hub+graph.Node(n); leaf++ {
			b.both(cfg, hub, leaf)
		}

		return nil
	}
}

// Grid appends a rows×cols grid in row-major order; each cell is connected
// both ways to its right and bottom neighbours.
func Grid(rows, cols int) Constructor {
	return func(b *builder, cfg config) error {
		// 1) Validate dimensions.
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		// 2) Reserve cells row-major, then link right and down neighbours.
		base := b.reserve(rows * cols)
		cell := func(r, c int) graph.Node { return base + graph.Node(r*cols+c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					b.both(cfg, cell(r, c), cell(r, c+1))
				}
				if r+1 < rows {
					b.both(cfg, cell(r, c), cell(r+1, c))
				}
			}
		}

		return nil
	}
}

// Complete appends n nodes with an arc for every ordered pair i≠j, or an
// edge per unordered pair under WithUndirected.
func Complete(n int) Constructor {
	return func(b *builder, cfg config) error {
		// 1) Validate size.
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		// 2) Reserve ids and emit every pair in (i, j) ascending order.
		base := b.reserve(n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (cfg.undirected && j < i) {
					continue
				}
				b.link(cfg, base+graph.Node(i), base+graph.Node(j))
			}
		}

		return nil
	}
}
