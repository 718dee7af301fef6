// SPDX-License-Identifier: MIT

// Package generate builds deterministic graph.Graph fixtures for tests,
// examples and benchmarks.
//
// Build composes any number of Constructors into one graph. Each
// constructor appends its nodes after the nodes already emitted, so
// composing Path(3) and Cycle(4) yields nodes 0..2 for the path and 3..6
// for the cycle, as a disjoint union.
//
// Constructors:
//
//   - Path(n):             0→1→…→n-1                        (n ≥ 2)
//   - Cycle(n):            Path(n) plus n-1→0                (n ≥ 3)
//   - Star(n):             node 0 joined to each of 1..n-1    (n ≥ 2)
//   - Grid(rows, cols):    row-major 4-neighbourhood          (rows, cols ≥ 1)
//   - Complete(n):         every ordered pair, no self-loops  (n ≥ 1)
//   - RandomSparse(n, p):  each pair independently with p     (n ≥ 1, 0 ≤ p ≤ 1)
//
// Path and Cycle are one-way unless WithUndirected is given. Star and Grid
// always connect both ways. Complete and RandomSparse consider ordered
// pairs, or unordered pairs under WithUndirected.
//
// Weights:
//
//   - The default weight is DefaultEdgeWeight for every edge.
//   - WithWeightFn installs any WeightFn; ModuloWeight(m) gives
//     (from + to) % m + 1, UniformWeight(min, max) draws from the RNG.
//
// Determinism: equal options, seed and constructor order produce identical
// edge lists. Option constructors panic on meaningless input; constructors
// return the sentinels ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource and ErrConstructFailed wrapped with their name.
package generate
