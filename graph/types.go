// SPDX-License-Identifier: MIT

package graph

import (
	"errors"
	"math"
)

// Sentinel errors returned by Build.
var (
	// ErrInvalidEdgeWeight indicates that an edge carries a negative weight
	// or a weight equal to Infinity. Dijkstra's invariant requires
	// non-negative weights, so the graph is rejected instead of being clamped.
	ErrInvalidEdgeWeight = errors.New("graph: invalid edge weight")

	// ErrInvalidNode indicates that an edge endpoint is negative or lies
	// outside the node count declared with WithNodeCount.
	ErrInvalidNode = errors.New("graph: invalid node id")
)

// Infinity is the distance of a node that has not been reached.
const Infinity int64 = math.MaxInt64

// NoNode marks the absence of a node, e.g. the predecessor of a search origin.
const NoNode Node = -1

// Node is a dense, zero-based node identifier.
type Node int

// Edge is a directed, weighted connection From → To.
type Edge struct {
	From   Node
	To     Node
	Weight int64
}

// Arc is one adjacency entry: the node at the other end and the weight.
type Arc struct {
	To     Node
	Weight int64
}

// Direction selects which adjacency a search walks.
type Direction uint8

const (
	// Forward walks outgoing arcs (u → v).
	Forward Direction = iota
	// Backward walks incoming arcs, i.e. the edges reversed (v → u).
	Backward
)

// String returns "forward" or "backward".
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}

	return "forward"
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return 1 - d
}

// AddWeight returns a+b, saturating at Infinity instead of overflowing.
// Both arguments must be non-negative. Use it for bounds; distances go
// through SumWeight.
func AddWeight(a, b int64) int64 {
	if a >= Infinity-b {
		return Infinity
	}

	return a + b
}

// SumWeight returns a+b for two non-negative weights. ok is false when the
// sum would reach Infinity, i.e. it cannot be told apart from "unreached".
func SumWeight(a, b int64) (sum int64, ok bool) {
	if a >= Infinity-b {
		return Infinity, false
	}

	return a + b, true
}

// Option configures Build.
type Option func(*options)

type options struct {
	nodeCount  int
	undirected bool
}

// WithNodeCount declares the graph to contain at least n nodes (0..n-1),
// so isolated nodes exist even when no edge mentions them. Edges that
// reference a node ≥ n are rejected with ErrInvalidNode.
// Panics if n is negative.
func WithNodeCount(n int) Option {
	if n < 0 {
		panic("graph: WithNodeCount(n<0)")
	}

	return func(o *options) {
		o.nodeCount = n
	}
}

// WithUndirected stores every edge in both directions.
func WithUndirected() Option {
	return func(o *options) {
		o.undirected = true
	}
}
