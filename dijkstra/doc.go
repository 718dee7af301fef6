// SPDX-License-Identifier: MIT

// Package dijkstra computes shortest paths in a graph.Graph with
// non-negative integer weights: one path between two nodes, or the
// shortest-path tree of a single source.
//
// Overview:
//
//   - Four interchangeable variants answer the same query and, for any
//     source and target, return the same total weight:
//     Sequential, Bidirectional, Parallel(n) and ParallelBidirectional(n).
//   - Every variant uses lazy decrease-key: a node may sit in the frontier
//     several times and outdated entries are discarded when popped.
//   - The search stops as soon as the answer is known: when the target is
//     finalized (single direction) or when no unfinalized node can lead to a
//     shorter path than the best meeting found (bidirectional).
//
// Variants:
//
//   - Sequential: classic Dijkstra from the source.
//   - Bidirectional: one forward search from the source over outgoing arcs
//     and one backward search from the target over incoming arcs. The two
//     sides alternate strictly. Both finalized nodes and improved distances
//     are offered to a shared meeting record, and the search stops once
//     minF + minB >= best.
//   - Parallel(n): n workers share one frontier, one distance table and one
//     finalized set. A worker may finalize the frontier minimum d only when
//     no in-flight relaxation can produce a smaller distance, that is when
//     d <= du + MinWeight(u) for every node u currently being relaxed.
//     Otherwise it waits. With n = 1 the node order is identical to
//     Sequential.
//   - ParallelBidirectional(n): one Parallel pool per direction. The pools
//     share only the meeting record and read each other's distance tables.
//
// Results:
//
//	res, err := dijkstra.ShortestPath(g, 0, 2, dijkstra.Bidirectional())
//	switch {
//	case errors.Is(err, dijkstra.ErrNotReachable):
//	    // res.Status == dijkstra.StatusNotReachable
//	case err != nil:
//	    // invalid input, cancellation or worker failure
//	default:
//	    fmt.Println(res.Nodes, res.TotalWeight)
//	}
//
// A source equal to the target yields the one-node path with weight 0 and
// zero relaxations.
//
// Shortest-path trees:
//
//	tree, err := dijkstra.Distances(g, 0, dijkstra.Parallel(4))
//	p, ok := tree.PathTo(7)
//
// Distances runs Sequential or Parallel(n) without a target until the
// frontier is exhausted and returns every node's distance and predecessor.
// The bidirectional variants need a target and return ErrTargetRequired.
//
// Lifecycle:
//
//	NotStarted → Running → [Draining] → Found | NotReachable | Failed
//
// Draining is entered by the parallel variants once their pools have been
// told to stop. A Search runs once; Status may be polled from any goroutine.
//
// Options:
//
//   - WithFrontier(frontier.Heap | frontier.Tree): binary heap (default) or
//     B-tree priority structure.
//   - WithLogger(zerolog.Logger): lifecycle events at debug level, failures
//     at error level. The default logger discards everything.
//
// Errors:
//
//   - ErrNilGraph, ErrUnknownNode, ErrBadWorkerCount, ErrUnknownVariant:
//     rejected before any search work.
//   - ErrNotReachable: returned together with a Result.
//   - ErrWorkerFailure: a parallel worker returned an error or panicked;
//     all workers are stopped and joined, and every cause is wrapped.
//   - ErrDistanceOverflow: a distance reached the int64 range limit before
//     the target was found. The target may be reachable, so this is a
//     failure rather than NotReachable.
//   - ErrTargetRequired: Distances with a bidirectional variant.
//   - ErrAlreadyStarted: Run called twice.
//   - Context errors: wrapped, so errors.Is(err, context.Canceled) holds.
//
// Complexity:
//
//   - Time:  O((V + E) log V) for every variant, plus O(n) per finalization
//     for the parallel safety check.
//   - Space: O(V + E) per direction.
//
// Thread safety:
//
//   - The graph is only read. Any number of searches may run over the same
//     *graph.Graph concurrently; each owns all of its mutable state.
package dijkstra
